// Copyright 2024 tobyzxj
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionNumberFlags(t *testing.T) {
	require.True(t, OptIfMatch.Critical())
	require.False(t, OptETag.Critical())

	require.True(t, OptUriHost.UnsafeToForward())
	require.False(t, OptETag.UnsafeToForward())

	require.True(t, OptionNumber(0x1c).NoCacheKey())
	require.False(t, OptUriPath.NoCacheKey())
}

func TestOptionNumberString(t *testing.T) {
	require.Equal(t, "Uri-Path", OptUriPath.String())
	require.Equal(t, "Option(9999)", OptionNumber(9999).String())
}

func TestOptionTypedValue(t *testing.T) {
	o := Option{Number: OptContentFormat, Value: []byte{0x00, 0x28}}
	def, ok := LookupOptionDef(OptContentFormat)
	require.True(t, ok)
	require.Equal(t, uint64(0x28), o.TypedValue(def))

	o = Option{Number: OptUriHost, Value: []byte("example.com")}
	def, _ = LookupOptionDef(OptUriHost)
	require.Equal(t, "example.com", o.TypedValue(def))

	o = Option{Number: OptIfNoneMatch, Value: nil}
	def, _ = LookupOptionDef(OptIfNoneMatch)
	require.Equal(t, struct{}{}, o.TypedValue(def))
}

func TestVerifyOptionLen(t *testing.T) {
	require.True(t, VerifyOptionLen(OptUriHost, 10))
	require.False(t, VerifyOptionLen(OptUriHost, 0))
	require.True(t, VerifyOptionLen(OptionNumber(9999), 1000))
}
