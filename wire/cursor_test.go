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

func TestCursorTakePeekAdvance(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4})

	peeked, err := c.Peek(2)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, peeked)
	require.Equal(t, 0, c.Position())

	taken, err := c.Take(2)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, taken)
	require.Equal(t, 2, c.Position())
	require.Equal(t, 2, c.Remaining())

	require.NoError(t, c.Advance(1))
	require.Equal(t, 1, c.Remaining())

	_, err = c.Take(5)
	require.True(t, IsNotEnoughBytes(err))
}

func TestCursorWrite(t *testing.T) {
	buf := make([]byte, 3)
	c := NewCursor(buf)

	require.NoError(t, c.WriteByte(0xaa))
	n, err := c.Write([]byte{0xbb, 0xcc})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []byte{0xaa, 0xbb, 0xcc}, buf)

	_, err = c.Write([]byte{1})
	require.True(t, IsBufferTooSmall(err))
}
