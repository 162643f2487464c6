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

// Ver is the 2-bit Version field. RFC 7252 defines exactly one value.
type Ver uint8

// Version1 is the only version RFC 7252 (and this codec) recognizes.
const Version1 Ver = 1

// ValidateVer reports whether ver is the one version this codec accepts.
func ValidateVer(ver Ver) bool {
	return ver == Version1
}
