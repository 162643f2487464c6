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

import "encoding/binary"

// EncodeUint writes value as a minimal big-endian byte sequence (0..=8
// bytes, no leading zero byte, zero encodes as zero bytes) into buf and
// returns the number of bytes written.
func EncodeUint(buf []byte, value uint64) (int, error) {
	n := uintLen(value)
	if len(buf) < n {
		return n, &BufferTooSmall{Needed: n, Capacity: len(buf)}
	}
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], value)
	copy(buf, tmp[8-n:])
	return n, nil
}

// uintLen returns the minimal number of big-endian bytes needed for value.
func uintLen(value uint64) int {
	n := 0
	for v := value; v != 0; v >>= 8 {
		n++
	}
	return n
}

// DecodeUint interprets buf (0..=8 bytes) as a big-endian unsigned integer.
func DecodeUint(buf []byte) uint64 {
	var tmp [8]byte
	if len(buf) > 8 {
		buf = buf[len(buf)-8:]
	}
	copy(tmp[8-len(buf):], buf)
	return binary.BigEndian.Uint64(tmp[:])
}
