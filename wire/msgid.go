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
	"crypto/rand"
	"encoding/binary"
	"math"
	mathrand "math/rand"
	"sync/atomic"
)

var msgID = uint32(randMessageIDSeed())

// NextMessageID returns the next message id in an atomically-incremented
// sequence (0..=65535, wrapping).
func NextMessageID() uint16 {
	return uint16(atomic.AddUint32(&msgID, 1))
}

// randMessageIDSeed picks a starting point for the message id sequence from
// a CSPRNG, falling back to a non-cryptographic PRNG if the read fails so
// that a broken entropy source never blocks or panics.
func randMessageIDSeed() uint16 {
	b := make([]byte, 2)
	if _, err := rand.Read(b); err == nil {
		return binary.BigEndian.Uint16(b)
	}
	return uint16(mathrand.Int31n(math.MaxUint16 + 1))
}

// ValidateMessageID reports whether mid fits the 16-bit wire field.
func ValidateMessageID(mid int32) bool {
	return mid >= 0 && mid <= math.MaxUint16
}
