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

package coapmsg

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2s"

	"github.com/tobyzxj/coapmsg/wire"
)

// Fingerprint computes m's cache-key: a Blake2s-256 digest over Code, the
// full Token, and every option whose number is not NoCacheKey and is not
// Block1/Block2. Message Id, Type, Payload, Observe, and Block1/Block2 are
// always excluded, so two messages differing only in those fields produce
// identical fingerprints.
func Fingerprint(m Message) ([32]byte, error) {
	h, err := blake2s.New256(nil)
	if err != nil {
		return [32]byte{}, err
	}

	h.Write([]byte{byte(m.Code)})

	var tokenLen [2]byte
	binary.BigEndian.PutUint16(tokenLen[:], uint16(len(m.Token)))
	h.Write(tokenLen[:])
	h.Write(m.Token)

	if m.Options != nil {
		m.Options.Iter(func(num wire.OptionNumber, value []byte) bool {
			if !cacheKeyEligible(num) {
				return true
			}
			var header [4]byte
			binary.BigEndian.PutUint16(header[0:2], uint16(num))
			binary.BigEndian.PutUint16(header[2:4], uint16(len(value)))
			h.Write(header[:])
			h.Write(value)
			return true
		})
	}

	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum, nil
}

// cacheKeyEligible reports whether num contributes to the cache-key.
// Block1, Block2, and Observe are always excluded even though none of the
// three carries the NoCacheKey flag bit (RFC 7252's flag rule alone would
// include them).
func cacheKeyEligible(num wire.OptionNumber) bool {
	switch num {
	case wire.OptBlock1, wire.OptBlock2, wire.OptObserve:
		return false
	}
	return !num.NoCacheKey()
}
