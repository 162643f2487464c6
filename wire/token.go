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
	"encoding/hex"
)

// MaxTokenSize is the largest number of bytes a Token may hold (§3, §4.2).
const MaxTokenSize = 8

// Token is 0..=8 opaque bytes carried verbatim between a request and its
// matching response.
type Token []byte

func (t Token) String() string {
	return hex.EncodeToString(t)
}

// GetToken generates a random MaxTokenSize-byte token.
func GetToken() (Token, error) {
	b := make(Token, MaxTokenSize)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}
