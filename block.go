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
	"errors"

	"github.com/tobyzxj/coapmsg/wire"
)

// ErrInvalidBlockSzx is returned for a block size exponent of 7, which RFC
// 7959 section 2.2 reserves.
var ErrInvalidBlockSzx = errors.New("coapmsg: block size exponent 7 is reserved")

// Block describes one value of the Block1 or Block2 option (RFC 7959
// section 2.2): a block sequence number, a "more blocks follow" flag, and a
// size exponent that resolves to 2^(SZX+4) bytes.
type Block struct {
	Num  uint32
	More bool
	SZX  uint8
}

// Size returns the block size in bytes this Block's SZX encodes.
func (b Block) Size() int {
	return 1 << (uint(b.SZX) + 4)
}

// EncodeBlock packs b into the minimal big-endian integer value the
// Block1/Block2 option carries on the wire: 0..=3 bytes while Num fits in 20
// bits. Num is not range-checked; a larger Num yields a 4- or 5-byte value.
func EncodeBlock(b Block) ([]byte, error) {
	if b.SZX > 6 {
		return nil, ErrInvalidBlockSzx
	}
	var more uint64
	if b.More {
		more = 1
	}
	value := uint64(b.Num)<<4 | more<<3 | uint64(b.SZX)
	buf := make([]byte, 8)
	n, err := wire.EncodeUint(buf, value)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// DecodeBlock unpacks a Block1/Block2 option value into its NUM/M/SZX
// fields.
func DecodeBlock(raw []byte) (Block, error) {
	value := wire.DecodeUint(raw)
	szx := uint8(value & 0x7)
	if szx > 6 {
		return Block{}, ErrInvalidBlockSzx
	}
	return Block{
		Num:  uint32(value >> 4),
		More: value&0x8 != 0,
		SZX:  szx,
	}, nil
}

// Block1 returns the Block1 option, if set.
func (m Message) Block1() (Block, bool, error) {
	return m.block(wire.OptBlock1)
}

// SetBlock1 sets the Block1 option.
func (m *Message) SetBlock1(b Block) error {
	return m.setBlock(wire.OptBlock1, b)
}

// Block2 returns the Block2 option, if set.
func (m Message) Block2() (Block, bool, error) {
	return m.block(wire.OptBlock2)
}

// SetBlock2 sets the Block2 option.
func (m *Message) SetBlock2(b Block) error {
	return m.setBlock(wire.OptBlock2, b)
}

func (m Message) block(num wire.OptionNumber) (Block, bool, error) {
	raw, ok := m.getOption(num)
	if !ok {
		return Block{}, false, nil
	}
	b, err := DecodeBlock(raw)
	if err != nil {
		return Block{}, true, err
	}
	return b, true, nil
}

func (m *Message) setBlock(num wire.OptionNumber, b Block) error {
	raw, err := EncodeBlock(b)
	if err != nil {
		return err
	}
	m.ensureOptions().Set(num, raw)
	return nil
}
