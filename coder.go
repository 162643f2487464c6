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
	"fmt"

	"github.com/tobyzxj/coapmsg/wire"
)

// Coder marshals and parses Messages to and from the RFC 7252 wire format.
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|Ver| T |  TKL  |      Code     |          Message ID           |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|   Token (if any, TKL bytes) ...
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|   Options (if any) ...
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|1 1 1 1 1 1 1 1|    Payload (if any) ...
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type Coder struct{}

// DefaultCoder is the stateless, shared Coder most callers want.
var DefaultCoder = Coder{}

const fixedHeaderSize = 4

// Size returns the number of bytes Marshal would write for m, without
// writing them.
func (Coder) Size(m Message) (int, error) {
	if len(m.Token) > wire.MaxTokenSize {
		return -1, wire.ErrInvalidTokenLength
	}
	size := fixedHeaderSize + len(m.Token)
	if m.Options != nil {
		var oversized error
		m.Options.Iter(func(_ wire.OptionNumber, value []byte) bool {
			if len(value) > wire.MaxOptionValue {
				oversized = wire.ErrOptionValueTooLarge
				return false
			}
			return true
		})
		if oversized != nil {
			return -1, oversized
		}
		size += m.Options.Size()
	}
	if len(m.Payload) > 0 {
		size += 1 + len(m.Payload)
	}
	return size, nil
}

// Marshal serializes m into buf, returning the number of bytes written.
// buf must be at least as large as Size(m); Marshal never partially writes
// on a sizing failure.
func (Coder) Marshal(m Message, buf []byte) (int, error) {
	if !wire.ValidateType(m.Type) {
		return -1, fmt.Errorf("coapmsg: invalid type %d", m.Type)
	}
	if len(m.Token) > wire.MaxTokenSize {
		return -1, wire.ErrInvalidTokenLength
	}

	size, err := (Coder{}).Size(m)
	if err != nil {
		return -1, err
	}
	if len(buf) < size {
		return size, &wire.BufferTooSmall{Needed: size, Capacity: len(buf)}
	}

	c := wire.NewCursor(buf)
	header := byte(wire.Version1)<<6 | byte(m.Type)<<4 | byte(len(m.Token)&0xf)
	if err := c.WriteByte(header); err != nil {
		return -1, err
	}
	if err := c.WriteByte(byte(m.Code)); err != nil {
		return -1, err
	}
	midBuf := []byte{byte(m.MessageID >> 8), byte(m.MessageID)}
	if _, err := c.Write(midBuf); err != nil {
		return -1, err
	}
	if _, err := c.Write(m.Token); err != nil {
		return -1, err
	}

	if m.Options != nil {
		if err := m.Options.Marshal(c); err != nil {
			return -1, err
		}
	}

	if len(m.Payload) > 0 {
		if err := c.WriteByte(0xff); err != nil {
			return -1, err
		}
		if _, err := c.Write(m.Payload); err != nil {
			return -1, err
		}
	}

	return c.Position(), nil
}

// Parse decodes a Message from data, which must contain exactly one
// message (no trailing bytes beyond its payload).
func Parse(data []byte) (Message, error) {
	if len(data) < fixedHeaderSize {
		return Message{}, wire.ErrMessageTooShort
	}

	ver := wire.Ver(data[0] >> 6)
	if !wire.ValidateVer(ver) {
		return Message{}, wire.ErrInvalidVersion
	}

	typ := wire.Type((data[0] >> 4) & 0x3)
	tokenLen := int(data[0] & 0xf)
	if tokenLen > wire.MaxTokenSize {
		return Message{}, wire.ErrInvalidTokenLength
	}

	code := wire.Code(data[1])
	messageID := uint16(data[2])<<8 | uint16(data[3])

	c := wire.NewCursor(data[fixedHeaderSize:])
	token, err := c.Take(tokenLen)
	if err != nil {
		return Message{}, err
	}

	options, payload, err := wire.ParseOptionMap(c)
	if err != nil {
		return Message{}, err
	}

	m := Message{
		Type:      typ,
		Code:      code,
		MessageID: messageID,
		Token:     append(wire.Token(nil), token...),
		Options:   options,
		Payload:   payload,
	}
	return m, nil
}
