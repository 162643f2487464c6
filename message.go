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

// Package coapmsg implements the CoAP message wire format (RFC 7252),
// including the Block1/Block2/Size1/Size2 options (RFC 7959) and the
// Observe option (RFC 7641).
package coapmsg

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/tobyzxj/coapmsg/wire"
)

// Message is a CoAP message: the fixed header fields plus a token, an
// option map, and an optional payload. It is a plain value type; callers
// own its lifetime and there is no pooling or reference counting.
type Message struct {
	Type      wire.Type
	Code      wire.Code
	MessageID uint16
	Token     wire.Token
	Options   *wire.OptionMap
	Payload   []byte
}

// NewMessage returns a Message with an initialized, empty option map.
func NewMessage(typ wire.Type, code wire.Code) Message {
	return Message{
		Type:      typ,
		Code:      code,
		MessageID: wire.NextMessageID(),
		Options:   wire.NewOptionMap(),
	}
}

// IsConfirmable reports whether m is a Confirmable message.
func (m Message) IsConfirmable() bool {
	return m.Type == wire.Confirmable
}

// Validate checks m against the invariants of the Message Assembly
// contract: token length, type range, and well-known option length
// bounds. It aggregates every violation it finds rather than stopping at
// the first one, so a caller can report them all at once.
func (m Message) Validate() error {
	var errs *multierror.Error

	if len(m.Token) > wire.MaxTokenSize {
		errs = multierror.Append(errs, wire.ErrInvalidTokenLength)
	}
	if !wire.ValidateType(m.Type) {
		errs = multierror.Append(errs, fmt.Errorf("coapmsg: invalid type %d", m.Type))
	}
	if m.Options != nil {
		m.Options.Iter(func(num wire.OptionNumber, value []byte) bool {
			if def, ok := wire.LookupOptionDef(num); ok {
				if len(value) < def.MinLen || len(value) > def.MaxLen {
					errs = multierror.Append(errs, fmt.Errorf(
						"coapmsg: option %s length %d out of range [%d,%d]",
						num, len(value), def.MinLen, def.MaxLen))
				}
			}
			return true
		})
	}

	return errs.ErrorOrNil()
}

// Clone returns a deep copy of m; mutating the result never affects m.
func (m Message) Clone() Message {
	out := m
	if m.Token != nil {
		out.Token = append(wire.Token(nil), m.Token...)
	}
	if m.Payload != nil {
		out.Payload = append([]byte(nil), m.Payload...)
	}
	if m.Options != nil {
		out.Options = wire.NewOptionMap()
		m.Options.Iter(func(num wire.OptionNumber, value []byte) bool {
			out.Options.Add(num, append([]byte(nil), value...))
			return true
		})
	}
	return out
}

func (m Message) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Code: %v, Type: %v, MessageID: %d, Token: %v", m.Code, m.Type, m.MessageID, m.Token)
	if path := m.Path(); len(path) > 0 {
		fmt.Fprintf(&b, ", Path: /%s", strings.Join(path, "/"))
	}
	if cf, ok := m.ContentFormat(); ok {
		fmt.Fprintf(&b, ", ContentFormat: %d", cf)
	}
	if len(m.Payload) > 0 {
		fmt.Fprintf(&b, ", PayloadLen: %d", len(m.Payload))
	}
	return b.String()
}
