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
	"strings"

	"github.com/tobyzxj/coapmsg/wire"
)

func bitfield(v uint64, bits int) string {
	layout := fmt.Sprintf("%%0%db", bits)
	binaryStr := fmt.Sprintf(layout, v)
	var b strings.Builder
	for i, ch := range binaryStr {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(ch)
	}
	return b.String()
}

func hexOrEmpty(v []byte) string {
	if len(v) == 0 {
		return "Empty"
	}
	return fmt.Sprintf("% 02X", v)
}

// GoString renders m as an annotated diagram of its fixed header, the way
// the wire bytes lay out, for use with %#v or direct debug printing.
func (m Message) GoString() string {
	tkl := len(m.Token)
	return fmt.Sprintf(`
    0                   1                   2                   3
    0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
   +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
   |Ver 1|T %d|TKL: %-2d|Code: %-3v      |Message ID: 0x%04X             |
   |%v|%v|%v|%v|%v|
   +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
   |Token: (if any) ... HEX(%d)
   | %v
   +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
   |Options: %d
   | %v
   +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
   |Payload: HEX(%d)
   | %v`,
		m.Type, tkl, m.Code, m.MessageID,
		bitfield(1, 2), bitfield(uint64(m.Type), 2), bitfield(uint64(tkl), 4),
		bitfield(uint64(m.Code), 8), bitfield(uint64(m.MessageID), 16),
		tkl, hexOrEmpty(m.Token),
		optionCount(m.Options), optionSummary(m.Options),
		len(m.Payload), hexOrEmpty(m.Payload))
}

func optionCount(opts *wire.OptionMap) int {
	if opts == nil {
		return 0
	}
	return opts.Len()
}

func optionSummary(opts *wire.OptionMap) string {
	if opts == nil || opts.Len() == 0 {
		return "none"
	}
	var parts []string
	opts.Iter(func(num wire.OptionNumber, value []byte) bool {
		parts = append(parts, fmt.Sprintf("%v=%s", num, hexOrEmpty(value)))
		return true
	})
	return strings.Join(parts, ", ")
}
