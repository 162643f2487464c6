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

// Option delta/length tier boundaries (§4.3.3). The same decoder services
// both delta and length because the wire stream places the delta extension
// bytes before the length extension bytes; sharing one primitive keeps the
// two paths from drifting apart.
const (
	tierByteNibble  = 13
	tierByteAddend  = 13
	tierWordNibble  = 14
	tierWordAddend  = 269
	tierReserved    = 15
	MaxOptionNumber = 65535
	MaxOptionValue  = 65804
)

// payloadMarker separates the option stream from the payload on the wire.
const payloadMarker = 0xff

// splitTier decomposes value into a nibble (0-14) and an extension value,
// choosing the smallest tier that can represent it (§4.3.2).
func splitTier(value int) (nibble, ext int) {
	switch {
	case value < tierByteNibble:
		return value, 0
	case value <= 268:
		return tierByteNibble, value - tierByteAddend
	default:
		return tierWordNibble, value - tierWordAddend
	}
}

// writeTierExt appends nibble's extension bytes (0, 1, or 2 of them) to the cursor.
func writeTierExt(c *Cursor, nibble, ext int) error {
	switch nibble {
	case tierByteNibble:
		return c.WriteByte(byte(ext))
	case tierWordNibble:
		var b [2]byte
		b[0] = byte(ext >> 8)
		b[1] = byte(ext)
		_, err := c.Write(b[:])
		return err
	default:
		return nil
	}
}

// readTierExt decodes one delta or length nibble into its value, consuming
// 0, 1, or 2 extension bytes from c (§4.3.3).
func readTierExt(c *Cursor, nibble int) (int, error) {
	switch nibble {
	case tierReserved:
		return 0, ErrOptionLengthReserved
	case tierByteNibble:
		b, err := c.Take(1)
		if err != nil {
			return 0, err
		}
		return int(b[0]) + tierByteAddend, nil
	case tierWordNibble:
		b, err := c.Take(2)
		if err != nil {
			return 0, err
		}
		return (int(b[0])<<8 | int(b[1])) + tierWordAddend, nil
	default:
		return nibble, nil
	}
}

// marshalOne emits one option at the given delta from the previously
// emitted option number (§4.3.2).
func marshalOne(c *Cursor, delta int, value []byte) error {
	if len(value) > MaxOptionValue {
		return ErrOptionValueTooLarge
	}
	dn, dx := splitTier(delta)
	ln, lx := splitTier(len(value))

	if err := c.WriteByte(byte(dn<<4 | ln)); err != nil {
		return err
	}
	if err := writeTierExt(c, dn, dx); err != nil {
		return err
	}
	if err := writeTierExt(c, ln, lx); err != nil {
		return err
	}
	_, err := c.Write(value)
	return err
}

// parsedOption is one option as read off the wire, before being folded into
// an OptionMap.
type parsedOption struct {
	Number OptionNumber
	Value  []byte
}

// parseStream reads the option stream starting at c's current position,
// stopping at the payload marker (consumed) or end of input. It returns the
// options in wire order and whatever payload bytes follow the marker, if any
// (§4.3.4).
func parseStream(c *Cursor) ([]parsedOption, []byte, error) {
	var opts []parsedOption
	prev := 0
	sawMarker := false

	for c.Remaining() > 0 {
		b, err := c.Peek(1)
		if err != nil {
			return nil, nil, err
		}
		if b[0] == payloadMarker {
			_, _ = c.Take(1)
			sawMarker = true
			break
		}
		_, _ = c.Take(1)

		deltaNibble := int(b[0] >> 4)
		lengthNibble := int(b[0] & 0x0f)

		delta, err := readTierExt(c, deltaNibble)
		if err != nil {
			return nil, nil, err
		}
		length, err := readTierExt(c, lengthNibble)
		if err != nil {
			return nil, nil, err
		}

		number := prev + delta
		if number > MaxOptionNumber {
			return nil, nil, ErrOptionNumberOverflow
		}

		value, err := c.Take(length)
		if err != nil {
			return nil, nil, err
		}

		opts = append(opts, parsedOption{Number: OptionNumber(number), Value: value})
		prev = number
	}

	if c.Remaining() == 0 {
		if sawMarker {
			return nil, nil, ErrPayloadMarkerWithoutPayload
		}
		return opts, nil, nil
	}

	payload, err := c.Take(c.Remaining())
	if err != nil {
		return nil, nil, err
	}
	return opts, payload, nil
}
