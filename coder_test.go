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
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tobyzxj/coapmsg/wire"
)

func fromHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	require.NoError(t, err)
	return b
}

func TestParseGetWithTwoPathSegments(t *testing.T) {
	// header 0xb3: delta 11 (Uri-Path), length 3, value "foo"; then header
	// 0x03: delta 0, length 3, value "bar".
	data := fromHex(t, "40 01 00 01 B3 66 6F 6F 03 62 61 72")

	m, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, wire.Confirmable, m.Type)
	require.Equal(t, 0, len(m.Token))
	require.Equal(t, wire.GET, m.Code)
	require.Equal(t, uint16(1), m.MessageID)
	require.Equal(t, []string{"foo", "bar"}, m.Path())
	require.Nil(t, m.Payload)

	buf := make([]byte, len(data))
	n, err := DefaultCoder.Marshal(m, buf)
	require.NoError(t, err)
	require.Equal(t, data, buf[:n])
}

func TestParseContentWithPayload(t *testing.T) {
	data := fromHex(t, "61 45 00 01 FE C1 28 FF 68 69")

	m, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, wire.Acknowledgement, m.Type)
	require.Equal(t, wire.Token{0xfe}, m.Token)
	require.Equal(t, wire.Content, m.Code)
	require.Equal(t, uint16(1), m.MessageID)
	cf, ok := m.ContentFormat()
	require.True(t, ok)
	require.Equal(t, uint32(0x28), cf)
	require.Equal(t, "hi", string(m.Payload))

	buf := make([]byte, len(data))
	n, err := DefaultCoder.Marshal(m, buf)
	require.NoError(t, err)
	require.Equal(t, data, buf[:n])
}

func TestOptionStreamTierOneExtension(t *testing.T) {
	m := NewMessage(wire.Confirmable, wire.GET)
	m.MessageID = 1
	value := make([]byte, 14)
	for i := range value {
		value[i] = byte(i)
	}
	m.Options.Add(wire.OptionNumber(14), value)

	size, err := DefaultCoder.Size(m)
	require.NoError(t, err)
	buf := make([]byte, size)
	n, err := DefaultCoder.Marshal(m, buf)
	require.NoError(t, err)

	body := buf[4:n]
	require.Equal(t, byte(0xdd), body[0])
	require.Equal(t, byte(0x01), body[1])
	require.Equal(t, byte(0x01), body[2])
	require.Equal(t, value, body[3:3+14])
}

func TestOptionStreamTierTwoExtension(t *testing.T) {
	m := NewMessage(wire.Confirmable, wire.GET)
	m.MessageID = 1
	value := make([]byte, 269)
	for i := range value {
		value[i] = byte(i)
	}
	m.Options.Add(wire.OptionNumber(269), value)

	size, err := DefaultCoder.Size(m)
	require.NoError(t, err)
	buf := make([]byte, size)
	n, err := DefaultCoder.Marshal(m, buf)
	require.NoError(t, err)

	body := buf[4:n]
	require.Equal(t, byte(0xee), body[0])
	require.Equal(t, byte(0x00), body[1])
	require.Equal(t, byte(0x00), body[2])
	require.Equal(t, byte(0x00), body[3])
	require.Equal(t, byte(0x00), body[4])
	require.Equal(t, value, body[5:5+269])
}

func TestOptionStreamTwoRepeatsOfSameNumber(t *testing.T) {
	m := NewMessage(wire.Confirmable, wire.GET)
	m.MessageID = 1
	m.Options.Add(wire.OptionNumber(11), []byte("xxxxxxxxxxx")) // delta-setup option number 11
	m.Options.Add(wire.OptUriQuery, []byte("a=1"))
	m.Options.Add(wire.OptUriQuery, []byte("b=2"))

	size, err := DefaultCoder.Size(m)
	require.NoError(t, err)
	buf := make([]byte, size)
	n, err := DefaultCoder.Marshal(m, buf)
	require.NoError(t, err)

	body := buf[4:n]
	// first option: number 11, length 11 -> header nibble (11<<4 | 11) = 0xbb
	require.Equal(t, byte(0xbb), body[0])
	tail := body[1+11:]
	// two Uri-Query repeats at number 15: delta 4 len 3 "a=1", then delta 0 len 3 "b=2"
	require.Equal(t, fromHex(t, "43 61 3D 31 03 62 3D 32"), tail)
}

func TestReservedNibbleRejected(t *testing.T) {
	data := fromHex(t, "40 01 00 01 F0")
	_, err := Parse(data)
	require.ErrorIs(t, err, wire.ErrOptionLengthReserved)
}

func TestBoundaryTokenLength(t *testing.T) {
	for _, tkl := range []int{0, 8} {
		m := NewMessage(wire.Confirmable, wire.GET)
		m.MessageID = 1
		m.Token = make(wire.Token, tkl)
		size, err := DefaultCoder.Size(m)
		require.NoError(t, err)
		buf := make([]byte, size)
		_, err = DefaultCoder.Marshal(m, buf)
		require.NoError(t, err)
	}
}

func TestBoundaryTokenLengthNineRejected(t *testing.T) {
	data := append([]byte{0x49, 0x01, 0x00, 0x01}, make([]byte, 9)...)
	_, err := Parse(data)
	require.ErrorIs(t, err, wire.ErrInvalidTokenLength)
}

func TestInvalidVersionRejected(t *testing.T) {
	data := fromHex(t, "00 01 00 01")
	_, err := Parse(data)
	require.ErrorIs(t, err, wire.ErrInvalidVersion)
}

func TestMessageTooShortRejected(t *testing.T) {
	_, err := Parse([]byte{0x40, 0x01, 0x00})
	require.ErrorIs(t, err, wire.ErrMessageTooShort)
}

func TestPayloadMarkerWithoutPayloadRejected(t *testing.T) {
	data := fromHex(t, "40 01 00 01 FF")
	_, err := Parse(data)
	require.ErrorIs(t, err, wire.ErrPayloadMarkerWithoutPayload)
}

func TestRoundTripDeterministic(t *testing.T) {
	m := NewMessage(wire.NonConfirmable, wire.Content)
	m.MessageID = 42
	m.Token = wire.Token{0x01, 0x02}
	m.SetPath([]string{"sensors", "temperature"})
	m.SetContentFormat(41)
	m.Payload = []byte("22.5")

	size, err := DefaultCoder.Size(m)
	require.NoError(t, err)
	buf1 := make([]byte, size)
	_, err = DefaultCoder.Marshal(m, buf1)
	require.NoError(t, err)

	buf2 := make([]byte, size)
	_, err = DefaultCoder.Marshal(m, buf2)
	require.NoError(t, err)
	require.Equal(t, buf1, buf2)

	parsed, err := Parse(buf1)
	require.NoError(t, err)
	require.Equal(t, m.Type, parsed.Type)
	require.Equal(t, m.Code, parsed.Code)
	require.Equal(t, m.MessageID, parsed.MessageID)
	require.Equal(t, m.Token, parsed.Token)
	require.Equal(t, m.Path(), parsed.Path())
	require.Equal(t, m.Payload, parsed.Payload)
}

func TestSizeRejectsOversizedOptionValue(t *testing.T) {
	m := NewMessage(wire.Confirmable, wire.GET)
	m.Options.Set(wire.OptUriPath, make([]byte, wire.MaxOptionValue+1))

	_, err := DefaultCoder.Size(m)
	require.ErrorIs(t, err, wire.ErrOptionValueTooLarge)

	buf := make([]byte, 1<<20)
	_, err = DefaultCoder.Marshal(m, buf)
	require.ErrorIs(t, err, wire.ErrOptionValueTooLarge)
}

func TestMarshalBufferTooSmall(t *testing.T) {
	m := NewMessage(wire.Confirmable, wire.GET)
	m.MessageID = 1
	buf := make([]byte, 1)
	_, err := DefaultCoder.Marshal(m, buf)
	require.True(t, wire.IsBufferTooSmall(err))
}
