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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tobyzxj/coapmsg/wire"
)

func TestSetPathStringAndPath(t *testing.T) {
	m := NewMessage(wire.Confirmable, wire.GET)
	m.SetPathString("/sensors/temperature")
	require.Equal(t, []string{"sensors", "temperature"}, m.Path())
}

func TestUriHostPort(t *testing.T) {
	m := NewMessage(wire.Confirmable, wire.GET)
	m.SetUriHost("example.com")
	m.SetUriPort(5683)

	host, ok := m.UriHost()
	require.True(t, ok)
	require.Equal(t, "example.com", host)

	port, ok := m.UriPort()
	require.True(t, ok)
	require.Equal(t, uint32(5683), port)
}

func TestContentFormatAndAccept(t *testing.T) {
	m := NewMessage(wire.Acknowledgement, wire.Content)
	m.SetContentFormat(41)
	m.SetAccept(50)

	cf, ok := m.ContentFormat()
	require.True(t, ok)
	require.Equal(t, uint32(41), cf)

	accept, ok := m.Accept()
	require.True(t, ok)
	require.Equal(t, uint32(50), accept)
}

func TestMaxAgeDefault(t *testing.T) {
	m := NewMessage(wire.Acknowledgement, wire.Content)
	require.Equal(t, uint32(wire.MaxAgeDefault), m.MaxAge())

	m.SetMaxAge(120)
	require.Equal(t, uint32(120), m.MaxAge())
}

func TestETagsAndIfMatch(t *testing.T) {
	m := NewMessage(wire.Confirmable, wire.GET)
	m.AddETag([]byte{0x01})
	m.AddETag([]byte{0x02})
	require.Equal(t, [][]byte{{0x01}, {0x02}}, m.ETags())

	m.AddIfMatch([]byte{0xaa})
	require.Equal(t, [][]byte{{0xaa}}, m.IfMatch())
}

func TestIfNoneMatch(t *testing.T) {
	m := NewMessage(wire.Confirmable, wire.PUT)
	require.False(t, m.IfNoneMatch())
	m.SetIfNoneMatch(true)
	require.True(t, m.IfNoneMatch())
	m.SetIfNoneMatch(false)
	require.False(t, m.IfNoneMatch())
}

func TestObserve(t *testing.T) {
	m := NewMessage(wire.Confirmable, wire.GET)
	_, ok := m.Observe()
	require.False(t, ok)

	m.SetObserve(7)
	seq, ok := m.Observe()
	require.True(t, ok)
	require.Equal(t, uint32(7), seq)
}

func TestSize1Size2(t *testing.T) {
	m := NewMessage(wire.Confirmable, wire.PUT)
	m.SetSize1(1024)
	m.SetSize2(2048)

	s1, ok := m.Size1()
	require.True(t, ok)
	require.Equal(t, uint32(1024), s1)

	s2, ok := m.Size2()
	require.True(t, ok)
	require.Equal(t, uint32(2048), s2)
}

func TestProxyUriAndScheme(t *testing.T) {
	m := NewMessage(wire.Confirmable, wire.GET)
	m.SetProxyUri("coap://example.com/foo")

	uri, ok := m.ProxyUri()
	require.True(t, ok)
	require.Equal(t, "coap://example.com/foo", uri)

	_, ok = m.ProxyScheme()
	require.False(t, ok)
}

func TestLocationPathAndQuery(t *testing.T) {
	m := NewMessage(wire.Acknowledgement, wire.Created)
	m.SetLocationPath([]string{"resources", "42"})
	require.Equal(t, []string{"resources", "42"}, m.LocationPath())
	require.Nil(t, m.LocationQuery())
}
