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
	"strings"

	"github.com/tobyzxj/coapmsg/wire"
)

// Path returns the Uri-Path segments set on m, in order.
func (m Message) Path() []string {
	return m.stringsOf(wire.OptUriPath)
}

// SetPath replaces m's Uri-Path with the given segments.
func (m *Message) SetPath(segments []string) {
	m.setStrings(wire.OptUriPath, segments)
}

// SetPathString splits s on "/" and sets it as the Uri-Path.
func (m *Message) SetPathString(s string) {
	m.SetPath(strings.Split(strings.Trim(s, "/"), "/"))
}

// Query returns the Uri-Query values set on m.
func (m Message) Query() []string {
	return m.stringsOf(wire.OptUriQuery)
}

// SetQuery replaces m's Uri-Query with the given key=value strings.
func (m *Message) SetQuery(queries []string) {
	m.setStrings(wire.OptUriQuery, queries)
}

// LocationPath returns the Location-Path segments set on m.
func (m Message) LocationPath() []string {
	return m.stringsOf(wire.OptLocationPath)
}

// SetLocationPath replaces m's Location-Path with the given segments.
func (m *Message) SetLocationPath(segments []string) {
	m.setStrings(wire.OptLocationPath, segments)
}

// LocationQuery returns the Location-Query values set on m.
func (m Message) LocationQuery() []string {
	return m.stringsOf(wire.OptLocationQuery)
}

// UriHost returns the Uri-Host option, if set.
func (m Message) UriHost() (string, bool) {
	v, ok := m.getOption(wire.OptUriHost)
	if !ok {
		return "", false
	}
	return string(v), true
}

// SetUriHost sets the Uri-Host option.
func (m *Message) SetUriHost(host string) {
	m.ensureOptions().Set(wire.OptUriHost, []byte(host))
}

// UriPort returns the Uri-Port option, if set.
func (m Message) UriPort() (uint32, bool) {
	v, ok := m.getOption(wire.OptUriPort)
	if !ok {
		return 0, false
	}
	return uint32(wire.DecodeUint(v)), true
}

// SetUriPort sets the Uri-Port option.
func (m *Message) SetUriPort(port uint32) {
	m.setUint(wire.OptUriPort, uint64(port))
}

// ProxyUri returns the Proxy-Uri option, if set.
func (m Message) ProxyUri() (string, bool) {
	v, ok := m.getOption(wire.OptProxyUri)
	if !ok {
		return "", false
	}
	return string(v), true
}

// SetProxyUri sets the Proxy-Uri option.
func (m *Message) SetProxyUri(uri string) {
	m.ensureOptions().Set(wire.OptProxyUri, []byte(uri))
}

// ProxyScheme returns the Proxy-Scheme option, if set.
func (m Message) ProxyScheme() (string, bool) {
	v, ok := m.getOption(wire.OptProxyScheme)
	if !ok {
		return "", false
	}
	return string(v), true
}

// ContentFormat returns the Content-Format option, if set.
func (m Message) ContentFormat() (uint32, bool) {
	v, ok := m.getOption(wire.OptContentFormat)
	if !ok {
		return 0, false
	}
	return uint32(wire.DecodeUint(v)), true
}

// SetContentFormat sets the Content-Format option.
func (m *Message) SetContentFormat(format uint32) {
	m.setUint(wire.OptContentFormat, uint64(format))
}

// Accept returns the Accept option, if set.
func (m Message) Accept() (uint32, bool) {
	v, ok := m.getOption(wire.OptAccept)
	if !ok {
		return 0, false
	}
	return uint32(wire.DecodeUint(v)), true
}

// SetAccept sets the Accept option.
func (m *Message) SetAccept(format uint32) {
	m.setUint(wire.OptAccept, uint64(format))
}

// MaxAge returns the Max-Age option, defaulting to MaxAgeDefault when unset.
func (m Message) MaxAge() uint32 {
	v, ok := m.getOption(wire.OptMaxAge)
	if !ok {
		return wire.MaxAgeDefault
	}
	return uint32(wire.DecodeUint(v))
}

// SetMaxAge sets the Max-Age option.
func (m *Message) SetMaxAge(seconds uint32) {
	m.setUint(wire.OptMaxAge, uint64(seconds))
}

// ETags returns every ETag value set on m.
func (m Message) ETags() [][]byte {
	if m.Options == nil {
		return nil
	}
	return m.Options.GetAll(wire.OptETag)
}

// AddETag appends an ETag value to m.
func (m *Message) AddETag(etag []byte) {
	m.ensureOptions().Add(wire.OptETag, etag)
}

// IfMatch returns every If-Match value set on m.
func (m Message) IfMatch() [][]byte {
	if m.Options == nil {
		return nil
	}
	return m.Options.GetAll(wire.OptIfMatch)
}

// AddIfMatch appends an If-Match value to m.
func (m *Message) AddIfMatch(etag []byte) {
	m.ensureOptions().Add(wire.OptIfMatch, etag)
}

// IfNoneMatch reports whether the If-None-Match option is present.
func (m Message) IfNoneMatch() bool {
	return m.Options != nil && m.Options.Has(wire.OptIfNoneMatch)
}

// SetIfNoneMatch sets or clears the If-None-Match option.
func (m *Message) SetIfNoneMatch(v bool) {
	if v {
		m.ensureOptions().Set(wire.OptIfNoneMatch, []byte{})
		return
	}
	if m.Options != nil {
		m.Options.Remove(wire.OptIfNoneMatch)
	}
}

// Observe returns the Observe option, if set. A request sets it to 0 to
// register, and a notification carries an ascending (mod 2^24) sequence
// counter (RFC 7641).
func (m Message) Observe() (uint32, bool) {
	v, ok := m.getOption(wire.OptObserve)
	if !ok {
		return 0, false
	}
	return uint32(wire.DecodeUint(v)), true
}

// SetObserve sets the Observe option.
func (m *Message) SetObserve(seq uint32) {
	m.setUint(wire.OptObserve, uint64(seq))
}

// Size1 returns the Size1 option, if set.
func (m Message) Size1() (uint32, bool) {
	v, ok := m.getOption(wire.OptSize1)
	if !ok {
		return 0, false
	}
	return uint32(wire.DecodeUint(v)), true
}

// SetSize1 sets the Size1 option.
func (m *Message) SetSize1(size uint32) {
	m.setUint(wire.OptSize1, uint64(size))
}

// Size2 returns the Size2 option, if set.
func (m Message) Size2() (uint32, bool) {
	v, ok := m.getOption(wire.OptSize2)
	if !ok {
		return 0, false
	}
	return uint32(wire.DecodeUint(v)), true
}

// SetSize2 sets the Size2 option.
func (m *Message) SetSize2(size uint32) {
	m.setUint(wire.OptSize2, uint64(size))
}

func (m Message) getOption(num wire.OptionNumber) ([]byte, bool) {
	if m.Options == nil {
		return nil, false
	}
	return m.Options.Get(num)
}

func (m Message) stringsOf(num wire.OptionNumber) []string {
	if m.Options == nil {
		return nil
	}
	values := m.Options.GetAll(num)
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func (m *Message) setStrings(num wire.OptionNumber, segments []string) {
	opts := m.ensureOptions()
	opts.Remove(num)
	for _, s := range segments {
		opts.Add(num, []byte(s))
	}
}

func (m *Message) setUint(num wire.OptionNumber, value uint64) {
	buf := make([]byte, 8)
	n, _ := wire.EncodeUint(buf, value)
	m.ensureOptions().Set(num, buf[:n])
}

func (m *Message) ensureOptions() *wire.OptionMap {
	if m.Options == nil {
		m.Options = wire.NewOptionMap()
	}
	return m.Options
}
