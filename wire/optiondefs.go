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

/*
   +-----+----+---+---+---+----------------+--------+--------+---------+
   | No. | C  | U | N | R | Name           | Format | Length | Default |
   +-----+----+---+---+---+----------------+--------+--------+---------+
   |   1 | x  |   |   | x | If-Match       | opaque | 0-8    | (none)  |
   |   3 | x  | x | - |   | Uri-Host       | string | 1-255  | (see    |
   |   4 |    |   |   | x | ETag           | opaque | 1-8    | (none)  |
   |   5 | x  |   |   |   | If-None-Match  | empty  | 0      | (none)  |
   |   6 |    | x | - |   | Observe        | uint   | 0-3    | (none)  |
   |   7 | x  | x | - |   | Uri-Port       | uint   | 0-2    | (see    |
   |   8 |    |   |   | x | Location-Path  | string | 0-255  | (none)  |
   |  11 | x  | x | - | x | Uri-Path       | string | 0-255  | (none)  |
   |  12 |    |   |   |   | Content-Format | uint   | 0-2    | (none)  |
   |  14 |    | x | - |   | Max-Age        | uint   | 0-4    | 60      |
   |  15 | x  | x | - | x | Uri-Query      | string | 0-255  | (none)  |
   |  17 | x  |   |   |   | Accept         | uint   | 0-2    | (none)  |
   |  20 |    |   |   | x | Location-Query | string | 0-255  | (none)  |
   |  23 | x  | x | - | - | Block2         | uint   | 0-3    | (none)  |
   |  27 | x  | x | - | - | Block1         | uint   | 0-3    | (none)  |
   |  28 |    |   | x |   | Size2          | uint   | 0-4    | (none)  |
   |  35 | x  | x | - |   | Proxy-Uri      | string | 1-1034 | (none)  |
   |  39 | x  | x | - |   | Proxy-Scheme   | string | 1-255  | (none)  |
   |  60 |    |   | x |   | Size1          | uint   | 0-4    | (none)  |
   +-----+----+---+---+---+----------------+--------+--------+---------+
   C=Critical, U=Unsafe, N=NoCacheKey, R=Repeatable (flags are derived from
   the option number itself, see OptionNumber.Critical/UnsafeToForward/
   NoCacheKey; this table only needs to additionally record Repeatable).
*/

// Well-known option numbers (§4.5).
const (
	OptIfMatch       OptionNumber = 1
	OptUriHost       OptionNumber = 3
	OptETag          OptionNumber = 4
	OptIfNoneMatch   OptionNumber = 5
	OptObserve       OptionNumber = 6
	OptUriPort       OptionNumber = 7
	OptLocationPath  OptionNumber = 8
	OptUriPath       OptionNumber = 11
	OptContentFormat OptionNumber = 12
	OptMaxAge        OptionNumber = 14
	OptUriQuery      OptionNumber = 15
	OptAccept        OptionNumber = 17
	OptLocationQuery OptionNumber = 20
	OptBlock2        OptionNumber = 23
	OptBlock1        OptionNumber = 27
	OptSize2         OptionNumber = 28
	OptProxyUri      OptionNumber = 35
	OptProxyScheme   OptionNumber = 39
	OptSize1         OptionNumber = 60
)

// MaxAgeDefault is the default Max-Age value (60s) when the option is absent.
const MaxAgeDefault = 60

// CoapOptionDefs is the registry of well-known option wire contracts.
var CoapOptionDefs = map[OptionNumber]OptionDef{
	OptIfMatch:       {Name: "If-Match", Format: ValueOpaque, MinLen: 0, MaxLen: 8, Repeatable: true},
	OptUriHost:       {Name: "Uri-Host", Format: ValueString, MinLen: 1, MaxLen: 255},
	OptETag:          {Name: "ETag", Format: ValueOpaque, MinLen: 1, MaxLen: 8, Repeatable: true},
	OptIfNoneMatch:   {Name: "If-None-Match", Format: ValueEmpty, MinLen: 0, MaxLen: 0},
	OptObserve:       {Name: "Observe", Format: ValueUint, MinLen: 0, MaxLen: 3},
	OptUriPort:       {Name: "Uri-Port", Format: ValueUint, MinLen: 0, MaxLen: 2},
	OptLocationPath:  {Name: "Location-Path", Format: ValueString, MinLen: 0, MaxLen: 255, Repeatable: true},
	OptUriPath:       {Name: "Uri-Path", Format: ValueString, MinLen: 0, MaxLen: 255, Repeatable: true},
	OptContentFormat: {Name: "Content-Format", Format: ValueUint, MinLen: 0, MaxLen: 2},
	OptMaxAge:        {Name: "Max-Age", Format: ValueUint, MinLen: 0, MaxLen: 4},
	OptUriQuery:      {Name: "Uri-Query", Format: ValueString, MinLen: 0, MaxLen: 255, Repeatable: true},
	OptAccept:        {Name: "Accept", Format: ValueUint, MinLen: 0, MaxLen: 2},
	OptLocationQuery: {Name: "Location-Query", Format: ValueString, MinLen: 0, MaxLen: 255, Repeatable: true},
	OptBlock2:        {Name: "Block2", Format: ValueUint, MinLen: 0, MaxLen: 3},
	OptBlock1:        {Name: "Block1", Format: ValueUint, MinLen: 0, MaxLen: 3},
	OptSize2:         {Name: "Size2", Format: ValueUint, MinLen: 0, MaxLen: 4},
	OptProxyUri:      {Name: "Proxy-Uri", Format: ValueString, MinLen: 1, MaxLen: 1034},
	OptProxyScheme:   {Name: "Proxy-Scheme", Format: ValueString, MinLen: 1, MaxLen: 255},
	OptSize1:         {Name: "Size1", Format: ValueUint, MinLen: 0, MaxLen: 4},
}

var optionNumberToString = func() map[OptionNumber]string {
	m := make(map[OptionNumber]string, len(CoapOptionDefs))
	for num, def := range CoapOptionDefs {
		m[num] = def.Name
	}
	return m
}()

// LookupOptionDef returns the registered definition for num, if any.
func LookupOptionDef(num OptionNumber) (OptionDef, bool) {
	def, ok := CoapOptionDefs[num]
	return def, ok
}

// VerifyOptionLen reports whether valueLen fits num's registered length
// bounds. An unregistered option number has no bounds to violate.
func VerifyOptionLen(num OptionNumber, valueLen int) bool {
	def, ok := CoapOptionDefs[num]
	if !ok {
		return true
	}
	return valueLen >= def.MinLen && valueLen <= def.MaxLen
}
