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

import "sort"

// OptionMap holds a message's options in wire order: a sorted set of
// distinct option numbers plus, for each number, the ordered list of values
// that were set under it (almost always one, sometimes several for a
// repeatable option like Uri-Path). Keeping the numbers sorted means
// Marshal never needs a sort pass, and Add/Set find a new number's position
// by binary search instead of a linear scan.
type OptionMap struct {
	numbers []OptionNumber
	values  map[OptionNumber][][]byte
}

// NewOptionMap returns an empty option map.
func NewOptionMap() *OptionMap {
	return &OptionMap{values: make(map[OptionNumber][][]byte)}
}

// search returns the index in m.numbers where num is, or would be inserted.
func (m *OptionMap) search(num OptionNumber) int {
	return sort.Search(len(m.numbers), func(i int) bool {
		return m.numbers[i] >= num
	})
}

// Get returns the first value set under num, if any.
func (m *OptionMap) Get(num OptionNumber) ([]byte, bool) {
	vs, ok := m.values[num]
	if !ok || len(vs) == 0 {
		return nil, false
	}
	return vs[0], true
}

// GetAll returns every value set under num, in insertion order.
func (m *OptionMap) GetAll(num OptionNumber) [][]byte {
	return m.values[num]
}

// Add appends value under num, preserving any values already set there.
// Use this for repeatable options; use Set to replace a singular option.
func (m *OptionMap) Add(num OptionNumber, value []byte) {
	if _, ok := m.values[num]; !ok {
		i := m.search(num)
		m.numbers = append(m.numbers, 0)
		copy(m.numbers[i+1:], m.numbers[i:])
		m.numbers[i] = num
	}
	m.values[num] = append(m.values[num], value)
}

// Set replaces every value under num with the single value given.
func (m *OptionMap) Set(num OptionNumber, value []byte) {
	if _, ok := m.values[num]; !ok {
		i := m.search(num)
		m.numbers = append(m.numbers, 0)
		copy(m.numbers[i+1:], m.numbers[i:])
		m.numbers[i] = num
	}
	m.values[num] = [][]byte{value}
}

// Remove deletes every value set under num.
func (m *OptionMap) Remove(num OptionNumber) {
	if _, ok := m.values[num]; !ok {
		return
	}
	i := m.search(num)
	m.numbers = append(m.numbers[:i], m.numbers[i+1:]...)
	delete(m.values, num)
}

// Has reports whether num has at least one value set.
func (m *OptionMap) Has(num OptionNumber) bool {
	_, ok := m.values[num]
	return ok
}

// Len returns the number of distinct option numbers set.
func (m *OptionMap) Len() int {
	return len(m.numbers)
}

// Iter calls fn for every (number, value) pair in ascending wire order,
// including each repeated value of a repeatable option. It stops early if
// fn returns false.
func (m *OptionMap) Iter(fn func(num OptionNumber, value []byte) bool) {
	for _, num := range m.numbers {
		for _, v := range m.values[num] {
			if !fn(num, v) {
				return
			}
		}
	}
}

// Marshal appends the option stream for every option in m, in ascending
// number order, to c. It does not write the payload marker; callers append
// that themselves when a payload follows (§4.3.1, §4.3.4).
func (m *OptionMap) Marshal(c *Cursor) error {
	prev := 0
	var err error
	m.Iter(func(num OptionNumber, value []byte) bool {
		delta := int(num) - prev
		if e := marshalOne(c, delta, value); e != nil {
			err = e
			return false
		}
		prev = int(num)
		return true
	})
	return err
}

// Size returns the number of bytes Marshal would write for m, without
// writing them.
func (m *OptionMap) Size() int {
	n := 0
	prev := 0
	m.Iter(func(num OptionNumber, value []byte) bool {
		delta := int(num) - prev
		n += 1 + extLen(delta) + extLen(len(value)) + len(value)
		prev = int(num)
		return true
	})
	return n
}

// extLen returns how many extension bytes splitTier(value) would need.
func extLen(value int) int {
	nibble, _ := splitTier(value)
	switch nibble {
	case tierByteNibble:
		return 1
	case tierWordNibble:
		return 2
	default:
		return 0
	}
}

// ParseOptionMap reads an option stream from c into a fresh OptionMap,
// returning it along with any payload bytes that followed the marker.
func ParseOptionMap(c *Cursor) (*OptionMap, []byte, error) {
	parsed, payload, err := parseStream(c)
	if err != nil {
		return nil, nil, err
	}
	m := NewOptionMap()
	for _, p := range parsed {
		m.Add(p.Number, p.Value)
	}
	return m, payload, nil
}
