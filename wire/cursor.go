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

// Cursor is a forward-only read/write view over a borrowed byte slice. It
// never panics: every operation that would run off either end of the slice
// returns an error instead.
//
// A Cursor does not own its backing array; the caller supplies it (for
// reading, the source buffer; for writing, the destination buffer) and
// remains responsible for its lifetime.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor wraps buf for sequential reading or writing starting at offset 0.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Position returns the cursor's current offset into its backing slice.
func (c *Cursor) Position() int {
	return c.pos
}

// Remaining returns the number of bytes still available for Take/Peek/Write.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Take returns the next n bytes and advances the cursor past them. The
// returned slice aliases the cursor's backing array.
func (c *Cursor) Take(n int) ([]byte, error) {
	if n < 0 || c.Remaining() < n {
		return nil, &NotEnoughBytes{Needed: n, Available: c.Remaining()}
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// Peek returns the next n bytes without advancing the cursor.
func (c *Cursor) Peek(n int) ([]byte, error) {
	if n < 0 || c.Remaining() < n {
		return nil, &NotEnoughBytes{Needed: n, Available: c.Remaining()}
	}
	return c.buf[c.pos : c.pos+n], nil
}

// Advance skips n bytes without returning them; it fails under the same
// condition as Take.
func (c *Cursor) Advance(n int) error {
	if n < 0 || c.Remaining() < n {
		return &NotEnoughBytes{Needed: n, Available: c.Remaining()}
	}
	c.pos += n
	return nil
}

// Write copies b into the cursor's backing slice at the current position
// and advances past it. It fails with *BufferTooSmall if b does not fit in
// the remaining capacity.
func (c *Cursor) Write(b []byte) (int, error) {
	if c.Remaining() < len(b) {
		return 0, &BufferTooSmall{Needed: len(b), Capacity: len(c.buf)}
	}
	n := copy(c.buf[c.pos:], b)
	c.pos += n
	return n, nil
}

// WriteByte writes a single byte, satisfying io.ByteWriter.
func (c *Cursor) WriteByte(b byte) error {
	_, err := c.Write([]byte{b})
	return err
}
