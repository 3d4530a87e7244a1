// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package buffer

import (
	"encoding/binary"
)

// escape bytes of a CompactSize varint
const (
	Varint16 = 0xfd
	Varint32 = 0xfe
	Varint64 = 0xff
)

// Cursor - position within a byte slice
type Cursor struct {
	data   []byte
	offset int
}

// New - create a cursor at the start of data
func New(data []byte) *Cursor {
	return &Cursor{
		data:   data,
		offset: 0,
	}
}

// Read - return the next n bytes and advance
//
// near the end of the data the result is shorter than n; the cursor
// still advances by n so Consumed() and Remaining() stay saturated
func (c *Cursor) Read(n int) []byte {
	if n < 0 {
		n = 0
	}
	start := c.offset
	if start > len(c.data) {
		start = len(c.data)
	}
	end := start + n
	if end > len(c.data) {
		end = len(c.data)
	}
	c.offset += n
	return c.data[start:end]
}

// Fixed - read size bytes and decode as an unsigned integer in the
// given byte order; size must be 1, 2, 4 or 8
func (c *Cursor) Fixed(size int, order binary.ByteOrder) (uint64, bool) {
	b := c.Read(size)
	if len(b) != size {
		return 0, false
	}
	switch size {
	case 1:
		return uint64(b[0]), true
	case 2:
		return uint64(order.Uint16(b)), true
	case 4:
		return uint64(order.Uint32(b)), true
	case 8:
		return order.Uint64(b), true
	default:
		return 0, false
	}
}

// Uint8 - read a single byte
func (c *Cursor) Uint8() (uint8, bool) {
	v, ok := c.Fixed(1, binary.LittleEndian)
	return uint8(v), ok
}

// Uint16LE - read a little endian 16 bit value
func (c *Cursor) Uint16LE() (uint16, bool) {
	v, ok := c.Fixed(2, binary.LittleEndian)
	return uint16(v), ok
}

// Uint32LE - read a little endian 32 bit value
func (c *Cursor) Uint32LE() (uint32, bool) {
	v, ok := c.Fixed(4, binary.LittleEndian)
	return uint32(v), ok
}

// Uint32BE - read a big endian 32 bit value
func (c *Cursor) Uint32BE() (uint32, bool) {
	v, ok := c.Fixed(4, binary.BigEndian)
	return uint32(v), ok
}

// Uint64LE - read a 64 bit value stored as two little endian 32 bit
// halves, low half first
func (c *Cursor) Uint64LE() (uint64, bool) {
	low, ok := c.Uint32LE()
	if !ok {
		return 0, false
	}
	high, ok := c.Uint32LE()
	if !ok {
		return 0, false
	}
	return uint64(low) + uint64(high)<<32, true
}

// Varint - read a CompactSize variable length integer
//
//   0x00..0xfc  value is the byte itself
//   0xfd        2 byte little endian value follows
//   0xfe        4 byte little endian value follows
//   0xff        8 byte value follows (two 32 bit halves)
func (c *Cursor) Varint() (uint64, bool) {
	b, ok := c.Uint8()
	if !ok {
		return 0, false
	}
	switch b {
	case Varint64:
		return c.Uint64LE()
	case Varint32:
		v, ok := c.Uint32LE()
		return uint64(v), ok
	case Varint16:
		v, ok := c.Uint16LE()
		return uint64(v), ok
	default:
		return uint64(b), true
	}
}

// Consumed - number of bytes read so far, never more than the data length
func (c *Cursor) Consumed() int {
	if c.offset > len(c.data) {
		return len(c.data)
	}
	return c.offset
}

// Remaining - number of unread bytes
func (c *Cursor) Remaining() int {
	if c.offset >= len(c.data) {
		return 0
	}
	return len(c.data) - c.offset
}

// Bytes - the underlying data between two consumed offsets
func (c *Cursor) Bytes(from int, to int) []byte {
	if from < 0 {
		from = 0
	}
	if to > len(c.data) {
		to = len(c.data)
	}
	if from > to {
		return []byte{}
	}
	return c.data[from:to]
}
