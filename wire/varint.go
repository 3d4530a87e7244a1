// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"

	"github.com/projectpai/datashare/buffer"
)

// EncodeVarint - compact size encoding, 1, 3, 5 or 9 bytes
func EncodeVarint(value uint64) []byte {
	switch {
	case value < buffer.Varint16:
		return []byte{byte(value)}

	case value <= 0xffff:
		b := make([]byte, 3)
		b[0] = buffer.Varint16
		binary.LittleEndian.PutUint16(b[1:], uint16(value))
		return b

	case value <= 0xffffffff:
		b := make([]byte, 5)
		b[0] = buffer.Varint32
		binary.LittleEndian.PutUint32(b[1:], uint32(value))
		return b

	default:
		b := make([]byte, 9)
		b[0] = buffer.Varint64
		binary.LittleEndian.PutUint32(b[1:], uint32(value))
		binary.LittleEndian.PutUint32(b[5:], uint32(value>>32))
		return b
	}
}

func appendVarint(b []byte, value uint64) []byte {
	return append(b, EncodeVarint(value)...)
}

func appendUint32(b []byte, value uint32) []byte {
	return append(b, byte(value), byte(value>>8), byte(value>>16), byte(value>>24))
}

func appendUint64(b []byte, value uint64) []byte {
	b = appendUint32(b, uint32(value))
	return appendUint32(b, uint32(value>>32))
}
