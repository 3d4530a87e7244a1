// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pai_test

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/projectpai/datashare/fault"
	"github.com/projectpai/datashare/pai"
)

func TestPackLayout(t *testing.T) {
	message := &pai.Message{
		Version:       pai.DefaultVersion,
		Operation:     pai.Grant,
		StorageMethod: pai.NoStorage,
		Operand1:      []byte("ab"),
		Operand2:      []byte("c"),
	}

	packed, err := message.Pack()
	assert.Nil(t, err, "pack error")

	expected := []byte{
		0x92, 0x10, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0x00, 0xff,
		0x02, 'a', 'b',
		0x01, 'c',
	}
	crc := make([]byte, 4)
	binary.BigEndian.PutUint32(crc, crc32.ChecksumIEEE(expected))
	expected = append(expected, crc...)

	assert.Equal(t, expected, []byte(packed), "packed bytes")
}

func TestRoundTrip(t *testing.T) {
	items := []struct {
		op1 []byte
		op2 []byte
	}{
		{[]byte{}, []byte{}},
		{[]byte("hello"), []byte{}},
		{[]byte{}, []byte("world")},
		{bytes.Repeat([]byte{0x5a}, 64), []byte{}},
		{bytes.Repeat([]byte{0x5a}, 63), []byte{0x01}},
		{bytes.Repeat([]byte{0x11}, 32), bytes.Repeat([]byte{0x22}, 32)},
		{bytes.Repeat([]byte{0x33}, 65), []byte{}},
	}

	for i, item := range items {
		message := &pai.Message{
			Version:       pai.DefaultVersion,
			Operation:     pai.AddTracker,
			StorageMethod: pai.NoStorage,
			Operand1:      item.op1,
			Operand2:      item.op2,
		}
		packed, err := message.Pack()
		if !assert.Nil(t, err, "%d: pack error", i) {
			continue
		}
		assert.True(t, len(packed) <= pai.MessageMaxSize, "%d: packed size %d", i, len(packed))

		unpacked, err := packed.Unpack(pai.DefaultVersion)
		if !assert.Nil(t, err, "%d: unpack error", i) {
			continue
		}
		assert.Equal(t, message.Version, unpacked.Version, "%d: version", i)
		assert.Equal(t, message.Operation, unpacked.Operation, "%d: operation", i)
		assert.Equal(t, message.StorageMethod, unpacked.StorageMethod, "%d: storage method", i)
		assert.Equal(t, item.op1, unpacked.Operand1, "%d: operand1", i)
		assert.Equal(t, item.op2, unpacked.Operand2, "%d: operand2", i)
	}
}

// the second length byte is omitted when the first operand fills the payload
func TestFullOperand1(t *testing.T) {
	operand1 := bytes.Repeat([]byte{0x77}, pai.Operand1MaxLength)
	message := &pai.Message{
		Version:       pai.DefaultVersion,
		Operation:     pai.Revoke,
		StorageMethod: pai.NoStorage,
		Operand1:      operand1,
	}
	packed, err := message.Pack()
	if !assert.Nil(t, err, "pack error") {
		return
	}
	assert.Equal(t, pai.HeaderSize+3+pai.Operand1MaxLength+pai.ChecksumSize, len(packed), "packed length")
	assert.Equal(t, byte(pai.Operand1MaxLength), packed[pai.HeaderSize+2], "operand1 length")

	// trailer directly follows operand1
	payloadEnd := pai.HeaderSize + 3 + pai.Operand1MaxLength
	assert.Equal(t, crc32.ChecksumIEEE(packed[:payloadEnd]), binary.BigEndian.Uint32(packed[payloadEnd:]), "checksum position")

	unpacked, err := packed.Unpack(pai.DefaultVersion)
	if assert.Nil(t, err, "unpack error") {
		assert.Equal(t, operand1, unpacked.Operand1, "operand1")
		assert.Equal(t, []byte{}, unpacked.Operand2, "operand2")
	}

	s, err := pai.EncodeToString("grant", "nst", operand1, nil, pai.DefaultVersion)
	assert.Nil(t, err, "encode error")
	assert.Equal(t, 2*len(packed), len(s), "hex length")
}

func TestOperandTooLong(t *testing.T) {
	items := []struct {
		op1 []byte
		op2 []byte
	}{
		{bytes.Repeat([]byte{1}, 66), []byte{}},
		{bytes.Repeat([]byte{1}, 65), []byte{2}},
		{bytes.Repeat([]byte{1}, 64), []byte{2}},
		{[]byte{}, bytes.Repeat([]byte{2}, 65)},
	}
	for i, item := range items {
		message := &pai.Message{
			Version:  pai.DefaultVersion,
			Operand1: item.op1,
			Operand2: item.op2,
		}
		_, err := message.Pack()
		assert.Equal(t, fault.ErrOperandTooLong, err, "%d: wrong error", i)
	}
}

func TestUnpackMissingChecksum(t *testing.T) {
	message := &pai.Message{
		Version:       pai.DefaultVersion,
		Operation:     pai.Grant,
		StorageMethod: pai.NoStorage,
		Operand1:      []byte("key"),
		Operand2:      []byte("value"),
	}
	packed, err := message.Pack()
	assert.Nil(t, err, "pack error")

	short := packed[:len(packed)-pai.ChecksumSize]
	_, err = short.Unpack(pai.DefaultVersion)
	assert.True(t, fault.IsErrIntegrity(err), "error: %v", err)
}

// a corrupted length must not let the payload absorb the trailer
func TestUnpackLengthAbsorbsChecksum(t *testing.T) {
	message := &pai.Message{
		Version:       pai.DefaultVersion,
		Operation:     pai.Grant,
		StorageMethod: pai.NoStorage,
		Operand1:      []byte{},
		Operand2:      []byte("abc"),
	}
	packed, err := message.Pack()
	assert.Nil(t, err, "pack error")

	// operand2 length 3 becomes 7
	corrupt := append(pai.Packed{}, packed...)
	corrupt[pai.HeaderSize+3] ^= 0x04
	unpacked, err := corrupt.Unpack(pai.DefaultVersion)
	assert.Nil(t, unpacked, "message returned")
	assert.Equal(t, fault.ErrChecksum, err, "wrong error")
}

func TestUnpackCorruption(t *testing.T) {
	items := []struct {
		op1 []byte
		op2 []byte
	}{
		{[]byte("0123456789"), []byte("abcdef")},
		{[]byte{}, []byte("abc")},
		{bytes.Repeat([]byte{0x5a}, 64), []byte{}},
		{bytes.Repeat([]byte{0x77}, pai.Operand1MaxLength), []byte{}},
	}

	for n, item := range items {
		message := &pai.Message{
			Version:       pai.DefaultVersion,
			Operation:     pai.RemoveTracker,
			StorageMethod: pai.NoStorage,
			Operand1:      item.op1,
			Operand2:      item.op2,
		}
		packed, err := message.Pack()
		if !assert.Nil(t, err, "%d: pack error", n) {
			continue
		}

		for i := pai.HeaderSize; i < len(packed); i += 1 {
			for bit := uint(0); bit < 8; bit += 1 {
				corrupt := append(pai.Packed{}, packed...)
				corrupt[i] ^= 1 << bit
				_, err := corrupt.Unpack(pai.DefaultVersion)
				assert.True(t, fault.IsErrIntegrity(err), "%d: byte: %d  bit: %d  error: %v", n, i, bit, err)
			}
		}
	}
}

func TestUnpackBadHeader(t *testing.T) {
	message := &pai.Message{
		Version:  pai.DefaultVersion,
		Operand1: []byte("x"),
	}
	packed, err := message.Pack()
	assert.Nil(t, err, "pack error")

	items := []struct {
		index int
		err   error
	}{
		{0, fault.ErrCorruptHeader},
		{1, fault.ErrUnsupportedVersion},
		{2, fault.ErrCorruptHeader},
		{5, fault.ErrCorruptHeader},
		{7, fault.ErrCorruptHeader},
	}
	for _, item := range items {
		corrupt := append(pai.Packed{}, packed...)
		corrupt[item.index] ^= 0x01
		_, err := corrupt.Unpack(pai.DefaultVersion)
		assert.Equal(t, item.err, err, "index: %d", item.index)
		assert.True(t, fault.IsErrFormat(err), "index: %d not a format error", item.index)
	}

	_, err = packed.Unpack(pai.Version(2, 0))
	assert.Equal(t, fault.ErrUnsupportedVersion, err, "other version")

	_, err = pai.Packed{0x92, 0x10, 0xff}.Unpack(pai.DefaultVersion)
	assert.Equal(t, fault.ErrCorruptHeader, err, "short header")
}

// a length byte that runs past the end with no valid trailer
func TestUnpackTruncatedPayload(t *testing.T) {
	record := pai.Packed{
		0x92, 0x10, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0x00, 0xff, 0x09, 'a',
	}
	_, err := record.Unpack(pai.DefaultVersion)
	assert.True(t, fault.IsErrFormat(err) || fault.IsErrIntegrity(err), "error: %v", err)
	assert.NotNil(t, err, "truncated payload accepted")
}

func TestHexTransport(t *testing.T) {
	s, err := pai.EncodeToString("grant", "nst", []byte("wallet"), []byte("peer"), pai.DefaultVersion)
	assert.Nil(t, err, "encode error")
	assert.True(t, strings.HasPrefix(s, "9210ffffffffffff00ff06"), "hex prefix: %s", s)

	message, err := pai.DecodeString(s, pai.DefaultVersion)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, pai.Grant, message.Operation, "operation")
	assert.Equal(t, []byte("wallet"), message.Operand1, "operand1")
	assert.Equal(t, []byte("peer"), message.Operand2, "operand2")
	assert.Contains(t, message.String(), "Operation[grant]", "dump")

	_, err = pai.DecodeString("92zz", pai.DefaultVersion)
	assert.Equal(t, fault.ErrInvalidHex, err, "bad hex")

	_, err = pai.EncodeToString("steal", "nst", nil, nil, pai.DefaultVersion)
	assert.Equal(t, fault.ErrUnknownOperation, err, "unknown operation")

	_, err = pai.EncodeToString("", "dht", nil, nil, pai.DefaultVersion)
	assert.Equal(t, fault.ErrUnknownStorageMethod, err, "unknown storage method")

	s, err = pai.EncodeToString("", "", nil, nil, pai.DefaultVersion)
	assert.Nil(t, err, "defaults error")
	assert.True(t, strings.HasPrefix(s, "9210ffffffffffffffff0000"), "defaults: %s", s)
}

func TestOperationNames(t *testing.T) {
	for _, name := range []string{"grant", "revoke", "add_tracker", "remove_tracker", "nop"} {
		op, err := pai.OperationFromString(name)
		assert.Nil(t, err, "name: %s", name)
		assert.Equal(t, name, op.String(), "name: %s", name)
	}
	assert.Equal(t, "0x42", pai.Operation(0x42).String(), "unassigned code")
}
