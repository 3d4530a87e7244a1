// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pai

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash/crc32"
	"strings"

	"github.com/projectpai/datashare/buffer"
	"github.com/projectpai/datashare/fault"
)

// header values
const (
	StartOfPAI     = 0x92 // crc8("PAI")
	DefaultVersion = 0x10 // version 1, revision 0
	reservedWord   = 0xffff
	reservedCount  = 3
)

// byte sizes
const (
	HeaderSize        = 8
	ChecksumSize      = 4
	PayloadMaxSize    = 0x44
	Operand1MaxLength = PayloadMaxSize - 3 // 65
	OperandsMaxLength = PayloadMaxSize - 4 // 64, when both length bytes are present
	MessageMaxSize    = HeaderSize + PayloadMaxSize + ChecksumSize
)

// Packed - a packed PAI message
type Packed []byte

// Message - the unpacked fields of a PAI message
type Message struct {
	Version       byte          `json:"version"`
	Operation     Operation     `json:"operation"`
	StorageMethod StorageMethod `json:"storageMethod"`
	Operand1      []byte        `json:"operand1"`
	Operand2      []byte        `json:"operand2"`
}

// Version - combine a version and revision into the header byte
func Version(version byte, revision byte) byte {
	return version<<4 | revision&0x0f
}

// Pack - validate and pack a message, the result includes the checksum
func (message *Message) Pack() (Packed, error) {

	l1 := len(message.Operand1)
	l2 := len(message.Operand2)

	if l1 > Operand1MaxLength {
		return nil, fault.ErrOperandTooLong
	}
	if l2 > 0 && l2 > OperandsMaxLength-l1 {
		return nil, fault.ErrOperandTooLong
	}

	record := make(Packed, 0, MessageMaxSize)

	// header
	record = append(record, StartOfPAI, message.Version)
	for i := 0; i < reservedCount; i += 1 {
		record = appendUint16LE(record, reservedWord)
	}

	// payload
	record = append(record, byte(message.Operation), byte(message.StorageMethod))
	record = append(record, byte(l1))
	record = append(record, message.Operand1...)
	if Operand1MaxLength != l1 {
		record = append(record, byte(l2))
		record = append(record, message.Operand2...)
	}

	// trailer
	checksum := make([]byte, ChecksumSize)
	binary.BigEndian.PutUint32(checksum, crc32.ChecksumIEEE(record))
	record = append(record, checksum...)

	return record, nil
}

// Unpack - check the header and checksum and extract the payload fields
//
// the header version must equal the expected version and the checksum
// trailer must follow the payload
func (record Packed) Unpack(version byte) (*Message, error) {

	c := buffer.New(record)

	sop, ok := c.Uint8()
	if !ok || StartOfPAI != sop {
		return nil, fault.ErrCorruptHeader
	}

	v, ok := c.Uint8()
	if !ok {
		return nil, fault.ErrCorruptHeader
	}
	if v != version {
		return nil, fault.ErrUnsupportedVersion
	}

	for i := 0; i < reservedCount; i += 1 {
		w, ok := c.Uint16LE()
		if !ok || reservedWord != w {
			return nil, fault.ErrCorruptHeader
		}
	}

	message, ok := unpackPayload(c)
	if !ok {
		return nil, record.structureError()
	}
	message.Version = v

	payloadEnd := c.Consumed()

	switch c.Remaining() {
	case ChecksumSize:
		checksum, _ := c.Uint32BE()
		if checksum != crc32.ChecksumIEEE(record[:payloadEnd]) {
			return nil, fault.ErrChecksum
		}
		return message, nil

	default:
		return nil, record.structureError()
	}
}

// extract the payload fields, false if the lengths do not fit
func unpackPayload(c *buffer.Cursor) (*Message, bool) {

	op, ok := c.Uint8()
	if !ok {
		return nil, false
	}
	stm, ok := c.Uint8()
	if !ok {
		return nil, false
	}

	l1, ok := c.Uint8()
	if !ok || int(l1) > Operand1MaxLength {
		return nil, false
	}
	operand1 := c.Read(int(l1))
	if len(operand1) != int(l1) {
		return nil, false
	}

	operand2 := []byte{}
	if Operand1MaxLength != int(l1) {
		l2, ok := c.Uint8()
		if !ok || int(l2) > OperandsMaxLength-int(l1) {
			return nil, false
		}
		operand2 = c.Read(int(l2))
		if len(operand2) != int(l2) {
			return nil, false
		}
	}

	message := &Message{
		Operation:     Operation(op),
		StorageMethod: StorageMethod(stm),
		Operand1:      append([]byte{}, operand1...),
		Operand2:      append([]byte{}, operand2...),
	}
	return message, true
}

// a payload that does not parse is reported as a checksum failure when
// the trailing four bytes do not match the rest of the record
func (record Packed) structureError() error {
	n := len(record)
	if n >= HeaderSize+ChecksumSize {
		checksum := binary.BigEndian.Uint32(record[n-ChecksumSize:])
		if checksum != crc32.ChecksumIEEE(record[:n-ChecksumSize]) {
			return fault.ErrChecksum
		}
	}
	return fault.ErrCorruptPayload
}

// String - hex form used for transport
func (record Packed) String() string {
	return hex.EncodeToString(record)
}

// MarshalText - hex for JSON
func (record Packed) MarshalText() ([]byte, error) {
	return []byte(record.String()), nil
}

// PackedFromHex - convert the hex transport form to a packed record
func PackedFromHex(s string) (Packed, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if nil != err {
		return nil, fault.ErrInvalidHex
	}
	return b, nil
}

// EncodeToString - pack named operation and storage method with the
// operands and return the hex transport form
func EncodeToString(operation string, storageMethod string, operand1 []byte, operand2 []byte, version byte) (string, error) {
	op, err := OperationFromString(operation)
	if nil != err {
		return "", err
	}
	stm, err := StorageMethodFromString(storageMethod)
	if nil != err {
		return "", err
	}

	message := &Message{
		Version:       version,
		Operation:     op,
		StorageMethod: stm,
		Operand1:      operand1,
		Operand2:      operand2,
	}
	packed, err := message.Pack()
	if nil != err {
		return "", err
	}
	return packed.String(), nil
}

// DecodeString - unpack the hex transport form
func DecodeString(s string, version byte) (*Message, error) {
	packed, err := PackedFromHex(s)
	if nil != err {
		return nil, err
	}
	return packed.Unpack(version)
}

// String - multi-line dump of the message fields
func (message *Message) String() string {
	checksum := "-"
	if packed, err := message.Pack(); nil == err {
		checksum = fmt.Sprintf("0x%08x", binary.BigEndian.Uint32(packed[len(packed)-ChecksumSize:]))
	}
	return fmt.Sprintf("Header:\n"+
		"\tSOP[0x%02x],\n"+
		"\tversion[0x%02x],\n"+
		"\treserved[0xffffffffffff]\n"+
		"Payload:\n"+
		"\tOperation[%s],\n"+
		"\tStorageMethod[%s],\n"+
		"\tOperand1 length[%d],\n"+
		"\tOperand1 data[0x%x],\n"+
		"\tOperand2 length[%d],\n"+
		"\tOperand2 data[0x%x]\n"+
		"Checksum:\n"+
		"\tcrc32[%s]\n",
		StartOfPAI, message.Version,
		message.Operation, message.StorageMethod,
		len(message.Operand1), message.Operand1,
		len(message.Operand2), message.Operand2,
		checksum,
	)
}

func appendUint16LE(b []byte, v uint16) []byte {
	return append(b, byte(v), byte(v>>8))
}
