// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/hex"
	"strings"

	"github.com/projectpai/datashare/buffer"
	"github.com/projectpai/datashare/fault"
	"github.com/projectpai/datashare/satoshi"
)

// MaximumCount - bound on inputs, outputs and witness items
const MaximumCount = 100000

const (
	witnessMarker = 0x00
	witnessFlag   = 0x01
)

// OutPoint - a reference to an output of an earlier transaction
type OutPoint struct {
	TxId  TxId   `json:"txid"`
	Index uint32 `json:"vout"`
}

// Input - a spent output and its unlocking script
type Input struct {
	Previous OutPoint `json:"previous"`
	Script   Script   `json:"scriptSig"`
	Sequence uint32   `json:"sequence"`
}

// Output - value and locking script
type Output struct {
	Value  satoshi.Amount `json:"value"`
	Script Script         `json:"scriptPubKey"`
}

// Witness - the stack items for one input
type Witness []Script

// Transaction - an unpacked transaction
//
// TxId and Size are filled in when unpacking
type Transaction struct {
	TxId      TxId      `json:"txid"`
	Size      int       `json:"size"`
	Version   uint32    `json:"version"`
	Inputs    []Input   `json:"vin"`
	Outputs   []Output  `json:"vout"`
	Witnesses []Witness `json:"witnesses,omitempty"`
	LockTime  uint32    `json:"locktime"`
}

// HasWitness - true if the witness form must be used
func (tx *Transaction) HasWitness() bool {
	return 0 != len(tx.Witnesses)
}

// Pack - legacy serialisation, the form hashed for the transaction id
func (tx *Transaction) Pack() []byte {
	return tx.pack(false)
}

// PackWitness - serialisation with witness data when present
func (tx *Transaction) PackWitness() []byte {
	return tx.pack(tx.HasWitness())
}

// ComputeTxId - identifier from the current contents
func (tx *Transaction) ComputeTxId() TxId {
	return ComputeTxId(tx.Pack())
}

func (tx *Transaction) pack(witness bool) []byte {

	record := make([]byte, 0, 256)
	record = appendUint32(record, tx.Version)

	if witness {
		record = append(record, witnessMarker, witnessFlag)
	}

	record = appendVarint(record, uint64(len(tx.Inputs)))
	for _, input := range tx.Inputs {
		record = append(record, input.Previous.TxId.internal()...)
		record = appendUint32(record, input.Previous.Index)
		record = appendVarint(record, uint64(len(input.Script)))
		record = append(record, input.Script...)
		record = appendUint32(record, input.Sequence)
	}

	record = appendVarint(record, uint64(len(tx.Outputs)))
	for _, output := range tx.Outputs {
		record = appendUint64(record, uint64(output.Value))
		record = appendVarint(record, uint64(len(output.Script)))
		record = append(record, output.Script...)
	}

	if witness {
		for i := range tx.Inputs {
			var stack Witness
			if i < len(tx.Witnesses) {
				stack = tx.Witnesses[i]
			}
			record = appendVarint(record, uint64(len(stack)))
			for _, item := range stack {
				record = appendVarint(record, uint64(len(item)))
				record = append(record, item...)
			}
		}
	}

	return appendUint32(record, tx.LockTime)
}

// InsertOutput - insert an output before position, which is clamped
// to the range [0, len(outputs)]
func (tx *Transaction) InsertOutput(position int, output Output) {
	if position < 0 {
		position = 0
	}
	if position > len(tx.Outputs) {
		position = len(tx.Outputs)
	}
	tx.Outputs = append(tx.Outputs, Output{})
	copy(tx.Outputs[position+1:], tx.Outputs[position:])
	tx.Outputs[position] = output
}

// DataOutput - index and data of the first OP_RETURN output carrying
// some data
func (tx *Transaction) DataOutput() (int, []byte, bool) {
	for i, output := range tx.Outputs {
		data, ok := ExtractOPReturn(output.Script)
		if ok && 0 != len(data) {
			return i, data, true
		}
	}
	return -1, nil, false
}

// UnpackTransaction - read one transaction from the cursor
//
// on error the cursor position is undefined
func UnpackTransaction(c *buffer.Cursor) (*Transaction, error) {

	start := c.Consumed()

	tx := &Transaction{}

	version, ok := c.Uint32LE()
	if !ok {
		return nil, fault.ErrTruncatedBuffer
	}
	tx.Version = version

	inputCount, ok := c.Varint()
	if !ok {
		return nil, fault.ErrTruncatedBuffer
	}

	witness := false
	if 0 == inputCount {
		flag, ok := c.Uint8()
		if !ok {
			return nil, fault.ErrTruncatedBuffer
		}
		if witnessFlag != flag {
			return nil, fault.ErrInvalidWitnessFlag
		}
		witness = true

		inputCount, ok = c.Varint()
		if !ok {
			return nil, fault.ErrTruncatedBuffer
		}
	}
	if inputCount > MaximumCount {
		return nil, fault.ErrMalformedTransaction
	}

	tx.Inputs = make([]Input, 0, inputCount)
	for i := uint64(0); i < inputCount; i += 1 {
		previous := c.Read(HashSize)
		if HashSize != len(previous) {
			return nil, fault.ErrTruncatedBuffer
		}
		index, ok := c.Uint32LE()
		if !ok {
			return nil, fault.ErrTruncatedBuffer
		}
		script, err := readItem(c)
		if nil != err {
			return nil, err
		}
		sequence, ok := c.Uint32LE()
		if !ok {
			return nil, fault.ErrTruncatedBuffer
		}

		input := Input{
			Previous: OutPoint{
				Index: index,
			},
			Script:   script,
			Sequence: sequence,
		}
		for j := 0; j < HashSize; j += 1 {
			input.Previous.TxId[j] = previous[HashSize-1-j]
		}
		tx.Inputs = append(tx.Inputs, input)
	}

	outputCount, ok := c.Varint()
	if !ok {
		return nil, fault.ErrTruncatedBuffer
	}
	if outputCount > MaximumCount {
		return nil, fault.ErrMalformedTransaction
	}

	tx.Outputs = make([]Output, 0, outputCount)
	for i := uint64(0); i < outputCount; i += 1 {
		value, ok := c.Uint64LE()
		if !ok {
			return nil, fault.ErrTruncatedBuffer
		}
		script, err := readItem(c)
		if nil != err {
			return nil, err
		}
		tx.Outputs = append(tx.Outputs, Output{
			Value:  satoshi.Amount(value),
			Script: script,
		})
	}

	if witness {
		tx.Witnesses = make([]Witness, 0, len(tx.Inputs))
		for range tx.Inputs {
			itemCount, ok := c.Varint()
			if !ok {
				return nil, fault.ErrTruncatedBuffer
			}
			if itemCount > MaximumCount {
				return nil, fault.ErrMalformedTransaction
			}
			stack := make(Witness, 0, itemCount)
			for j := uint64(0); j < itemCount; j += 1 {
				item, err := readItem(c)
				if nil != err {
					return nil, err
				}
				stack = append(stack, item)
			}
			tx.Witnesses = append(tx.Witnesses, stack)
		}
	}

	lockTime, ok := c.Uint32LE()
	if !ok {
		return nil, fault.ErrTruncatedBuffer
	}
	tx.LockTime = lockTime

	end := c.Consumed()
	tx.Size = end - start
	if witness {
		tx.TxId = tx.ComputeTxId()
	} else {
		// the bytes as received, so a non-minimal varint keeps its id
		tx.TxId = ComputeTxId(c.Bytes(start, end))
	}

	return tx, nil
}

// UnpackTransactionBytes - unpack a complete packed transaction
func UnpackTransactionBytes(record []byte) (*Transaction, error) {
	c := buffer.New(record)
	tx, err := UnpackTransaction(c)
	if nil != err {
		return nil, err
	}
	if 0 != c.Remaining() {
		return nil, fault.ErrMalformedTransaction
	}
	return tx, nil
}

// UnpackTransactionHex - unpack the hex form returned by the node
func UnpackTransactionHex(s string) (*Transaction, error) {
	record, err := hex.DecodeString(strings.TrimSpace(s))
	if nil != err {
		return nil, fault.ErrInvalidHex
	}
	return UnpackTransactionBytes(record)
}

// a varint length followed by that many bytes
func readItem(c *buffer.Cursor) ([]byte, error) {
	n, ok := c.Varint()
	if !ok {
		return nil, fault.ErrTruncatedBuffer
	}
	if n > uint64(c.Remaining()) {
		return nil, fault.ErrTruncatedBuffer
	}
	return append([]byte{}, c.Read(int(n))...), nil
}
