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
)

// BlockHeaderSize - bytes before the transaction count
const BlockHeaderSize = 80

// Block - an unpacked block
type Block struct {
	Version          uint32         `json:"version"`
	PreviousBlock    Hash           `json:"previousBlock"`
	MerkleRoot       Hash           `json:"merkleRoot"`
	Time             uint32         `json:"time"`
	Bits             uint32         `json:"bits"`
	Nonce            uint32         `json:"nonce"`
	TransactionCount uint64         `json:"transactionCount"`
	Transactions     []*Transaction `json:"transactions"`

	index map[TxId]int
}

// UnpackBlock - unpack the header and every transaction
//
// transactions are read until the data is exhausted
func UnpackBlock(record []byte) (*Block, error) {

	if len(record) < BlockHeaderSize {
		return nil, fault.ErrTruncatedBuffer
	}

	c := buffer.New(record)

	block := &Block{}
	block.Version, _ = c.Uint32LE()
	copy(block.PreviousBlock[:], reversed(c.Read(HashSize)))
	copy(block.MerkleRoot[:], reversed(c.Read(HashSize)))
	block.Time, _ = c.Uint32LE()
	block.Bits, _ = c.Uint32LE()
	block.Nonce, _ = c.Uint32LE()

	count, ok := c.Varint()
	if !ok {
		return nil, fault.ErrMalformedBlock
	}
	block.TransactionCount = count

	block.Transactions = make([]*Transaction, 0, 16)
	block.index = make(map[TxId]int)

	for c.Remaining() > 0 {
		tx, err := UnpackTransaction(c)
		if nil != err {
			return nil, err
		}
		block.index[tx.TxId] = len(block.Transactions)
		block.Transactions = append(block.Transactions, tx)
	}

	return block, nil
}

// UnpackBlockHex - unpack the hex form returned by the node
func UnpackBlockHex(s string) (*Block, error) {
	record, err := hex.DecodeString(strings.TrimSpace(s))
	if nil != err {
		return nil, fault.ErrInvalidHex
	}
	return UnpackBlock(record)
}

// Transaction - look up a transaction by id
func (block *Block) Transaction(txid TxId) (*Transaction, bool) {
	i, ok := block.index[txid]
	if !ok {
		return nil, false
	}
	return block.Transactions[i], true
}

// TxIds - transaction ids in block order
func (block *Block) TxIds() []TxId {
	txids := make([]TxId, len(block.Transactions))
	for i, tx := range block.Transactions {
		txids[i] = tx.TxId
	}
	return txids
}

func reversed(b []byte) []byte {
	r := make([]byte, len(b))
	for i := range b {
		r[len(b)-1-i] = b[i]
	}
	return r
}
