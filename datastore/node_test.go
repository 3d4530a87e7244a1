// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datastore_test

import (
	"strings"

	"github.com/projectpai/datashare/datastore"
	"github.com/projectpai/datashare/fault"
	"github.com/projectpai/datashare/satoshi"
	"github.com/projectpai/datashare/wire"
)

// an in-memory node holding confirmed blocks, a mempool and a wallet
type memoryNode struct {
	blocks    [][]byte
	mempool   []*wire.Transaction
	unspent   []datastore.Unspent
	sent      int
	failAfter int
	signature byte
}

// a node with empty blocks up to height
func newMemoryNode(height int, funds ...satoshi.Amount) *memoryNode {
	n := &memoryNode{
		blocks:    make([][]byte, height+1),
		failAfter: -1,
	}
	for h := 1; h <= height; h += 1 {
		n.blocks[h] = packBlock(nil)
	}
	for i, amount := range funds {
		n.unspent = append(n.unspent, datastore.Unspent{
			OutPoint:      wire.OutPoint{TxId: wire.TxId{0xf0, byte(i)}, Index: 0},
			Amount:        amount,
			Confirmations: 6,
		})
	}
	return n
}

func packBlock(txs []*wire.Transaction) []byte {
	record := make([]byte, wire.BlockHeaderSize)
	record[0] = 0x01
	record = append(record, wire.EncodeVarint(uint64(len(txs)))...)
	for _, tx := range txs {
		record = append(record, tx.PackWitness()...)
	}
	return record
}

// confirm the selected mempool transactions in a new block
func (n *memoryNode) mine(txids ...wire.TxId) {
	confirm := []*wire.Transaction{}
	remain := []*wire.Transaction{}
	for _, tx := range n.mempool {
		if 0 == len(txids) || contains(txids, tx.TxId) {
			confirm = append(confirm, tx)
		} else {
			remain = append(remain, tx)
		}
	}
	n.blocks = append(n.blocks, packBlock(confirm))
	n.mempool = remain
}

// forget mempool transactions
func (n *memoryNode) drop(txids ...wire.TxId) {
	remain := []*wire.Transaction{}
	for _, tx := range n.mempool {
		if !contains(txids, tx.TxId) {
			remain = append(remain, tx)
		}
	}
	n.mempool = remain
}

func contains(txids []wire.TxId, txid wire.TxId) bool {
	for _, t := range txids {
		if t == txid {
			return true
		}
	}
	return false
}

func (n *memoryNode) BlockCount() (uint64, error) {
	return uint64(len(n.blocks) - 1), nil
}

func (n *memoryNode) Block(height uint64) (*wire.Block, error) {
	if 0 == height || height >= uint64(len(n.blocks)) {
		return nil, fault.ErrNotFound
	}
	return wire.UnpackBlock(n.blocks[height])
}

func (n *memoryNode) MempoolTxIds() ([]wire.TxId, error) {
	txids := make([]wire.TxId, len(n.mempool))
	for i, tx := range n.mempool {
		txids[i] = tx.TxId
	}
	return txids, nil
}

func (n *memoryNode) MempoolTransaction(txid wire.TxId) (*wire.Transaction, error) {
	for _, tx := range n.mempool {
		if txid == tx.TxId {
			return tx, nil
		}
	}
	return nil, fault.ErrNotFound
}

func (n *memoryNode) SendRawTransaction(raw []byte) (wire.TxId, error) {
	if n.failAfter >= 0 && n.sent >= n.failAfter {
		return wire.TxId{}, fault.ErrSendFailed
	}
	tx, err := wire.UnpackTransactionBytes(raw)
	if nil != err {
		return wire.TxId{}, err
	}
	n.sent += 1
	n.mempool = append(n.mempool, tx)
	return tx.TxId, nil
}

func (n *memoryNode) Check() error {
	return nil
}

func (n *memoryNode) ValidateAddress(address string) (bool, error) {
	return strings.HasPrefix(address, "P"), nil
}

func (n *memoryNode) ChangeAddress() (string, error) {
	return "Pchange", nil
}

func (n *memoryNode) SelectInputs(amount satoshi.Amount) ([]datastore.Unspent, satoshi.Amount, error) {
	selected := []datastore.Unspent{}
	total := satoshi.Amount(0)
	for _, u := range n.unspent {
		selected = append(selected, u)
		total += u.Amount
		if total >= amount {
			return selected, total, nil
		}
	}
	return nil, 0, fault.ErrInsufficientFunds
}

func (n *memoryNode) CreateRawTransaction(inputs []wire.OutPoint, outputs []datastore.Payment) ([]byte, error) {
	tx := &wire.Transaction{
		Version: 2,
	}
	for _, point := range inputs {
		tx.Inputs = append(tx.Inputs, wire.Input{
			Previous: point,
			Sequence: 0xffffffff,
		})
	}
	for _, payment := range outputs {
		tx.Outputs = append(tx.Outputs, wire.Output{
			Value:  payment.Amount,
			Script: addressScript(payment.Address),
		})
	}
	return tx.Pack(), nil
}

func (n *memoryNode) SignRawTransaction(raw []byte) ([]byte, error) {
	tx, err := wire.UnpackTransactionBytes(raw)
	if nil != err {
		return nil, err
	}
	n.signature += 1
	for i := range tx.Inputs {
		tx.Inputs[i].Script = wire.Script{0x01, n.signature}
	}
	return tx.PackWitness(), nil
}

func addressScript(address string) wire.Script {
	return append(wire.Script{0x76, 0xa9}, address...)
}
