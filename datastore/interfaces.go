// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datastore

import (
	"github.com/projectpai/datashare/satoshi"
	"github.com/projectpai/datashare/wire"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// Ledger - read access to the chain and transaction submission
//
// lookups of absent blocks or transactions must return an error of the
// fault.NotFoundError class
type Ledger interface {
	BlockCount() (uint64, error)
	Block(height uint64) (*wire.Block, error)
	MempoolTxIds() ([]wire.TxId, error)
	MempoolTransaction(txid wire.TxId) (*wire.Transaction, error)
	SendRawTransaction(raw []byte) (wire.TxId, error)
}

// Wallet - funding, transaction construction and signing
type Wallet interface {
	Check() error
	ValidateAddress(address string) (bool, error)
	ChangeAddress() (string, error)
	SelectInputs(amount satoshi.Amount) ([]Unspent, satoshi.Amount, error)
	CreateRawTransaction(inputs []wire.OutPoint, outputs []Payment) ([]byte, error)
	SignRawTransaction(raw []byte) ([]byte, error)
}

// Unspent - a spendable output owned by the wallet
type Unspent struct {
	OutPoint      wire.OutPoint  `json:"outpoint"`
	Amount        satoshi.Amount `json:"amount"`
	Confirmations uint64         `json:"confirmations"`
}

// Payment - an output to create, in order
type Payment struct {
	Address string         `json:"address"`
	Amount  satoshi.Amount `json:"amount"`
}
