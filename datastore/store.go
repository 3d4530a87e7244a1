// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datastore

import (
	"fmt"

	"github.com/projectpai/datashare/fault"
	"github.com/projectpai/datashare/reference"
	"github.com/projectpai/datashare/satoshi"
	"github.com/projectpai/datashare/wire"
)

// State - progress of a store operation
type State int

// store states
const (
	StateSplitting State = iota
	StateBuilding
	StateSubmitting
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateSplitting:
		return "splitting"
	case StateBuilding:
		return "building"
	case StateSubmitting:
		return "submitting"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "*unknown*"
	}
}

// StoreResult - transactions written and the reference to the first
//
// after a failure TxIds holds the transactions already submitted
type StoreResult struct {
	TxIds     []wire.TxId          `json:"txids"`
	Reference *reference.Reference `json:"ref,omitempty"`
}

// Store - write data as a chain of transactions
func (ds *DataStore) Store(data []byte) (*StoreResult, error) {

	log := ds.log
	state := StateSplitting
	log.Debugf("state: %s  bytes: %d", state, len(data))

	if 0 == len(data) {
		return nil, fault.ErrNoData
	}
	if len(data) > ds.parameters.MaximumDataSize {
		return nil, fault.ErrMetadataTooLong
	}

	err := ds.Check()
	if nil != err {
		return nil, err
	}

	chunkSize := ds.parameters.ChunkSize
	fee := ds.parameters.Fee
	chunks := (len(data) + chunkSize - 1) / chunkSize

	changeAddress, err := ds.wallet.ChangeAddress()
	if nil != err {
		return nil, err
	}

	unspent, inputAmount, err := ds.wallet.SelectInputs(fee * satoshi.Amount(chunks))
	if nil != err {
		return nil, err
	}
	inputs := outPoints(unspent)

	result := &StoreResult{
		TxIds: make([]wire.TxId, 0, chunks),
	}

	var referenceErr error

	for i := 0; i < chunks; i += 1 {
		start := i * chunkSize
		end := start + chunkSize
		last := end >= len(data)
		if last {
			end = len(data)
		}

		state = StateBuilding
		log.Debugf("state: %s  chunk: %d of %d", state, i+1, chunks)

		if inputAmount < fee {
			return ds.storeFailed(result, i, fault.ErrInsufficientFunds)
		}
		change := inputAmount - fee
		outputs := ds.changeOutputs(changeAddress, change)

		// intermediate chunks must leave a continuation output after the
		// OP_RETURN
		position := 0
		if last {
			position = len(outputs)
		} else if 0 == len(outputs) {
			return ds.storeFailed(result, i, fault.ErrInsufficientFunds)
		}

		state = StateSubmitting
		log.Debugf("state: %s  chunk: %d  change: %s", state, i+1, change)

		txid, err := ds.submit(inputs, outputs, data[start:end], position)
		if nil != err {
			return ds.storeFailed(result, i, err)
		}
		result.TxIds = append(result.TxIds, txid)

		if 0 == i {
			ref, err := ds.reference(txid)
			if nil != err {
				log.Warnf("reference for txid: %s  error: %s", txid, err)
				referenceErr = err
			} else {
				result.Reference = &ref
			}
		}

		inputs = []wire.OutPoint{{TxId: txid, Index: 1}}
		inputAmount = change
	}

	if nil != referenceErr {
		state = StateFailed
		log.Errorf("state: %s  txids: %d  error: %s", state, len(result.TxIds), referenceErr)
		return result, referenceErr
	}

	state = StateDone
	log.Infof("state: %s  txids: %d  reference: %s", state, len(result.TxIds), result.Reference)
	return result, nil
}

// reference for a first transaction, estimated for the next block and
// distinguished from everything currently in the mempool
func (ds *DataStore) reference(txid wire.TxId) (reference.Reference, error) {
	count, err := ds.ledger.BlockCount()
	if nil != err {
		return reference.Reference{}, err
	}
	avoid, err := ds.ledger.MempoolTxIds()
	if nil != err {
		return reference.Reference{}, err
	}
	return reference.Compute(count+1, txid, avoid)
}

func (ds *DataStore) storeFailed(result *StoreResult, chunk int, err error) (*StoreResult, error) {
	ds.log.Errorf("state: %s  chunk: %d  submitted: %d  error: %s", StateFailed, chunk+1, len(result.TxIds), err)
	return result, fmt.Errorf("chunk %d: %w", chunk+1, err)
}
