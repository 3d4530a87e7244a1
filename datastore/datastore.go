// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datastore

import (
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/projectpai/datashare/fault"
	"github.com/projectpai/datashare/satoshi"
	"github.com/projectpai/datashare/wire"
)

// DataStore - store and retrieve operations against one node
type DataStore struct {
	log        *logger.L
	ledger     Ledger
	wallet     Wallet
	parameters Parameters
}

// New - create a data store using the given node access
func New(log *logger.L, ledger Ledger, wallet Wallet, parameters Parameters) (*DataStore, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	ds := &DataStore{
		log:        log,
		ledger:     ledger,
		wallet:     wallet,
		parameters: parameters.withDefaults(),
	}
	return ds, nil
}

// Parameters - the settings in use
func (ds *DataStore) Parameters() Parameters {
	return ds.parameters
}

// Check - confirm the node and wallet are usable
func (ds *DataStore) Check() error {
	err := ds.wallet.Check()
	if nil != err {
		ds.log.Errorf("node check: error: %s", err)
		if fault.IsErrTransport(err) {
			return err
		}
		return fmt.Errorf("%w: %s", fault.ErrNodeNotReady, err)
	}
	return nil
}

// build, sign and submit one transaction with data as an OP_RETURN
// output inserted at position
func (ds *DataStore) submit(inputs []wire.OutPoint, outputs []Payment, data []byte, position int) (wire.TxId, error) {

	raw, err := ds.wallet.CreateRawTransaction(inputs, outputs)
	if nil != err {
		return wire.TxId{}, err
	}

	tx, err := wire.UnpackTransactionBytes(raw)
	if nil != err {
		return wire.TxId{}, err
	}

	script, err := wire.NullDataScript(data)
	if nil != err {
		return wire.TxId{}, err
	}
	tx.InsertOutput(position, wire.Output{
		Value:  0,
		Script: script,
	})

	signed, err := ds.wallet.SignRawTransaction(tx.PackWitness())
	if nil != err {
		return wire.TxId{}, err
	}

	txid, err := ds.ledger.SendRawTransaction(signed)
	if nil != err {
		return wire.TxId{}, err
	}

	ds.log.Debugf("sent txid: %s  outputs: %d  data bytes: %d", txid, len(tx.Outputs), len(data))
	return txid, nil
}

// outpoints of the selected unspent outputs
func outPoints(unspent []Unspent) []wire.OutPoint {
	points := make([]wire.OutPoint, len(unspent))
	for i, u := range unspent {
		points[i] = u.OutPoint
	}
	return points
}

// change output if it is worth keeping
func (ds *DataStore) changeOutputs(address string, change satoshi.Amount) []Payment {
	if change < ds.parameters.Dust {
		return []Payment{}
	}
	return []Payment{{Address: address, Amount: change}}
}
