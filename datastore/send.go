// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datastore

import (
	"github.com/projectpai/datashare/fault"
	"github.com/projectpai/datashare/satoshi"
	"github.com/projectpai/datashare/wire"
)

// Send - pay an address with metadata in a single OP_RETURN output
// following the payment and change outputs
func (ds *DataStore) Send(address string, amount satoshi.Amount, metadata []byte) (wire.TxId, error) {

	err := ds.Check()
	if nil != err {
		return wire.TxId{}, err
	}

	valid, err := ds.wallet.ValidateAddress(address)
	if nil != err {
		return wire.TxId{}, err
	}
	if !valid {
		return wire.TxId{}, fault.ErrInvalidAddress
	}

	if len(metadata) > ds.parameters.MaximumDataSize || len(metadata) > ds.parameters.ChunkSize {
		return wire.TxId{}, fault.ErrMetadataTooLong
	}

	total := amount + ds.parameters.Fee
	unspent, inputAmount, err := ds.wallet.SelectInputs(total)
	if nil != err {
		return wire.TxId{}, err
	}
	if inputAmount < total {
		return wire.TxId{}, fault.ErrInsufficientFunds
	}

	changeAddress, err := ds.wallet.ChangeAddress()
	if nil != err {
		return wire.TxId{}, err
	}

	outputs := []Payment{{Address: address, Amount: amount}}
	outputs = append(outputs, ds.changeOutputs(changeAddress, inputAmount-total)...)

	txid, err := ds.submit(outPoints(unspent), outputs, metadata, len(outputs))
	if nil != err {
		return wire.TxId{}, err
	}

	ds.log.Infof("send: %s  to: %s  txid: %s", amount, address, txid)
	return txid, nil
}
