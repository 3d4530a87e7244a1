// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/projectpai/datashare/satoshi"
	"github.com/projectpai/datashare/wire"
)

type sendReply struct {
	TxId    wire.TxId      `json:"txid"`
	Address string         `json:"address"`
	Amount  satoshi.Amount `json:"amount"`
}

func runSend(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address := c.String("address")
	if "" == address {
		return ErrAddressRequired
	}

	coins := c.String("amount")
	if "" == coins {
		return ErrAmountRequired
	}
	amount := satoshi.FromByteString([]byte(coins))

	text := c.String("data")
	metadata, err := hexArgument(c.String("hex"))
	if nil != err {
		return fmt.Errorf("hex: %w", err)
	}
	if "" != text {
		if 0 != len(metadata) {
			return ErrOnlyOneSource
		}
		metadata = []byte(text)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "send: %s to: %s  metadata: %d bytes\n", amount, address, len(metadata))
	}

	ds, err := newDataStore(m)
	if nil != err {
		return err
	}

	txid, err := ds.Send(address, amount, metadata)
	if nil != err {
		return err
	}

	return printJson(m.w, sendReply{
		TxId:    txid,
		Address: address,
		Amount:  amount,
	})
}
