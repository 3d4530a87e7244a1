// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/projectpai/datashare/wire"
)

type decodeReply struct {
	Transaction *wire.Transaction `json:"transaction"`
	DataIndex   *int              `json:"dataIndex,omitempty"`
	Data        string            `json:"data,omitempty"`
}

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	raw := c.String("tx")
	if "" == raw {
		return ErrTxRequired
	}

	tx, err := wire.UnpackTransactionHex(raw)
	if nil != err {
		return err
	}

	reply := decodeReply{
		Transaction: tx,
	}
	if index, data, ok := tx.DataOutput(); ok {
		reply.DataIndex = &index
		reply.Data = printable(data)
	}

	return printJson(m.w, reply)
}
