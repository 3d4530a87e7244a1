// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io/ioutil"

	"github.com/urfave/cli"

	"github.com/projectpai/datashare/reference"
)

type retrieveReply struct {
	Reference string                `json:"ref"`
	Results   []retrieveResultReply `json:"results"`
}

type retrieveResultReply struct {
	Data    string               `json:"data"`
	Size    int                  `json:"size"`
	TxIds   []string             `json:"txids"`
	Heights []uint64             `json:"heights"`
	Best    *reference.Reference `json:"bestRef,omitempty"`
	Error   string               `json:"error,omitempty"`
}

func runRetrieve(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ref := c.String("reference")
	if "" == ref {
		return ErrReferenceRequired
	}

	ds, err := newDataStore(m)
	if nil != err {
		return err
	}

	results, err := ds.Retrieve(ref, c.Int("count"))

	reply := retrieveReply{
		Reference: ref,
		Results:   make([]retrieveResultReply, len(results)),
	}
	for i, r := range results {
		txids := make([]string, len(r.TxIds))
		for j, txid := range r.TxIds {
			txids[j] = txid.String()
		}
		reply.Results[i] = retrieveResultReply{
			Data:    hex.EncodeToString(r.Data),
			Size:    len(r.Data),
			TxIds:   txids,
			Heights: r.Heights,
			Best:    r.Reference,
		}
		if nil != r.Err {
			reply.Results[i].Error = r.Err.Error()
		}

		if m.verbose {
			fmt.Fprintf(m.e, "result: %d\n", i)
			fmt.Fprintf(m.e, "  blocks: %s\n", heightList(r.Heights))
			fmt.Fprintf(m.e, "  ascii:  %s\n", printable(r.Data))
		}
	}

	if fileName := c.String("output"); "" != fileName && len(results) > 0 {
		if e := ioutil.WriteFile(fileName, results[0].Data, 0600); nil != e {
			return e
		}
	}

	if e := printJson(m.w, reply); nil != e {
		return e
	}
	return err
}

// heights with the mempool marker spelled out
func heightList(heights []uint64) string {
	s := ""
	for i, h := range heights {
		if i > 0 {
			s += " "
		}
		if reference.Mempool == h {
			s += "[mempool]"
		} else {
			s += fmt.Sprintf("%d", h)
		}
	}
	return s
}
