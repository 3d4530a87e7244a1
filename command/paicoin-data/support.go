// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/projectpai/datashare/datastore"
	"github.com/projectpai/datashare/paicoind"
)

// connect to the node and build a data store on it
func newDataStore(m *metadata) (*datastore.DataStore, error) {

	parameters, err := m.config.Parameters()
	if nil != err {
		return nil, err
	}

	client, err := paicoind.New(logger.New("paicoind"), m.config.Node)
	if nil != err {
		return nil, err
	}

	return datastore.New(logger.New("datastore"), client, client, parameters)
}

// optional hex argument, blank is empty
func hexArgument(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return []byte{}, nil
	}
	return hex.DecodeString(s)
}

// printable form of data for verbose output
func printable(data []byte) string {
	b := make([]byte, len(data))
	for i, c := range data {
		if c < 0x20 || c > 0x7e {
			c = '.'
		}
		b[i] = c
	}
	return string(b)
}
