// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"

	"github.com/urfave/cli"
)

func runStore(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	data, err := storeSource(c.String("data"), c.String("file"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "store: %d bytes\n", len(data))
	}

	ds, err := newDataStore(m)
	if nil != err {
		return err
	}

	result, err := ds.Store(data)
	if nil != result {
		if e := printJson(m.w, result); nil != e {
			return e
		}
	}
	return err
}

// exactly one of a string or a file
func storeSource(text string, fileName string) ([]byte, error) {
	switch {
	case "" != text && "" != fileName:
		return nil, ErrOnlyOneSource
	case "" != text:
		return []byte(text), nil
	case "" != fileName:
		return ioutil.ReadFile(fileName)
	default:
		return nil, ErrDataRequired
	}
}
