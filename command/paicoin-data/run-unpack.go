// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/projectpai/datashare/pai"
)

func runUnpack(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	packed := c.String("packed")
	if "" == packed {
		return ErrPackedRequired
	}

	message, err := pai.DecodeString(packed, byte(c.Int("protocol")))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "%s", message)
	}

	return printJson(m.w, message)
}
