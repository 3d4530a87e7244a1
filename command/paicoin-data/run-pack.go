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

type packReply struct {
	Packed  pai.Packed   `json:"packed"`
	Message *pai.Message `json:"message"`
}

func runPack(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	operand1, err := hexArgument(c.String("operand1"))
	if nil != err {
		return fmt.Errorf("operand1: %w", err)
	}
	operand2, err := hexArgument(c.String("operand2"))
	if nil != err {
		return fmt.Errorf("operand2: %w", err)
	}

	operation, err := pai.OperationFromString(c.String("operation"))
	if nil != err {
		return err
	}
	storageMethod, err := pai.StorageMethodFromString(c.String("storage"))
	if nil != err {
		return err
	}

	message := &pai.Message{
		Version:       byte(c.Int("protocol")),
		Operation:     operation,
		StorageMethod: storageMethod,
		Operand1:      operand1,
		Operand2:      operand2,
	}

	packed, err := message.Pack()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "%s", message)
	}

	return printJson(m.w, packReply{
		Packed:  packed,
		Message: message,
	})
}
