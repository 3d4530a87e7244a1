// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/projectpai/datashare/fault"
)

// common errors - keep in alphabetic order
const (
	ErrAddressRequired   = fault.InvalidError("address is required")
	ErrAmountRequired    = fault.InvalidError("amount is required")
	ErrDataRequired      = fault.InvalidError("one of data or file is required")
	ErrOnlyOneSource     = fault.InvalidError("only one of data or file is allowed")
	ErrPackedRequired    = fault.InvalidError("packed message is required")
	ErrReferenceRequired = fault.InvalidError("reference is required")
	ErrTxRequired        = fault.InvalidError("raw transaction is required")
)
