// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package paicoind - JSON-RPC access to a PAI Coin node
//
// the client provides both the ledger and the wallet used by the
// datastore package
package paicoind
