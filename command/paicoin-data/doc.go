// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// paicoin-data - store and retrieve data on a PAI Coin chain
//
// e.g. store a file and print its reference, then read it back:
//
//   paicoin-data --config=paicoin-data.conf store --file=report.pdf
//   paicoin-data --config=paicoin-data.conf retrieve --reference=000123-004567
//
// pack, unpack and decode work offline and do not need a configuration
package main
