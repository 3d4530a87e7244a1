// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package datastore - store data in chains of OP_RETURN transactions
//
// data is split into chunks; each chunk is carried by the OP_RETURN
// output of one transaction. A transaction whose OP_RETURN is not the
// last output continues in the transaction that spends the output
// following the OP_RETURN (always output 1 for chains written here).
// A transaction with the OP_RETURN as its last output ends the chain.
//
//   tx[0]: vin[funding…]  vout[0]=OP_RETURN chunk0  vout[1]=change
//   tx[1]: vin[tx[0]:1]   vout[0]=OP_RETURN chunk1  vout[1]=change
//   tx[n]: vin[tx[n-1]:1] vout[0]=change           vout[1]=OP_RETURN chunkN
//
// the first transaction is located again by a reference, see the
// reference package
package datastore
