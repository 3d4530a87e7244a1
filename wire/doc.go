// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire - transaction and block serialisation
//
// transactions are packed in the legacy form used for the transaction
// id, and in the segregated witness form when witness data is present:
//
//   version      4 bytes LE
//   [marker 0x00, flag 0x01]            witness form only
//   input count  varint
//     previous txid   32 bytes (internal order)
//     previous index   4 bytes LE
//     script          varint length + bytes
//     sequence         4 bytes LE
//   output count varint
//     value            8 bytes LE (two 32 bit halves)
//     script          varint length + bytes
//   [witness stack per input]           witness form only
//   lock time    4 bytes LE
//
// blocks are an 80 byte header, a varint transaction count and the
// transactions back to back
package wire
