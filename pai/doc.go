// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pai - PAI protocol message packing
//
//   SOP      start of PAI delimiter: 1 byte = 0x92
//   Ver:Rev  version (high 4 bits) and revision (low 4 bits)
//   Res      reserved: three 16 bit words of 0xffff
//   OP       operation: no operation = 0xff
//   StM      storage method: no storage = 0xff
//   Op1L     operand 1 length: 0..65
//   Op1D     operand 1 data
//   Op2L     operand 2 length: 0..(64 - Op1L), absent when Op1L = 65
//   Op2D     operand 2 data
//   CRC32    checksum of header and payload, big endian
//
//    _____________________________________________________________
//   |    PAI Header     |            PAI Payload           | CRC32 |
//   |-------------------+----------------------------------+-------|
//   | SOP | Ver:Rev | Res | OP | StM | Op1L | Op1D | Op2L | Op2D |  |
//   |_____|_________|_____|____|_____|______|______|______|______|__|
//
// the packed message is at most 8 + 68 + 4 = 80 bytes so it always fits
// in a single OP_RETURN output
package pai
