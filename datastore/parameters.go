// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datastore

import (
	"github.com/projectpai/datashare/satoshi"
)

// defaults
const (
	DefaultFee             = satoshi.Amount(10000) // 0.0001 per transaction
	DefaultDust            = satoshi.Amount(1000)  // 0.00001 smallest change output kept
	DefaultChunkSize       = 80                    // OP_RETURN relay limit
	DefaultMaximumDataSize = 65536
)

// Parameters - fee and size settings
type Parameters struct {
	Fee             satoshi.Amount
	Dust            satoshi.Amount
	ChunkSize       int
	MaximumDataSize int
}

// DefaultParameters - values accepted by the default node relay policy
func DefaultParameters() Parameters {
	return Parameters{
		Fee:             DefaultFee,
		Dust:            DefaultDust,
		ChunkSize:       DefaultChunkSize,
		MaximumDataSize: DefaultMaximumDataSize,
	}
}

// fill in any zero values
func (p Parameters) withDefaults() Parameters {
	d := DefaultParameters()
	if 0 == p.Fee {
		p.Fee = d.Fee
	}
	if 0 == p.Dust {
		p.Dust = d.Dust
	}
	if p.ChunkSize <= 0 {
		p.ChunkSize = d.ChunkSize
	}
	if p.MaximumDataSize <= 0 {
		p.MaximumDataSize = d.MaximumDataSize
	}
	return p
}
