// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/projectpai/datashare/fault"
)

// HashSize - bytes in a transaction or block hash
const HashSize = chainhash.HashSize

// Hash - a double SHA256 in presentation order
//
// this is the byte order shown by the node and used by references,
// the reverse of the order inside packed transactions and blocks
type Hash [HashSize]byte

// TxId - transaction identifier
type TxId = Hash

// ComputeTxId - reversed double SHA256 of the legacy serialisation
func ComputeTxId(legacy []byte) TxId {
	return hashFromInternal(chainhash.DoubleHashH(legacy))
}

// TxIdFromString - parse the 64 hex character presentation form
func TxIdFromString(s string) (TxId, error) {
	var txid TxId
	if 2*HashSize != len(s) {
		return txid, fault.ErrInvalidTxId
	}
	n, err := hex.Decode(txid[:], []byte(s))
	if nil != err || HashSize != n {
		return txid, fault.ErrInvalidTxId
	}
	return txid, nil
}

// String - hex presentation form
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// MarshalText - hex for JSON
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText - hex from JSON
func (h *Hash) UnmarshalText(s []byte) error {
	txid, err := TxIdFromString(string(s))
	if nil != err {
		return err
	}
	*h = txid
	return nil
}

// convert to and from the packed byte order
func hashFromInternal(internal chainhash.Hash) Hash {
	var h Hash
	for i := 0; i < HashSize; i += 1 {
		h[i] = internal[HashSize-1-i]
	}
	return h
}

func (h Hash) internal() []byte {
	b := make([]byte, HashSize)
	for i := 0; i < HashSize; i += 1 {
		b[i] = h[HashSize-1-i]
	}
	return b
}
