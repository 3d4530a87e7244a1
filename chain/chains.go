// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

// names of all chains
const (
	Paicoin = "paicoin"
	Testing = "testing"
)

// default node RPC ports
const (
	paicoinRPCPort = 8566
	testingRPCPort = 18566
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Paicoin, Testing:
		return true
	default:
		return false
	}
}

// DefaultRPCPort - node JSON-RPC port for a chain, zero if unknown
func DefaultRPCPort(name string) int {
	switch name {
	case Paicoin:
		return paicoinRPCPort
	case Testing:
		return testingRPCPort
	default:
		return 0
	}
}
