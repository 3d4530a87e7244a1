// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reference

// MaxBlocks - number of heights searched for one reference
const MaxBlocks = 10

// Mempool - height value standing for the unconfirmed pool
//
// the genesis block never carries stored data so zero is free
const Mempool = 0

// CandidateHeights - heights to search, most likely first
//
// heights run forward from the estimate; once past maxKnown the mempool
// is listed once. With alsoBackward every third entry steps back from
// the estimate instead, never below height 1
func CandidateHeights(estimated uint64, maxKnown uint64, alsoBackward bool) []uint64 {

	forward := estimated
	backward := uint64(0)
	if estimated > 0 {
		backward = estimated - 1
	}
	if backward > maxKnown {
		backward = maxKnown
	}

	heights := make([]uint64, 0, MaxBlocks)
	mempool := false

	for try := 0; len(heights) < MaxBlocks; try += 1 {

		if alsoBackward && 2 == try%3 {
			if backward >= 1 {
				heights = append(heights, backward)
				backward -= 1
			}
		} else {
			if forward > maxKnown {
				if !mempool {
					heights = append(heights, Mempool)
					mempool = true
				} else if !alsoBackward {
					break
				}
			} else if forward != Mempool {
				heights = append(heights, forward)
			}
			forward += 1
		}

		// nothing further can be produced
		if mempool && backward < 1 && forward > maxKnown {
			break
		}
	}

	return heights
}
