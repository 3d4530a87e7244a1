// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datastore

import (
	"fmt"

	"github.com/projectpai/datashare/fault"
	"github.com/projectpai/datashare/reference"
	"github.com/projectpai/datashare/wire"
)

// RetrieveResult - one data chain found for a reference
//
// Err is set when the chain could only be partly followed, Data then
// holds the chunks found so far
type RetrieveResult struct {
	Data      []byte               `json:"data"`
	TxIds     []wire.TxId          `json:"txids"`
	Heights   []uint64             `json:"heights"`
	Reference *reference.Reference `json:"ref,omitempty"`
	Err       error                `json:"-"`
}

// the transactions of one block, or of the mempool
type snapshot struct {
	height   uint64
	txids    []wire.TxId
	txs      map[wire.TxId]*wire.Transaction
	spenders map[wire.OutPoint]wire.TxId
}

// state for a single retrieve call
type retrieval struct {
	ds        *DataStore
	maxHeight uint64
	snapshots map[uint64]*snapshot
}

// Retrieve - find up to maxResults chains whose first transaction
// matches the reference
func (ds *DataStore) Retrieve(ref string, maxResults int) ([]RetrieveResult, error) {

	r, err := reference.Parse(ref)
	if nil != err {
		return nil, err
	}
	if maxResults < 1 {
		maxResults = 1
	}

	maxHeight, err := ds.ledger.BlockCount()
	if nil != err {
		return nil, err
	}

	rt := &retrieval{
		ds:        ds,
		maxHeight: maxHeight,
		snapshots: make(map[uint64]*snapshot),
	}

	heights := reference.CandidateHeights(r.Height, maxHeight, true)
	ds.log.Debugf("reference: %s  max height: %d  heights: %v", r, maxHeight, heights)

	results := make([]RetrieveResult, 0, maxResults)

scan_heights:
	for _, height := range heights {
		s, err := rt.snapshot(height)
		if fault.IsErrNotFound(err) {
			ds.log.Debugf("height: %d  not found: %s", height, err)
			continue scan_heights
		}
		if nil != err {
			return results, fmt.Errorf("height %d: %w", height, err)
		}

		for _, txid := range s.txids {
			if !r.Match(txid) {
				continue
			}
			result, ok, err := rt.chain(s, s.txs[txid])
			if nil != err {
				return results, fmt.Errorf("height %d: %w", height, err)
			}
			if !ok {
				continue
			}
			ds.log.Infof("found txid: %s  height: %d  chain: %d  bytes: %d", txid, height, len(result.TxIds), len(result.Data))
			results = append(results, *result)
			if len(results) >= maxResults {
				break scan_heights
			}
		}
	}

	return results, nil
}

// follow a chain from its first transaction
//
// false if the transaction carries no data; a hard ledger error is
// returned as error, a broken chain as a partial result
func (rt *retrieval) chain(s *snapshot, tx *wire.Transaction) (*RetrieveResult, bool, error) {

	index, data, ok := tx.DataOutput()
	if !ok {
		return nil, false, nil
	}

	result := &RetrieveResult{
		Data:    append([]byte{}, data...),
		TxIds:   []wire.TxId{tx.TxId},
		Heights: []uint64{s.height},
	}

	tries := []uint64{}
	if reference.Mempool != s.height {
		ref, err := reference.Compute(s.height, tx.TxId, s.txids)
		if nil == err {
			result.Reference = &ref
		}
		tries = reference.CandidateHeights(s.height+1, rt.maxHeight, false)
	}

	current := s
	for index < len(tx.Outputs)-1 {
		spend := wire.OutPoint{
			TxId:  tx.TxId,
			Index: uint32(index + 1),
		}

		next, ok := current.spenders[spend]
		if !ok {
			if 0 == len(tries) {
				result.Err = fault.ErrNextTransactionMissing
				break
			}
			height := tries[0]
			tries = tries[1:]

			following, err := rt.snapshot(height)
			if fault.IsErrNotFound(err) {
				continue
			}
			if nil != err {
				return nil, false, err
			}
			current = following
			continue
		}

		tx = current.txs[next]
		result.TxIds = append(result.TxIds, tx.TxId)

		index, data, ok = tx.DataOutput()
		if !ok {
			result.Err = fault.ErrMissingOPReturn
			break
		}
		result.Data = append(result.Data, data...)
		result.addHeight(current.height)
	}

	return result, true, nil
}

func (result *RetrieveResult) addHeight(height uint64) {
	for _, h := range result.Heights {
		if h == height {
			return
		}
	}
	result.Heights = append(result.Heights, height)
}

// load a block or the mempool once per retrieve call
func (rt *retrieval) snapshot(height uint64) (*snapshot, error) {

	if s, ok := rt.snapshots[height]; ok {
		return s, nil
	}

	var txids []wire.TxId
	var txs []*wire.Transaction
	if reference.Mempool == height {
		pool, err := rt.ds.ledger.MempoolTxIds()
		if nil != err {
			return nil, err
		}
		txids = make([]wire.TxId, 0, len(pool))
		txs = make([]*wire.Transaction, 0, len(pool))
		for _, txid := range pool {
			tx, err := rt.ds.ledger.MempoolTransaction(txid)
			if fault.IsErrNotFound(err) {
				// confirmed or evicted since the list was taken
				continue
			}
			if nil != err {
				return nil, err
			}
			txids = append(txids, tx.TxId)
			txs = append(txs, tx)
		}
	} else {
		block, err := rt.ds.ledger.Block(height)
		if nil != err {
			return nil, err
		}
		txids = block.TxIds()
		txs = block.Transactions
	}

	s := &snapshot{
		height:   height,
		txids:    txids,
		txs:      make(map[wire.TxId]*wire.Transaction, len(txs)),
		spenders: make(map[wire.OutPoint]wire.TxId),
	}
	for _, tx := range txs {
		s.txs[tx.TxId] = tx
		for _, input := range tx.Inputs {
			s.spenders[input.Previous] = tx.TxId
		}
	}
	rt.snapshots[height] = s

	rt.ds.log.Tracef("snapshot height: %d  transactions: %d", height, len(txs))
	return s, nil
}
