// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package paicoind

import (
	"encoding/hex"

	cache "github.com/patrickmn/go-cache"

	"github.com/projectpai/datashare/fault"
	"github.com/projectpai/datashare/wire"
)

// BlockCount - height of the best block
func (c *Client) BlockCount() (uint64, error) {
	var count uint64
	err := c.call("getblockcount", nil, &count)
	if nil != err {
		return 0, err
	}
	return count, nil
}

// Block - fetch and decode the block at a height
//
// the height to hash lookup always goes to the node so a reorg is
// seen; the raw block is cached by hash
func (c *Client) Block(height uint64) (*wire.Block, error) {
	var hash string
	err := c.call("getblockhash", []interface{}{height}, &hash)
	if nil != err {
		return nil, err
	}

	if raw, ok := c.blocks.Get(hash); ok {
		return wire.UnpackBlockHex(raw.(string))
	}

	var raw string
	err = c.call("getblock", []interface{}{hash, false}, &raw)
	if nil != err {
		return nil, err
	}

	block, err := wire.UnpackBlockHex(raw)
	if nil != err {
		c.log.Errorf("block: %d  hash: %s  decode error: %s", height, hash, err)
		return nil, err
	}
	c.blocks.Set(hash, raw, cache.DefaultExpiration)
	return block, nil
}

// MempoolTxIds - ids of all unconfirmed transactions
func (c *Client) MempoolTxIds() ([]wire.TxId, error) {
	var txids []wire.TxId
	err := c.call("getrawmempool", nil, &txids)
	if nil != err {
		return nil, err
	}
	return txids, nil
}

// MempoolTransaction - fetch and decode one transaction by id
func (c *Client) MempoolTransaction(txid wire.TxId) (*wire.Transaction, error) {
	var raw string
	err := c.call("getrawtransaction", []interface{}{txid.String()}, &raw)
	if nil != err {
		return nil, err
	}
	return wire.UnpackTransactionHex(raw)
}

// SendRawTransaction - submit a signed transaction
func (c *Client) SendRawTransaction(raw []byte) (wire.TxId, error) {
	var reply string
	err := c.call("sendrawtransaction", []interface{}{hex.EncodeToString(raw)}, &reply)
	if nil != err {
		if fault.IsErrTransport(err) {
			return wire.TxId{}, err
		}
		c.log.Errorf("sendrawtransaction error: %s", err)
		return wire.TxId{}, fault.ErrSendFailed
	}

	txid, err := wire.TxIdFromString(reply)
	if nil != err {
		c.log.Errorf("sendrawtransaction reply: %q  error: %s", reply, err)
		return wire.TxId{}, fault.ErrSendFailed
	}
	return txid, nil
}
