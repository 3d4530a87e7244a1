// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package paicoind

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"sort"

	"github.com/projectpai/datashare/datastore"
	"github.com/projectpai/datashare/fault"
	"github.com/projectpai/datashare/satoshi"
	"github.com/projectpai/datashare/wire"
)

type walletInfo struct {
	WalletName string          `json:"walletname"`
	Balance    *satoshi.Amount `json:"balance"`
	TxCount    uint64          `json:"txcount"`
}

type validAddress struct {
	IsValid bool   `json:"isvalid"`
	Address string `json:"address"`
}

type unspentOutput struct {
	TxId          wire.TxId      `json:"txid"`
	Vout          uint32         `json:"vout"`
	Address       string         `json:"address"`
	Amount        satoshi.Amount `json:"amount"`
	Confirmations uint64         `json:"confirmations"`
	Spendable     bool           `json:"spendable"`
}

type rawInput struct {
	TxId wire.TxId `json:"txid"`
	Vout uint32    `json:"vout"`
}

// outputs must stay in order so the change position is known
type rawOutputs []datastore.Payment

type signedTransaction struct {
	Hex      string `json:"hex"`
	Complete bool   `json:"complete"`
}

// Check - the wallet is loaded and reports a balance
func (c *Client) Check() error {
	var info walletInfo
	err := c.call("getwalletinfo", nil, &info)
	if nil != err {
		return err
	}
	if nil == info.Balance {
		return fault.ErrNodeNotReady
	}
	c.log.Debugf("wallet: %q  balance: %s", info.WalletName, *info.Balance)
	return nil
}

// ValidateAddress - ask the node if an address is usable
func (c *Client) ValidateAddress(address string) (bool, error) {
	var reply validAddress
	err := c.call("validateaddress", []interface{}{address}, &reply)
	if nil != err {
		return false, err
	}
	return reply.IsValid, nil
}

// ChangeAddress - a fresh address for change outputs
func (c *Client) ChangeAddress() (string, error) {
	var address string
	err := c.call("getrawchangeaddress", nil, &address)
	if nil != err {
		return "", err
	}
	return address, nil
}

// SelectInputs - choose unspent outputs that cover an amount
//
// older and larger outputs are preferred, ordered by the product of
// amount and confirmations
func (c *Client) SelectInputs(amount satoshi.Amount) ([]datastore.Unspent, satoshi.Amount, error) {
	var unspent []unspentOutput
	err := c.call("listunspent", []interface{}{0}, &unspent)
	if nil != err {
		return nil, 0, err
	}

	sort.SliceStable(unspent, func(i, j int) bool {
		wi := float64(unspent[i].Amount) * float64(unspent[i].Confirmations)
		wj := float64(unspent[j].Amount) * float64(unspent[j].Confirmations)
		return wi > wj
	})

	selected := make([]datastore.Unspent, 0, len(unspent))
	total := satoshi.Amount(0)
	for _, u := range unspent {
		if total >= amount {
			break
		}
		if !u.Spendable {
			continue
		}
		selected = append(selected, datastore.Unspent{
			OutPoint: wire.OutPoint{
				TxId:  u.TxId,
				Index: u.Vout,
			},
			Amount:        u.Amount,
			Confirmations: u.Confirmations,
		})
		total += u.Amount
	}

	if total < amount || 0 == len(selected) {
		c.log.Warnf("select inputs: need: %s  have: %s", amount, total)
		return nil, total, fault.ErrInsufficientFunds
	}
	return selected, total, nil
}

// CreateRawTransaction - unsigned transaction from inputs and payments
func (c *Client) CreateRawTransaction(inputs []wire.OutPoint, outputs []datastore.Payment) ([]byte, error) {
	in := make([]rawInput, len(inputs))
	for i, o := range inputs {
		in[i] = rawInput{
			TxId: o.TxId,
			Vout: o.Index,
		}
	}

	var reply string
	err := c.call("createrawtransaction", []interface{}{in, rawOutputs(outputs)}, &reply)
	if nil != err {
		return nil, err
	}
	return hex.DecodeString(reply)
}

// SignRawTransaction - sign with the wallet keys
func (c *Client) SignRawTransaction(raw []byte) ([]byte, error) {
	var reply signedTransaction
	err := c.call("signrawtransaction", []interface{}{hex.EncodeToString(raw)}, &reply)
	if nil != err {
		return nil, err
	}
	if !reply.Complete {
		return nil, fault.ErrSignFailed
	}
	return hex.DecodeString(reply.Hex)
}

// MarshalJSON - an object with keys in payment order
func (outputs rawOutputs) MarshalJSON() ([]byte, error) {
	buffer := bytes.Buffer{}
	buffer.WriteByte('{')
	for i, p := range outputs {
		if i > 0 {
			buffer.WriteByte(',')
		}
		key, err := json.Marshal(p.Address)
		if nil != err {
			return nil, err
		}
		buffer.Write(key)
		buffer.WriteByte(':')
		buffer.WriteString(p.Amount.String())
	}
	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}
