// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reference - short locators for stored data chains
//
// a reference is "<height>-<tag>" where height is the estimated block
// of the first transaction and the tag selects two adjacent bytes of
// its transaction id:
//
//   tag = byte0 + 256 × byte1 + 65536 × offset
//
// byte0 and byte1 are the bytes at position 2 × offset of the txid in
// presentation order, offset is 0 to 14
package reference

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/projectpai/datashare/fault"
	"github.com/projectpai/datashare/wire"
)

// limits
const (
	MaximumOffset = 14
	maximumTag    = MaximumOffset * 65536 * 65536
)

var referencePattern = regexp.MustCompile(`^[0-9]+-[0-9A-Fa-f]+$`)
var hexLetters = regexp.MustCompile(`[A-Fa-f]`)

// Reference - estimated height and tag
type Reference struct {
	Height uint64 `json:"height"`
	Tag    uint64 `json:"tag"`
}

// Compute - choose the first byte pair of txid that no other avoided
// transaction shares
func Compute(nextHeight uint64, txid wire.TxId, avoid []wire.TxId) (Reference, error) {

scan_offsets:
	for offset := 0; offset <= MaximumOffset; offset += 1 {
		p := 2 * offset
		for _, other := range avoid {
			if other == txid {
				continue
			}
			if other[p] == txid[p] && other[p+1] == txid[p+1] {
				continue scan_offsets
			}
		}
		r := Reference{
			Height: nextHeight,
			Tag:    uint64(txid[p]) + 256*uint64(txid[p+1]) + 65536*uint64(offset),
		}
		return r, nil
	}
	return Reference{}, fault.ErrNoSafeReference
}

// Parse - convert the text form
//
// a tag containing hex letters is read as the first two raw txid
// bytes at offset zero
func Parse(s string) (Reference, error) {
	s = strings.TrimSpace(s)
	if !referencePattern.MatchString(s) {
		return Reference{}, fault.ErrInvalidReference
	}
	parts := strings.SplitN(s, "-", 2)

	height, err := strconv.ParseUint(parts[0], 10, 64)
	if nil != err {
		return Reference{}, fault.ErrInvalidReference
	}

	tag := uint64(0)
	if hexLetters.MatchString(parts[1]) {
		if len(parts[1]) < 4 {
			return Reference{}, fault.ErrInvalidReference
		}
		b, err := hex.DecodeString(parts[1][:4])
		if nil != err {
			return Reference{}, fault.ErrInvalidReference
		}
		tag = uint64(b[0]) + 256*uint64(b[1])
	} else {
		tag, err = strconv.ParseUint(parts[1], 10, 64)
		if nil != err {
			return Reference{}, fault.ErrInvalidReference
		}
	}

	if tag > maximumTag {
		return Reference{}, fault.ErrInvalidReference
	}

	r := Reference{
		Height: height,
		Tag:    tag,
	}
	return r, nil
}

// Offset - byte pair index selected by the tag
func (r Reference) Offset() uint64 {
	return r.Tag / 65536
}

// Match - true if the txid has the tag's bytes at the tag's offset
func (r Reference) Match(txid wire.TxId) bool {
	offset := r.Offset()
	if offset > MaximumOffset {
		return false
	}
	p := 2 * offset
	return txid[p] == byte(r.Tag%256) && txid[p+1] == byte((r.Tag%65536)/256)
}

// Match - parse the text form and match a txid against it
func Match(s string, txid wire.TxId) (bool, error) {
	r, err := Parse(s)
	if nil != err {
		return false, err
	}
	return r.Match(txid), nil
}

// String - zero padded text form
func (r Reference) String() string {
	return fmt.Sprintf("%06d-%06d", r.Height, r.Tag)
}

// MarshalText - text form for JSON
func (r Reference) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText - text form from JSON
func (r *Reference) UnmarshalText(s []byte) error {
	ref, err := Parse(string(s))
	if nil != err {
		return err
	}
	*r = ref
	return nil
}
