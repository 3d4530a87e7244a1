// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/hex"

	"github.com/projectpai/datashare/fault"
)

// script opcodes
const (
	OpReturn    = 0x6a
	OpPushData1 = 0x4c
	OpPushData2 = 0x4d

	maxDirectPush = 75
)

// Script - a locking or unlocking script, hex in JSON
type Script []byte

// String - hex form
func (s Script) String() string {
	return hex.EncodeToString(s)
}

// MarshalText - hex for JSON
func (s Script) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText - hex from JSON
func (s *Script) UnmarshalText(b []byte) error {
	d, err := hex.DecodeString(string(b))
	if nil != err {
		return fault.ErrInvalidHex
	}
	*s = d
	return nil
}

// ExtractOPReturn - the data pushed by an OP_RETURN script
//
// only the first push is returned; a push that claims more bytes than
// the script holds is clipped to the end of the script
func ExtractOPReturn(script []byte) ([]byte, bool) {
	if len(script) < 2 || OpReturn != script[0] {
		return nil, false
	}

	push := script[1]
	switch {
	case push <= maxDirectPush:
		return clip(script, 2, int(push)), true

	case OpPushData1 == push:
		if len(script) < 3 {
			return nil, false
		}
		return clip(script, 3, int(script[2])), true

	case OpPushData2 == push:
		if len(script) < 4 {
			return nil, false
		}
		n := int(script[2]) + 256*int(script[3])
		return clip(script, 4, n), true

	default:
		return nil, false
	}
}

func clip(script []byte, start int, n int) []byte {
	end := start + n
	if end > len(script) {
		end = len(script)
	}
	return script[start:end]
}

// NullDataScript - OP_RETURN followed by the smallest push of data
func NullDataScript(data []byte) (Script, error) {
	n := len(data)
	script := make(Script, 0, n+4)
	script = append(script, OpReturn)

	switch {
	case n <= maxDirectPush:
		script = append(script, byte(n))
	case n <= 0xff:
		script = append(script, OpPushData1, byte(n))
	case n <= 0xffff:
		script = append(script, OpPushData2, byte(n), byte(n>>8))
	default:
		return nil, fault.ErrScriptTooLong
	}
	return append(script, data...), nil
}
