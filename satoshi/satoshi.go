// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package satoshi

import (
	"math"
	"strconv"

	"github.com/projectpai/datashare/fault"
)

// units per coin
const Coin = 100000000

// Amount - a coin value in the smallest unit
type Amount uint64

// FromByteString - convert a decimal coin string to an Amount
//
// i.e. "0.00000001" will convert to Amount(1)
//
// Note: Invalid characters are simply ignored and the conversion
//       simply stops after 8 decimal places have been processed.
//       Extra decimal points will also be ignored.
func FromByteString(coins []byte) Amount {

	s := uint64(0)
	point := false
	decimals := 0

scan_digits:
	for _, b := range coins {
		if b >= '0' && b <= '9' {
			s *= 10
			s += uint64(b - '0')
			if point {
				decimals += 1
				if decimals >= 8 {
					break scan_digits
				}
			}
		} else if '.' == b {
			point = true
		}
	}
	for decimals < 8 {
		s *= 10
		decimals += 1
	}

	return Amount(s)
}

// FromFloat - round a coin value to the nearest unit
func FromFloat(coins float64) (Amount, error) {
	if coins < 0 || math.IsNaN(coins) || math.IsInf(coins, 0) {
		return 0, fault.ErrInvalidAmount
	}
	return Amount(math.Round(coins * Coin)), nil
}

// String - fixed eight decimal places
func (a Amount) String() string {
	whole := uint64(a) / Coin
	fraction := uint64(a) % Coin
	f := strconv.FormatUint(fraction, 10)
	for len(f) < 8 {
		f = "0" + f
	}
	return strconv.FormatUint(whole, 10) + "." + f
}

// MarshalJSON - a plain JSON number
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON - accept a JSON number without going through float64
//
// only the exponent form is rounded through a float
func (a *Amount) UnmarshalJSON(b []byte) error {
	if 0 == len(b) || '-' == b[0] || 'n' == b[0] {
		return fault.ErrInvalidAmount
	}
	if '"' == b[0] {
		if len(b) < 2 || '"' != b[len(b)-1] {
			return fault.ErrInvalidAmount
		}
		b = b[1 : len(b)-1]
	}

	digits := 0
	points := 0
	exponent := false
	for _, c := range b {
		switch {
		case c >= '0' && c <= '9':
			digits += 1
		case '.' == c:
			points += 1
		case 'e' == c || 'E' == c || '+' == c || '-' == c:
			exponent = true
		default:
			return fault.ErrInvalidAmount
		}
	}
	if 0 == digits || points > 1 {
		return fault.ErrInvalidAmount
	}

	if exponent {
		coins, err := strconv.ParseFloat(string(b), 64)
		if nil != err {
			return fault.ErrInvalidAmount
		}
		amount, err := FromFloat(coins)
		if nil != err {
			return err
		}
		*a = amount
		return nil
	}

	*a = FromByteString(b)
	return nil
}
