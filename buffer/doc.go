// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package buffer - a read cursor over a byte slice
//
// Reads never panic: reading past the end returns a short slice, and
// the fixed width readers report the short read through their boolean
// result.  Callers check Remaining() or the ok flag to detect the end
// of the data.
package buffer
