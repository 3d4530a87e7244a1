// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Errors are grouped into classes so that callers can decide how to
// recover: a NotFoundError during chain walking moves the search on to
// the next height, while a TransportError is surfaced unchanged.
package fault
