// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type FormatError GenericError
type IntegrityError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type TransportError GenericError

// common errors - keep in alphabetic order
var (
	ErrChecksum               = IntegrityError("checksum error")
	ErrCorruptHeader          = FormatError("corrupted header")
	ErrCorruptPayload         = FormatError("corrupted payload")
	ErrEmptyReply             = TransportError("empty reply from node")
	ErrInsufficientFunds      = InvalidError("not enough funds to cover the amount and fee")
	ErrInvalidAddress         = InvalidError("invalid address")
	ErrInvalidAmount          = InvalidError("invalid amount")
	ErrInvalidCertificate     = InvalidError("invalid certificate")
	ErrInvalidChain           = InvalidError("invalid chain")
	ErrInvalidHex             = FormatError("invalid hex")
	ErrInvalidLoggerChannel   = ProcessError("invalid logger channel")
	ErrInvalidReference       = InvalidError("reference is not valid")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrInvalidTxId            = FormatError("invalid transaction id")
	ErrInvalidWitnessFlag     = FormatError("invalid witness flag")
	ErrMalformedBlock         = FormatError("malformed block")
	ErrMalformedTransaction   = FormatError("malformed transaction")
	ErrMetadataTooLong        = InvalidError("metadata too long")
	ErrMissingCredentials     = InvalidError("missing node credentials")
	ErrMissingOPReturn        = NotFoundError("missing OP_RETURN")
	ErrNextTransactionMissing = NotFoundError("next transaction missing")
	ErrNoData                 = InvalidError("some data is required to be stored")
	ErrNodeNotReady           = TransportError("node is not running correctly")
	ErrNoSafeReference        = NotFoundError("no safe reference")
	ErrNotFound               = NotFoundError("not found")
	ErrOperandTooLong         = InvalidError("operand too long")
	ErrRateLimiting           = TransportError("rate limiting")
	ErrScriptTooLong          = InvalidError("script data too long")
	ErrSendFailed             = TransportError("could not send the transaction")
	ErrSignFailed             = ProcessError("could not sign the transaction")
	ErrTruncatedBuffer        = FormatError("truncated buffer")
	ErrUnknownOperation       = InvalidError("unknown operation")
	ErrUnknownStorageMethod   = InvalidError("unknown storage method")
	ErrUnsupportedVersion     = FormatError("protocol version not supported")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e FormatError) Error() string    { return string(e) }
func (e IntegrityError) Error() string { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }
func (e TransportError) Error() string { return string(e) }

// determine the class of an error
// wrapped errors are unwrapped so annotations keep their class
func IsErrFormat(e error) bool    { var t FormatError; return errors.As(e, &t) }
func IsErrIntegrity(e error) bool { var t IntegrityError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool   { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool  { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool   { var t ProcessError; return errors.As(e, &t) }
func IsErrTransport(e error) bool { var t TransportError; return errors.As(e, &t) }
