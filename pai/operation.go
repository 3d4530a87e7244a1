// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pai

import (
	"fmt"
	"strings"

	"github.com/projectpai/datashare/fault"
)

// Operation - application operation code
type Operation byte

// StorageMethod - how the operands are stored
type StorageMethod byte

// operation codes
const (
	Grant         Operation = 0x00
	Revoke        Operation = 0x01
	AddTracker    Operation = 0x02
	RemoveTracker Operation = 0x03
	NoOperation   Operation = 0xff
)

// storage method codes
const (
	NoStorage StorageMethod = 0xff
)

// names accepted from callers, an empty name selects the no-op code
var operationNames = map[string]Operation{
	"grant":          Grant,
	"revoke":         Revoke,
	"add_tracker":    AddTracker,
	"remove_tracker": RemoveTracker,
	"nop":            NoOperation,
	"":               NoOperation,
}

var storageNames = map[string]StorageMethod{
	"nst": NoStorage,
	"":    NoStorage,
}

// OperationFromString - look up an operation by name
func OperationFromString(name string) (Operation, error) {
	op, ok := operationNames[strings.ToLower(name)]
	if !ok {
		return 0, fault.ErrUnknownOperation
	}
	return op, nil
}

// StorageMethodFromString - look up a storage method by name
func StorageMethodFromString(name string) (StorageMethod, error) {
	stm, ok := storageNames[strings.ToLower(name)]
	if !ok {
		return 0, fault.ErrUnknownStorageMethod
	}
	return stm, nil
}

// String - name of the operation, or its hex code if unassigned
func (op Operation) String() string {
	switch op {
	case Grant:
		return "grant"
	case Revoke:
		return "revoke"
	case AddTracker:
		return "add_tracker"
	case RemoveTracker:
		return "remove_tracker"
	case NoOperation:
		return "nop"
	default:
		return fmt.Sprintf("0x%02x", byte(op))
	}
}

// MarshalText - JSON uses the name
func (op Operation) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}

// String - name of the storage method, or its hex code if unassigned
func (stm StorageMethod) String() string {
	if NoStorage == stm {
		return "nst"
	}
	return fmt.Sprintf("0x%02x", byte(stm))
}

// MarshalText - JSON uses the name
func (stm StorageMethod) MarshalText() ([]byte, error) {
	return []byte(stm.String()), nil
}
