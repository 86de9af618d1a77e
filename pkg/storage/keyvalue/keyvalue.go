// Copyright 2024 The Fuel Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package keyvalue defines the raw byte-level contract a storage engine must
// satisfy to back typed tables. Engines declare nothing about key or value
// shapes; the typed layer in the storage package handles that.
package keyvalue

import (
	"fmt"

	"github.com/FuelLabs/fuel-storage/pkg/errors"
)

// A Getter can read raw entries from a store.
type Getter interface {
	// Get loads the value recorded for the key. If no value exists, Get
	// returns a [NotFoundError].
	Get(key *Key) ([]byte, error)

	// Has reports whether a value exists for the key. Has is equivalent to
	// calling Get and checking for [NotFoundError], but an engine may
	// implement it more cheaply.
	Has(key *Key) (bool, error)
}

// A Store is a raw key-value store.
type Store interface {
	Getter

	// Put records a value for the key, replacing any previous value.
	Put(key *Key, value []byte) error

	// Delete removes the value recorded for the key. Deleting an absent key
	// is a no-op.
	Delete(key *Key) error

	// ForEach iterates over every entry of the given table, in no particular
	// order. The key passed to fn is the raw key within the table, without
	// the table prefix.
	ForEach(table string, fn func(key, value []byte) error) error
}

// NotFoundError is the error returned when an entry does not exist.
type NotFoundError Key

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v not found", (*Key)(e))
}

// Is returns true for [errors.NotFound].
func (e *NotFoundError) Is(target error) bool {
	return target == errors.NotFound
}
