// Copyright 2024 The Fuel Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package memory provides an in-memory key-value store.
package memory

import (
	"sync"

	"github.com/FuelLabs/fuel-storage/pkg/storage/keyvalue"
	"golang.org/x/exp/maps"
)

// Database is an in-memory [keyvalue.Store]. The zero value is ready to use.
// A Database is safe for concurrent use, readers sharing and writers
// excluding in the usual way.
type Database struct {
	mu      sync.RWMutex
	entries map[[32]byte]Entry
}

// An Entry is a raw database entry.
type Entry struct {
	Key   *keyvalue.Key
	Value []byte
}

var _ keyvalue.Store = (*Database)(nil)

func New() *Database {
	return new(Database)
}

// Get implements [keyvalue.Getter].
func (d *Database) Get(key *keyvalue.Key) ([]byte, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	entry, ok := d.entries[key.Hash()]
	if !ok {
		// Not found
		return nil, (*keyvalue.NotFoundError)(key)
	}

	v := make([]byte, len(entry.Value))
	copy(v, entry.Value)
	return v, nil
}

// Has implements [keyvalue.Getter].
func (d *Database) Has(key *keyvalue.Key) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.entries[key.Hash()]
	return ok, nil
}

// Put implements [keyvalue.Store].
func (d *Database) Put(key *keyvalue.Key, value []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.entries == nil {
		d.entries = map[[32]byte]Entry{}
	}

	v := make([]byte, len(value))
	copy(v, value)
	d.entries[key.Hash()] = Entry{Key: key.Copy(), Value: v}
	return nil
}

// Delete implements [keyvalue.Store].
func (d *Database) Delete(key *keyvalue.Key) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.entries, key.Hash())
	return nil
}

// ForEach implements [keyvalue.Store].
func (d *Database) ForEach(table string, fn func(key, value []byte) error) error {
	d.mu.RLock()
	entries := maps.Values(d.entries)
	d.mu.RUnlock()

	for _, e := range entries {
		if e.Key.Table != table {
			continue
		}
		err := fn(e.Key.Raw, e.Value)
		if err != nil {
			return err
		}
	}
	return nil
}

// Export exports the database as a set of entries. Export is not safe to use
// concurrently with writes.
func (d *Database) Export() []Entry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return maps.Values(d.entries)
}

// Import imports a set of entries into the database.
func (d *Database) Import(entries []Entry) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.entries == nil {
		d.entries = make(map[[32]byte]Entry, len(entries))
	}
	for _, e := range entries {
		d.entries[e.Key.Hash()] = e
	}
}
