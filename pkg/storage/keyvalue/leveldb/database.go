// Copyright 2024 The Fuel Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package leveldb provides a goleveldb-backed key-value store. Table names
// become key prefixes.
package leveldb

import (
	"os"

	"github.com/FuelLabs/fuel-storage/pkg/errors"
	"github.com/FuelLabs/fuel-storage/pkg/storage/keyvalue"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

type Database struct {
	opts
	leveldb *leveldb.DB
}

type opts struct {
}

type Option func(*opts) error

var _ keyvalue.Store = (*Database)(nil)

func OpenFile(filepath string, o ...Option) (*Database, error) {
	// Make sure all directories exist
	err := os.MkdirAll(filepath, 0700)
	if err != nil {
		return nil, errors.UnknownError.WithFormat("create %q: %w", filepath, err)
	}

	db, err := leveldb.OpenFile(filepath, nil)
	if err != nil {
		return nil, errors.UnknownError.WithFormat("open %q: %w", filepath, err)
	}

	d := new(Database)
	d.leveldb = db
	for _, o := range o {
		err = o(&d.opts)
		if err != nil {
			return nil, errors.UnknownError.Wrap(err)
		}
	}

	return d, nil
}

// Get implements [keyvalue.Getter].
func (d *Database) Get(key *keyvalue.Key) ([]byte, error) {
	v, err := d.leveldb.Get(key.Bytes(), nil)
	switch {
	case err == nil:
		u := make([]byte, len(v))
		copy(u, v)
		return u, nil
	case errors.Is(err, leveldb.ErrNotFound):
		return nil, (*keyvalue.NotFoundError)(key)
	default:
		return nil, err
	}
}

// Has implements [keyvalue.Getter].
func (d *Database) Has(key *keyvalue.Key) (bool, error) {
	return d.leveldb.Has(key.Bytes(), nil)
}

// Put implements [keyvalue.Store].
func (d *Database) Put(key *keyvalue.Key, value []byte) error {
	return d.leveldb.Put(key.Bytes(), value, nil)
}

// Delete implements [keyvalue.Store].
func (d *Database) Delete(key *keyvalue.Key) error {
	return d.leveldb.Delete(key.Bytes(), nil)
}

// ForEach implements [keyvalue.Store].
func (d *Database) ForEach(table string, fn func(key, value []byte) error) error {
	prefix := keyvalue.TablePrefix(table)
	it := d.leveldb.NewIterator(util.BytesPrefix(prefix), nil)
	defer it.Release()

	for it.Next() {
		// Strip the table prefix from the key
		key := make([]byte, len(it.Key())-len(prefix))
		copy(key, it.Key()[len(prefix):])
		value := make([]byte, len(it.Value()))
		copy(value, it.Value())

		err := fn(key, value)
		if err != nil {
			return err
		}
	}
	return it.Error()
}

// Close closes the underlying database.
func (d *Database) Close() error {
	return d.leveldb.Close()
}
