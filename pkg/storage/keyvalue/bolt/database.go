// Copyright 2024 The Fuel Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package bolt provides a bbolt-backed key-value store. Each table maps to a
// bucket.
package bolt

import (
	"io/fs"

	"github.com/FuelLabs/fuel-storage/pkg/errors"
	"github.com/FuelLabs/fuel-storage/pkg/storage/keyvalue"
	bolt "go.etcd.io/bbolt"
)

type Database struct {
	opts
	bolt *bolt.DB
}

type opts struct {
	mode fs.FileMode
}

type Option func(*opts) error

// WithFileMode sets the mode the database file is created with. The default
// is 0600.
func WithFileMode(mode fs.FileMode) Option {
	return func(o *opts) error {
		o.mode = mode
		return nil
	}
}

var _ keyvalue.Store = (*Database)(nil)

func Open(filepath string, o ...Option) (*Database, error) {
	d := new(Database)
	d.mode = 0600
	var err error
	for _, o := range o {
		err = o(&d.opts)
		if err != nil {
			return nil, errors.UnknownError.Wrap(err)
		}
	}

	// Open
	d.bolt, err = bolt.Open(filepath, d.mode, nil)
	if err != nil {
		return nil, err
	}

	return d, nil
}

// Get implements [keyvalue.Getter].
func (d *Database) Get(key *keyvalue.Key) ([]byte, error) {
	var value []byte
	err := d.bolt.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(key.Table))
		if b == nil {
			return (*keyvalue.NotFoundError)(key)
		}

		v := b.Get(key.Raw)
		if v == nil {
			return (*keyvalue.NotFoundError)(key)
		}

		value = make([]byte, len(v))
		copy(value, v)
		return nil
	})
	return value, err
}

// Has implements [keyvalue.Getter].
func (d *Database) Has(key *keyvalue.Key) (bool, error) {
	var ok bool
	err := d.bolt.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(key.Table))
		ok = b != nil && b.Get(key.Raw) != nil
		return nil
	})
	return ok, err
}

// Put implements [keyvalue.Store].
func (d *Database) Put(key *keyvalue.Key, value []byte) error {
	return d.bolt.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(key.Table))
		if err != nil {
			return err
		}
		return b.Put(key.Raw, value)
	})
}

// Delete implements [keyvalue.Store].
func (d *Database) Delete(key *keyvalue.Key) error {
	return d.bolt.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(key.Table))
		if b == nil {
			// No reason to do more work
			return nil
		}
		return b.Delete(key.Raw)
	})
}

// ForEach implements [keyvalue.Store].
func (d *Database) ForEach(table string, fn func(key, value []byte) error) error {
	return d.bolt.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(table))
		if b == nil {
			return nil
		}

		return b.ForEach(func(k, v []byte) error {
			// Copy key and value
			key := make([]byte, len(k))
			copy(key, k)
			value := make([]byte, len(v))
			copy(value, v)

			return fn(key, value)
		})
	})
}

// Close closes the underlying database.
func (d *Database) Close() error {
	return d.bolt.Close()
}
