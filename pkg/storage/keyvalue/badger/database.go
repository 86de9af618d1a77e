// Copyright 2024 The Fuel Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package badger provides a Badger-backed key-value store.
package badger

import (
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/FuelLabs/fuel-storage/pkg/errors"
	"github.com/FuelLabs/fuel-storage/pkg/storage/keyvalue"
	"github.com/dgraph-io/badger"
)

// Truncate controls whether Badger is configured to truncate corrupted data.
// Especially on Windows, if the process is terminated abruptly, setting this
// may be necessary to recover the database.
var Truncate = false

type Database struct {
	opts
	badger *badger.DB
	ready  bool
	mu     sync.RWMutex
}

type opts struct {
	gcInterval time.Duration
}

type Option func(*opts) error

// WithGCInterval sets the interval between value log garbage collection runs.
// The default is one hour.
func WithGCInterval(d time.Duration) Option {
	return func(o *opts) error {
		o.gcInterval = d
		return nil
	}
}

var _ keyvalue.Store = (*Database)(nil)

func New(filepath string, o ...Option) (*Database, error) {
	// Make sure all directories exist
	err := os.MkdirAll(filepath, 0700)
	if err != nil {
		return nil, errors.UnknownError.WithFormat("open badger: create %q: %w", filepath, err)
	}

	bopts := badger.DefaultOptions(filepath)
	bopts = bopts.WithLogger(Slogger{})

	// Truncate corrupted data
	if Truncate {
		bopts = bopts.WithTruncate(true)
	}

	d := new(Database)
	d.gcInterval = time.Hour
	for _, o := range o {
		err = o(&d.opts)
		if err != nil {
			return nil, errors.UnknownError.Wrap(err)
		}
	}

	d.ready = true

	// Open Badger
	d.badger, err = badger.Open(bopts)
	if err != nil {
		return nil, err
	}
	mDbOpen.Inc()

	// Run GC periodically
	go d.gc()

	return d, nil
}

// Get implements [keyvalue.Getter].
func (d *Database) Get(key *keyvalue.Key) ([]byte, error) {
	l, err := d.lock(false)
	if err != nil {
		return nil, err
	}
	defer l.Unlock()

	txn := d.badger.NewTransaction(false)
	defer txn.Discard()

	item, err := txn.Get(key.Bytes())
	switch {
	case err == nil:
		// Ok
	case errors.Is(err, badger.ErrKeyNotFound):
		return nil, (*keyvalue.NotFoundError)(key)
	default:
		return nil, err
	}

	v, err := item.ValueCopy(nil)
	if err != nil {
		return nil, errors.UnknownError.WithFormat("get %v: %w", key, err)
	}
	return v, nil
}

// Has implements [keyvalue.Getter].
func (d *Database) Has(key *keyvalue.Key) (bool, error) {
	l, err := d.lock(false)
	if err != nil {
		return false, err
	}
	defer l.Unlock()

	txn := d.badger.NewTransaction(false)
	defer txn.Discard()

	_, err = txn.Get(key.Bytes())
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, badger.ErrKeyNotFound):
		return false, nil
	default:
		return false, err
	}
}

// Put implements [keyvalue.Store].
func (d *Database) Put(key *keyvalue.Key, value []byte) error {
	l, err := d.lock(false)
	if err != nil {
		return err
	}
	defer l.Unlock()

	return d.badger.Update(func(txn *badger.Txn) error {
		return txn.Set(key.Bytes(), value)
	})
}

// Delete implements [keyvalue.Store].
func (d *Database) Delete(key *keyvalue.Key) error {
	l, err := d.lock(false)
	if err != nil {
		return err
	}
	defer l.Unlock()

	return d.badger.Update(func(txn *badger.Txn) error {
		return txn.Delete(key.Bytes())
	})
}

// ForEach implements [keyvalue.Store].
func (d *Database) ForEach(table string, fn func(key, value []byte) error) error {
	l, err := d.lock(false)
	if err != nil {
		return err
	}
	defer l.Unlock()

	return d.badger.View(func(txn *badger.Txn) error {
		prefix := keyvalue.TablePrefix(table)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()

			// Strip the table prefix from the key
			k := item.Key()
			key := make([]byte, len(k)-len(prefix))
			copy(key, k[len(prefix):])

			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}

			err = fn(key, value)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Close closes the underlying database.
func (d *Database) Close() error {
	if l, err := d.lock(true); err != nil {
		return err
	} else {
		defer l.Unlock()
	}

	d.ready = false
	mDbOpen.Dec()
	return d.badger.Close()
}

func (d *Database) gc() {
	for {
		time.Sleep(d.gcInterval)

		// Still open?
		l, err := d.lock(false)
		if err != nil {
			return
		}

		// Run GC if 50% space could be reclaimed
		start := time.Now()
		err = d.badger.RunValueLogGC(0.5)
		if err != nil && !errors.Is(err, badger.ErrNoRewrite) {
			slog.Error("Badger GC failed", "error", err, "module", "badger")
		} else {
			mGcRun.Inc()
			mGcDuration.Set(time.Since(start).Seconds())
		}

		// Release the lock
		l.Unlock()
	}
}

// lock acquires a lock on the ready mutex and checks for readiness. This
// prevents race conditions between Get/Put and Close, which can cause panics.
func (d *Database) lock(closing bool) (sync.Locker, error) {
	var l sync.Locker = &d.mu
	if !closing {
		l = d.mu.RLocker()
	}

	l.Lock()
	if !d.ready {
		l.Unlock()
		return nil, errors.NotReady
	}

	return l, nil
}
