// Copyright 2024 The Fuel Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package kvtest provides a conformance suite for [keyvalue.Store]
// implementations.
package kvtest

import (
	"fmt"
	"io"
	"testing"

	"github.com/FuelLabs/fuel-storage/pkg/errors"
	"github.com/FuelLabs/fuel-storage/pkg/storage/keyvalue"
	"github.com/stretchr/testify/require"
)

// An Opener opens a store. The suite may open the store multiple times to
// verify persistence; an in-memory opener should return the same instance
// each time.
type Opener = func() (keyvalue.Store, error)

type closableDb struct {
	keyvalue.Store
	t      testing.TB
	closed bool
}

func (c *closableDb) Close() {
	if c.closed {
		return
	}
	c.closed = true

	if d, ok := c.Store.(io.Closer); ok {
		require.NoError(c.t, d.Close())
	}
}

func openDb(t testing.TB, open Opener) *closableDb {
	db, err := open()
	require.NoError(t, err)
	c := &closableDb{db, t, false}
	t.Cleanup(c.Close)
	return c
}

// TestStore verifies basic store behavior: reads of missing keys fail with
// [keyvalue.NotFoundError], written values survive reopening, and ForEach
// visits every entry of a table exactly once.
func TestStore(t *testing.T, open Opener) {
	const N = 1000

	db := openDb(t, open)

	// Read when nothing exists
	_, err := db.Get(keyvalue.NewKey("answer", []byte{0}))
	require.Error(t, err)
	require.ErrorAs(t, err, new(*keyvalue.NotFoundError))
	require.ErrorIs(t, err, errors.NotFound)

	ok, err := db.Has(keyvalue.NewKey("answer", []byte{0}))
	require.NoError(t, err)
	require.False(t, ok)

	// Write
	values := map[string]string{}
	for i := 0; i < N; i++ {
		key := []byte(fmt.Sprintf("key-%d", i))
		value := fmt.Sprintf("%x this much data ", i)
		values[string(key)] = value
		err := db.Put(keyvalue.NewKey("answer", key), []byte(value))
		require.NoError(t, err, "Put")
	}

	// Verify
	for i := 0; i < N; i++ {
		key := []byte(fmt.Sprintf("key-%d", i))
		val, err := db.Get(keyvalue.NewKey("answer", key))
		require.NoError(t, err, "Get")
		require.Equal(t, values[string(key)], string(val))

		ok, err := db.Has(keyvalue.NewKey("answer", key))
		require.NoError(t, err)
		require.True(t, ok)
	}

	// Verify with a fresh instance
	db.Close()
	db = openDb(t, open)

	for i := 0; i < N; i++ {
		key := []byte(fmt.Sprintf("key-%d", i))
		val, err := db.Get(keyvalue.NewKey("answer", key))
		require.NoError(t, err, "Get")
		require.Equal(t, values[string(key)], string(val))
	}

	// Verify ForEach
	require.NoError(t, db.ForEach("answer", func(key, value []byte) error {
		expect, ok := values[string(key)]
		require.Truef(t, ok, "%x should exist", key)
		require.Equal(t, expect, string(value))
		delete(values, string(key))
		return nil
	}))
	require.Empty(t, values, "All values should be iterated over")
}

// TestIsolation verifies that entries of different tables do not collide,
// even when their raw keys are equal.
func TestIsolation(t *testing.T, open Opener) {
	db := openDb(t, open)

	raw := []byte("shared")
	require.NoError(t, db.Put(keyvalue.NewKey("foo", raw), []byte("one")))
	require.NoError(t, db.Put(keyvalue.NewKey("bar", raw), []byte("two")))

	v, err := db.Get(keyvalue.NewKey("foo", raw))
	require.NoError(t, err)
	require.Equal(t, "one", string(v))

	v, err = db.Get(keyvalue.NewKey("bar", raw))
	require.NoError(t, err)
	require.Equal(t, "two", string(v))

	// Deleting from one table must not affect the other
	require.NoError(t, db.Delete(keyvalue.NewKey("foo", raw)))
	_, err = db.Get(keyvalue.NewKey("foo", raw))
	require.ErrorIs(t, err, errors.NotFound)

	v, err = db.Get(keyvalue.NewKey("bar", raw))
	require.NoError(t, err)
	require.Equal(t, "two", string(v))
}

// TestDelete verifies deletion, including that deleting an absent key is a
// no-op.
func TestDelete(t *testing.T, open Opener) {
	db := openDb(t, open)

	// Write a value
	require.NoError(t, db.Put(keyvalue.NewKey("foo", []byte("bar")), []byte("baz")))

	// Verify it can be retrieved
	v, err := db.Get(keyvalue.NewKey("foo", []byte("bar")))
	require.NoError(t, err)
	require.Equal(t, "baz", string(v))

	// Delete the value
	require.NoError(t, db.Delete(keyvalue.NewKey("foo", []byte("bar"))))

	// Verify it returns not found
	_, err = db.Get(keyvalue.NewKey("foo", []byte("bar")))
	require.ErrorIs(t, err, errors.NotFound)

	// Deleting again is a no-op
	require.NoError(t, db.Delete(keyvalue.NewKey("foo", []byte("bar"))))

	// Verify after reopening
	db.Close()
	db = openDb(t, open)
	_, err = db.Get(keyvalue.NewKey("foo", []byte("bar")))
	require.ErrorIs(t, err, errors.NotFound)
}

// TestOverwrite verifies that Put replaces existing values.
func TestOverwrite(t *testing.T, open Opener) {
	db := openDb(t, open)

	key := keyvalue.NewKey("foo", []byte("bar"))
	require.NoError(t, db.Put(key, []byte("one")))
	require.NoError(t, db.Put(key, []byte("two")))

	v, err := db.Get(key)
	require.NoError(t, err)
	require.Equal(t, "two", string(v))
}
