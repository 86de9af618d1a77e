// Copyright 2024 The Fuel Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package storagetest provides a conformance suite for the typed table
// contracts, runnable against any [keyvalue.Store].
package storagetest

import (
	"encoding/binary"
	"io"
	"testing"

	"github.com/FuelLabs/fuel-storage/pkg/errors"
	"github.com/FuelLabs/fuel-storage/pkg/storage"
	"github.com/FuelLabs/fuel-storage/pkg/storage/codec"
	"github.com/FuelLabs/fuel-storage/pkg/storage/keyvalue"
	"github.com/stretchr/testify/require"
)

// An Opener opens the store under test.
type Opener = func() (keyvalue.Store, error)

// U128 is a 128-bit unsigned integer, used to exercise custom key codecs.
type U128 struct{ Hi, Lo uint64 }

// U128Codec is the big-endian codec for [U128].
type U128Codec struct{}

func (U128Codec) Marshal(v U128) ([]byte, error) {
	b := make([]byte, 16)
	binary.BigEndian.PutUint64(b, v.Hi)
	binary.BigEndian.PutUint64(b[8:], v.Lo)
	return b, nil
}

func (U128Codec) Unmarshal(b []byte) (U128, error) {
	if len(b) != 16 {
		return U128{}, errors.EncodingError.WithFormat("decode u128: want 16 bytes, got %d", len(b))
	}
	return U128{binary.BigEndian.Uint64(b), binary.BigEndian.Uint64(b[8:])}, nil
}

// Balances is a test table mapping 128-bit account ids to 64-bit balances.
var Balances = storage.NewTable[U128, uint64, uint64](
	"balances", U128Codec{}, codec.Uint64{}, codec.Uint64{})

// Contracts is a test table mapping 32-byte ids to opaque byte code.
var Contracts = storage.NewTable[[32]byte, []byte, []byte](
	"contracts", codec.Hash{}, codec.Bytes{}, codec.Bytes{})

func openDb(t testing.TB, open Opener) keyvalue.Store {
	db, err := open()
	require.NoError(t, err)
	t.Cleanup(func() {
		if c, ok := db.(io.Closer); ok {
			require.NoError(t, c.Close())
		}
	})
	return db
}

// TestStorage verifies the table contract laws against the store. The store
// is opened once and shared; each law uses its own keys.
func TestStorage(t *testing.T, open Opener) {
	db := openDb(t, open)

	t.Run("Empty", func(t *testing.T) {
		view := Balances.View(db)

		_, found, err := view.Get(U128{Lo: 1})
		require.NoError(t, err)
		require.False(t, found)

		ok, err := view.ContainsKey(U128{Lo: 1})
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("InsertGet", func(t *testing.T) {
		mut := Balances.Edit(db)

		_, replaced, err := mut.Insert(U128{Lo: 2}, 100)
		require.NoError(t, err)
		require.False(t, replaced)

		v, found, err := mut.Get(U128{Lo: 2})
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, uint64(100), v)

		ok, err := mut.ContainsKey(U128{Lo: 2})
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("Displaced", func(t *testing.T) {
		mut := Balances.Edit(db)

		_, _, err := mut.Insert(U128{Lo: 3}, 1)
		require.NoError(t, err)

		prev, replaced, err := mut.Insert(U128{Lo: 3}, 2)
		require.NoError(t, err)
		require.True(t, replaced)
		require.Equal(t, uint64(1), prev)

		v, found, err := mut.Get(U128{Lo: 3})
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, uint64(2), v)
	})

	t.Run("Remove", func(t *testing.T) {
		mut := Balances.Edit(db)

		_, _, err := mut.Insert(U128{Lo: 4}, 7)
		require.NoError(t, err)

		prev, removed, err := mut.Remove(U128{Lo: 4})
		require.NoError(t, err)
		require.True(t, removed)
		require.Equal(t, uint64(7), prev)

		_, found, err := mut.Get(U128{Lo: 4})
		require.NoError(t, err)
		require.False(t, found)

		ok, err := mut.ContainsKey(U128{Lo: 4})
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("RemoveAbsent", func(t *testing.T) {
		mut := Balances.Edit(db)

		_, removed, err := mut.Remove(U128{Lo: 5})
		require.NoError(t, err)
		require.False(t, removed)
	})

	t.Run("EndToEnd", func(t *testing.T) {
		mut := Balances.Edit(db)
		seven := U128{Lo: 7}

		_, replaced, err := mut.Insert(seven, 100)
		require.NoError(t, err)
		require.False(t, replaced)

		prev, replaced, err := mut.Insert(seven, 150)
		require.NoError(t, err)
		require.True(t, replaced)
		require.Equal(t, uint64(100), prev)

		v, found, err := mut.Get(seven)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, uint64(150), v)

		prev, removed, err := mut.Remove(seven)
		require.NoError(t, err)
		require.True(t, removed)
		require.Equal(t, uint64(150), prev)

		_, found, err = mut.Get(seven)
		require.NoError(t, err)
		require.False(t, found)
	})

	t.Run("ManyTables", func(t *testing.T) {
		// Two tables on one store must not interfere
		id := [32]byte{1}

		_, _, err := Contracts.Edit(db).Insert(id, []byte("code"))
		require.NoError(t, err)
		_, _, err = Balances.Edit(db).Insert(U128{Lo: 6}, 42)
		require.NoError(t, err)

		code, found, err := Contracts.View(db).Get(id)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, []byte("code"), code)

		bal, found, err := Balances.View(db).Get(U128{Lo: 6})
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, uint64(42), bal)
	})

	t.Run("ViewEquivalence", testViewEquivalence(db))
}

// testViewEquivalence verifies that operations through scoped views agree
// with a direct map-backed reference implementation of the same contract.
func testViewEquivalence(db keyvalue.Store) func(t *testing.T) {
	return func(t *testing.T) {
		mut := Balances.Edit(db)
		ref := newMapStorage[U128, uint64]()

		type op struct {
			insert bool
			key    U128
			value  uint64
		}
		ops := []op{
			{true, U128{Lo: 10}, 1},
			{true, U128{Lo: 11}, 2},
			{true, U128{Lo: 10}, 3},
			{false, U128{Lo: 11}, 0},
			{false, U128{Lo: 12}, 0},
			{true, U128{Lo: 11}, 4},
		}

		for i, o := range ops {
			var err error
			var prevA, prevB uint64
			var okA, okB bool
			if o.insert {
				prevA, okA, err = mut.Insert(o.key, o.value)
				require.NoError(t, err)
				prevB, okB, _ = ref.Insert(o.key, o.value)
			} else {
				prevA, okA, err = mut.Remove(o.key)
				require.NoError(t, err)
				prevB, okB, _ = ref.Remove(o.key)
			}
			require.Equalf(t, okB, okA, "op %d", i)
			require.Equalf(t, prevB, prevA, "op %d", i)
		}

		for _, k := range []U128{{Lo: 10}, {Lo: 11}, {Lo: 12}} {
			vA, okA, err := mut.Get(k)
			require.NoError(t, err)
			vB, okB, _ := ref.Get(k)
			require.Equal(t, okB, okA)
			require.Equal(t, vB, vA)
		}
	}
}

// mapStorage is a direct, engine-free implementation of the combined storage
// contract, used as a behavioral reference.
type mapStorage[K comparable, V any] struct {
	m map[K]V
}

var _ storage.Storage[U128, uint64, uint64] = (*mapStorage[U128, uint64])(nil)

func newMapStorage[K comparable, V any]() *mapStorage[K, V] {
	return &mapStorage[K, V]{m: map[K]V{}}
}

func (s *mapStorage[K, V]) Get(key K) (V, bool, error) {
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *mapStorage[K, V]) ContainsKey(key K) (bool, error) {
	_, ok := s.m[key]
	return ok, nil
}

func (s *mapStorage[K, V]) Insert(key K, value V) (V, bool, error) {
	prev, ok := s.m[key]
	s.m[key] = value
	return prev, ok, nil
}

func (s *mapStorage[K, V]) Remove(key K) (V, bool, error) {
	prev, ok := s.m[key]
	delete(s.m, key)
	return prev, ok, nil
}
