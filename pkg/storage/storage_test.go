// Copyright 2024 The Fuel Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package storage_test

import (
	"testing"

	"github.com/FuelLabs/fuel-storage/pkg/errors"
	"github.com/FuelLabs/fuel-storage/pkg/storage"
	"github.com/FuelLabs/fuel-storage/pkg/storage/codec"
	"github.com/FuelLabs/fuel-storage/pkg/storage/keyvalue"
	"github.com/FuelLabs/fuel-storage/pkg/storage/keyvalue/memory"
	"github.com/FuelLabs/fuel-storage/pkg/storage/storagetest"
	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	db := memory.New()
	storagetest.TestStorage(t, func() (keyvalue.Store, error) { return db, nil })
}

// failCodec always fails, to exercise the error path of the views.
type failCodec struct{}

func (failCodec) Marshal(uint64) ([]byte, error) {
	return nil, errors.New("broken")
}

func (failCodec) Unmarshal([]byte) (uint64, error) {
	return 0, errors.New("broken")
}

func TestCodecErrors(t *testing.T) {
	db := memory.New()
	bad := storage.NewTable[uint64, uint64, uint64](
		"bad", failCodec{}, codec.Uint64{}, codec.Uint64{})

	// A codec failure is a storage failure, not absence
	_, _, err := bad.View(db).Get(1)
	require.ErrorIs(t, err, errors.EncodingError)

	_, err = bad.View(db).ContainsKey(1)
	require.ErrorIs(t, err, errors.EncodingError)

	_, _, err = bad.Edit(db).Insert(1, 2)
	require.ErrorIs(t, err, errors.EncodingError)

	_, _, err = bad.Edit(db).Remove(1)
	require.ErrorIs(t, err, errors.EncodingError)
}

func TestDecodeFailureIsError(t *testing.T) {
	db := memory.New()

	// Write a value that cannot decode as uint64
	require.NoError(t, db.Put(keyvalue.NewKey("balances", mustMarshal(t, 9)), []byte{1}))

	table := storage.NewTable[uint64, uint64, uint64](
		"balances", codec.Uint64{}, codec.Uint64{}, codec.Uint64{})

	_, _, err := table.View(db).Get(9)
	require.ErrorIs(t, err, errors.EncodingError)

	// ContainsKey does not decode, so it still succeeds
	ok, err := table.View(db).ContainsKey(9)
	require.NoError(t, err)
	require.True(t, ok)
}

func mustMarshal(t *testing.T, v uint64) []byte {
	b, err := codec.Uint64{}.Marshal(v)
	require.NoError(t, err)
	return b
}
