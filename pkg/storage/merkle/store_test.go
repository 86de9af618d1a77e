// Copyright 2024 The Fuel Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package merkle_test

import (
	"testing"

	"github.com/FuelLabs/fuel-storage/pkg/storage"
	"github.com/FuelLabs/fuel-storage/pkg/storage/codec"
	"github.com/FuelLabs/fuel-storage/pkg/storage/keyvalue/memory"
	"github.com/FuelLabs/fuel-storage/pkg/storage/merkle"
	"github.com/stretchr/testify/require"
)

var balances = storage.NewTable[uint64, uint64, uint64](
	"balances", codec.Uint64{}, codec.Uint64{}, codec.Uint64{})

// Accounts are grouped by the hundreds: keys 0-99 are group 0, 100-199 are
// group 1, and so on.
func open() *merkle.Store[uint64, uint64, uint64, uint64] {
	return merkle.New(memory.New(), balances, codec.Uint64{},
		func(k uint64) uint64 { return k / 100 })
}

func TestContractForwarding(t *testing.T) {
	s := open()

	_, replaced, err := s.Insert(7, 100)
	require.NoError(t, err)
	require.False(t, replaced)

	prev, replaced, err := s.Insert(7, 150)
	require.NoError(t, err)
	require.True(t, replaced)
	require.Equal(t, uint64(100), prev)

	v, found, err := s.Get(7)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, uint64(150), v)

	ok, err := s.ContainsKey(7)
	require.NoError(t, err)
	require.True(t, ok)

	prev, removed, err := s.Remove(7)
	require.NoError(t, err)
	require.True(t, removed)
	require.Equal(t, uint64(150), prev)

	_, found, err = s.Get(7)
	require.NoError(t, err)
	require.False(t, found)
}

func TestEmptyGroupRoot(t *testing.T) {
	s := open()

	root, err := s.Root(0)
	require.NoError(t, err)
	require.Equal(t, merkle.EmptyRoot(), root)

	// Stable across calls with no intervening mutation
	again, err := s.Root(0)
	require.NoError(t, err)
	require.Equal(t, root, again)
}

func TestRootDeterminism(t *testing.T) {
	// Two independent stores that hold the same entries must agree on the
	// root, regardless of insertion order
	a := open()
	b := open()

	for _, k := range []uint64{1, 2, 3} {
		_, _, err := a.Insert(k, k*10)
		require.NoError(t, err)
	}
	for _, k := range []uint64{3, 1, 2} {
		_, _, err := b.Insert(k, k*10)
		require.NoError(t, err)
	}

	ra, err := a.Root(0)
	require.NoError(t, err)
	rb, err := b.Root(0)
	require.NoError(t, err)
	require.Equal(t, ra, rb)
}

func TestRootReflectsContents(t *testing.T) {
	s := open()

	empty, err := s.Root(0)
	require.NoError(t, err)

	_, _, err = s.Insert(1, 10)
	require.NoError(t, err)
	one, err := s.Root(0)
	require.NoError(t, err)
	require.NotEqual(t, empty, one)

	// Overwriting changes the root
	_, _, err = s.Insert(1, 20)
	require.NoError(t, err)
	two, err := s.Root(0)
	require.NoError(t, err)
	require.NotEqual(t, one, two)

	// Removing the last entry restores the empty root
	_, _, err = s.Remove(1)
	require.NoError(t, err)
	back, err := s.Root(0)
	require.NoError(t, err)
	require.Equal(t, empty, back)
}

func TestGroupsIndependent(t *testing.T) {
	s := open()

	_, _, err := s.Insert(1, 10)
	require.NoError(t, err)
	_, _, err = s.Insert(101, 10)
	require.NoError(t, err)

	before, err := s.Root(1)
	require.NoError(t, err)

	// Mutating group 0 must not affect group 1
	_, _, err = s.Insert(2, 20)
	require.NoError(t, err)
	_, _, err = s.Remove(1)
	require.NoError(t, err)

	after, err := s.Root(1)
	require.NoError(t, err)
	require.Equal(t, before, after)
}
