// Copyright 2024 The Fuel Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package storage

import (
	"github.com/FuelLabs/fuel-storage/pkg/errors"
	"github.com/FuelLabs/fuel-storage/pkg/storage/keyvalue"
)

// A Ref is a read-only view of one table within a store. A Ref holds nothing
// beyond the store reference and the table, so it is cheap to construct per
// call and must not outlive the store.
type Ref[K, SV, GV any] struct {
	store keyvalue.Getter
	table *Table[K, SV, GV]
}

// View returns a read-only view of the table within the store.
func (t *Table[K, SV, GV]) View(s keyvalue.Getter) Ref[K, SV, GV] {
	return Ref[K, SV, GV]{store: s, table: t}
}

// Get implements [Inspector].
func (r Ref[K, SV, GV]) Get(key K) (GV, bool, error) {
	k, err := r.table.EncodeKey(key)
	if err != nil {
		return zero[GV](), false, err
	}

	b, err := r.store.Get(k)
	switch {
	case err == nil:
		// Ok
	case errors.Is(err, errors.NotFound):
		return zero[GV](), false, nil
	default:
		return zero[GV](), false, errors.UnknownError.Wrap(err)
	}

	v, err := r.table.DecodeGet(b)
	if err != nil {
		return zero[GV](), false, err
	}
	return v, true, nil
}

// ContainsKey implements [Inspector].
func (r Ref[K, SV, GV]) ContainsKey(key K) (bool, error) {
	k, err := r.table.EncodeKey(key)
	if err != nil {
		return false, err
	}

	ok, err := r.store.Has(k)
	if err != nil {
		return false, errors.UnknownError.Wrap(err)
	}
	return ok, nil
}

// A Mut is a read-write view of one table within a store. Like [Ref] it holds
// only the store reference and the table.
type Mut[K, SV, GV any] struct {
	Ref[K, SV, GV]
	store keyvalue.Store
}

// Edit returns a read-write view of the table within the store.
func (t *Table[K, SV, GV]) Edit(s keyvalue.Store) Mut[K, SV, GV] {
	return Mut[K, SV, GV]{Ref: t.View(s), store: s}
}

// Insert implements [Mutator]. The displaced value, if any, is read back
// before the write so the caller gets it without a separate Get.
func (m Mut[K, SV, GV]) Insert(key K, value SV) (GV, bool, error) {
	prev, found, err := m.Get(key)
	if err != nil {
		return zero[GV](), false, err
	}

	k, err := m.table.EncodeKey(key)
	if err != nil {
		return zero[GV](), false, err
	}
	b, err := m.table.EncodeSet(value)
	if err != nil {
		return zero[GV](), false, err
	}

	err = m.store.Put(k, b)
	if err != nil {
		return zero[GV](), false, errors.UnknownError.Wrap(err)
	}
	return prev, found, nil
}

// Remove implements [Mutator].
func (m Mut[K, SV, GV]) Remove(key K) (GV, bool, error) {
	prev, found, err := m.Get(key)
	if err != nil {
		return zero[GV](), false, err
	}
	if !found {
		return zero[GV](), false, nil
	}

	k, err := m.table.EncodeKey(key)
	if err != nil {
		return zero[GV](), false, err
	}

	err = m.store.Delete(k)
	if err != nil {
		return zero[GV](), false, errors.UnknownError.Wrap(err)
	}
	return prev, true, nil
}

var _ Inspector[uint64, uint64] = Ref[uint64, uint64, uint64]{}
var _ Storage[uint64, uint64, uint64] = Mut[uint64, uint64, uint64]{}
