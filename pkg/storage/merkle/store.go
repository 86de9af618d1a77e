// Copyright 2024 The Fuel Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package merkle

import (
	"bytes"
	"encoding/hex"
	"sort"

	"github.com/FuelLabs/fuel-storage/pkg/errors"
	"github.com/FuelLabs/fuel-storage/pkg/storage"
	"github.com/FuelLabs/fuel-storage/pkg/storage/codec"
	"github.com/FuelLabs/fuel-storage/pkg/storage/keyvalue"
)

// Store is a [storage.MerkleRootStorage] over a raw key-value store. Contract
// operations behave exactly as the table's scoped views do; in addition,
// every entry's leaf hash is indexed under its grouping key, so Root can
// answer per-group root queries without scanning the data table.
//
// The group of an entry is a pure function of its key, so groups are disjoint
// by construction. Roots are recomputed on every call, never cached.
type Store[G, K, SV, GV any] struct {
	kv      keyvalue.Store
	table   *storage.Table[K, SV, GV]
	group   codec.Encoder[G]
	groupOf func(K) G
}

// New returns a merkleized store for the table. groupOf assigns each key to
// its merkle tree; group encodes grouping keys for indexing.
func New[G, K, SV, GV any](kv keyvalue.Store, table *storage.Table[K, SV, GV], group codec.Encoder[G], groupOf func(K) G) *Store[G, K, SV, GV] {
	return &Store[G, K, SV, GV]{kv: kv, table: table, group: group, groupOf: groupOf}
}

// Get implements [storage.Inspector].
func (s *Store[G, K, SV, GV]) Get(key K) (GV, bool, error) {
	return s.table.View(s.kv).Get(key)
}

// ContainsKey implements [storage.Inspector].
func (s *Store[G, K, SV, GV]) ContainsKey(key K) (bool, error) {
	return s.table.View(s.kv).ContainsKey(key)
}

// Insert implements [storage.Mutator].
func (s *Store[G, K, SV, GV]) Insert(key K, value SV) (GV, bool, error) {
	prev, replaced, err := s.table.Edit(s.kv).Insert(key, value)
	if err != nil {
		return prev, false, err
	}

	// Index the leaf
	lk, leaf, err := s.leaf(key, value)
	if err != nil {
		return prev, false, err
	}
	err = s.kv.Put(lk, leaf[:])
	if err != nil {
		return prev, false, errors.UnknownError.Wrap(err)
	}
	return prev, replaced, nil
}

// Remove implements [storage.Mutator].
func (s *Store[G, K, SV, GV]) Remove(key K) (GV, bool, error) {
	prev, removed, err := s.table.Edit(s.kv).Remove(key)
	if err != nil || !removed {
		return prev, removed, err
	}

	// Drop the leaf
	lk, err := s.leafKey(key)
	if err != nil {
		return prev, false, err
	}
	err = s.kv.Delete(lk)
	if err != nil {
		return prev, false, errors.UnknownError.Wrap(err)
	}
	return prev, true, nil
}

// Root implements [storage.MerkleRootStorage]. The root is computed over the
// group's leaves ordered by raw key, so it depends only on the group's
// current contents.
func (s *Store[G, K, SV, GV]) Root(group G) (storage.MerkleRoot, error) {
	ns, err := s.namespace(group)
	if err != nil {
		return storage.MerkleRoot{}, err
	}

	type leaf struct {
		key  []byte
		hash storage.MerkleRoot
	}
	var leaves []leaf
	err = s.kv.ForEach(ns, func(key, value []byte) error {
		if len(value) != 32 {
			return errors.InternalError.WithFormat("corrupted leaf index: %x", key)
		}
		leaves = append(leaves, leaf{key, storage.MerkleRoot(value)})
		return nil
	})
	if err != nil {
		return storage.MerkleRoot{}, errors.UnknownError.Wrap(err)
	}

	// The engine does not guarantee iteration order
	sort.Slice(leaves, func(i, j int) bool {
		return bytes.Compare(leaves[i].key, leaves[j].key) < 0
	})

	hashes := make([]storage.MerkleRoot, len(leaves))
	for i, l := range leaves {
		hashes[i] = l.hash
	}
	return RootOf(hashes), nil
}

// namespace returns the leaf index namespace for a group.
func (s *Store[G, K, SV, GV]) namespace(group G) (string, error) {
	gb, err := s.group.Marshal(group)
	if err != nil {
		return "", errors.EncodingError.WithFormat("encode %s group: %w", s.table.Name(), err)
	}
	return "merkle!" + s.table.Name() + "!" + hex.EncodeToString(gb), nil
}

func (s *Store[G, K, SV, GV]) leafKey(key K) (*keyvalue.Key, error) {
	k, err := s.table.EncodeKey(key)
	if err != nil {
		return nil, err
	}
	ns, err := s.namespace(s.groupOf(key))
	if err != nil {
		return nil, err
	}
	return keyvalue.NewKey(ns, k.Raw), nil
}

func (s *Store[G, K, SV, GV]) leaf(key K, value SV) (*keyvalue.Key, storage.MerkleRoot, error) {
	lk, err := s.leafKey(key)
	if err != nil {
		return nil, storage.MerkleRoot{}, err
	}
	vb, err := s.table.EncodeSet(value)
	if err != nil {
		return nil, storage.MerkleRoot{}, err
	}
	return lk, LeafHash(lk.Raw, vb), nil
}

var _ storage.MerkleRootStorage[uint64, uint64, uint64, uint64] = (*Store[uint64, uint64, uint64, uint64])(nil)
