// Copyright 2024 The Fuel Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package storage defines typed table contracts over raw key-value stores.
//
// A [Table] fixes the key and value shapes of one logical table. Many tables
// can live in one physical store; the table's scoped views ([Table.View] and
// [Table.Edit]) narrow the store to exactly one table's operations, so call
// sites never repeat type parameters.
//
// Absence of a key is never an error: read operations return a found flag,
// and failures travel only through the error return.
package storage

// MerkleRoot is the root of a merkle tree.
type MerkleRoot = [32]byte

// An Inspector provides read access to one table.
//
// K is the key type and GV is the value shape returned by reads.
type Inspector[K, GV any] interface {
	// Get returns the value recorded for the key, or found == false if no
	// value exists. The returned value is an owned copy.
	Get(key K) (value GV, found bool, err error)

	// ContainsKey reports whether a value exists for the key. It is
	// semantically equivalent to Get, discarding the value, but may avoid
	// decoding it.
	ContainsKey(key K) (bool, error)
}

// A Mutator provides write access to one table.
//
// K is the key type, SV is the value shape accepted by writes, and GV is the
// value shape returned by reads. SV and GV are usually the same type; they
// are distinct so an implementation can accept a cheap view on the write path
// while returning owned values on the read path.
type Mutator[K, SV, GV any] interface {
	// Insert records value for the key. If a value was already recorded, the
	// displaced value is returned with replaced == true.
	Insert(key K, value SV) (previous GV, replaced bool, err error)

	// Remove deletes the value recorded for the key, returning it with
	// removed == true. Removing an absent key is a no-op.
	Remove(key K) (previous GV, removed bool, err error)
}

// Storage provides full access to one table.
type Storage[K, SV, GV any] interface {
	Inspector[K, GV]
	Mutator[K, SV, GV]
}

// MerkleRootStorage is a [Storage] whose entries are committed into merkle
// trees, one per grouping key. The tree shape and hashing scheme are the
// implementation's choice; the only requirement is that the root
// deterministically reflects the table's current contents for that group.
type MerkleRootStorage[G, K, SV, GV any] interface {
	Storage[K, SV, GV]

	// Root returns the merkle root of the entries associated with the
	// grouping key. Root may finalize pending updates, so it requires the
	// same access as a write.
	Root(group G) (MerkleRoot, error)
}
