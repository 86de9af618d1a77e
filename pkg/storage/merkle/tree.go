// Copyright 2024 The Fuel Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package merkle commits table entries into binary merkle trees, one per
// grouping key, and answers root queries over them.
package merkle

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/FuelLabs/fuel-storage/pkg/storage"
)

// Domain separation prefixes for leaf and interior nodes, per RFC 6962. They
// prevent a leaf from being presented as an interior node or vice versa.
const (
	leafPrefix = 0x00
	nodePrefix = 0x01
)

// EmptyRoot returns the root of a tree with no leaves: the hash of the empty
// string. It is stable across calls.
func EmptyRoot() storage.MerkleRoot {
	return sha256.Sum256(nil)
}

// LeafHash hashes a key-value pair into a leaf. The key is length-prefixed so
// (key, value) splits cannot collide.
func LeafHash(key, value []byte) storage.MerkleRoot {
	h := sha256.New()
	h.Write([]byte{leafPrefix})

	var n [binary.MaxVarintLen64]byte
	h.Write(n[:binary.PutUvarint(n[:], uint64(len(key)))])
	h.Write(key)
	h.Write(value)

	var root storage.MerkleRoot
	h.Sum(root[:0])
	return root
}

func nodeHash(left, right storage.MerkleRoot) storage.MerkleRoot {
	h := sha256.New()
	h.Write([]byte{nodePrefix})
	h.Write(left[:])
	h.Write(right[:])

	var root storage.MerkleRoot
	h.Sum(root[:0])
	return root
}

// RootOf folds a sequence of leaves into a root, pairing adjacent nodes level
// by level. An odd node is promoted to the next level unchanged. The order of
// leaves is significant; callers must present them in a canonical order.
func RootOf(leaves []storage.MerkleRoot) storage.MerkleRoot {
	if len(leaves) == 0 {
		return EmptyRoot()
	}

	level := make([]storage.MerkleRoot, len(leaves))
	copy(level, leaves)

	for len(level) > 1 {
		next := level[:0]
		for i := 0; i < len(level); i += 2 {
			if i+1 < len(level) {
				next = append(next, nodeHash(level[i], level[i+1]))
			} else {
				// Odd node, promote
				next = append(next, level[i])
			}
		}
		level = next
	}
	return level[0]
}
