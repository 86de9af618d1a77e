// Copyright 2024 The Fuel Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package keyvalue

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// A Key locates a raw entry within a store. Table is the namespace of the
// logical table the entry belongs to and Raw is the encoded key within that
// table.
type Key struct {
	Table string
	Raw   []byte
}

func NewKey(table string, raw []byte) *Key {
	return &Key{Table: table, Raw: raw}
}

// Bytes returns the flat representation of the key: the table name prefixed
// with its varint length, followed by the raw key. The length prefix keeps
// distinct (table, key) pairs from colliding.
func (k *Key) Bytes() []byte {
	b := make([]byte, 0, binary.MaxVarintLen64+len(k.Table)+len(k.Raw))
	b = binary.AppendUvarint(b, uint64(len(k.Table)))
	b = append(b, k.Table...)
	b = append(b, k.Raw...)
	return b
}

// TablePrefix returns the prefix of [Key.Bytes] shared by every key of the
// given table.
func TablePrefix(table string) []byte {
	b := make([]byte, 0, binary.MaxVarintLen64+len(table))
	b = binary.AppendUvarint(b, uint64(len(table)))
	b = append(b, table...)
	return b
}

// Hash converts the key to a fixed-width storage key.
func (k *Key) Hash() [32]byte {
	return sha256.Sum256(k.Bytes())
}

// String returns a human-readable string for the key.
func (k *Key) String() string {
	return k.Table + "." + hex.EncodeToString(k.Raw)
}

// Copy returns a copy of the key.
func (k *Key) Copy() *Key {
	if k == nil {
		return nil
	}
	raw := make([]byte, len(k.Raw))
	copy(raw, k.Raw)
	return &Key{Table: k.Table, Raw: raw}
}

// Equal checks if the two keys are equal.
func (k *Key) Equal(l *Key) bool {
	if k == nil || l == nil {
		return k == l
	}
	return k.Table == l.Table && bytes.Equal(k.Raw, l.Raw)
}
