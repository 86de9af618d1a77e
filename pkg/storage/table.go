// Copyright 2024 The Fuel Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package storage

import (
	"github.com/FuelLabs/fuel-storage/pkg/errors"
	"github.com/FuelLabs/fuel-storage/pkg/storage/codec"
	"github.com/FuelLabs/fuel-storage/pkg/storage/keyvalue"
)

// A Table describes one logical table: a name, which is the table's namespace
// within a physical store, and the codecs that fix how its key and value
// shapes map to stored bytes. A Table's shapes are fixed for the lifetime of
// the program; declare tables as package-level variables.
//
//	var Balances = storage.NewTable[uint64, uint64, uint64](
//		"balances", codec.Uint64{}, codec.Uint64{}, codec.Uint64{})
//
// The set codec and the get codec must agree on the stored representation:
// bytes produced by marshalling an SV must unmarshal as the equivalent GV.
type Table[K, SV, GV any] struct {
	name string
	key  codec.Encoder[K]
	set  codec.Encoder[SV]
	get  codec.Codec[GV]
}

// NewTable declares a table. The name must be unique within any store the
// table is used with.
func NewTable[K, SV, GV any](name string, key codec.Encoder[K], set codec.Encoder[SV], get codec.Codec[GV]) *Table[K, SV, GV] {
	return &Table[K, SV, GV]{name: name, key: key, set: set, get: get}
}

// Name returns the table's namespace.
func (t *Table[K, SV, GV]) Name() string { return t.name }

// EncodeKey encodes a key into its raw form within the table's namespace.
func (t *Table[K, SV, GV]) EncodeKey(k K) (*keyvalue.Key, error) {
	b, err := t.key.Marshal(k)
	if err != nil {
		return nil, errors.EncodingError.WithFormat("encode %s key: %w", t.name, err)
	}
	return keyvalue.NewKey(t.name, b), nil
}

// EncodeSet encodes a write-path value.
func (t *Table[K, SV, GV]) EncodeSet(v SV) ([]byte, error) {
	b, err := t.set.Marshal(v)
	if err != nil {
		return nil, errors.EncodingError.WithFormat("encode %s value: %w", t.name, err)
	}
	return b, nil
}

// DecodeGet decodes a stored value into the read-path shape.
func (t *Table[K, SV, GV]) DecodeGet(b []byte) (GV, error) {
	v, err := t.get.Unmarshal(b)
	if err != nil {
		return zero[GV](), errors.EncodingError.WithFormat("decode %s value: %w", t.name, err)
	}
	return v, nil
}

func zero[T any]() (z T) { return z }
