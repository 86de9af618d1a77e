// Copyright 2024 The Fuel Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package codec defines how table keys and values map to their stored byte
// representation. The storage contracts do not prescribe a serialization
// format; a table descriptor is constructed with whatever codecs suit the
// application.
package codec

import (
	"encoding/binary"

	"github.com/FuelLabs/fuel-storage/pkg/errors"
)

// An Encoder marshals values of type T into their stored representation.
// Write-path value shapes only need an Encoder, which allows them to be cheap
// view types.
type Encoder[T any] interface {
	Marshal(v T) ([]byte, error)
}

// A Codec marshals and unmarshals values of type T. Key and read-path value
// shapes require a full Codec so stored bytes can be handed back as owned
// values.
type Codec[T any] interface {
	Encoder[T]
	Unmarshal(b []byte) (T, error)
}

// Bytes is the identity codec for byte slices. Marshal returns the slice
// unchanged; Unmarshal returns a copy, so the caller owns the result.
type Bytes struct{}

func (Bytes) Marshal(v []byte) ([]byte, error) { return v, nil }

func (Bytes) Unmarshal(b []byte) ([]byte, error) {
	u := make([]byte, len(b))
	copy(u, b)
	return u, nil
}

// String is the codec for strings.
type String struct{}

func (String) Marshal(v string) ([]byte, error)   { return []byte(v), nil }
func (String) Unmarshal(b []byte) (string, error) { return string(b), nil }

// Uint64 is the big-endian codec for 64-bit unsigned integers. Big-endian
// keeps lexicographic and numeric key order aligned.
type Uint64 struct{}

func (Uint64) Marshal(v uint64) ([]byte, error) {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b, nil
}

func (Uint64) Unmarshal(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, errors.EncodingError.WithFormat("decode uint64: want 8 bytes, got %d", len(b))
	}
	return binary.BigEndian.Uint64(b), nil
}

// Hash is the codec for 32-byte values.
type Hash struct{}

func (Hash) Marshal(v [32]byte) ([]byte, error) { return v[:], nil }

func (Hash) Unmarshal(b []byte) ([32]byte, error) {
	var v [32]byte
	if len(b) != 32 {
		return v, errors.EncodingError.WithFormat("decode hash: want 32 bytes, got %d", len(b))
	}
	copy(v[:], b)
	return v, nil
}
