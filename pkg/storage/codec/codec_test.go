// Copyright 2024 The Fuel Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package codec

import (
	"testing"

	"github.com/FuelLabs/fuel-storage/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestBytesOwnership(t *testing.T) {
	src := []byte{1, 2, 3}
	v, err := Bytes{}.Unmarshal(src)
	require.NoError(t, err)
	require.Equal(t, src, v)

	// Mutating the source must not affect the decoded value
	src[0] = 9
	require.Equal(t, []byte{1, 2, 3}, v)
}

func TestUint64Order(t *testing.T) {
	a, err := Uint64{}.Marshal(1)
	require.NoError(t, err)
	b, err := Uint64{}.Marshal(256)
	require.NoError(t, err)

	// Big-endian keeps byte order aligned with numeric order
	require.Less(t, string(a), string(b))
}

func TestUint64BadLength(t *testing.T) {
	_, err := Uint64{}.Unmarshal([]byte{1, 2, 3})
	require.ErrorIs(t, err, errors.EncodingError)
}

func TestHashBadLength(t *testing.T) {
	_, err := Hash{}.Unmarshal(make([]byte, 31))
	require.ErrorIs(t, err, errors.EncodingError)
}
