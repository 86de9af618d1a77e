// Copyright 2024 The Fuel Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package kvtest

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/FuelLabs/fuel-storage/pkg/storage/keyvalue"
	"github.com/stretchr/testify/require"
)

func BenchmarkPut(b *testing.B, open Opener) {
	db := openDb(b, open)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := keyvalue.NewKey("answer", []byte(fmt.Sprintf("key-%d", i)))
		err := db.Put(key, []byte(fmt.Sprintf("%x this much data ", i)))
		if err != nil {
			require.NoError(b, err)
		}
	}
}

func BenchmarkReadRandom(b *testing.B, open Opener) {
	const N = 10000

	// Populate
	db := openDb(b, open)

	keys := make([]*keyvalue.Key, N)
	for i := range keys {
		keys[i] = keyvalue.NewKey("answer", []byte(fmt.Sprintf("key-%d", i)))
		err := db.Put(keys[i], []byte(fmt.Sprintf("%x this much data ", i)))
		require.NoError(b, err, "Put")
	}

	r := rand.New(rand.NewSource(0))
	indices := make([]int, b.N)
	for i := range indices {
		indices[i] = r.Intn(N)
	}

	// Read
	b.ResetTimer()
	for _, i := range indices {
		_, err := db.Get(keys[i])
		if err != nil {
			require.NoError(b, err)
		}
	}
}
