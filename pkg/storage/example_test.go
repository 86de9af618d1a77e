// Copyright 2024 The Fuel Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package storage_test

import (
	"fmt"

	"github.com/FuelLabs/fuel-storage/pkg/storage"
	"github.com/FuelLabs/fuel-storage/pkg/storage/codec"
	"github.com/FuelLabs/fuel-storage/pkg/storage/keyvalue/memory"
)

var (
	// Contracts maps contract ids to byte code.
	Contracts = storage.NewTable[[32]byte, []byte, []byte](
		"contracts", codec.Hash{}, codec.Bytes{}, codec.Bytes{})

	// Balances maps account ids to balances.
	Balances = storage.NewTable[uint64, uint64, uint64](
		"balances", codec.Uint64{}, codec.Uint64{}, codec.Uint64{})
)

// Both tables live in one physical store; the scoped views keep their
// operations separately typed.
func Example() {
	db := memory.New()

	_, _, err := Balances.Edit(db).Insert(123, 321)
	if err != nil {
		panic(err)
	}

	balance, found, err := Balances.View(db).Get(123)
	if err != nil {
		panic(err)
	}
	fmt.Println(balance, found)

	_, found, err = Contracts.View(db).Get([32]byte{})
	if err != nil {
		panic(err)
	}
	fmt.Println(found)

	// Output:
	// 321 true
	// false
}
