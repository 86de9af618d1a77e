// Copyright 2024 The Fuel Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package badger

import (
	"testing"

	"github.com/FuelLabs/fuel-storage/pkg/storage/keyvalue"
	"github.com/FuelLabs/fuel-storage/pkg/storage/keyvalue/kvtest"
	"github.com/FuelLabs/fuel-storage/pkg/storage/storagetest"
)

func open(t testing.TB) kvtest.Opener {
	path := t.TempDir()
	return func() (keyvalue.Store, error) {
		return New(path)
	}
}

func TestStore(t *testing.T)     { kvtest.TestStore(t, open(t)) }
func TestStorage(t *testing.T)   { storagetest.TestStorage(t, open(t)) }
func TestIsolation(t *testing.T) { kvtest.TestIsolation(t, open(t)) }
func TestDelete(t *testing.T)    { kvtest.TestDelete(t, open(t)) }
func TestOverwrite(t *testing.T) { kvtest.TestOverwrite(t, open(t)) }
