// Copyright 2024 The Fuel Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package keyvalue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyBytesUnambiguous(t *testing.T) {
	// The table length prefix must keep (table, key) splits distinct
	a := NewKey("ab", []byte("c"))
	b := NewKey("a", []byte("bc"))
	require.NotEqual(t, a.Bytes(), b.Bytes())
	require.NotEqual(t, a.Hash(), b.Hash())
}

func TestKeyEqual(t *testing.T) {
	a := NewKey("contracts", []byte{1, 2})
	require.True(t, a.Equal(a.Copy()))
	require.False(t, a.Equal(NewKey("contracts", []byte{1, 3})))
	require.False(t, a.Equal(NewKey("balances", []byte{1, 2})))
}

func TestKeyCopyIsIndependent(t *testing.T) {
	a := NewKey("t", []byte{1})
	b := a.Copy()
	a.Raw[0] = 2
	require.Equal(t, []byte{1}, b.Raw)
}
