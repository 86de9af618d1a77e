// Copyright 2024 The Fuel Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapNil(t *testing.T) {
	require.NoError(t, UnknownError.Wrap(nil))
}

func TestWrapPreservesCode(t *testing.T) {
	err := NotFound.WithFormat("%q not found", "foo")
	require.ErrorIs(t, err, NotFound)

	// Wrapping with UnknownError must not mask the original code
	wrapped := UnknownError.Wrap(err)
	require.ErrorIs(t, wrapped, NotFound)
}

func TestWithFormatCause(t *testing.T) {
	err := EncodingError.WithFormat("decode: %w", io.ErrUnexpectedEOF)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.ErrorIs(t, err, EncodingError)
}

func TestWrapForeign(t *testing.T) {
	cause := fmt.Errorf("disk on fire")
	err := InternalError.Wrap(cause)
	require.ErrorIs(t, err, InternalError)
	require.ErrorIs(t, err, cause)
	require.Equal(t, cause.Error(), err.Error())
}
