// Copyright 2024 The Fuel Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

// Status is an error status code.
type Status uint64

const (
	// NotFound means a record does not exist.
	NotFound Status = 404
	// NotAllowed means the requested action is not allowed.
	NotAllowed Status = 405
	// EncodingError means encoding or decoding failed.
	EncodingError Status = 501
	// UnknownError means an unknown error occurred.
	UnknownError Status = 502
	// InternalError means an internal error occurred.
	InternalError Status = 503
	// NotReady means the receiver is not ready to serve the request.
	NotReady Status = 504
)

// Success returns true if the status represents success.
func (s Status) Success() bool { return s < 300 }

// IsKnownError returns true if the status is non-zero and not UnknownError.
func (s Status) IsKnownError() bool { return s != 0 && s != UnknownError }

func (s Status) String() string {
	switch s {
	case NotFound:
		return "not found"
	case NotAllowed:
		return "not allowed"
	case EncodingError:
		return "encoding error"
	case UnknownError:
		return "unknown error"
	case InternalError:
		return "internal error"
	case NotReady:
		return "not ready"
	default:
		return "unknown"
	}
}

// Error implements error.
func (s Status) Error() string { return s.String() }
