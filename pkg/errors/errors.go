// Copyright 2024 The Fuel Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package errors provides status-coded errors. Every error produced by this
// package carries a [Status], so callers can classify failures with
// [errors.Is] without inspecting messages.
package errors

import (
	"errors"
	"fmt"
)

// Error is a status-coded error.
type Error struct {
	Code    Status
	Message string
	Cause   error
}

// With returns an error with the given status code and message.
func (s Status) With(v ...interface{}) *Error {
	return &Error{Code: s, Message: fmt.Sprint(v...)}
}

// WithFormat returns an error with the given status code and formatted
// message. If the format wraps an error with %w, that error is recorded as
// the cause.
func (s Status) WithFormat(format string, args ...interface{}) *Error {
	err := fmt.Errorf(format, args...)
	e := &Error{Code: s, Message: err.Error()}
	if u, ok := err.(interface{ Unwrap() error }); ok {
		e.Cause = u.Unwrap()
	}
	return e
}

// Wrap wraps the given error with the status code. Wrap returns nil if err is
// nil. If err already carries a known status code and s is UnknownError, err
// is returned unchanged so the original code is preserved.
func (s Status) Wrap(err error) error {
	if err == nil {
		// The return type must be `error` - otherwise this return statement
		// can cause strange errors
		return nil
	}
	if !s.IsKnownError() {
		var e *Error
		if errors.As(err, &e) {
			return err
		}
	}
	return &Error{Code: s, Cause: err}
}

func (e *Error) Error() string {
	if e.Message == "" && e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Code
}

// Is returns true if the target is a Status or *Error with the same code.
func (e *Error) Is(target error) bool {
	switch f := target.(type) {
	case *Error:
		if e.Code == f.Code {
			return true
		}
	case Status:
		if e.Code == f {
			return true
		}
	}
	return false
}

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// As is [errors.As].
func As(err error, target any) bool { return errors.As(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }
