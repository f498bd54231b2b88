// Package library implements the circulation core: books, members,
// loans and reservations, all held in memory for the process lifetime.
// Failures come in two kinds. A ValidationError means the caller passed
// a structurally invalid argument; a StateError means the operation is
// not allowed given the current entity state. Both are raised before
// anything is mutated, so a failed call never leaves partial state.
package library

import (
	"errors"
	"fmt"
)

// ValidationError reports a structurally invalid argument: a blank
// required string, an out-of-range number, or a missing reference.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// StateError reports an operation disallowed by current entity state,
// such as checking out a book that is already out.
type StateError struct {
	msg string
}

func (e *StateError) Error() string { return e.msg }

func stateErrorf(format string, args ...any) error {
	return &StateError{msg: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsStateError reports whether err is (or wraps) a StateError.
func IsStateError(err error) bool {
	var se *StateError
	return errors.As(err, &se)
}
