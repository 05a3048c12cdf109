// Package errs is a thin facade over cockroachdb/errors. Callers get
// stack-carrying errors and sentinel marking without importing the
// library directly.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg. A nil err stays nil so call sites can
// wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// New creates an error with a captured stack trace.
func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches markErr as an Is target while keeping err's message and
// stack. With a nil err the sentinel itself is returned.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err matches reference, mark-aware. Marks attached via
// Mark are invisible to the standard library's errors.Is, so sentinel checks
// must go through this.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}
