package main

import "github.com/pkg/errors"

// validationFailure wraps an error that should map to exit code 1: the
// input was well-formed but semantically rejected (e.g. a malformed
// message JSON passed structural parsing but failed a field check).
type validationFailure struct {
	cause error
}

func (e *validationFailure) Error() string { return e.cause.Error() }
func (e *validationFailure) Unwrap() error { return e.cause }

func newValidationFailure(err error) error {
	return &validationFailure{cause: err}
}

func isValidationFailure(err error) bool {
	var vf *validationFailure
	return errors.As(err, &vf)
}

// cryptoFailure wraps an error that should map to exit code 2: signature
// verification or signing itself failed.
type cryptoFailure struct {
	cause error
}

func (e *cryptoFailure) Error() string { return e.cause.Error() }
func (e *cryptoFailure) Unwrap() error { return e.cause }

func newCryptoFailure(err error) error {
	return &cryptoFailure{cause: err}
}

func isCryptoFailure(err error) bool {
	var cf *cryptoFailure
	return errors.As(err, &cf)
}
