package service

import (
	"errors"
	"fmt"
)

// Every error returned by the services wraps exactly one of these.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
	ErrTransient  = errors.New("transient storage failure")

	// ErrCodeSpaceExhausted means invite code generation kept colliding. It
	// is a configuration problem (code length too short), not a user error.
	ErrCodeSpaceExhausted = fmt.Errorf("%w: invite code space exhausted", ErrConflict)
)

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func notFound(msg string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, msg)
}

func forbidden(msg string) error {
	return fmt.Errorf("%w: %s", ErrForbidden, msg)
}

// storageError classifies an error from the repositories. Errors that
// already carry a taxonomy sentinel pass through unchanged.
func storageError(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{ErrValidation, ErrNotFound, ErrForbidden, ErrConflict, ErrTransient} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %s: %w", ErrTransient, op, err)
}
