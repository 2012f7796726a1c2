package steps

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownUser is returned when an operation requires a registered user.
	ErrUnknownUser = errors.New("unknown user")

	// ErrInvalidInput marks requests rejected before any mutation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStorageUnavailable wraps any failure of the persistence collaborator.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Invalidf builds an ErrInvalidInput with context.
func Invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// StorageErr wraps a store failure so callers can match ErrStorageUnavailable
// while the original cause stays reachable through errors.Is/As.
func StorageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorageUnavailable, op, err)
}
