// Package error defines domain-specific errors for the budget ledger service.
package error

import (
	"errors"
	"fmt"
)

// Error kinds shared by every entity. Entity-specific sentinels wrap one of
// these so callers can classify a failure without knowing the entity.
var (
	// ErrNotFound is wrapped by every "<entity> not found" error.
	ErrNotFound = errors.New("not found")

	// ErrValidation is wrapped by every input validation error.
	ErrValidation = errors.New("validation error")
)

// StorageError is returned when the underlying store rejects or fails an operation.
type StorageError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err as a StorageError for the given operation.
// A nil err yields nil.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// IsNotFound reports whether err is, or wraps, a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation reports whether err is, or wraps, a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsStorage reports whether err is, or wraps, a StorageError.
func IsStorage(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

func validation(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func notFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}

// ErrCodeRateLimited is returned when a client exceeds the write rate limit.
const ErrCodeRateLimited = "API-030001"
