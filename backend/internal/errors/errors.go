package errors

import (
	"errors"
	"fmt"
)

var (
	NotFound         = errors.New("not found")
	CapacityExceeded = errors.New("card has no unpunched slots remaining")
)

// StorageError wraps a failed call to the database.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func Storage(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Validation error: %s", e.Message)
}
