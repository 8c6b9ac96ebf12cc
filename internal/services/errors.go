package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means a referenced condominium, dwelling, debt or
	// expense does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidState means the operation requires a row in a different
	// state, e.g. paying against an already settled debt.
	ErrInvalidState = errors.New("invalid state")
)

// ValidationError carries field-level detail for malformed input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationErr(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// StoreError wraps persistence failures. Transactions are rolled back
// before this is returned, so the whole operation is safe to retry.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeErr(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
