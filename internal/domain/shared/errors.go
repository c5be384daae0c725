package shared

import (
	"errors"
	"fmt"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target is a DomainError carrying the same code,
// so errors.Is discriminates on the error kind rather than the message.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound          = NewDomainError("NOT_FOUND", "Resource not found")
	ErrConflict          = NewDomainError("CONFLICT", "Resource already exists")
	ErrValidation        = NewDomainError("VALIDATION_ERROR", "Invalid input provided")
	ErrInvalidTransition = NewDomainError("INVALID_TRANSITION", "Operation not allowed in current state")
	ErrCorruptCredential = NewDomainError("CORRUPT_CREDENTIAL", "Stored credential is unparsable")
)

// StorageError wraps a failure from the backing store (connection loss,
// timeout, serialization failure). The cause is preserved for errors.Is/As.
type StorageError struct {
	Cause error
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %v", e.Cause)
}

// Unwrap returns the underlying storage failure
func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewStorageError wraps err as a storage failure
func NewStorageError(err error) *StorageError {
	return &StorageError{Cause: err}
}

// IsStorageError reports whether err is a storage-layer failure
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
