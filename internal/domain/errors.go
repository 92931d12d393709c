package domain

import (
	"fmt"
	"strings"
)

// ValidationError reports a write carrying a value outside a field's
// closed set. Nothing is persisted when one is returned.
type ValidationError struct {
	Field   string
	Value   string
	Allowed []string
}

// NewValidationError builds a ValidationError for a field.
func NewValidationError(field, value string, allowed []string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Allowed: allowed}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q for %s (allowed: %s)", e.Value, e.Field, strings.Join(e.Allowed, ", "))
}

// NotFoundError reports an unknown or inactive shop, or a missing
// document where one is required.
type NotFoundError struct {
	Resource string
	Key      string
}

// NewNotFoundError builds a NotFoundError for a resource and lookup key.
func NewNotFoundError(resource, key string) *NotFoundError {
	return &NotFoundError{Resource: resource, Key: key}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// InvalidOperationError reports a mutation the current document state
// forbids, such as removing the default locale. State is unchanged.
type InvalidOperationError struct {
	Reason string
}

// NewInvalidOperationError builds an InvalidOperationError.
func NewInvalidOperationError(reason string) *InvalidOperationError {
	return &InvalidOperationError{Reason: reason}
}

func (e *InvalidOperationError) Error() string {
	return e.Reason
}

// StoreUnavailableError reports that the document store could not be
// reached. The core does not retry; callers may at a higher layer.
type StoreUnavailableError struct {
	Op  string
	Err error
}

// NewStoreUnavailableError wraps a store failure for an operation.
func NewStoreUnavailableError(op string, err error) *StoreUnavailableError {
	return &StoreUnavailableError{Op: op, Err: err}
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable during %s: %v", e.Op, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}
