package catalog

import (
	"errors"
	"fmt"
)

// ValidationError describes operator input that does not fit the identifier
// or book grammar. It never reaches the store.
type ValidationError struct {
	Field  string // which input was rejected: prefix, number, id, title, author, term
	Input  string // the raw input as given
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Input, e.Reason)
}

// NotFoundError indicates that no book matched an id or search term.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no book found matching '%s'", e.Query)
}

// PersistError is returned by a mutating Inventory operation when the mutation
// was applied in memory but the flush to durable storage failed.
type PersistError struct {
	Op  string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s applied but not saved: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// IsValidationError returns true if err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsNotFound returns true if err is or wraps a *NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsPersistError returns true if err is or wraps a *PersistError.
func IsPersistError(err error) bool {
	var target *PersistError
	return errors.As(err, &target)
}
