package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions.
var (
	// ErrNotFound indicates that a requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates that the input data is invalid.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternalError indicates an internal server error.
	ErrInternalError = errors.New("internal error")
)

// ValidationError represents a validation error for a specific field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NotFoundError reports a miss on an entity looked up by its own key.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ResourceNotFoundError is returned by the existence checker when no row
// matches the requested key.
type ResourceNotFoundError struct {
	Kind  ResourceKind
	Field string
	Value string
}

// Error implements the error interface.
func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s.%s = %s", e.Kind, e.Field, e.Value)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *ResourceNotFoundError) Unwrap() error {
	return ErrNotFound
}

// ReferenceError reports a foreign key violation: the row being written
// points at a user, topic or article that does not exist.
type ReferenceError struct {
	Entity     string
	Constraint string
}

// Error implements the error interface.
func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s references a missing row (%s)", e.Entity, e.Constraint)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *ReferenceError) Unwrap() error {
	return ErrNotFound
}

// AlreadyExistsError provides details about a duplicate entity.
type AlreadyExistsError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Entity, e.ID)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *AlreadyExistsError) Unwrap() error {
	return ErrAlreadyExists
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{
		Entity: entity,
		ID:     id,
	}
}

// NewResourceNotFoundError creates a new ResourceNotFoundError.
func NewResourceNotFoundError(kind ResourceKind, field string, value any) *ResourceNotFoundError {
	return &ResourceNotFoundError{
		Kind:  kind,
		Field: field,
		Value: fmt.Sprint(value),
	}
}

// NewReferenceError creates a new ReferenceError.
func NewReferenceError(entity, constraint string) *ReferenceError {
	return &ReferenceError{
		Entity:     entity,
		Constraint: constraint,
	}
}

// NewAlreadyExistsError creates a new AlreadyExistsError.
func NewAlreadyExistsError(entity, id string) *AlreadyExistsError {
	return &AlreadyExistsError{
		Entity: entity,
		ID:     id,
	}
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
