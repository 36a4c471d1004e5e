package errs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failed")
	ErrStorageCorruption = errors.New("storage corrupted")
	ErrExternalService   = errors.New("external service failed")
	ErrForbidden         = errors.New("forbidden")
)

// NotFound returns an error matching ErrNotFound that names the missing resource.
func NotFound(resource, id string) error {
	return fmt.Errorf("%s with ID %s: %w", resource, id, ErrNotFound)
}

// ValidationError carries per-field messages for input rejected before it reaches storage.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError from field/message pairs.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// CorruptionError reports a stored collection that could not be decoded.
type CorruptionError struct {
	Collection string
	Err        error
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("collection %q is unreadable: %v", e.Collection, e.Err)
}

func (e *CorruptionError) Is(target error) bool {
	return target == ErrStorageCorruption
}

func (e *CorruptionError) Unwrap() error {
	return e.Err
}

// ExternalServiceError wraps a failed call to a third-party service.
type ExternalServiceError struct {
	Op  string
	Err error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ExternalServiceError) Is(target error) bool {
	return target == ErrExternalService
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}
