// Package util provides the shared logger and common error types.
package util

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Typed errors below unwrap to these so callers can
// classify failures with errors.Is without caring about the concrete type.
var (
	ErrNotFound          = errors.New("resource not found")
	ErrDependencyMissing = errors.New("required dependency missing")
	ErrValidationFailed  = errors.New("validation failed")
)

// DependencyError reports a prerequisite entity that does not exist in the
// registry and was not permitted to be created.
type DependencyError struct {
	Resource      string // what was being created, e.g. "device-type ex4300"
	DependsOnType string // kind of the missing prerequisite, e.g. "manufacturer"
	DependsOn     string // identifying name of the missing prerequisite
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s requires %s '%s' to exist", e.Resource, e.DependsOnType, e.DependsOn)
}

func (e *DependencyError) Unwrap() error {
	return ErrDependencyMissing
}

// NewDependencyError creates a dependency error.
func NewDependencyError(resource, dependsOnType, dependsOn string) *DependencyError {
	return &DependencyError{
		Resource:      resource,
		DependsOnType: dependsOnType,
		DependsOn:     dependsOn,
	}
}

// ValidationError represents one or more validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return "validation failed: " + e.Errors[0]
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a validation error from messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Errors: messages}
}

// ValidationBuilder accumulates validation errors so an operation can
// report every missing field at once instead of failing on the first.
type ValidationBuilder struct {
	errors []string
}

// Require adds message when value is empty.
func (v *ValidationBuilder) Require(value, message string) *ValidationBuilder {
	if value == "" {
		v.errors = append(v.errors, message)
	}
	return v
}

// Add adds an error message if condition is false.
func (v *ValidationBuilder) Add(condition bool, message string) *ValidationBuilder {
	if !condition {
		v.errors = append(v.errors, message)
	}
	return v
}

// AddErrorf adds a formatted error message unconditionally.
func (v *ValidationBuilder) AddErrorf(format string, args ...interface{}) *ValidationBuilder {
	v.errors = append(v.errors, fmt.Sprintf(format, args...))
	return v
}

// HasErrors returns true if there are validation errors.
func (v *ValidationBuilder) HasErrors() bool {
	return len(v.errors) > 0
}

// Build returns the validation error or nil if no errors.
func (v *ValidationBuilder) Build() error {
	if len(v.errors) == 0 {
		return nil
	}
	return &ValidationError{Errors: v.errors}
}
