package errors

import "fmt"

// ParseError represents a catalog or config parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures catalog, registry and configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UnknownVariantError reports a lookup for a variant id outside the registry.
type UnknownVariantError struct {
	ID       string
	Fallback string
}

// NewUnknownVariantError constructs an UnknownVariantError.
func NewUnknownVariantError(id, fallback string) error {
	return &UnknownVariantError{ID: id, Fallback: fallback}
}

func (e *UnknownVariantError) Error() string {
	if e == nil {
		return ""
	}
	if e.Fallback != "" {
		return fmt.Sprintf("unknown variant %q, using %q", e.ID, e.Fallback)
	}
	return fmt.Sprintf("unknown variant %q", e.ID)
}
