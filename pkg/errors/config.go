package errors

import "fmt"

// ParseError represents a configuration file that could not be decoded.
type ParseError struct {
	Path string
	Line int
	Err  error
}

// NewParseError constructs a ParseError. line is 0 when unknown.
func NewParseError(path string, line int, err error) error {
	return &ParseError{Path: path, Line: line, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse error: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures a configuration field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
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
