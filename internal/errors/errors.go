package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Error method implementation for ValidationError
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Error method implementation for ValidationErrors
func (e *ValidationErrors) Error() string {
	var b strings.Builder
	noun := "errors"
	if len(e.Errors) == 1 {
		noun = "error"
	}
	fmt.Fprintf(&b, "%d validation %s for %s", len(e.Errors), noun, e.Model)
	for _, fe := range e.Errors {
		b.WriteString("\n  ")
		b.WriteString(fe.Error())
	}
	return b.String()
}

// Unwrap exposes the individual field errors to errors.As
func (e *ValidationErrors) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, fe := range e.Errors {
		errs[i] = fe
	}
	return errs
}

// Fields returns the offending field paths in report order
func (e *ValidationErrors) Fields() []string {
	fields := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		fields[i] = fe.Field
	}
	return fields
}

// Add appends a field failure
func (e *ValidationErrors) Add(field, message string) {
	e.Errors = append(e.Errors, NewValidationError(field, message))
}


// ErrOrNil returns nil when no failure was recorded
func (e *ValidationErrors) ErrOrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

// Error method implementation for ParseError
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s document %s: %v", e.Format, e.Path, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Error method implementation for ProvisionError
func (e *ProvisionError) Error() string {
	return fmt.Sprintf("failed to create output directory %s: %v", e.Path, e.Cause)
}

func (e *ProvisionError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewValidationErrors creates an empty collection for the named model
func NewValidationErrors(model string) *ValidationErrors {
	return &ValidationErrors{Model: model}
}

// NewParseError creates a new ParseError
func NewParseError(path, format string, cause error) *ParseError {
	return &ParseError{
		Path:   path,
		Format: format,
		Cause:  cause,
	}
}

// NewProvisionError creates a new ProvisionError
func NewProvisionError(path string, cause error) *ProvisionError {
	return &ProvisionError{
		Path:  path,
		Cause: cause,
	}
}

// IsValidation reports whether err carries a validation failure
func IsValidation(err error) bool {
	var ve *ValidationError
	return stderrors.As(err, &ve)
}

// IsParse reports whether err carries a document parse failure
func IsParse(err error) bool {
	var pe *ParseError
	return stderrors.As(err, &pe)
}

// IsProvision reports whether err carries a directory creation failure
func IsProvision(err error) bool {
	var pe *ProvisionError
	return stderrors.As(err, &pe)
}
