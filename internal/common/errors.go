package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Error taxonomy. MissingField and DateParse are fatal before the workflow
// starts; Rename and Transport are recoverable at the action boundary;
// Cancelled is the normal no-op outcome of a dismissed prompt.
var (
	ErrMissingField       = errors.New("invoice field not found")
	ErrDateParse          = errors.New("invoice date not parseable")
	ErrRename             = errors.New("rename failed")
	ErrTransport          = errors.New("transport failed")
	ErrCancelled          = errors.New("prompt cancelled")
	ErrUnknownInvoiceType = errors.New("unknown invoice type")
	ErrInvalidInput       = errors.New("invalid input")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewMissingFieldError names the specific field the extractor could not find.
func NewMissingFieldError(field string) *AppError {
	return NewAppError("MISSING_FIELD", fmt.Sprintf("%s not found in document text", field), ErrMissingField)
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
