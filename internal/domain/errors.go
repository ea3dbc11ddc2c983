package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal      ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrInvalidConfig ErrorCode = "INVALID_CONFIG"

	// Document extraction errors; fatal for the document they name.
	ErrUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	ErrExtraction        ErrorCode = "EXTRACTION_ERROR"

	// Generation errors; downgraded to error records inside a batch.
	ErrGenerationService ErrorCode = "GENERATION_SERVICE_ERROR"
	ErrGenerationParse   ErrorCode = "GENERATION_PARSE_ERROR"

	// Export errors; logged per artifact, fatal only for directory creation.
	ErrExportIO ErrorCode = "EXPORT_IO_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause to errors.Is/errors.As.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewInvalidConfigError(message string) *DomainError {
	return NewError(ErrInvalidConfig, message, nil)
}

func NewUnsupportedFormatError(extension string) *DomainError {
	return NewError(ErrUnsupportedFormat, fmt.Sprintf("Unsupported file format: %s", extension), nil)
}

func NewExtractionError(path string, err error) *DomainError {
	return NewError(ErrExtraction, fmt.Sprintf("Failed to extract text from %s", path), err)
}

func NewGenerationServiceError(err error) *DomainError {
	return NewError(ErrGenerationService, "Failed to generate content", err)
}

func NewGenerationParseError(err error) *DomainError {
	return NewError(ErrGenerationParse, "Failed to parse generated content", err)
}

func NewExportIOError(path string, err error) *DomainError {
	return NewError(ErrExportIO, fmt.Sprintf("Failed to write artifact %s", path), err)
}

// AsDomainError extracts a *DomainError from err's chain, or wraps err as an
// internal error so callers always have a code to act on.
func AsDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	if de, ok := err.(*DomainError); ok {
		return de
	}
	return NewInternalError(err.Error(), err)
}
