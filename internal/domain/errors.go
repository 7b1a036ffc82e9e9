package domain

import "fmt"

// DomainError represents a domain-specific error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new DomainError
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// NewDomainErrorWithCause creates a new DomainError with an underlying cause
func NewDomainErrorWithCause(code, message string, err error) *DomainError {
	return &DomainError{Code: code, Message: message, Err: err}
}

// Common domain error codes
const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeUnavailable   = "UNAVAILABLE"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// Validation errors
var (
	ErrEmptyMessage    = NewDomainError(ErrCodeValidation, "message is required")
	ErrInvalidLanguage = NewDomainError(ErrCodeValidation, "unsupported language")
)

// Capability errors. Unconfigured capabilities are expected degradation, not
// failures; these errors stay inside the resolver's fallback chain.
var (
	ErrEmbeddingsNotConfigured = NewDomainError(ErrCodeUnavailable, "embedding credentials not configured")
	ErrChatModelNotConfigured  = NewDomainError(ErrCodeUnavailable, "chat model credentials not configured")
	ErrEmptyCorpus             = NewDomainError(ErrCodeInternalError, "knowledge corpus is empty")
)
