package onboarding

import (
	"errors"
	"fmt"
)

// ErrorCode identifies well-known error categories raised at the edges of the
// onboarding domain. The screen itself never fails; these codes exist for
// callers that translate free-form input into domain values.
type ErrorCode string

const (
	ErrCodeInvalidDuration ErrorCode = "INVALID_DURATION"
)

// DomainError represents a typed error enriched with contextual data.
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As usage.
func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is reports whether target is a DomainError carrying the same code.
func (e *DomainError) Is(target error) bool {
	var domainErr *DomainError
	if !errors.As(target, &domainErr) {
		return false
	}
	return e.Code == domainErr.Code
}

// ErrInvalidDuration matches any error produced by ParseDuration.
var ErrInvalidDuration = &DomainError{Code: ErrCodeInvalidDuration, Message: "invalid duration"}

func newDurationError(input string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidDuration,
		Message: fmt.Sprintf("unknown duration %q (expected Week, Month or Year)", input),
		Context: map[string]interface{}{"input": input},
	}
}
