package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeInvalid      ErrorCode = "INVALID"
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInternal     ErrorCode = "INTERNAL"
)

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain errors.
var (
	ErrMentorNotFound        = NewError(ErrCodeNotFound, "mentor not found")
	ErrMenteeNotFound        = NewError(ErrCodeNotFound, "mentee not found")
	ErrActivityNotFound      = NewError(ErrCodeNotFound, "activity not found")
	ErrSessionNotFound       = NewError(ErrCodeNotFound, "no active session")
	ErrInvalidCredentials    = NewError(ErrCodeUnauthorized, "invalid credentials")
	ErrDuplicateRegistration = NewError(ErrCodeConflict, "registration number already in use")
	ErrActivityNotDraft      = NewError(ErrCodeInvalid, "activity is no longer a draft")
	ErrInvalidTransition     = NewError(ErrCodeInvalid, "status transition not allowed")
	ErrNotAssessed           = NewError(ErrCodeInvalid, "mentee has no maturity level yet")
	ErrInvalidPayload        = NewError(ErrCodeInvalid, "invalid payload")
)

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
