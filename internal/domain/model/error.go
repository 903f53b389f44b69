package model

import (
	"errors"
	"fmt"
)

// ErrorCode classifies domain errors so the transport layer can pick a status code.
type ErrorCode string

const (
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	ErrCodeInvalid  ErrorCode = "INVALID"
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// DomainError represents a domain-level error.
type DomainError struct {
	Code    ErrorCode
	Message string
	Issues  []ValidationIssue
	Err     error
}

func (e *DomainError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func NewError(code ErrorCode, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

func WrapError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{Code: code, Message: message, Err: err}
}

// NewValidationError builds an INVALID error carrying the field issues.
func NewValidationError(message string, issues []ValidationIssue) *DomainError {
	return &DomainError{Code: ErrCodeInvalid, Message: message, Issues: issues}
}

// AsDomainError extracts the DomainError from err, if any.
func AsDomainError(err error) (*DomainError, bool) {
	var dErr *DomainError
	ok := errors.As(err, &dErr)
	return dErr, ok
}
