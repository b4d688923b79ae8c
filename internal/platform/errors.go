package platform

import (
	"errors"
)

var (
	// ErrInvalidInput is a kind of errors caused by missing or malformed request input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is a kind of errors returned when nothing could be scraped for the product.
	ErrNotFound = errors.New("not found")
	// ErrUpstream is a kind of errors returned when external model service or its response failed.
	ErrUpstream = errors.New("upstream failure")
	// ErrNotConfigured is a kind of errors returned when required service credentials are missing.
	ErrNotConfigured = errors.New("not configured")
)

// Error is an error which can be presented to API clients.
// It matches its Kind and wrapped Err with errors.Is.
type Error struct {
	Kind    error
	Message string
	Details string
	Err     error
}

// NewError returns new Error of provided kind.
func NewError(kind error, message string, err error) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// WithDetails sets error details and returns the error.
func (e *Error) WithDetails(details string) *Error {
	e.Details = details
	return e
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns error kind and wrapped error.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
