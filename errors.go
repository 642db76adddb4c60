package catscrape

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to describe classes of failure rather than specific
// errors. EUNPROCESSABLE marks pages or rows whose structure no longer
// matches the catalog's layout assumptions.
const (
	EINVALID       = "invalid"
	ENOTFOUND      = "not_found"
	EUNPROCESSABLE = "unprocessable"
	EINTERNAL      = "internal"
)

// Error represents an application-level error with a machine-readable code
// and a human-readable message.
type Error struct {
	// Code is one of the application error codes above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("catscrape error: code=%s message=%s", e.Code, e.Message)
}

// Errorf returns an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps err looking for an application Error and returns its
// code. Returns an empty string for nil errors and EINTERNAL for non-domain
// errors.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps err looking for an application Error and returns its
// message. Returns an empty string for nil errors and a generic message for
// non-domain errors.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
