// Package errs defines the error taxonomy shared by every getkit package.
//
// Errors carry a Code so callers (the CLI, the scenario harness) can
// classify failures without matching on message text. All predicates use
// errors.As, so classification survives fmt.Errorf("...: %w") wrapping.
package errs

import (
	"errors"
	"fmt"
)

// Code categorizes an Error.
type Code string

const (
	// CodeInvalidArgument indicates an input violated a stated constraint:
	// a malformed numeral, an unsupported base, mismatched sequence lengths.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// CodeOverflow indicates a result does not fit the fixed-width type
	// the caller asked for.
	CodeOverflow Code = "OVERFLOW"

	// CodeNotFound indicates a registry lookup for an unknown name.
	CodeNotFound Code = "NOT_FOUND"
)

// Error is a classified failure.
type Error struct {
	// Code identifies the error category.
	Code Code

	// Op names the operation that failed (e.g. "fraction", "base").
	Op string

	// Message is a human-readable description.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Invalid creates a CodeInvalidArgument error.
func Invalid(op, format string, args ...any) *Error {
	return &Error{Code: CodeInvalidArgument, Op: op, Message: fmt.Sprintf(format, args...)}
}

// WrapInvalid creates a CodeInvalidArgument error around a cause.
func WrapInvalid(op string, err error, format string, args ...any) *Error {
	return &Error{Code: CodeInvalidArgument, Op: op, Message: fmt.Sprintf(format, args...), Err: err}
}

// Overflow creates a CodeOverflow error.
func Overflow(op, format string, args ...any) *Error {
	return &Error{Code: CodeOverflow, Op: op, Message: fmt.Sprintf(format, args...)}
}

// NotFound creates a CodeNotFound error.
func NotFound(op, format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Op: op, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the Code of the first *Error in err's chain, or "" if none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsInvalidArgument reports whether err is an invalid-argument error.
func IsInvalidArgument(err error) bool {
	return CodeOf(err) == CodeInvalidArgument
}

// IsOverflow reports whether err is an overflow error.
func IsOverflow(err error) bool {
	return CodeOf(err) == CodeOverflow
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return CodeOf(err) == CodeNotFound
}
