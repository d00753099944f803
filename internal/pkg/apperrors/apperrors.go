// Package apperrors defines the service's error taxonomy. Every failure a
// handler can surface belongs to one of four kinds; anything else is treated
// as an internal error.
package apperrors

import "errors"

// Kind classifies a domain error.
type Kind int

const (
	// KindValidation marks missing or malformed user input. The operation is
	// aborted with nothing written.
	KindValidation Kind = iota + 1
	// KindPrecondition marks a generative action whose required field is
	// empty. No upstream call is attempted.
	KindPrecondition
	// KindRemote marks a gateway, storage, or network failure. The cause is
	// logged; the user sees a generic localized message. Never retried.
	KindRemote
	// KindNotFound marks a missing or unpublished resource.
	KindNotFound
)

// Error is a typed domain error carrying a user-facing message key.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Validation builds a KindValidation error.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Precondition builds a KindPrecondition error.
func Precondition(message string) *Error {
	return &Error{Kind: KindPrecondition, Message: message}
}

// Remote wraps an upstream failure.
func Remote(message string, cause error) *Error {
	return &Error{Kind: KindRemote, Message: message, Cause: cause}
}

// NotFound builds a KindNotFound error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// KindOf returns the kind of err, or 0 when err is not a domain error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Is reports whether err is a domain error of the given kind.
func Is(err error, kind Kind) bool { return KindOf(err) == kind }
