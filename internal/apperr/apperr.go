// Package apperr provides structured domain errors with machine-readable
// kinds, so handlers can map failures to HTTP status codes without matching
// on message strings.
package apperr

import (
	"errors"
	"net/http"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// KindNotFound covers absent records and sessions not owned by the
	// caller; the two are deliberately indistinguishable.
	KindNotFound Kind = "NOT_FOUND"

	// KindInvalidState marks an operation that is not legal for the
	// record's current status.
	KindInvalidState Kind = "INVALID_STATE"

	// KindInvalidInput marks validation failures on the request payload.
	KindInvalidInput Kind = "INVALID_INPUT"

	// KindExhausted signals that a bank has no undrawn questions left.
	KindExhausted Kind = "EXHAUSTED"

	// KindConflict marks writes that collide with existing state, such as
	// duplicate submissions or display-name collisions.
	KindConflict Kind = "CONFLICT"

	// KindInternal is everything else; the message is not client-safe.
	KindInternal Kind = "INTERNAL"
)

// Error is the domain error type.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func InvalidState(message string) *Error {
	return &Error{Kind: KindInvalidState, Message: message}
}

func InvalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

func Exhausted(message string) *Error {
	return &Error{Kind: KindExhausted, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Internal wraps an unexpected failure, typically a storage error.
func Internal(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: message, Cause: cause}
}

// KindOf extracts the kind from any error, defaulting to KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error to the status code handlers should return.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindInvalidState, KindConflict, KindExhausted:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
