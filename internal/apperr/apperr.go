package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies every error that crosses a service boundary.
// Handlers map kinds to HTTP status codes; nothing above the
// repository layer inspects raw transport/database errors.
type Kind int

const (
	// Validation: missing or malformed user input.
	Validation Kind = iota
	// NotFound: the record does not exist or belongs to another owner.
	// Both cases produce the same kind so existence never leaks.
	NotFound
	// Auth: invalid credentials or token. Message stays generic.
	Auth
	// Conflict: duplicate email on registration.
	Conflict
	// Upstream: database / blob store / mail failure. Not user-actionable.
	Upstream
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the kind of err, or Upstream for anything untyped.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Upstream
}

// Status maps an error to the HTTP status the handlers respond with.
func Status(err error) int {
	switch KindOf(err) {
	case Validation, Conflict:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Auth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the user-facing message for err. Upstream errors
// collapse to a generic message so internals never reach the client.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != Upstream {
		return e.Msg
	}
	return "internal server error"
}
