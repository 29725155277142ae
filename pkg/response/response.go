package response

import (
	"errors"
	"net/http"
)

// Error is a domain error tagged with the HTTP status it maps to.
// Cause carries the upstream failure, if any, and is reported in Error().
type Error struct {
	Code  int
	Err   error
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Err.Error() + ": " + e.Cause.Error()
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches on code and base message so a sentinel still matches after WithCause.
func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, err string) error {
	return &Error{Code: code, Err: errors.New(err)}
}

// WithCause attaches cause to a sentinel created by NewError.
func WithCause(sentinel error, cause error) error {
	var e *Error
	if !errors.As(sentinel, &e) {
		return sentinel
	}
	return &Error{Code: e.Code, Err: e.Err, Cause: cause}
}

// StatusOf reports the HTTP status carried by err, or 500 for untagged errors.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return http.StatusInternalServerError
}

func IsValidation(err error) bool {
	status := StatusOf(err)
	return status >= 400 && status < 500 && status != http.StatusNotFound
}

func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

func IsUpstream(err error) bool {
	return StatusOf(err) >= 500
}
