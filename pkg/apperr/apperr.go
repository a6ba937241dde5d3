package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error so the HTTP boundary can pick a status
// code without string matching.
type Kind int

const (
	KindServer Kind = iota
	KindValidation
	KindNotFound
	KindNotAuthorized
	KindDuplicate
	KindAuthentication
)

// Error is the error type returned by application services. Err optionally
// carries the underlying cause for logging; Message is safe for clients.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error     { return &Error{Kind: KindValidation, Message: msg} }
func NotFound(msg string) *Error       { return &Error{Kind: KindNotFound, Message: msg} }
func NotAuthorized(msg string) *Error  { return &Error{Kind: KindNotAuthorized, Message: msg} }
func Duplicate(msg string) *Error      { return &Error{Kind: KindDuplicate, Message: msg} }
func Authentication(msg string) *Error { return &Error{Kind: KindAuthentication, Message: msg} }

// Server wraps an unexpected failure (store errors and the like).
func Server(msg string, err error) *Error {
	return &Error{Kind: KindServer, Message: msg, Err: err}
}

// KindOf returns the Kind of err, or KindServer for anything that is not an
// *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindServer
}

// MessageOf returns the client-safe message of err, falling back to a generic
// one for untyped errors.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "server error"
}

// HTTPStatus maps an error Kind onto the response status used at the HTTP
// boundary.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindDuplicate:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindNotAuthorized:
		return http.StatusUnauthorized
	case KindAuthentication:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
