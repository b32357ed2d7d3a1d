package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure for callers and for HTTP mapping.
type Kind string

const (
	KindValidation       Kind = "VALIDATION"
	KindNotFound         Kind = "NOT_FOUND"
	KindForbidden        Kind = "FORBIDDEN"
	KindUnauthorized     Kind = "UNAUTHORIZED"
	KindConflict         Kind = "CONFLICT"
	KindInvalidOperation Kind = "INVALID_OPERATION"
	KindInternal         Kind = "INTERNAL"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}

func Wrap(err error, kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// KindOf extracts the kind from err, defaulting to KindInternal for
// anything that is not an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// PublicMessage is the message safe to echo to a client. Internal errors
// get a generic message so storage details never leak.
func PublicMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	return "Internal server error"
}

// HTTPStatus maps each kind to its single HTTP status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindInvalidOperation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
