package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error so handlers can map it to an HTTP status
// without string matching.
type Kind string

const (
	KindValidation        Kind = "VALIDATION_ERROR"
	KindUnauthorized      Kind = "UNAUTHORIZED"
	KindInvalidCredential Kind = "INVALID_CREDENTIAL"
	KindConflict          Kind = "CONFLICT"
	KindNotFound          Kind = "NOT_FOUND"
	KindMissingFile       Kind = "MISSING_FILE"
	KindFileTooLarge      Kind = "FILE_TOO_LARGE"
	KindUnsupportedType   Kind = "UNSUPPORTED_TYPE"
	KindUpstream          Kind = "UPSTREAM_ERROR"
)

// Reason codes for validation failures, reported per field.
const (
	ReasonTooShort          = "TooShort"
	ReasonTooLong           = "TooLong"
	ReasonInvalidCharacters = "InvalidCharacters"
	ReasonInvalidFormat     = "InvalidFormat"
	ReasonInvalidLength     = "InvalidLength"
	ReasonMissingCredential = "MissingCredential"
)

// Error is the domain error type carried from services up to handlers.
type Error struct {
	Kind   Kind
	Field  string // set for validation errors
	Reason string // set for validation errors
	Msg    string
	Err    error // wrapped upstream cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus returns the status code a handler should respond with.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindMissingFile:
		return http.StatusBadRequest
	case KindUnauthorized, KindInvalidCredential:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindFileTooLarge:
		return http.StatusRequestEntityTooLarge
	case KindUnsupportedType:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}

// Validation builds a field-level validation error.
func Validation(field, reason, msg string) *Error {
	return &Error{Kind: KindValidation, Field: field, Reason: reason, Msg: msg}
}

// Unauthorized builds a missing/invalid-credential error.
func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Msg: msg}
}

// InvalidCredential is returned when the current password does not match
// on an email change.
func InvalidCredential(msg string) *Error {
	return &Error{Kind: KindInvalidCredential, Msg: msg}
}

// Conflict is returned when a unique constraint (e.g. email) is violated.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Msg: msg}
}

// NotFound is returned when the acted-upon user record does not exist.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// MissingFile is returned when an avatar upload carries no file part.
func MissingFile(msg string) *Error {
	return &Error{Kind: KindMissingFile, Msg: msg}
}

// FileTooLarge is returned when an uploaded file exceeds the size policy.
func FileTooLarge(msg string) *Error {
	return &Error{Kind: KindFileTooLarge, Msg: msg}
}

// UnsupportedType is returned when an uploaded file is not an allowed image type.
func UnsupportedType(msg string) *Error {
	return &Error{Kind: KindUnsupportedType, Msg: msg}
}

// Upstream wraps a media-host or persistence transport failure. It is
// surfaced to the caller as a server error and never retried here.
func Upstream(msg string, err error) *Error {
	return &Error{Kind: KindUpstream, Msg: msg, Err: err}
}

// As extracts an *Error from err, if it carries one.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
