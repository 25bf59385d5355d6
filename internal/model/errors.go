package model

import (
	"errors"
	"net/http"
)

// ErrorKind categorizes an operation failure. The kind string is returned to
// callers in the `code` field of error responses.
type ErrorKind string

const (
	KindUnauthenticated  ErrorKind = "unauthenticated"
	KindPermissionDenied ErrorKind = "permission-denied"
	KindInvalidArgument  ErrorKind = "invalid-argument"
	KindInternal         ErrorKind = "internal"
)

// HTTPStatus maps an error kind to its HTTP response status.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindPermissionDenied:
		return http.StatusForbidden
	case KindInvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// AppError is the structured error returned by every operation.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// Unauthenticated reports a request with no caller identity.
func Unauthenticated(message string) error {
	return &AppError{Kind: KindUnauthenticated, Message: message}
}

// PermissionDenied reports a resolved caller that lacks the required role,
// or a forbidden self-action.
func PermissionDenied(message string) error {
	return &AppError{Kind: KindPermissionDenied, Message: message}
}

// InvalidArgument reports missing or empty required payload fields.
func InvalidArgument(message string) error {
	return &AppError{Kind: KindInvalidArgument, Message: message}
}

// Internal wraps a downstream failure (database, identity provider, blob
// store, mail transport, or missing mail configuration).
func Internal(message string, err error) error {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// KindOf extracts the error kind, defaulting to internal for plain errors.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
