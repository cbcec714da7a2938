// Package apperror defines the operational errors surfaced over HTTP.
package apperror

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Kind classifies an AppError.
type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindConflict   Kind = "CONFLICT"
	KindAuth       Kind = "UNAUTHORIZED"
	KindForbidden  Kind = "FORBIDDEN"
	KindNotFound   Kind = "NOT_FOUND"
	KindUpload     Kind = "UPLOAD"
	KindInternal   Kind = "INTERNAL"
)

var statusByKind = map[Kind]int{
	KindValidation: http.StatusBadRequest,
	KindConflict:   http.StatusBadRequest,
	KindAuth:       http.StatusUnauthorized,
	KindForbidden:  http.StatusForbidden,
	KindNotFound:   http.StatusNotFound,
	KindUpload:     http.StatusBadRequest,
	KindInternal:   http.StatusInternalServerError,
}

const defaultMessage = "Internal Server Error"

// AppError is an operational error carrying the HTTP status it maps to.
type AppError struct {
	Kind       Kind
	StatusCode int
	Message    string
	cause      error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, errors.Cause(e.cause))
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.cause }

// Stack returns the stack trace recorded when the error was created.
func (e *AppError) Stack() string {
	if e.cause == nil {
		return ""
	}
	return fmt.Sprintf("%+v", e.cause)
}

func newError(kind Kind, message string, cause error) *AppError {
	if cause == nil {
		cause = errors.New(message)
	} else {
		cause = errors.WithStack(cause)
	}
	return &AppError{
		Kind:       kind,
		StatusCode: statusByKind[kind],
		Message:    message,
		cause:      cause,
	}
}

func Validation(message string) *AppError { return newError(KindValidation, message, nil) }

func Conflict(message string) *AppError { return newError(KindConflict, message, nil) }

func Unauthorized(message string) *AppError { return newError(KindAuth, message, nil) }

func Forbidden(message string) *AppError { return newError(KindForbidden, message, nil) }

func NotFound(message string) *AppError { return newError(KindNotFound, message, nil) }

// Upload reports a failed call to the remote asset host.
func Upload(message string, cause error) *AppError { return newError(KindUpload, message, cause) }

// Internal wraps an uncategorized failure. The cause's text becomes the message.
func Internal(cause error) *AppError {
	if cause == nil {
		return newError(KindInternal, defaultMessage, nil)
	}
	return newError(KindInternal, cause.Error(), cause)
}

// As reports whether err is, or wraps, an *AppError.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// From normalizes any error into an *AppError, filling in the default
// status and message when they are missing.
func From(err error) *AppError {
	appErr, ok := As(err)
	if !ok {
		return Internal(err)
	}
	if appErr.StatusCode == 0 {
		appErr.StatusCode = http.StatusInternalServerError
	}
	if appErr.Message == "" {
		appErr.Message = defaultMessage
	}
	return appErr
}
