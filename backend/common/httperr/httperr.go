// Package httperr defines the status-coded error every service method fails
// with. The error middleware renders it as the wire envelope
// {code, status, message, errors}.
package httperr

import (
	"errors"
	"net/http"

	apperrors "article-hub/backend/common/errors"
)

type Error struct {
	Status  int      // HTTP status code
	Code    string   // machine-readable error code, used in logs
	Message string
	Errors  []string // optional detail messages
	Err     error    // wrapped cause, if any
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(status int, code string, message string, details ...string) *Error {
	return &Error{
		Status:  status,
		Code:    code,
		Message: message,
		Errors:  details,
	}
}

func NotFound(code string, message string) *Error {
	return New(http.StatusNotFound, code, message)
}

func BadRequest(code string, message string, details ...string) *Error {
	return New(http.StatusBadRequest, code, message, details...)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, apperrors.ErrInvalidCredentials, message)
}

func TooManyRequests(message string, details ...string) *Error {
	return New(http.StatusTooManyRequests, apperrors.ErrTooManyRequests, message, details...)
}

func Internal(err error) *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Code:    apperrors.ErrInternalServer,
		Message: "Something went wrong",
		Errors:  []string{},
		Err:     err,
	}
}

// From classifies any error as an *Error, wrapping unknown failures as 500s.
func From(err error) *Error {
	var httpErr *Error
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return Internal(err)
}

// IsStatus reports whether err is an *Error with the given HTTP status.
func IsStatus(err error, status int) bool {
	var httpErr *Error
	return errors.As(err, &httpErr) && httpErr.Status == status
}
