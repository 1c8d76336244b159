// Package apperrors defines the error kinds the service and repository
// layers surface to the presentation boundary.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind sentinels. Match with errors.Is.
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrAuthentication = errors.New("authentication failed")
	ErrNotFound       = errors.New("not found")
	ErrPrediction     = errors.New("prediction failed")
	ErrDataAccess     = errors.New("data access failed")
)

// Error carries a kind sentinel and a caller-facing message.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

func newError(kind error, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// InvalidInput reports a validation failure on caller-supplied data.
func InvalidInput(format string, args ...any) *Error {
	return newError(ErrInvalidInput, format, args...)
}

// Authentication reports a credential mismatch or unknown account.
func Authentication(format string, args ...any) *Error {
	return newError(ErrAuthentication, format, args...)
}

// NotFound reports a missing entity where the caller expected one.
func NotFound(format string, args ...any) *Error {
	return newError(ErrNotFound, format, args...)
}

// Prediction reports a failure of the ML prediction boundary.
func Prediction(format string, args ...any) *Error {
	return newError(ErrPrediction, format, args...)
}

// DataAccess reports a storage-layer failure. Storage failures are never
// masked as empty results.
func DataAccess(format string, args ...any) *Error {
	return newError(ErrDataAccess, format, args...)
}
