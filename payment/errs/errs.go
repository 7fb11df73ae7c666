// Package errs defines the coded errors surfaced by the payment engine.
package errs

import (
	"errors"
	"net/http"
)

type ErrCode int

const (
	OK ErrCode = iota
	// InvalidArgument marks a malformed or disallowed request. Recoverable by
	// correcting input and submitting a fresh request.
	InvalidArgument
	// FailedPrecondition marks a caller bug, such as re-submitting a request
	// that was already submitted.
	FailedPrecondition
	// NotFound marks a reference to an unknown token or transaction.
	NotFound
	// AlreadyExists marks a duplicate record.
	AlreadyExists
	// Unavailable marks an external capability that could not be reached.
	Unavailable
	Internal
)

func (c ErrCode) String() string {
	switch c {
	case OK:
		return "ok"
	case InvalidArgument:
		return "invalid_argument"
	case FailedPrecondition:
		return "failed_precondition"
	case NotFound:
		return "not_found"
	case AlreadyExists:
		return "already_exists"
	case Unavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

type Error struct {
	Code    ErrCode
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Code extracts the ErrCode from err, or Internal for non-coded errors.
// A nil error maps to OK.
func Code(err error) ErrCode {
	if err == nil {
		return OK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Internal
}

// HTTPStatus maps an error to its HTTP response status.
func HTTPStatus(err error) int {
	switch Code(err) {
	case OK:
		return http.StatusOK
	case InvalidArgument:
		return http.StatusBadRequest
	case FailedPrecondition, AlreadyExists:
		return http.StatusConflict
	case NotFound:
		return http.StatusNotFound
	case Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
