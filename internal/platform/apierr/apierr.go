package apierr

import (
	"fmt"
	"net/http"
)

// Error carries the HTTP status a failure should map to. Handlers are the
// only place that translate it into a response.
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func BadRequest(msg string) *Error {
	return New(http.StatusBadRequest, "bad_request", fmt.Errorf("%s", msg))
}

func Unauthorized(msg string) *Error {
	return New(http.StatusUnauthorized, "unauthorized", fmt.Errorf("%s", msg))
}

func NotFound(msg string) *Error {
	return New(http.StatusNotFound, "not_found", fmt.Errorf("%s", msg))
}

func Internal(err error) *Error {
	return New(http.StatusInternalServerError, "internal", err)
}
