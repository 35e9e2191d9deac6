package apierr

import (
	"fmt"
	"net/http"
)

// Error is a service-level error that already knows the HTTP status it
// should surface as.
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

// Validation marks a missing or malformed request field.
func Validation(code string, err error) *Error {
	return New(http.StatusBadRequest, code, err)
}

// Conflict marks a uniqueness violation, e.g. an already-enrolled pair.
func Conflict(code string, err error) *Error {
	return New(http.StatusConflict, code, err)
}
