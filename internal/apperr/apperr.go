package apperr

import (
	"fmt"
	"net/http"
)

// Error is the classified failure carried from the point of detection to
// the response writer. Code doubles as the HTTP status and the body is the
// struct serialized as-is.
type Error struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Msg)
}

func BadRequest(msg string) *Error {
	return &Error{Code: http.StatusBadRequest, Msg: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Code: http.StatusUnauthorized, Msg: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Code: http.StatusForbidden, Msg: msg}
}

func NotFound(msg string) *Error {
	return &Error{Code: http.StatusNotFound, Msg: msg}
}

func InternalServerError(msg string) *Error {
	return &Error{Code: http.StatusInternalServerError, Msg: msg}
}
