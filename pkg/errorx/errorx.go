// Package errorx provides coded business errors and their mapping to
// HTTP status codes. Errors are constructed once at the point of
// detection and carried unchanged to the handler layer.
package errorx

import (
	"errors"
	"fmt"
	"net/http"
)

// CodeError is a business error with an application error code.
// It implements the error interface, supports wrapping an underlying
// cause, and is recognized by errors.Is/errors.As.
type CodeError struct {
	Code  int    // business error code
	Msg   string // human-readable message
	cause error  // wrapped underlying error
}

// Error implements the standard error interface. When a cause is
// present the message is "msg: cause".
func (e *CodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

// Unwrap exposes the cause to errors.Is/errors.As.
func (e *CodeError) Unwrap() error {
	return e.cause
}

// New creates a CodeError without a cause.
func New(code int, msg string) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  msg,
	}
}

// Newf creates a CodeError with a formatted message.
func Newf(code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap attaches a business code and message to an underlying error.
// Usage: errorx.Wrap(err, errorx.CodeNotFound, "request not found")
func Wrap(err error, code int, msg string) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   msg,
		cause: err,
	}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// GetCode extracts the business code from an error, defaulting to
// CodeInternal for plain errors.
func GetCode(err error) int {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Code
	}
	return CodeInternal
}

// Business error codes.
const (
	CodeSuccess         = 1000 // not an error
	CodeInvalidParam    = 1001 // malformed or missing input
	CodeInvalidStatus   = 1002 // request not in a state that allows the transition
	CodeUnitUnavailable = 1003 // reservation approval on an unavailable unit
	CodeNotFound        = 1004 // entity does not exist
	CodeUnauthorized    = 1005 // missing/invalid credentials
	CodeForbidden       = 1006 // authenticated but lacking the required role
	CodeQueryFailed     = 1007 // read against the store failed
	CodeConflict        = 1008 // duplicate registration and the like
	CodeCacheError      = 1009 // redis operation failed
	CodeDBError         = 1010 // write against the store failed
	CodeInternal        = 1011 // catch-all
)

// httpStatusByCode is the fixed mapping from business codes to HTTP
// status codes surfaced at the API boundary.
var httpStatusByCode = map[int]int{
	CodeInvalidParam:    http.StatusBadRequest,
	CodeInvalidStatus:   http.StatusBadRequest,
	CodeUnitUnavailable: http.StatusBadRequest,
	CodeNotFound:        http.StatusNotFound,
	CodeUnauthorized:    http.StatusUnauthorized,
	CodeForbidden:       http.StatusForbidden,
	CodeConflict:        http.StatusConflict,
	CodeQueryFailed:     http.StatusInternalServerError,
	CodeCacheError:      http.StatusInternalServerError,
	CodeDBError:         http.StatusInternalServerError,
	CodeInternal:        http.StatusInternalServerError,
}

// HTTPStatus returns the HTTP status code for an error. Unknown codes
// and plain errors map to 500.
func HTTPStatus(err error) int {
	if status, ok := httpStatusByCode[GetCode(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Predefined reusable instances.
var (
	ErrInvalidParam = New(CodeInvalidParam, "invalid request parameters")
	ErrInternal     = New(CodeInternal, "internal server error")
)

// IsNotFound reports whether an error is a not-found error, including
// gorm's record-not-found surfaced through wrapping.
func IsNotFound(err error) bool {
	var codeErr *CodeError
	if errors.As(err, &codeErr) && codeErr.Code == CodeNotFound {
		return true
	}
	return err != nil && err.Error() == "record not found"
}
