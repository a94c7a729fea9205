package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Error is the application error carried from services up to the HTTP
// boundary. Status decides the response code; Code and Message form the
// client-visible payload. Fields names the offending request fields on
// validation failures. Err keeps the underlying cause for logs only.
type Error struct {
	Code    string
	Message string
	Status  int
	Fields  []string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	if len(e.Fields) > 0 {
		return fmt.Sprintf("[%s] %s (%s)", e.Code, e.Message, strings.Join(e.Fields, ", "))
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation builds a 400 error naming every offending field.
func Validation(code, message string, fields ...string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Status:  http.StatusBadRequest,
		Fields:  fields,
	}
}

// NotFound builds a 404 error.
func NotFound(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// Conflict builds a 409 error for uniqueness violations.
func Conflict(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Status:  http.StatusConflict,
	}
}

// Unauthorized builds a 401 error.
func Unauthorized(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Status:  http.StatusUnauthorized,
	}
}

// Internal wraps an unexpected failure. The cause stays in logs; the
// client only ever sees the generic message.
func Internal(message string, err error) *Error {
	return &Error{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// FieldsOf extracts the offending field names from a validation error,
// sorted for stable output. Non-validation errors yield nothing.
func FieldsOf(err error) []string {
	var ve validation.Errors
	if !errors.As(err, &ve) {
		return nil
	}
	fields := make([]string, 0, len(ve))
	for f := range ve {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// From extracts an *Error from err, or wraps it as a generic internal
// error so handler code never leaks detail by accident.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("Something went wrong on our end", err)
}
