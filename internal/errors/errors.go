package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code categorizes an error so callers can decide how to surface it
type Code string

const (
	CodeUnknown          Code = "unknown"
	CodeInvalidArgument  Code = "invalid_argument"
	CodeNotFound         Code = "not_found"
	CodeAlreadyExists    Code = "already_exists"
	CodePermissionDenied Code = "permission_denied"
	CodeUnauthenticated  Code = "unauthenticated"
	CodeInternal         Code = "internal"

	// CodeUnavailable covers transport failures, 5xx responses and busy resources
	CodeUnavailable Code = "unavailable"

	// CodeValidation is a client-computed, human-readable rejection
	CodeValidation Code = "validation"
)

// GenericNetworkMessage is shown when the server gave us nothing better
const GenericNetworkMessage = "Unable to connect to the server. Please try again later."

// Error is an application error with code and metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context, keeping the code of a wrapped *Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return &Error{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(appErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func Internal(message string) *Error {
	return New(CodeInternal, message)
}

func Unavailable(message string) *Error {
	return New(CodeUnavailable, message)
}

func Unauthenticated(message string) *Error {
	return New(CodeUnauthenticated, message)
}

func Validation(message string) *Error {
	return New(CodeValidation, message)
}

func Validationf(format string, args ...any) *Error {
	return Newf(CodeValidation, format, args...)
}

// FromStatus maps an HTTP response status to an error code.
// An empty message falls back to GenericNetworkMessage.
func FromStatus(status int, message string) *Error {
	if message == "" {
		message = GenericNetworkMessage
	}

	code := CodeUnknown
	switch {
	case status == http.StatusNotFound:
		code = CodeNotFound
	case status == http.StatusUnauthorized:
		code = CodeUnauthenticated
	case status == http.StatusForbidden:
		code = CodePermissionDenied
	case status == http.StatusConflict:
		code = CodeAlreadyExists
	case status >= 400 && status < 500:
		code = CodeInvalidArgument
	case status >= 500:
		code = CodeUnavailable
	}

	return New(code, message).WithMeta("status", status)
}

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

func IsValidation(err error) bool {
	return Is(err, CodeValidation)
}

func IsUnavailable(err error) bool {
	return Is(err, CodeUnavailable)
}

func IsUnauthenticated(err error) bool {
	return Is(err, CodeUnauthenticated)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Meta
	}
	return nil
}

// UserMessage returns the string a user should see for err.
// It is the innermost *Error message, so wrapping context added by services
// never leaks into the UI.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var msg string
	for cur := err; cur != nil; cur = errors.Unwrap(cur) {
		if appErr, ok := cur.(*Error); ok {
			msg = appErr.Message
		}
	}
	if msg == "" {
		return GenericNetworkMessage
	}
	return msg
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
