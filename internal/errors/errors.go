package errors

import (
	"errors"
	"fmt"
)

// AppError carries a machine-readable code alongside the message and cause.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError with the given code and message.
func New(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Newf creates a new AppError with a formatted message.
func Newf(code, format string, args ...interface{}) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context, preserving an existing code.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{Code: appErr.Code, Message: message, Cause: err}
	}
	return &AppError{Code: CodeInternalError, Message: message, Cause: err}
}

// Wrapf wraps an error with formatted additional context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code if err is an AppError, otherwise "UNKNOWN".
func GetCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// HasCode reports whether err is an AppError carrying the given code.
func HasCode(err error, code string) bool {
	return GetCode(err) == code
}

// Error codes surfaced by the dataset loader and the query façade.
const (
	CodeFileNotFound    = "FILE_NOT_FOUND"
	CodeMalformedData   = "MALFORMED_DATA"
	CodeUnknownColumn   = "UNKNOWN_COLUMN"
	CodeUnknownCountry  = "UNKNOWN_COUNTRY"
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeConfigInvalid   = "CONFIG_INVALID"
	CodeInternalError   = "INTERNAL_ERROR"
)

// Common error constructors

func FileNotFound(path string) *AppError {
	return Newf(CodeFileNotFound, "dataset file not found: %s", path)
}

func MalformedData(message string) *AppError {
	return New(CodeMalformedData, message)
}

func MalformedDataf(format string, args ...interface{}) *AppError {
	return Newf(CodeMalformedData, format, args...)
}

func UnknownColumn(name string) *AppError {
	return Newf(CodeUnknownColumn, "unknown column: %q", name)
}

func UnknownCountry(name string) *AppError {
	return Newf(CodeUnknownCountry, "unknown country: %q", name)
}

func InvalidArgument(message string) *AppError {
	return New(CodeInvalidArgument, message)
}

func InvalidArgumentf(format string, args ...interface{}) *AppError {
	return Newf(CodeInvalidArgument, format, args...)
}

func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}
