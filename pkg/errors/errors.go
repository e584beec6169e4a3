package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Argument resolution errors
	ErrInvalidMode  ErrorCode = "INVALID_MODE"
	ErrInvalidUser  ErrorCode = "INVALID_USER"
	ErrInvalidGroup ErrorCode = "INVALID_GROUP"

	// Source inspection errors
	ErrSourceNotFound   ErrorCode = "SOURCE_NOT_FOUND"
	ErrSourceIsDir      ErrorCode = "SOURCE_IS_DIR"
	ErrSourceNotRegular ErrorCode = "SOURCE_NOT_REGULAR"
	ErrSourceStat       ErrorCode = "SOURCE_STAT"
	ErrSourceOpen       ErrorCode = "SOURCE_OPEN"

	// Installation errors
	ErrDirCreate     ErrorCode = "DIR_CREATE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrTmpCreate     ErrorCode = "TMP_CREATE"
	ErrFileWrite     ErrorCode = "FILE_WRITE"
	ErrChmod         ErrorCode = "CHMOD"
	ErrChown         ErrorCode = "CHOWN"
	ErrRename        ErrorCode = "RENAME"
)

// InstlError represents a structured error with a stable code. The code
// is for tests and logs; Error renders only the human-readable message
// chain, which is what ends up on the fatal line.
type InstlError struct {
	Code    ErrorCode
	Message string
	Wrapped error
}

// Error implements the error interface
func (e *InstlError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}

// Unwrap implements the errors.Unwrap interface
func (e *InstlError) Unwrap() error {
	return e.Wrapped
}

// Is matches two InstlErrors by code
func (e *InstlError) Is(target error) bool {
	var targetErr *InstlError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new InstlError with the given code and message
func New(code ErrorCode, message string) *InstlError {
	return &InstlError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new InstlError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *InstlError {
	return &InstlError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error with an InstlError
func Wrap(err error, code ErrorCode, message string) *InstlError {
	if err == nil {
		return nil
	}
	return &InstlError{
		Code:    code,
		Message: message,
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *InstlError {
	if err == nil {
		return nil
	}
	return &InstlError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Wrapped: err,
	}
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var instlErr *InstlError
	if errors.As(err, &instlErr) {
		return instlErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if
// the error is not an InstlError
func GetErrorCode(err error) ErrorCode {
	var instlErr *InstlError
	if errors.As(err, &instlErr) {
		return instlErr.Code
	}
	return ErrUnknown
}
