package goerror

import (
	"fmt"
	"net/http"
)

// Type classifies errors into high-level buckets used by the application.
type Type int

const (
	// TypeServer represents server-side failures.
	TypeServer Type = iota
	// TypeValidation represents input validation failures.
	TypeValidation
)

// String returns the string representation of the error type.
func (t Type) String() string {
	switch t {
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	case TypeServer:
		return "ERROR_TYPE_SERVER"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code is a stable identifier used for mapping errors to HTTP status codes.
type Code int

const (
	// CodeInternal represents an internal or unspecified error.
	CodeInternal Code = iota
	// CodeParse indicates a malformed or unsupported request body.
	CodeParse
	// CodeConfig indicates missing or incomplete transport configuration.
	CodeConfig
	// CodeSend indicates a mail transport failure.
	CodeSend
	// CodeValidation indicates one or more field rule violations.
	CodeValidation
)

// String returns the string representation of the error code.
func (c Code) String() string {
	switch c {
	case CodeParse:
		return "ERROR_CODE_PARSE"
	case CodeConfig:
		return "ERROR_CODE_CONFIG"
	case CodeSend:
		return "ERROR_CODE_SEND"
	case CodeValidation:
		return "ERROR_CODE_VALIDATION"
	case CodeInternal:
		return "ERROR_CODE_INTERNAL"
	default:
		return "ERROR_CODE_INTERNAL"
	}
}

// internalMessage is the only detail the client sees for server-side failures
// unless the debug flag is set.
const internalMessage = "Internal server error. Please try again."

// Error is a structured error used across the application.
//
// It wraps an underlying error while also carrying a user-facing message,
// a high-level type, and a stable error code.
type Error struct {
	err     error
	msg     string
	errType Type
	code    Code
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return e.err.Error()
	}

	if e.msg != "" {
		return e.msg
	}

	if e.errType == TypeValidation {
		return "Validation violation"
	}

	return "Internal error"
}

// String returns a verbose representation of the error for debugging/logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Error Type: %s, Code: %s, Message: %s, Underlying Error: %v",
		e.errType.String(),
		e.code.String(),
		e.msg,
		e.err,
	)
}

// Msg returns the user-facing error message.
func (e *Error) Msg() string {
	return e.msg
}

// Type returns the high-level error type.
func (e *Error) Type() Type {
	return e.errType
}

// Code returns the stable error code.
func (e *Error) Code() Code {
	return e.code
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// StatusCode maps the error code to an HTTP status code.
//
// Only validation failures return early with their own status; parse,
// configuration, send and internal errors all surface as 500.
func (e *Error) StatusCode() int {
	if e.code == CodeValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func new(err error, msg string, et Type, code Code) error {
	return &Error{err: err, msg: msg, errType: et, code: code}
}

// NewServer creates an internal server error wrapping err.
func NewServer(err error) error {
	return new(err, internalMessage, TypeServer, CodeInternal)
}

// NewParse creates a server error for a malformed or unsupported request body.
func NewParse(err error) error {
	return new(err, internalMessage, TypeServer, CodeParse)
}

// NewConfig creates a server error for missing transport configuration.
func NewConfig(err error) error {
	return new(err, internalMessage, TypeServer, CodeConfig)
}

// NewSend creates a server error for a mail transport failure.
func NewSend(err error) error {
	return new(err, internalMessage, TypeServer, CodeSend)
}

// NewValidation creates a validation error wrapping the field errors in err.
func NewValidation(err error) error {
	return new(err, "Validation errors", TypeValidation, CodeValidation)
}
