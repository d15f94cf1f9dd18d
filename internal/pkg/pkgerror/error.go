package pkgerror

import (
	"fmt"
	"maps"
	"net/http"
)

// Type classifies errors into high-level buckets used by the application.
type Type int

const (
	TypeServer     Type = iota // Server-side errors (e.g., rendering or encoding failures).
	TypeBusiness               // Business logic errors (e.g., unknown column selections).
	TypeValidation             // Validation errors (e.g., unreadable uploads).
)

func (t Type) String() string {
	switch t {
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	case TypeBusiness:
		return "ERROR_TYPE_BUSINESS"
	case TypeServer:
		return "ERROR_TYPE_SERVER"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code is a stable identifier used for mapping errors to HTTP status codes.
type Code int

const (
	CodeInternal         Code = iota // Internal or unspecified error.
	CodeInvalidFormat                // Malformed request body.
	CodeInvalidInput                 // Input that was read but cannot be used.
	CodeNotFound                     // Resource not found.
	CodeConflict                     // Conflicting state.
	CodeUnsupportedMedia             // Uploaded file type is not accepted.
	CodeTooLarge                     // Upload exceeds the configured size limit.
	CodeTimeout                      // Operation timeout.
)

func (c Code) String() string {
	switch c {
	case CodeInvalidFormat:
		return "ERROR_CODE_INVALID_FORMAT"
	case CodeInvalidInput:
		return "ERROR_CODE_INVALID_INPUT"
	case CodeNotFound:
		return "ERROR_CODE_NOT_FOUND"
	case CodeConflict:
		return "ERROR_CODE_CONFLICT"
	case CodeUnsupportedMedia:
		return "ERROR_CODE_UNSUPPORTED_MEDIA"
	case CodeTooLarge:
		return "ERROR_CODE_TOO_LARGE"
	case CodeTimeout:
		return "ERROR_CODE_TIMEOUT"
	default:
		return "ERROR_CODE_INTERNAL"
	}
}

// Error is a structured error used across the application.
//
// It wraps an underlying error while carrying a user-facing message, a
// high-level type, a stable code and optional per-field details that are
// echoed back to clients.
type Error struct {
	err     error
	msg     string
	errType Type
	code    Code
	fields  map[string]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return e.err.Error()
	}

	if e.msg != "" {
		return e.msg
	}

	switch e.errType {
	case TypeValidation:
		return "Validation violation"
	case TypeBusiness:
		return "Logical business not meet with requirement"
	case TypeServer:
		return "Internal error"
	default:
		return "Unknown error"
	}
}

// String returns a verbose representation of the error for debugging/logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Error Type: %s, Code: %s, Message: %s, Fields: %v, Underlying Error: %v",
		e.errType.String(),
		e.code.String(),
		e.msg,
		e.fields,
		e.err,
	)
}

// Msg returns the user-facing error message, if set.
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

// Fields returns a copy of the per-field details attached to the error.
func (e *Error) Fields() map[string]string {
	if len(e.fields) == 0 {
		return nil
	}
	return maps.Clone(e.fields)
}

// WithField attaches a detail (for example the offending column) and returns the error.
func (e *Error) WithField(key, value string) *Error {
	if e.fields == nil {
		e.fields = make(map[string]string)
	}
	e.fields[key] = value
	return e
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// StatusCode maps the error code to an HTTP status code.
func (e *Error) StatusCode() int {
	switch e.code {
	case CodeInvalidFormat:
		return http.StatusBadRequest
	case CodeInvalidInput:
		return http.StatusUnprocessableEntity
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeUnsupportedMedia:
		return http.StatusUnsupportedMediaType
	case CodeTooLarge:
		return http.StatusRequestEntityTooLarge
	case CodeTimeout:
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

func new(err error, msg string, et Type, code Code) *Error {
	return &Error{err: err, msg: msg, errType: et, code: code}
}

// NewServer creates a server-type error with the provided error.
func NewServer(err error) error {
	return new(err, "Internal server error", TypeServer, CodeInternal)
}

// NewInvalidInput creates a validation error for input that could be read but not used.
func NewInvalidInput(err error) error {
	return new(err, "validation error", TypeValidation, CodeInvalidInput)
}

// NewInvalidFormat creates a validation error for an invalid request body format.
func NewInvalidFormat() error {
	return new(nil, "invalid request body", TypeValidation, CodeInvalidFormat)
}

// NewUnsupportedMedia creates a validation error for an upload whose type is not accepted.
func NewUnsupportedMedia(err error) *Error {
	return new(err, "unsupported file type", TypeValidation, CodeUnsupportedMedia)
}

// NewTooLarge creates a validation error for an upload above the size limit.
func NewTooLarge(limit int64) error {
	return new(nil, fmt.Sprintf("upload exceeds %d bytes", limit), TypeValidation, CodeTooLarge)
}

// NewUnprocessable creates a validation error carrying a user-facing message.
func NewUnprocessable(err error, msg string) *Error {
	return new(err, msg, TypeValidation, CodeInvalidInput)
}
