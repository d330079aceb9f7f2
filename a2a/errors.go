package a2a

import (
	"fmt"
)

// JSONRPCError represents a JSON-RPC error object.
type JSONRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// --- Standard JSON-RPC Error Codes ---
// See: https://www.jsonrpc.org/specification#error_object

const (
	// JSON-RPC Defined Codes
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603

	// A2A Specific Error Codes (within the server error range)
	CodeTaskNotFound      = -32001
	CodeInvalidTransition = -32002
)

// Error represents an A2A error with a corresponding JSON-RPC code.
type Error struct {
	Code    int    // The JSON-RPC error code.
	Message string // A human-readable error message.
	Data    any    // Optional additional data.
	cause   error  // Optional underlying error.
}

// Error implements the standard Go error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("a2a error: code=%d, message=%s, cause=%v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("a2a error: code=%d, message=%s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// ToJSONRPCError converts an A2A Error to a JSONRPCError struct.
// The wrapped cause is deliberately not exposed on the wire.
func (e *Error) ToJSONRPCError() *JSONRPCError {
	return &JSONRPCError{
		Code:    e.Code,
		Message: e.Message,
		Data:    e.Data,
	}
}

// NewError creates a new A2A Error.
func NewError(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NewErrorf creates a new A2A Error with a formatted message.
func NewErrorf(code int, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WrapError creates a new A2A Error that wraps an existing error.
func WrapError(cause error, code int, message string) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// --- Predefined Errors ---

func ErrParseError(cause error) *Error {
	return WrapError(cause, CodeParseError, "Parse error")
}

func ErrInvalidRequest(message string) *Error {
	if message == "" {
		message = "Invalid Request"
	}
	return NewError(CodeInvalidRequest, message)
}

func ErrMethodNotFound(method string) *Error {
	return NewErrorf(CodeMethodNotFound, "Method not found: %s", method)
}

func ErrInvalidParams(message string) *Error {
	if message == "" {
		message = "Invalid params"
	}
	return NewError(CodeInvalidParams, message)
}

func ErrInternalError(cause error) *Error {
	return WrapError(cause, CodeInternalError, "Internal error")
}

func ErrTaskNotFound(taskID string) *Error {
	return NewErrorf(CodeTaskNotFound, "Task not found: %s", taskID)
}

func ErrInvalidTransition(from, to TaskState) *Error {
	return NewErrorf(CodeInvalidTransition, "Invalid task state transition: %s -> %s", from, to)
}
