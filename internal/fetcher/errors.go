package fetcher

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error that occurred while building a report
type ErrorType string

const (
	// ErrorTypeTransport indicates the request failed or returned an undeliverable status code
	ErrorTypeTransport ErrorType = "transport"
	// ErrorTypeParse indicates the response was received but an expected field was absent or malformed
	ErrorTypeParse ErrorType = "parse"
	// ErrorTypeInvalidArgument indicates an unsupported coin type was requested
	ErrorTypeInvalidArgument ErrorType = "invalid_argument"
)

// FetchError represents a structured error from a fetch operation
type FetchError struct {
	Type       ErrorType
	StatusCode int
	Message    string
	Cause      error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Type, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s error: %s", e.Type, msg)
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// NewNetworkError creates a transport error for a request that never produced a response
func NewNetworkError(cause error) *FetchError {
	return &FetchError{
		Type:    ErrorTypeTransport,
		Message: "network request failed",
		Cause:   cause,
	}
}

// NewStatusError creates a transport error for an undeliverable HTTP status code
func NewStatusError(statusCode int) *FetchError {
	return &FetchError{
		Type:       ErrorTypeTransport,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("requesting the api resulted in status code %d", statusCode),
	}
}

// NewParseError creates a parse error
func NewParseError(message string, cause error) *FetchError {
	return &FetchError{
		Type:    ErrorTypeParse,
		Message: message,
		Cause:   cause,
	}
}

// NewInvalidArgumentError creates an invalid argument error
func NewInvalidArgumentError(message string) *FetchError {
	return &FetchError{
		Type:    ErrorTypeInvalidArgument,
		Message: message,
	}
}

// IsTransport reports whether any error in err's chain is a transport error
func IsTransport(err error) bool {
	return hasType(err, ErrorTypeTransport)
}

// IsParse reports whether any error in err's chain is a parse error
func IsParse(err error) bool {
	return hasType(err, ErrorTypeParse)
}

// IsInvalidArgument reports whether any error in err's chain is an invalid argument error
func IsInvalidArgument(err error) bool {
	return hasType(err, ErrorTypeInvalidArgument)
}

func hasType(err error, t ErrorType) bool {
	var fe *FetchError
	if !errors.As(err, &fe) {
		return false
	}
	return fe.Type == t
}
