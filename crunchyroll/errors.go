package crunchyroll

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid crunchyroll configuration")
	// ErrUnsupportedKind indicates an operation that does not apply to the entity kind
	ErrUnsupportedKind = errors.New("unsupported media kind")
	// ErrNoExecutor indicates a follow-up call on an entity that was never hydrated
	ErrNoExecutor = errors.New("entity has no executor")
)

// RequestError is a transport level failure (connection, TLS, timeout, cancellation).
type RequestError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface
func (e *RequestError) Error() string {
	return fmt.Sprintf("crunchyroll request %s %s failed: %v", e.Method, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// DecodeError means the response could not be turned into the requested type:
// a non-success status, a body that does not match the schema, or a search
// bucket with an unrecognized result type.
type DecodeError struct {
	Message    string
	URL        string
	StatusCode int
	Body       string
	// Field and Value are set when the JSON decoder names the offending field.
	Field  string
	Value  string
	Offset int64
	Err    error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	msg := e.Message
	if e.Field != "" {
		if e.Value != "" {
			msg = fmt.Sprintf("%s (field %q, value %s)", msg, e.Field, e.Value)
		} else {
			msg = fmt.Sprintf("%s (field %q)", msg, e.Field)
		}
	}
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("status %d: %s", e.StatusCode, msg)
	}
	if e.URL != "" {
		return fmt.Sprintf("crunchyroll decode error: %s: %s", e.URL, msg)
	}
	return "crunchyroll decode error: " + msg
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if the error carries a not found response
func (e *DecodeError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error carries an authentication failure
func (e *DecodeError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// ClassificationError is returned when a URL matches none of the known patterns.
type ClassificationError struct {
	Input string
}

// Error implements the error interface
func (e *ClassificationError) Error() string {
	return fmt.Sprintf("not a recognized crunchyroll url: %q", e.Input)
}
