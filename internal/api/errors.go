package api

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidArgumentError indicates an argument outside its allowed set.
// Raised before any request is sent.
type InvalidArgumentError struct {
	Field      string
	Value      string
	Allowed    []string
	Suggestion string
}

func (e *InvalidArgumentError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("missing required %s", e.Field)
	}
	msg := fmt.Sprintf("invalid %s %q: must be one of %s",
		e.Field, e.Value, strings.Join(e.Allowed, ", "))
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// missingArgument reports a required argument that was not supplied.
func missingArgument(field string) error {
	return &InvalidArgumentError{Field: field}
}

// InvalidCombinationError indicates two parameters that must be supplied
// together were not. Raised before any request is sent.
type InvalidCombinationError struct {
	Field    string
	Requires string
	Reason   string
}

func (e *InvalidCombinationError) Error() string {
	msg := fmt.Sprintf("%s requires %s", e.Field, e.Requires)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// AuthMissingError indicates no auth token could be resolved from the
// explicit argument, environment, or credential store.
type AuthMissingError struct{}

func (e *AuthMissingError) Error() string {
	return "no auth token configured - pass --token, set ST_AUTH_TOKEN, or run 'st auth login'"
}

// TransportError wraps a connection-level failure (DNS, TLS, timeout).
// HTTP error statuses are never a TransportError; those surface as APIError.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError represents a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// Code classifies the error by HTTP status.
func (e *APIError) Code() ErrorCode {
	return ErrorCodeFromStatus(e.StatusCode)
}

// JSONParseError indicates a response body that could not be parsed as
// JSON. Excerpt carries the first 200 bytes of the body for diagnosis.
type JSONParseError struct {
	StatusCode int
	Excerpt    string
	Err        error
}

func (e *JSONParseError) Error() string {
	return fmt.Sprintf("invalid JSON in response (status %d): %v; body starts: %s",
		e.StatusCode, e.Err, e.Excerpt)
}

func (e *JSONParseError) Unwrap() error { return e.Err }

// IsInvalidArgument checks if the error is an invalid argument error.
func IsInvalidArgument(err error) bool {
	var e *InvalidArgumentError
	return errors.As(err, &e)
}

// IsInvalidCombination checks if the error is an invalid combination error.
func IsInvalidCombination(err error) bool {
	var e *InvalidCombinationError
	return errors.As(err, &e)
}

// IsAuthMissing checks if the error indicates missing credentials.
func IsAuthMissing(err error) bool {
	var e *AuthMissingError
	return errors.As(err, &e)
}

// IsTransport checks if the error is a connection-level failure.
func IsTransport(err error) bool {
	var e *TransportError
	return errors.As(err, &e)
}

// AsAPIError checks if the error is a non-2xx API response, returning it.
func AsAPIError(err error) (*APIError, bool) {
	var e *APIError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsJSONParse checks if the error is a JSON parse failure.
func IsJSONParse(err error) bool {
	var e *JSONParseError
	return errors.As(err, &e)
}
