package client

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorClass represents a classification of request failures.
type ErrorClass string

const (
	// ErrorClassConfiguration represents invalid client setup or usage
	// detected before any network call.
	ErrorClassConfiguration ErrorClass = "configuration"

	// ErrorClassNetwork represents transport failures before an HTTP
	// response was obtained (DNS, connection reset, timeout).
	ErrorClassNetwork ErrorClass = "network"

	// ErrorClassClient represents 4xx responses, caller-correctable.
	ErrorClassClient ErrorClass = "client"

	// ErrorClassServer represents 5xx responses.
	ErrorClassServer ErrorClass = "server"
)

// ErrMissingAPIKey is returned by New when no API key is configured.
var ErrMissingAPIKey = errors.New("api key is missing")

// Error is the single error type surfaced by the client. Each failure carries
// exactly one classification on top of the original payload: 4xx errors keep
// the decoded JSON error body from the API unmodified, 5xx errors carry the
// HTTP status code, and network errors wrap the underlying transport error.
type Error struct {
	Class      ErrorClass
	StatusCode int
	Message    string
	Body       json.RawMessage
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("blitzr: %s error: %s: %v", e.Class, e.Message, e.Err)
	case e.StatusCode > 0 && len(e.Body) > 0:
		return fmt.Sprintf("blitzr: %s error (status %d): %s", e.Class, e.StatusCode, e.Body)
	case e.StatusCode > 0:
		return fmt.Sprintf("blitzr: %s error (status %d): %s", e.Class, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("blitzr: %s error: %s", e.Class, e.Message)
	}
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewConfigurationError builds a configuration-class error.
func NewConfigurationError(message string) *Error {
	return &Error{Class: ErrorClassConfiguration, Message: message}
}

func newNetworkError(err error) *Error {
	return &Error{Class: ErrorClassNetwork, Message: "request failed before a response was received", Err: err}
}

func newClientError(statusCode int, body json.RawMessage) *Error {
	return &Error{Class: ErrorClassClient, StatusCode: statusCode, Body: body}
}

func newServerError(statusCode int) *Error {
	return &Error{
		Class:      ErrorClassServer,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("an error occurred on the Blitzr side, HTTP code: %d", statusCode),
	}
}

// classOf extracts the error class, or "" for foreign errors.
func classOf(err error) ErrorClass {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Class
	}
	return ""
}

// IsConfiguration reports whether err is a configuration-class error.
func IsConfiguration(err error) bool { return classOf(err) == ErrorClassConfiguration }

// IsNetwork reports whether err is a network-class error.
func IsNetwork(err error) bool { return classOf(err) == ErrorClassNetwork }

// IsClient reports whether err is a client-class (4xx) error.
func IsClient(err error) bool { return classOf(err) == ErrorClassClient }

// IsServer reports whether err is a server-class (5xx) error.
func IsServer(err error) bool { return classOf(err) == ErrorClassServer }
