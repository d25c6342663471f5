package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrBadRequest is returned when the provider rejects the request as malformed.
	ErrBadRequest = errors.New("bad request")

	// ErrAuthenticationFailed is returned when the provider rejects the credentials.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrForbidden is returned when the provider denies access to the resource.
	ErrForbidden = errors.New("access forbidden")

	// ErrInvalidAddressFormat is returned when the provider rejects the address format.
	ErrInvalidAddressFormat = errors.New("invalid address format")

	// ErrRateLimited is returned when the provider rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrProviderServer is returned when the provider fails with a server-side error.
	ErrProviderServer = errors.New("provider server error")
)

// APIError represents an HTTP error response from the mail provider.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("provider error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("provider error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 400:
		return target == ErrBadRequest
	case 401:
		return target == ErrAuthenticationFailed
	case 403:
		return target == ErrForbidden
	case 422:
		return target == ErrInvalidAddressFormat
	case 429:
		return target == ErrRateLimited
	}
	if e.StatusCode >= 500 {
		return target == ErrProviderServer
	}
	return false
}

// NetworkError represents a transport-level failure before any HTTP
// status was received.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ProtocolError indicates the provider returned a well-formed HTTP
// response whose body does not match the documented shape.
type ProtocolError struct {
	Endpoint string
	Message  string
	Err      error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unexpected response from %s: %s: %v", e.Endpoint, e.Message, e.Err)
	}
	return fmt.Sprintf("unexpected response from %s: %s", e.Endpoint, e.Message)
}

// Unwrap returns the underlying error.
func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// RetryError aggregates a failed operation after all retry attempts
// were exhausted. It unwraps to the last underlying error so sentinel
// checks still work on the final failure.
type RetryError struct {
	Operation string
	Attempts  int
	Err       error
}

func (e *RetryError) Error() string {
	return fmt.Sprintf("%s failed after %d attempts: %v", e.Operation, e.Attempts, e.Err)
}

// Unwrap returns the last underlying error.
func (e *RetryError) Unwrap() error {
	return e.Err
}
