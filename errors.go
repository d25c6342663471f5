package tempmail

import (
	"errors"
	"fmt"

	"github.com/geortick/temp-email-cli/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrDomainUnavailable is returned when the provider has no usable domain.
	ErrDomainUnavailable = errors.New("no usable domain available")

	// ErrAccountCreationFailed is returned when the provider does not
	// acknowledge account creation with an identifier.
	ErrAccountCreationFailed = errors.New("account creation failed")

	// ErrAuthenticationFailed is returned when the provider rejects the
	// stored credentials or returns no token.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrBadRequest is returned when the provider rejects a request as malformed.
	ErrBadRequest = errors.New("bad request")

	// ErrForbidden is returned when the provider denies access.
	ErrForbidden = errors.New("access forbidden")

	// ErrInvalidAddressFormat is returned when the provider rejects the address format.
	ErrInvalidAddressFormat = errors.New("invalid address format")

	// ErrRateLimited is returned when the provider rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrProviderServer is returned when the provider fails server-side.
	ErrProviderServer = errors.New("provider server error")
)

// APIError represents an HTTP error from the mail provider.
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

// NetworkError represents a transport-level failure.
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

// ProtocolError indicates a provider response that does not match the
// documented shape.
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

// RetryError reports an operation that failed on every retry attempt.
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

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var retryErr *api.RetryError
	if errors.As(err, &retryErr) {
		return &RetryError{
			Operation: retryErr.Operation,
			Attempts:  retryErr.Attempts,
			Err:       wrapError(retryErr.Err),
		}
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err: netErr.Err,
			URL: netErr.URL,
		}
	}

	var protoErr *api.ProtocolError
	if errors.As(err, &protoErr) {
		return &ProtocolError{
			Endpoint: protoErr.Endpoint,
			Message:  protoErr.Message,
			Err:      protoErr.Err,
		}
	}

	return err
}
