package tempmail

import (
	"net/http"
	"time"
)

const (
	defaultBaseURL     = "https://api.mail.tm"
	defaultPacingDelay = time.Second
	defaultPageLimit   = 20
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration

	maxRetries       int
	retryDelay       time.Duration
	createMaxRetries int
	createRetryDelay time.Duration

	pacingDelay time.Duration
	pacingSet   bool
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the provider API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request transport timeout.
// Default: 10 seconds. Ignored when WithHTTPClient is used.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRetries sets the attempt budget for provider calls.
// Default: 3 attempts.
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.maxRetries = count
	}
}

// WithRetryDelay sets the base delay between retry attempts.
// Default: 1 second. Rate-limit failures double this delay per attempt.
func WithRetryDelay(delay time.Duration) Option {
	return func(c *clientConfig) {
		c.retryDelay = delay
	}
}

// WithCreateRetries sets the attempt budget for the account creation
// call, which is the most rate-limit-sensitive provider call.
// Default: 5 attempts.
func WithCreateRetries(count int) Option {
	return func(c *clientConfig) {
		c.createMaxRetries = count
	}
}

// WithCreateRetryDelay sets the base retry delay for account creation.
// Default: 3 seconds.
func WithCreateRetryDelay(delay time.Duration) Option {
	return func(c *clientConfig) {
		c.createRetryDelay = delay
	}
}

// WithPacingDelay sets the fixed delay inserted before the account and
// token creation calls during provisioning. This is a blunt rate-limit
// avoidance measure, not a correctness requirement; setting it to zero
// disables pacing (useful in tests).
// Default: 1 second.
func WithPacingDelay(delay time.Duration) Option {
	return func(c *clientConfig) {
		c.pacingDelay = delay
		c.pacingSet = true
	}
}
