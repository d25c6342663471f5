package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Default configuration values.
const (
	DefaultTimeout = 10 * time.Second
)

// Client is the HTTP client for the mail provider API.
//
// The client holds no authentication state: the bearer token for
// authenticated calls is passed explicitly into each request, so a
// token can never leak into an unrelated subsequent call.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	retry       RetryPolicy
	createRetry RetryPolicy
}

// Config configures the API client.
type Config struct {
	// BaseURL is the provider API root, e.g. "https://api.mail.tm".
	BaseURL string
	// HTTPClient overrides the default HTTP client.
	HTTPClient *http.Client
	// Timeout is the per-request transport timeout. Ignored when
	// HTTPClient is set. Defaults to DefaultTimeout.
	Timeout time.Duration
	// Retry is the retry policy for provider calls.
	// Zero value means DefaultRetryPolicy.
	Retry RetryPolicy
	// CreateRetry is the retry policy for the account creation call.
	// Zero value means AccountCreationRetryPolicy.
	CreateRetry RetryPolicy
}

// NewClient creates a new API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	retryPolicy := cfg.Retry
	if retryPolicy.MaxAttempts == 0 {
		retryPolicy = DefaultRetryPolicy()
	}
	createPolicy := cfg.CreateRetry
	if createPolicy.MaxAttempts == 0 {
		createPolicy = AccountCreationRetryPolicy()
	}

	return &Client{
		baseURL:     cfg.BaseURL,
		httpClient:  httpClient,
		retry:       retryPolicy,
		createRetry: createPolicy,
	}, nil
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// Do performs a single request against the provider. An empty token
// means an unauthenticated call; a non-empty token is sent as a bearer
// header on this request only.
func (c *Client) Do(ctx context.Context, method, path, token string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err, URL: url}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return parseErrorResponse(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return &ProtocolError{Endpoint: path, Message: "malformed response body", Err: err}
		}
	}

	return nil
}

// doRetry performs a request with the given retry policy.
func (c *Client) doRetry(ctx context.Context, p RetryPolicy, op, method, path, token string, body, result interface{}) error {
	return retry(ctx, p, op, func() error {
		return c.Do(ctx, method, path, token, body, result)
	})
}

func parseErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var errResp struct {
		Message     string `json:"message"`
		Detail      string `json:"detail"`
		Description string `json:"hydra:description"`
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, &errResp); err == nil {
		switch {
		case errResp.Description != "":
			apiErr.Message = errResp.Description
		case errResp.Detail != "":
			apiErr.Message = errResp.Detail
		default:
			apiErr.Message = errResp.Message
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	return apiErr
}
