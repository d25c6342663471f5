package tempmail

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/geortick/temp-email-cli/internal/api"
)

// Client is the mail provider client. It provisions disposable
// addresses and reads their inboxes.
//
// The client is stateless with respect to authentication: bearer tokens
// are obtained per call (or supplied by the caller for the delete
// operations) and never stored between calls.
type Client struct {
	apiClient   *api.Client
	pacingDelay time.Duration
}

// ProvisionedAddress is the result of a successful provisioning call.
type ProvisionedAddress struct {
	// ProviderID is the opaque account identifier assigned by the provider.
	ProviderID string
	// Address is the full provisioned email address.
	Address string
	// Token is a short-lived bearer token for the new account.
	Token string
	// Password is the credential that re-authenticates with the provider.
	Password string
}

// New creates a new provider client.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL: defaultBaseURL,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	retryPolicy := api.DefaultRetryPolicy()
	if cfg.maxRetries > 0 {
		retryPolicy.MaxAttempts = cfg.maxRetries
	}
	if cfg.retryDelay > 0 {
		retryPolicy.BaseDelay = cfg.retryDelay
	}
	createPolicy := api.AccountCreationRetryPolicy()
	if cfg.createMaxRetries > 0 {
		createPolicy.MaxAttempts = cfg.createMaxRetries
	}
	if cfg.createRetryDelay > 0 {
		createPolicy.BaseDelay = cfg.createRetryDelay
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:     cfg.baseURL,
		HTTPClient:  cfg.httpClient,
		Timeout:     cfg.timeout,
		Retry:       retryPolicy,
		CreateRetry: createPolicy,
	})
	if err != nil {
		return nil, err
	}

	pacing := defaultPacingDelay
	if cfg.pacingSet {
		pacing = cfg.pacingDelay
	}

	return &Client{
		apiClient:   apiClient,
		pacingDelay: pacing,
	}, nil
}

// ProvisionAddress creates a new disposable address on the provider.
// An empty password means a random one is generated. The returned
// record carries everything the caller needs to persist: provider id,
// address, bearer token, and the password in use.
func (c *Client) ProvisionAddress(ctx context.Context, password string) (*ProvisionedAddress, error) {
	domains, err := c.apiClient.GetDomains(ctx)
	if err != nil {
		return nil, wrapError(err)
	}

	domain := ""
	for _, d := range domains {
		if d.Domain != "" {
			domain = d.Domain
			break
		}
	}
	if domain == "" {
		return nil, ErrDomainUnavailable
	}

	if password == "" {
		password = generatePassword()
	}
	address := generateLocalPart() + "@" + domain

	// The provider rate-limits account creation aggressively; pace the
	// two write calls instead of relying on retries alone.
	if err := c.pace(ctx); err != nil {
		return nil, err
	}
	account, err := c.apiClient.CreateAccount(ctx, address, password)
	if err != nil {
		return nil, wrapError(err)
	}
	if account.ID == "" {
		return nil, fmt.Errorf("%w: response carries no account id", ErrAccountCreationFailed)
	}

	if err := c.pace(ctx); err != nil {
		return nil, err
	}
	token, err := c.authenticate(ctx, address, password)
	if err != nil {
		return nil, err
	}

	return &ProvisionedAddress{
		ProviderID: account.ID,
		Address:    address,
		Token:      token,
		Password:   password,
	}, nil
}

// ListMessages returns the first page of message summaries for the
// address, newest first as delivered by the provider. Each call
// re-authenticates; stored tokens are not trusted across calls.
func (c *Client) ListMessages(ctx context.Context, address, password string) ([]MessageSummary, error) {
	token, err := c.authenticate(ctx, address, password)
	if err != nil {
		return nil, err
	}

	msgs, err := c.apiClient.GetMessages(ctx, token, 1, defaultPageLimit)
	if err != nil {
		return nil, wrapError(err)
	}

	summaries := make([]MessageSummary, 0, len(msgs))
	for _, m := range msgs {
		summaries = append(summaries, summaryFromAPI(m))
	}
	return summaries, nil
}

// FetchMessage retrieves the full content of a single message,
// re-authenticating with the given credentials first.
func (c *Client) FetchMessage(ctx context.Context, messageID, address, password string) (*Message, error) {
	token, err := c.authenticate(ctx, address, password)
	if err != nil {
		return nil, err
	}

	msg, err := c.apiClient.GetMessage(ctx, token, messageID)
	if err != nil {
		return nil, wrapError(err)
	}
	return messageFromAPI(msg), nil
}

// DeleteMessage deletes a message. The caller supplies a valid token;
// this call does not re-authenticate.
func (c *Client) DeleteMessage(ctx context.Context, messageID, token string) error {
	return wrapError(c.apiClient.DeleteMessage(ctx, token, messageID))
}

// DeleteAccount deletes the provider-side account. The caller supplies
// a valid token; this call does not re-authenticate.
func (c *Client) DeleteAccount(ctx context.Context, providerID, token string) error {
	return wrapError(c.apiClient.DeleteAccount(ctx, token, providerID))
}

// Authenticate obtains a fresh bearer token for the given credentials.
// Useful before DeleteMessage or DeleteAccount.
func (c *Client) Authenticate(ctx context.Context, address, password string) (string, error) {
	return c.authenticate(ctx, address, password)
}

func (c *Client) authenticate(ctx context.Context, address, password string) (string, error) {
	token, err := c.apiClient.CreateToken(ctx, address, password)
	if err != nil {
		var protoErr *api.ProtocolError
		if errors.As(err, &protoErr) {
			// A 2xx token response without a token is an authentication
			// failure, not a wire-format problem.
			return "", fmt.Errorf("%w: provider returned no token", ErrAuthenticationFailed)
		}
		return "", wrapError(err)
	}
	return token, nil
}

// pace blocks for the configured pacing delay, honoring cancellation.
func (c *Client) pace(ctx context.Context) error {
	if c.pacingDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(c.pacingDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
