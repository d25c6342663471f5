package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetDomains lists the domains available for new addresses.
func (c *Client) GetDomains(ctx context.Context) ([]Domain, error) {
	var result collection[Domain]
	if err := c.doRetry(ctx, c.retry, "list domains", http.MethodGet, "/domains", "", nil, &result); err != nil {
		return nil, err
	}
	return result.Members, nil
}

// CreateAccount creates a new account on the provider. It uses the
// larger account-creation retry budget.
func (c *Client) CreateAccount(ctx context.Context, address, password string) (*Account, error) {
	req := createAccountRequest{Address: address, Password: password}

	var result Account
	if err := c.doRetry(ctx, c.createRetry, "create account", http.MethodPost, "/accounts", "", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateToken obtains a bearer token for the given credentials.
func (c *Client) CreateToken(ctx context.Context, address, password string) (string, error) {
	req := createTokenRequest{Address: address, Password: password}

	var result tokenResponse
	if err := c.doRetry(ctx, c.retry, "create token", http.MethodPost, "/token", "", req, &result); err != nil {
		return "", err
	}
	if result.Token == "" {
		return "", &ProtocolError{Endpoint: "/token", Message: "response carries no token"}
	}
	return result.Token, nil
}

// GetMessages lists messages for the account the token belongs to.
func (c *Client) GetMessages(ctx context.Context, token string, page, limit int) ([]MessageSummary, error) {
	path := fmt.Sprintf("/messages?page=%d&limit=%d", page, limit)

	var result collection[MessageSummary]
	if err := c.doRetry(ctx, c.retry, "list messages", http.MethodGet, path, token, nil, &result); err != nil {
		return nil, err
	}
	return result.Members, nil
}

// GetMessage retrieves a single message with its full content.
func (c *Client) GetMessage(ctx context.Context, token, messageID string) (*Message, error) {
	path := fmt.Sprintf("/messages/%s", url.PathEscape(messageID))

	var result Message
	if err := c.doRetry(ctx, c.retry, "fetch message", http.MethodGet, path, token, nil, &result); err != nil {
		return nil, err
	}
	if result.ID == "" {
		return nil, &ProtocolError{Endpoint: path, Message: "response carries no message id"}
	}
	return &result, nil
}

// DeleteMessage deletes a message. The caller supplies a valid token.
func (c *Client) DeleteMessage(ctx context.Context, token, messageID string) error {
	path := fmt.Sprintf("/messages/%s", url.PathEscape(messageID))
	return c.doRetry(ctx, c.retry, "delete message", http.MethodDelete, path, token, nil, nil)
}

// DeleteAccount deletes the account with the given provider id. The
// caller supplies a valid token.
func (c *Client) DeleteAccount(ctx context.Context, token, accountID string) error {
	path := fmt.Sprintf("/accounts/%s", url.PathEscape(accountID))
	return c.doRetry(ctx, c.retry, "delete account", http.MethodDelete, path, token, nil, nil)
}
