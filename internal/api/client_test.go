package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(Config{
		BaseURL: baseURL,
		Retry:   RetryPolicy{MaxAttempts: 1, BaseDelay: time.Millisecond},
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{})
	if err == nil {
		t.Error("expected error for empty base URL")
	}
}

func TestNewClient_DefaultValues(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "https://example.com"})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if client.httpClient == nil {
		t.Fatal("httpClient is nil")
	}
	if client.httpClient.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", client.httpClient.Timeout, DefaultTimeout)
	}
	if client.retry.MaxAttempts != 3 {
		t.Errorf("retry attempts = %d, want 3", client.retry.MaxAttempts)
	}
	if client.retry.BaseDelay != time.Second {
		t.Errorf("retry base delay = %v, want 1s", client.retry.BaseDelay)
	}
	if client.createRetry.MaxAttempts != 5 {
		t.Errorf("create retry attempts = %d, want 5", client.createRetry.MaxAttempts)
	}
	if client.createRetry.BaseDelay != 3*time.Second {
		t.Errorf("create retry base delay = %v, want 3s", client.createRetry.BaseDelay)
	}
}

func TestClient_Do_Headers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Content-Type = %s, want application/json", r.Header.Get("Content-Type"))
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("Accept = %s, want application/json", r.Header.Get("Accept"))
		}
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Errorf("Authorization = %q, want empty for unauthenticated call", auth)
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	if err := client.Do(context.Background(), "GET", "/test", "", nil, nil); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
}

func TestClient_Do_BearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer tok-123" {
			t.Errorf("Authorization = %q, want Bearer tok-123", auth)
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	if err := client.Do(context.Background(), "GET", "/messages", "tok-123", nil, nil); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
}

func TestClient_Do_WithBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Address  string `json:"address"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		if body.Address != "a@b.c" || body.Password != "pw" {
			t.Errorf("body = %+v, want address a@b.c password pw", body)
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "1"})
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	req := createAccountRequest{Address: "a@b.c", Password: "pw"}
	var result Account
	if err := client.Do(context.Background(), "POST", "/accounts", "", req, &result); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if result.ID != "1" {
		t.Errorf("result.ID = %s, want 1", result.ID)
	}
}

func TestClient_Do_NoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	if err := client.Do(context.Background(), "DELETE", "/messages/1", "tok", nil, nil); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
}

func TestClient_Do_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		sentinel   error
	}{
		{"bad request", 400, `{"message": "invalid payload"}`, ErrBadRequest},
		{"unauthorized", 401, `{"message": "invalid credentials"}`, ErrAuthenticationFailed},
		{"forbidden", 403, `{"message": "nope"}`, ErrForbidden},
		{"unprocessable", 422, `{"hydra:description": "address: invalid"}`, ErrInvalidAddressFormat},
		{"rate limited", 429, `{"message": "slow down"}`, ErrRateLimited},
		{"server error", 500, `{"message": "boom"}`, ErrProviderServer},
		{"bad gateway", 502, ``, ErrProviderServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := testClient(t, server.URL)
			err := client.Do(context.Background(), "GET", "/test", "", nil, nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", err, tt.sentinel)
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %T", err)
			}
			if apiErr.StatusCode != tt.statusCode {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.statusCode)
			}
		})
	}
}

func TestClient_Do_ErrorMessageExtraction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"hydra:description": "address: This value is not a valid email address."}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	err := client.Do(context.Background(), "POST", "/accounts", "", nil, nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message != "address: This value is not a valid email address." {
		t.Errorf("Message = %q, want hydra:description content", apiErr.Message)
	}
}

func TestClient_Do_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	var result Account
	err := client.Do(context.Background(), "GET", "/accounts/1", "tok", nil, &result)

	var protoErr *ProtocolError
	if !errors.As(err, &protoErr) {
		t.Fatalf("expected *ProtocolError, got %T (%v)", err, err)
	}
}

func TestClient_Do_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Refuse connections.

	client := testClient(t, server.URL)
	err := client.Do(context.Background(), "GET", "/test", "", nil, nil)

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *NetworkError, got %T (%v)", err, err)
	}
}

func TestClient_Do_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := client.Do(ctx, "GET", "/test", "", nil, nil); err == nil {
		t.Error("expected error for cancelled context")
	}
}
