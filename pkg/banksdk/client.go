package banksdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the Okobo Bank API. It exposes the
// unauthenticated auth endpoints and token-bearing calls; most consumers
// should drive it through a SessionContext instead of calling it directly.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new API client for the given base URL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SignUp creates a new account and returns the auth envelope with a fresh
// bearer token.
func (c *SDKClient) SignUp(ctx context.Context, req SignUpRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.postJSON(ctx, "/api/auth/signup", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SignIn authenticates an existing account and returns the auth envelope
// with a fresh bearer token.
func (c *SDKClient) SignIn(ctx context.Context, req SignInRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.postJSON(ctx, "/api/auth/signin", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Dashboard fetches the authenticated dashboard view using the given token.
func (c *SDKClient) Dashboard(ctx context.Context, token string) (*DashboardResponse, error) {
	var resp DashboardResponse
	if err := c.getJSON(ctx, "/api/dashboard", token, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Livez checks the service liveness probe.
func (c *SDKClient) Livez(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.getJSON(ctx, "/livez", "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Readyz checks the service readiness probe.
func (c *SDKClient) Readyz(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.getJSON(ctx, "/readyz", "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *SDKClient) postJSON(ctx context.Context, path, token string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("banksdk: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.do(req, out)
}

func (c *SDKClient) getJSON(ctx context.Context, path, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.do(req, out)
}

func (c *SDKClient) do(req *http.Request, out any) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("banksdk: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("banksdk: decode response: %w", err)
	}
	return nil
}
