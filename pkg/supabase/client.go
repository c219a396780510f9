// Package supabase is a typed client for the hosted identity and data
// service. It covers exactly the three calls this application makes:
// account signup, password-grant login, and design record insert. All
// credential verification and tenant isolation happens upstream; this
// client only shapes requests and classifies responses.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labelforge/labelpress/pkg/domain"
)

// DefaultTimeout bounds every outbound call when none is configured.
const DefaultTimeout = 10 * time.Second

// Config holds client configuration.
type Config struct {
	// BaseURL is the service base URL, e.g. https://xyz.supabase.co.
	BaseURL string
	// APIKey is the service (anon) API key, sent on every request.
	APIKey string
	// Timeout bounds outbound calls (default: DefaultTimeout).
	Timeout time.Duration
}

// Client calls the remote identity and data service.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a new client.
func NewClient(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

// SignUpRequest is the signup payload. TenantID travels as account
// metadata so the service stamps it on the created user.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Data     struct {
		TenantID string `json:"tenant_id"`
	} `json:"data"`
}

// NewSignUpRequest builds a signup request for the given credentials
// and tenant.
func NewSignUpRequest(email, password, tenantID string) SignUpRequest {
	req := SignUpRequest{Email: email, Password: password}
	req.Data.TenantID = tenantID
	return req
}

// TokenResponse is the password-grant response. The tenant id lives in
// the user metadata the service embedded at signup.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	User        struct {
		ID           string `json:"id"`
		Email        string `json:"email"`
		UserMetadata struct {
			TenantID string `json:"tenant_id"`
		} `json:"user_metadata"`
	} `json:"user"`
}

// SignUp creates an account. A non-2xx upstream response comes back as
// *domain.UpstreamError with the raw body preserved.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) error {
	resp, err := c.post(ctx, "/auth/v1/signup", "", req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return upstreamError(resp)
	}
	return nil
}

type passwordGrantRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInWithPassword performs a password-grant token request.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*TokenResponse, error) {
	resp, err := c.post(ctx, "/auth/v1/token?grant_type=password", "", passwordGrantRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, upstreamError(resp)
	}

	var tokenResp TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token response missing access_token")
	}
	return &tokenResp, nil
}

// InsertDesign inserts a design record into the tenant-scoped store,
// authenticated with the session's access token as a bearer credential.
// A non-2xx upstream response comes back as *domain.UpstreamError;
// callers decide whether to act on it or ignore it.
func (c *Client) InsertDesign(ctx context.Context, accessToken string, record domain.DesignRecord) error {
	resp, err := c.post(ctx, "/rest/v1/receipt_designs", accessToken, record)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return upstreamError(resp)
	}
	return nil
}

// post sends a JSON POST with the service API key, plus a bearer token
// when one is given. Network-level failures map to
// domain.ErrUpstreamUnavailable.
func (c *Client) post(ctx context.Context, path, bearer string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	return resp, nil
}

func upstreamError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	return &domain.UpstreamError{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}
}
