package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"frisbii-transform-mcp/pkg/logging"
)

// DefaultHTTPTimeout is the default timeout for token endpoint requests.
const DefaultHTTPTimeout = 30 * time.Second

// Credentials holds the client-credentials grant settings.
type Credentials struct {
	ClientID     string
	ClientSecret string

	// TokenURL is the token endpoint.
	TokenURL string

	// Scope is the requested scope (optional, space-separated).
	Scope string
}

// Configured reports whether both client id and secret are set.
func (c Credentials) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// Client performs the OAuth2 client-credentials grant against the configured
// token endpoint.
type Client struct {
	creds      Credentials
	httpClient *http.Client
}

// ClientOption configures the OAuth client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new OAuth token endpoint client.
func NewClient(creds Credentials, opts ...ClientOption) *Client {
	c := &Client{
		creds:      creds,
		httpClient: &http.Client{Timeout: DefaultHTTPTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchToken obtains a new access token via the client-credentials grant.
// Token values are never logged.
func (c *Client) FetchToken(ctx context.Context) (*Token, error) {
	if !c.creds.Configured() {
		return nil, ErrNotConfigured
	}

	data := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.creds.ClientID},
		"client_secret": {c.creds.ClientSecret},
	}
	if c.creds.Scope != "" {
		data.Set("scope", c.creds.Scope)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.creds.TokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logging.Debug("oauth", "token request to %s failed with status %d", c.creds.TokenURL, resp.StatusCode)
		return nil, fmt.Errorf("token request failed with status %d", resp.StatusCode)
	}

	var token Token
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("failed to parse token response: %w", err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("token response contains no access token")
	}

	// Calculate expiration if the endpoint only sent expires_in.
	token.SetExpiresAtFromExpiresIn()

	logging.Info("oauth", "obtained new access token (expires at %s)", token.ExpiresAt.Format(time.RFC3339))
	return &token, nil
}
