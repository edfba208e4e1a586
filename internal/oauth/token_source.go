package oauth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	"frisbii-transform-mcp/pkg/logging"
)

// ErrNotConfigured is returned when OAuth2 client credentials are missing.
var ErrNotConfigured = errors.New("oauth2 client credentials not configured")

// TokenSource hands out valid access tokens, refreshing them through the
// client-credentials grant when the cached one is absent or within the
// expiry margin. It implements oauth2.TokenSource.
//
// Invariant: a token returned by AccessToken is always at least ExpiryMargin
// (60s) away from its expiry, unless the token carries no expiry at all.
type TokenSource struct {
	client *Client
	store  *TokenStore

	// group deduplicates concurrent refreshes so parallel tool calls share a
	// single token request.
	group singleflight.Group
}

// NewTokenSource creates a token source from the endpoint client and store.
func NewTokenSource(client *Client, store *TokenStore) *TokenSource {
	return &TokenSource{
		client: client,
		store:  store,
	}
}

// AccessToken returns a valid access token, fetching a new one when the
// stored token is missing or about to expire.
func (ts *TokenSource) AccessToken(ctx context.Context) (string, error) {
	if !ts.client.creds.Configured() {
		return "", ErrNotConfigured
	}

	if token := ts.store.Load(); token != nil && !token.IsExpired() {
		return token.AccessToken, nil
	}

	token, err := ts.fetchAndStore(ctx)
	if err != nil {
		return "", err
	}
	return token.AccessToken, nil
}

// Token implements oauth2.TokenSource.
func (ts *TokenSource) Token() (*oauth2.Token, error) {
	if _, err := ts.AccessToken(context.Background()); err != nil {
		return nil, err
	}
	token := ts.store.Load()
	if token == nil {
		return nil, errors.New("token disappeared from store after refresh")
	}
	return token.ToOAuth2Token(), nil
}

// Refresh discards any stored token and fetches a new one. The stored token
// is removed first so a failed fetch cannot leave a stale token behind.
func (ts *TokenSource) Refresh(ctx context.Context) (*Token, error) {
	if !ts.client.creds.Configured() {
		return nil, ErrNotConfigured
	}

	if err := ts.store.Delete(); err != nil {
		return nil, err
	}
	return ts.fetchAndStore(ctx)
}

// Clear removes the stored token, forcing re-authentication on next use.
func (ts *TokenSource) Clear() error {
	return ts.store.Delete()
}

// fetchAndStore performs a deduplicated token fetch and persists the result.
func (ts *TokenSource) fetchAndStore(ctx context.Context) (*Token, error) {
	result, err, _ := ts.group.Do("token", func() (interface{}, error) {
		// Double-check: another caller may have refreshed while we waited.
		if token := ts.store.Load(); token != nil && !token.IsExpired() {
			return token, nil
		}

		token, err := ts.client.FetchToken(ctx)
		if err != nil {
			return nil, err
		}
		if err := ts.store.Save(token); err != nil {
			// The token itself is usable even if persistence failed.
			logging.Warn("oauth", "failed to persist token: %v", err)
		}
		return token, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Token), nil
}

// Status describes the authentication configuration and token state for the
// oauth2_status tool.
type Status struct {
	Configured  bool       `json:"oauth2_configured"`
	TokenURL    string     `json:"oauth2_token_url,omitempty"`
	Scope       string     `json:"oauth2_scope,omitempty"`
	StoragePath string     `json:"token_storage_file"`
	TokenExists bool       `json:"token_exists"`
	TokenValid  bool       `json:"token_valid"`
	ExpiresAt   *time.Time `json:"token_expires_at,omitempty"`
}

// Status reports the current token state without triggering a refresh.
func (ts *TokenSource) Status() Status {
	st := Status{
		Configured:  ts.client.creds.Configured(),
		TokenURL:    ts.client.creds.TokenURL,
		Scope:       ts.client.creds.Scope,
		StoragePath: ts.store.Path(),
	}

	if token := ts.store.Load(); token != nil {
		st.TokenExists = true
		st.TokenValid = !token.IsExpired()
		if !token.ExpiresAt.IsZero() {
			expiresAt := token.ExpiresAt
			st.ExpiresAt = &expiresAt
		}
	}

	return st
}
