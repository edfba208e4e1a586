package oauth

import (
	"time"

	"golang.org/x/oauth2"
)

// ExpiryMargin is the safety buffer applied when checking token expiry.
// A token within this margin of its expiry is treated as expired, which
// accounts for clock skew, network latency and long-running requests.
const ExpiryMargin = 60 * time.Second

// Token is an OAuth2 access token with its expiry metadata. The JSON field
// names match the token endpoint response (RFC 6749 section 5.1) plus the
// derived expires_at timestamp, so the same struct round-trips through the
// on-disk cache file.
type Token struct {
	// AccessToken is the bearer token used for authorization.
	AccessToken string `json:"access_token"`

	// TokenType is typically "Bearer".
	TokenType string `json:"token_type,omitempty"`

	// ExpiresIn is the token lifetime in seconds (from the token response).
	ExpiresIn int `json:"expires_in,omitempty"`

	// ExpiresAt is the calculated expiration timestamp.
	ExpiresAt time.Time `json:"expires_at,omitempty"`

	// Scope is the granted scope(s), space-separated.
	Scope string `json:"scope,omitempty"`
}

// IsExpired checks if the token has expired or will expire within the
// default margin.
func (t *Token) IsExpired() bool {
	return t.IsExpiredWithMargin(ExpiryMargin)
}

// IsExpiredWithMargin checks if the token has expired or will expire within
// the given margin.
func (t *Token) IsExpiredWithMargin(margin time.Duration) bool {
	if t.ExpiresAt.IsZero() {
		return false // Tokens without expiration don't expire
	}
	return time.Now().Add(margin).After(t.ExpiresAt)
}

// SetExpiresAtFromExpiresIn calculates and sets ExpiresAt from ExpiresIn.
func (t *Token) SetExpiresAtFromExpiresIn() {
	if t.ExpiresIn > 0 && t.ExpiresAt.IsZero() {
		t.ExpiresAt = time.Now().Add(time.Duration(t.ExpiresIn) * time.Second)
	}
}

// ToOAuth2Token converts the Token to an oauth2.Token for compatibility with
// golang.org/x/oauth2 consumers.
func (t *Token) ToOAuth2Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken: t.AccessToken,
		TokenType:   t.TokenType,
		Expiry:      t.ExpiresAt,
	}
}
