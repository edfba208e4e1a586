package oauth

import (
	"testing"
	"time"
)

func TestTokenIsExpired(t *testing.T) {
	// A token expiring in an hour is valid.
	token := &Token{
		AccessToken: "tok",
		ExpiresAt:   time.Now().Add(1 * time.Hour),
	}
	if token.IsExpired() {
		t.Error("token expiring in 1h should not be expired")
	}

	// A token inside the 60s margin counts as expired even though the
	// timestamp itself is still in the future.
	token.ExpiresAt = time.Now().Add(30 * time.Second)
	if !token.IsExpired() {
		t.Error("token expiring in 30s should be treated as expired")
	}

	// A token past its expiry is expired.
	token.ExpiresAt = time.Now().Add(-1 * time.Minute)
	if !token.IsExpired() {
		t.Error("token expired 1m ago should be expired")
	}
}

func TestTokenWithoutExpiryNeverExpires(t *testing.T) {
	token := &Token{AccessToken: "tok"}
	if token.IsExpired() {
		t.Error("token without expiry should never expire")
	}
}

func TestSetExpiresAtFromExpiresIn(t *testing.T) {
	token := &Token{AccessToken: "tok", ExpiresIn: 3600}
	token.SetExpiresAtFromExpiresIn()

	if token.ExpiresAt.IsZero() {
		t.Fatal("expected ExpiresAt to be set")
	}
	expected := time.Now().Add(1 * time.Hour)
	if token.ExpiresAt.Before(expected.Add(-5*time.Second)) || token.ExpiresAt.After(expected.Add(5*time.Second)) {
		t.Errorf("ExpiresAt %v not within 5s of now+1h", token.ExpiresAt)
	}

	// An explicit expires_at must not be overwritten.
	explicit := time.Now().Add(10 * time.Minute)
	token2 := &Token{AccessToken: "tok", ExpiresIn: 3600, ExpiresAt: explicit}
	token2.SetExpiresAtFromExpiresIn()
	if !token2.ExpiresAt.Equal(explicit) {
		t.Errorf("ExpiresAt overwritten: got %v, want %v", token2.ExpiresAt, explicit)
	}
}

func TestToOAuth2Token(t *testing.T) {
	expiry := time.Now().Add(time.Hour)
	token := &Token{AccessToken: "tok", TokenType: "Bearer", ExpiresAt: expiry}

	converted := token.ToOAuth2Token()
	if converted.AccessToken != "tok" || converted.TokenType != "Bearer" {
		t.Errorf("unexpected conversion: %+v", converted)
	}
	if !converted.Expiry.Equal(expiry) {
		t.Errorf("expiry not carried over: got %v, want %v", converted.Expiry, expiry)
	}
}
