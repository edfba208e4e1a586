package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "my-client", r.PostForm.Get("client_id"))
		assert.Equal(t, "my-secret", r.PostForm.Get("client_secret"))
		assert.Equal(t, "api", r.PostForm.Get("scope"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"new-token","token_type":"Bearer","expires_in":3600}`))
	}))
	defer srv.Close()

	client := NewClient(Credentials{
		ClientID:     "my-client",
		ClientSecret: "my-secret",
		TokenURL:     srv.URL,
		Scope:        "api",
	})

	token, err := client.FetchToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new-token", token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)
	// expires_at must be derived from expires_in.
	assert.False(t, token.ExpiresAt.IsZero())
	assert.False(t, token.IsExpired())
}

func TestFetchTokenOmitsEmptyScope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		_, hasScope := r.PostForm["scope"]
		assert.False(t, hasScope, "scope must be omitted when not configured")

		w.Write([]byte(`{"access_token":"tok"}`))
	}))
	defer srv.Close()

	client := NewClient(Credentials{ClientID: "c", ClientSecret: "s", TokenURL: srv.URL})
	_, err := client.FetchToken(context.Background())
	require.NoError(t, err)
}

func TestFetchTokenServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_client"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(Credentials{ClientID: "c", ClientSecret: "wrong", TokenURL: srv.URL})
	_, err := client.FetchToken(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestFetchTokenEmptyAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token_type":"Bearer"}`))
	}))
	defer srv.Close()

	client := NewClient(Credentials{ClientID: "c", ClientSecret: "s", TokenURL: srv.URL})
	_, err := client.FetchToken(context.Background())
	assert.Error(t, err)
}

func TestFetchTokenNotConfigured(t *testing.T) {
	client := NewClient(Credentials{})
	_, err := client.FetchToken(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)
}
