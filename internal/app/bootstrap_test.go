package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frisbii-transform-mcp/internal/config"
)

func clearFrisbiiEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		config.EnvBaseURL, config.EnvAPIKey, config.EnvLegalEntityID,
		config.EnvClientID, config.EnvClientSecret, config.EnvTokenURL,
		config.EnvScope, config.EnvTokenStorage,
	} {
		t.Setenv(name, "")
	}
}

func TestNewApplicationRequiresCredentials(t *testing.T) {
	clearFrisbiiEnv(t)

	_, err := NewApplication(NewConfig(false, "", ""), "test")
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestNewApplicationWithAPIKey(t *testing.T) {
	clearFrisbiiEnv(t)
	t.Setenv(config.EnvAPIKey, "static-key")

	application, err := NewApplication(NewConfig(false, "", ""), "test")
	require.NoError(t, err)
	assert.Equal(t, config.AuthBearer, application.cfg.AuthMethod())
}

func TestNewApplicationWithOAuth(t *testing.T) {
	clearFrisbiiEnv(t)
	t.Setenv(config.EnvClientID, "id")
	t.Setenv(config.EnvClientSecret, "secret")

	application, err := NewApplication(NewConfig(true, "", ""), "test")
	require.NoError(t, err)
	assert.Equal(t, config.AuthOAuth2, application.cfg.AuthMethod())
}

func TestNewApplicationTokenStorageOverride(t *testing.T) {
	clearFrisbiiEnv(t)
	t.Setenv(config.EnvAPIKey, "static-key")

	path := filepath.Join(t.TempDir(), "token.json")
	application, err := NewApplication(NewConfig(false, "", path), "test")
	require.NoError(t, err)
	assert.Equal(t, path, application.cfg.TokenStorage)
}

func TestNewApplicationRejectsBadBaseURL(t *testing.T) {
	clearFrisbiiEnv(t)
	t.Setenv(config.EnvAPIKey, "static-key")
	t.Setenv(config.EnvBaseURL, "::not-a-url")

	_, err := NewApplication(NewConfig(false, "", ""), "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}
