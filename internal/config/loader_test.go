package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets all FRISBII_* variables for the duration of the test so
// the developer's shell does not leak into assertions.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvBaseURL, EnvAPIKey, EnvLegalEntityID,
		EnvClientID, EnvClientSecret, EnvTokenURL, EnvScope,
		EnvTokenStorage,
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultBaseURL+"/oauth/token", cfg.OAuth.TokenURL)
	assert.Equal(t, DefaultTokenStorageFile, cfg.TokenStorage)
	assert.Equal(t, AuthNone, cfg.AuthMethod())
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvBaseURL, "https://app.billwerk.com")
	t.Setenv(EnvAPIKey, "static-key")
	t.Setenv(EnvLegalEntityID, "le-123")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://app.billwerk.com", cfg.BaseURL)
	assert.Equal(t, "static-key", cfg.APIKey)
	assert.Equal(t, "le-123", cfg.LegalEntityID)
	// Token URL follows the overridden base URL.
	assert.Equal(t, "https://app.billwerk.com/oauth/token", cfg.OAuth.TokenURL)
	assert.Equal(t, AuthBearer, cfg.AuthMethod())
}

func TestOAuthWinsOverAPIKey(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAPIKey, "static-key")
	t.Setenv(EnvClientID, "client")
	t.Setenv(EnvClientSecret, "secret")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, AuthOAuth2, cfg.AuthMethod())
}

func TestOAuthRequiresBothCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvClientID, "client")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, AuthNone, cfg.AuthMethod())
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
baseURL: https://file.billwerk.com
legalEntityID: le-from-file
oauth:
  clientID: file-client
  clientSecret: file-secret
  scope: "api offline"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://file.billwerk.com", cfg.BaseURL)
	assert.Equal(t, "le-from-file", cfg.LegalEntityID)
	assert.Equal(t, "file-client", cfg.OAuth.ClientID)
	assert.Equal(t, "api offline", cfg.OAuth.Scope)
	assert.Equal(t, AuthOAuth2, cfg.AuthMethod())
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLegalEntityID, "le-from-env")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("legalEntityID: le-from-file\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "le-from-env", cfg.LegalEntityID)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}

func TestValidateRejectsBadURLs(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvBaseURL, "not a url")

	_, err := Load("")
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv(EnvTokenURL, "ftp://example.com/token")

	_, err = Load("")
	assert.Error(t, err)
}
