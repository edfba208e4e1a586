package config

import (
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variable names. These are fixed by the upstream project and
// shared with its other client integrations.
const (
	EnvBaseURL       = "FRISBII_BASE_URL"
	EnvAPIKey        = "FRISBII_API_KEY"
	EnvLegalEntityID = "FRISBII_LEGAL_ENTITY_ID"
	EnvClientID      = "FRISBII_OAUTH2_CLIENT_ID"
	EnvClientSecret  = "FRISBII_OAUTH2_CLIENT_SECRET"
	EnvTokenURL      = "FRISBII_OAUTH2_TOKEN_URL"
	EnvScope         = "FRISBII_OAUTH2_SCOPE"
	EnvTokenStorage  = "FRISBII_TOKEN_STORAGE"
)

// Load builds the effective configuration: defaults, overlaid by the optional
// YAML config file at path (empty path means no file), overlaid by
// environment variables. Environment variables always win so that MCP client
// launch configurations keep working regardless of local files.
func Load(path string) (*Config, error) {
	cfg := GetDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.TokenStorage == "" {
		cfg.TokenStorage = DefaultTokenStorageFile
	}
	if cfg.OAuth.TokenURL == "" {
		cfg.OAuth.TokenURL = cfg.BaseURL + "/oauth/token"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv overlays environment variables onto cfg. Only set variables
// override; empty values in the environment are treated as unset.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv(EnvLegalEntityID); v != "" {
		cfg.LegalEntityID = v
	}
	if v := os.Getenv(EnvClientID); v != "" {
		cfg.OAuth.ClientID = v
	}
	if v := os.Getenv(EnvClientSecret); v != "" {
		cfg.OAuth.ClientSecret = v
	}
	if v := os.Getenv(EnvTokenURL); v != "" {
		cfg.OAuth.TokenURL = v
	}
	if v := os.Getenv(EnvScope); v != "" {
		cfg.OAuth.Scope = v
	}
	if v := os.Getenv(EnvTokenStorage); v != "" {
		cfg.TokenStorage = v
	}
}

// Validate checks that the configured URLs are well-formed absolute URLs.
// Credentials are intentionally not validated here: the server starts without
// them so the oauth2_status tool can report what is missing.
func (c *Config) Validate() error {
	if err := validateURL("base URL", c.BaseURL); err != nil {
		return err
	}
	if c.OAuth.TokenURL != "" {
		if err := validateURL("OAuth2 token URL", c.OAuth.TokenURL); err != nil {
			return err
		}
	}
	return nil
}

func validateURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid %s %q: scheme must be http or https", name, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid %s %q: missing host", name, raw)
	}
	return nil
}
