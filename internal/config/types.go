package config

// AuthMethod identifies how outbound API requests are authenticated.
type AuthMethod string

const (
	// AuthOAuth2 uses the OAuth2 client-credentials flow with a cached token.
	AuthOAuth2 AuthMethod = "oauth2"
	// AuthBearer uses a static API key as bearer token.
	AuthBearer AuthMethod = "bearer"
	// AuthNone means no credentials are configured. The server still starts
	// so that oauth2_status can report the misconfiguration, but API tool
	// calls will fail.
	AuthNone AuthMethod = "none"
)

// DefaultBaseURL is the Billwerk+ Transform sandbox environment.
const DefaultBaseURL = "https://sandbox.billwerk.com"

// DefaultTokenStorageFile is the default path of the cached OAuth2 token,
// relative to the working directory.
const DefaultTokenStorageFile = "frisbii_oauth_token.json"

// Config is the top-level configuration for the Frisbii Transform MCP server.
type Config struct {
	// BaseURL is the API base URL, e.g. https://sandbox.billwerk.com.
	BaseURL string `yaml:"baseURL,omitempty"`

	// APIKey is a static bearer token. Ignored when OAuth2 is configured.
	APIKey string `yaml:"apiKey,omitempty"`

	// LegalEntityID scopes every request to one tenant via the
	// x-selected-legal-entity-id header. Optional: when empty the header is
	// omitted and the API falls back to the credential's default entity.
	LegalEntityID string `yaml:"legalEntityID,omitempty"`

	// OAuth holds the client-credentials flow settings.
	OAuth OAuthConfig `yaml:"oauth,omitempty"`

	// TokenStorage is the path of the cached OAuth2 token file.
	TokenStorage string `yaml:"tokenStorage,omitempty"`
}

// OAuthConfig defines the OAuth2 client-credentials settings.
type OAuthConfig struct {
	ClientID     string `yaml:"clientID,omitempty"`
	ClientSecret string `yaml:"clientSecret,omitempty"`

	// TokenURL is the token endpoint. Defaults to {baseURL}/oauth/token.
	TokenURL string `yaml:"tokenURL,omitempty"`

	// Scope is the requested scope (optional, space-separated).
	Scope string `yaml:"scope,omitempty"`
}

// AuthMethod selects the authentication method from the configured
// credentials. OAuth2 wins over a static API key when both are present.
func (c *Config) AuthMethod() AuthMethod {
	if c.OAuth.ClientID != "" && c.OAuth.ClientSecret != "" {
		return AuthOAuth2
	}
	if c.APIKey != "" {
		return AuthBearer
	}
	return AuthNone
}

// GetDefaultConfig returns the default configuration.
func GetDefaultConfig() Config {
	return Config{
		BaseURL:      DefaultBaseURL,
		TokenStorage: DefaultTokenStorageFile,
	}
}
