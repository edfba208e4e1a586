package app

// Config holds the application-level settings collected from CLI flags.
type Config struct {
	// Debug enables debug-level logging on stderr.
	Debug bool

	// ConfigPath is an optional YAML config file. Environment variables
	// always win over file values.
	ConfigPath string

	// TokenStorage overrides the OAuth2 token cache path.
	TokenStorage string
}

// NewConfig creates a new application configuration.
func NewConfig(debug bool, configPath, tokenStorage string) *Config {
	return &Config{
		Debug:        debug,
		ConfigPath:   configPath,
		TokenStorage: tokenStorage,
	}
}
