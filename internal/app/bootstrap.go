package app

import (
	"context"
	"fmt"
	"os"

	"frisbii-transform-mcp/internal/billwerk"
	"frisbii-transform-mcp/internal/config"
	"frisbii-transform-mcp/internal/mcpserver"
	"frisbii-transform-mcp/internal/oauth"
	"frisbii-transform-mcp/pkg/logging"
)

// ErrNoCredentials is returned by NewApplication when neither OAuth2
// credentials nor an API key are configured.
var ErrNoCredentials = fmt.Errorf("no credentials configured: set %s or %s/%s",
	config.EnvAPIKey, config.EnvClientID, config.EnvClientSecret)

// Application wires configuration, the token source, the API client and the
// MCP server together.
type Application struct {
	cfg    *config.Config
	server *mcpserver.MCPServer
}

// NewApplication performs the bootstrap sequence: initialize logging, load
// configuration, build the authentication stack and the MCP server.
//
// All logging goes to stderr; stdout carries the MCP stream.
func NewApplication(appCfg *Config, version string) (*Application, error) {
	level := logging.LevelInfo
	if appCfg.Debug {
		level = logging.LevelDebug
	}
	logging.Init(level, os.Stderr)

	cfg, err := config.Load(appCfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if appCfg.TokenStorage != "" {
		cfg.TokenStorage = appCfg.TokenStorage
	}

	authMethod := cfg.AuthMethod()
	logging.Info("bootstrap", "base URL %s, authentication method %s", cfg.BaseURL, authMethod)
	if authMethod == config.AuthNone {
		return nil, ErrNoCredentials
	}
	if cfg.LegalEntityID == "" {
		logging.Warn("bootstrap", "%s not set, requests use the credential's default legal entity", config.EnvLegalEntityID)
	}

	var tokens *oauth.TokenSource
	opts := []billwerk.Option{billwerk.WithLegalEntity(cfg.LegalEntityID)}
	switch authMethod {
	case config.AuthOAuth2:
		tokens = oauth.NewTokenSource(
			oauth.NewClient(oauth.Credentials{
				ClientID:     cfg.OAuth.ClientID,
				ClientSecret: cfg.OAuth.ClientSecret,
				TokenURL:     cfg.OAuth.TokenURL,
				Scope:        cfg.OAuth.Scope,
			}),
			oauth.NewTokenStore(cfg.TokenStorage),
		)
		opts = append(opts, billwerk.WithTokenProvider(tokens))
	case config.AuthBearer:
		opts = append(opts, billwerk.WithAPIKey(cfg.APIKey))
	}

	api := billwerk.NewClient(cfg.BaseURL, opts...)

	return &Application{
		cfg:    cfg,
		server: mcpserver.NewMCPServer(api, tokens, cfg, version),
	}, nil
}

// Run serves MCP over stdio until the context is cancelled or the client
// closes stdin.
func (a *Application) Run(ctx context.Context) error {
	return a.server.Start(ctx)
}
