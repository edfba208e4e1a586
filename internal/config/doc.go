// Package config loads the server configuration from FRISBII_* environment
// variables, optionally overlaid on a YAML config file. It also decides which
// authentication method (OAuth2 client credentials or static bearer token)
// the API client should use.
package config
