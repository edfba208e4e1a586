// Package app bootstraps the Frisbii Transform MCP server: it loads
// configuration, selects the authentication method, builds the API client and
// runs the stdio server.
package app
