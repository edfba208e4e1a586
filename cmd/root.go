package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"frisbii-transform-mcp/internal/app"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error.
	ExitCodeError = 1
	// ExitCodeAuthRequired indicates credentials are missing.
	ExitCodeAuthRequired = 2
)

// rootCmd is the base command of the Frisbii Transform MCP server.
var rootCmd = &cobra.Command{
	Use:   "frisbii-transform-mcp",
	Short: "MCP server for the Frisbii Transform subscription management API",
	Long: `frisbii-transform-mcp exposes the Frisbii Transform (Billwerk+) subscription
and billing API as MCP tools for AI assistants.

The server speaks MCP over stdin/stdout and authenticates against the API
with either a static API key (FRISBII_API_KEY) or OAuth2 client credentials
(FRISBII_OAUTH2_CLIENT_ID / FRISBII_OAUTH2_CLIENT_SECRET).`,
	SilenceUsage: true,
}

// SetVersion sets the version for the root command. Called from the main
// package to inject the build-time version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// ExecuteContext runs the root command under the given context and exits
// with a semantic exit code on failure.
func ExecuteContext(ctx context.Context) {
	rootCmd.SetVersionTemplate(`{{printf "frisbii-transform-mcp version %s\n" .Version}}`)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode maps errors to exit codes for scripting.
func getExitCode(err error) int {
	if errors.Is(err, app.ErrNoCredentials) {
		return ExitCodeAuthRequired
	}
	return ExitCodeError
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
