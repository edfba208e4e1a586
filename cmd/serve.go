package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"frisbii-transform-mcp/internal/app"
)

// serveDebug enables verbose logging on stderr.
var serveDebug bool

// serveConfigPath is an optional YAML config file. Environment variables
// always win over file values.
var serveConfigPath string

// serveTokenStorage overrides the OAuth2 token cache path.
var serveTokenStorage string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server on stdin/stdout",
	Long: `Starts the Frisbii Transform MCP server. The server reads MCP requests from
stdin and writes responses to stdout; all logging goes to stderr.

Configuration comes from FRISBII_* environment variables, optionally overlaid
on a YAML config file (--config-path). The server runs until the MCP client
closes stdin or the process receives SIGINT/SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(serveDebug, serveConfigPath, serveTokenStorage)

	application, err := app.NewApplication(cfg, rootCmd.Version)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging on stderr")
	serveCmd.Flags().StringVar(&serveConfigPath, "config-path", "", "Path to a YAML config file (environment variables win)")
	serveCmd.Flags().StringVar(&serveTokenStorage, "token-storage", "", "Path of the OAuth2 token cache file")
}
