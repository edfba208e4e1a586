package cmd

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"frisbii-transform-mcp/internal/config"
	"frisbii-transform-mcp/internal/mcpserver"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the MCP tools this server provides",
	Long: `Prints the registered MCP tool catalog as a table. No credentials are
required; the catalog is static.`,
	Args: cobra.NoArgs,
	RunE: runTools,
}

func runTools(cmd *cobra.Command, args []string) error {
	// Handlers are never invoked, so the server is built without an API
	// client or token source.
	cfg := config.GetDefaultConfig()
	m := mcpserver.NewMCPServer(nil, nil, &cfg, rootCmd.Version)

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Tool", "Required arguments", "Description"})

	for _, tool := range m.Tools() {
		t.AppendRow(table.Row{
			tool.Name,
			strings.Join(tool.InputSchema.Required, ", "),
			tool.Description,
		})
	}

	t.Render()
	return nil
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
