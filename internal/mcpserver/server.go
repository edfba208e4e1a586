package mcpserver

import (
	"context"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"frisbii-transform-mcp/internal/billwerk"
	"frisbii-transform-mcp/internal/config"
	"frisbii-transform-mcp/internal/oauth"
	"frisbii-transform-mcp/pkg/logging"
)

// ServerName is the MCP server name announced during initialization.
const ServerName = "frisbii-transform"

// MCPServer exposes the billing API as MCP tools for AI assistants.
type MCPServer struct {
	api    *billwerk.Client
	tokens *oauth.TokenSource
	cfg    *config.Config

	mcpServer *server.MCPServer
	tools     []mcp.Tool
}

// NewMCPServer creates the MCP server and registers all tools. The billwerk
// client and token source may be nil when only the tool catalog is needed
// (e.g. for the `tools` command); handlers are never invoked in that case.
func NewMCPServer(api *billwerk.Client, tokens *oauth.TokenSource, cfg *config.Config, version string) *MCPServer {
	mcpServer := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(false),
	)

	m := &MCPServer{
		api:       api,
		tokens:    tokens,
		cfg:       cfg,
		mcpServer: mcpServer,
	}

	m.registerTools()
	return m
}

// Start serves MCP over stdio until the context is cancelled or the client
// closes stdin.
func (m *MCPServer) Start(ctx context.Context) error {
	logging.Info("mcpserver", "serving %d tools over stdio", len(m.tools))
	stdio := server.NewStdioServer(m.mcpServer)
	return stdio.Listen(ctx, os.Stdin, os.Stdout)
}

// Tools returns the registered tool definitions, in registration order.
func (m *MCPServer) Tools() []mcp.Tool {
	return m.tools
}

// addTool registers a tool and records it for the catalog.
func (m *MCPServer) addTool(tool mcp.Tool, handler server.ToolHandlerFunc) {
	m.tools = append(m.tools, tool)
	m.mcpServer.AddTool(tool, handler)
}

// registerTools registers every tool family.
func (m *MCPServer) registerTools() {
	m.registerCustomerTools()
	m.registerContractTools()
	m.registerComponentSubscriptionTools()
	m.registerUsageTools()
	m.registerInvoiceTools()
	m.registerPlanTools()
	m.registerPaymentTools()
	m.registerReportTools()
	m.registerWebhookTools()
	m.registerOAuthTools()
}
