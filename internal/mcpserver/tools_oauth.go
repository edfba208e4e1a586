package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"frisbii-transform-mcp/internal/config"
)

func (m *MCPServer) registerOAuthTools() {
	m.addTool(mcp.NewTool("oauth2_status",
		mcp.WithDescription("Check OAuth2 authentication status and configuration"),
	), m.handleOAuthStatus)

	m.addTool(mcp.NewTool("oauth2_refresh_token",
		mcp.WithDescription("Force refresh of the OAuth2 token, regardless of the current token's validity"),
	), m.handleOAuthRefreshToken)

	m.addTool(mcp.NewTool("oauth2_clear_token",
		mcp.WithDescription("Clear the stored OAuth2 token, forcing re-authentication on the next request"),
	), m.handleOAuthClearToken)
}

func (m *MCPServer) handleOAuthStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	authMethod := m.cfg.AuthMethod()

	legalEntityID := m.cfg.LegalEntityID
	if legalEntityID == "" {
		legalEntityID = "Not configured"
	}

	status := map[string]interface{}{
		"oauth2_configured":          authMethod == config.AuthOAuth2,
		"bearer_token_configured":    m.cfg.APIKey != "",
		"legal_entity_id_configured": m.cfg.LegalEntityID != "",
		"legal_entity_id":            legalEntityID,
		"current_auth_method":        string(authMethod),
		"token_storage_file":         m.cfg.TokenStorage,
		"oauth2_token_url":           m.cfg.OAuth.TokenURL,
		"oauth2_scope":               m.cfg.OAuth.Scope,
	}

	if authMethod == config.AuthOAuth2 && m.tokens != nil {
		ts := m.tokens.Status()
		status["token_exists"] = ts.TokenExists
		status["token_valid"] = ts.TokenValid
		if ts.ExpiresAt != nil {
			status["token_expires_at"] = ts.ExpiresAt.Unix()
			status["token_expires_datetime"] = ts.ExpiresAt.Format("2006-01-02T15:04:05")
		}
	}

	return jsonResult(status)
}

func (m *MCPServer) handleOAuthRefreshToken(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if m.cfg.AuthMethod() != config.AuthOAuth2 || m.tokens == nil {
		return jsonResult(map[string]interface{}{
			"success": false,
			"error":   "OAuth2 credentials not configured",
		})
	}

	if _, err := m.tokens.Refresh(ctx); err != nil {
		return jsonResult(map[string]interface{}{
			"success": false,
			"error":   fmt.Sprintf("Failed to refresh OAuth2 token: %v", err),
		})
	}

	return jsonResult(map[string]interface{}{
		"success": true,
		"message": "OAuth2 token refreshed successfully",
	})
}

func (m *MCPServer) handleOAuthClearToken(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if m.tokens == nil {
		return jsonResult(map[string]interface{}{
			"success": true,
			"message": "No OAuth2 token file found",
		})
	}

	if err := m.tokens.Clear(); err != nil {
		return jsonResult(map[string]interface{}{
			"success": false,
			"error":   fmt.Sprintf("Failed to clear OAuth2 token: %v", err),
		})
	}

	return jsonResult(map[string]interface{}{
		"success": true,
		"message": "OAuth2 token cleared successfully",
	})
}

// jsonResult marshals an ad-hoc response object into a tool result.
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
