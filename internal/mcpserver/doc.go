// Package mcpserver exposes the Billwerk+ Transform API as MCP tools over
// stdio. Each tool maps to exactly one upstream endpoint; handlers validate
// arguments, call the API client, and return the upstream JSON to the
// assistant. Tool and argument names follow the upstream project and must
// not change, since assistant prompts in the wild reference them.
package mcpserver
