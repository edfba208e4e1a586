// Package logging provides a small subsystem-tagged logging facade over
// log/slog. All output is written to stderr by default so that stdout stays
// reserved for the MCP protocol stream.
package logging
