// Package billwerk is a typed HTTP client for the Billwerk+ Transform
// (Frisbii Transform) subscription and billing API.
//
// The client supports two authentication modes: a static API key sent as
// bearer token, or an OAuth2 token source that transparently refreshes the
// access token. Every request additionally carries the
// x-selected-legal-entity-id tenant header when a legal entity is
// configured.
//
// Response bodies are returned as json.RawMessage: the upstream API owns the
// payload schemas and the MCP layer passes them through to the assistant
// untouched.
package billwerk
