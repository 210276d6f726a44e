// Package serena holds hand-written wrappers for the serena MCP server.
//
// Each tool has an Input struct, a ToolDefinition whose InputSchema is
// reflected from that struct, and a function that forwards the call through
// a client.Caller. A few tools decode into typed results; the rest return the
// client.Result as is.
package serena
