// Package client owns one lazily opened MCP session to a tool server and
// forwards wrapper calls over it.
//
// Behavior:
//   - Manager.Session dials once and reuses the session until Close.
//   - Manager.Invoke issues a single tools/call with no retry and no timeout
//     of its own; cancellation comes from the caller's context.
//   - A textual first content element is parsed as JSON; text that is not
//     JSON is returned as a RawText result, never as an error.
//   - Manager.ListTools keeps the server's property order.
package client
