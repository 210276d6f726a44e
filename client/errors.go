package client

import (
	"errors"
	"fmt"
)

// ConnectError wraps a dial or handshake failure.
type ConnectError struct {
	Err error
}

func (e *ConnectError) Error() string { return "mcp connect: " + e.Err.Error() }

func (e *ConnectError) Unwrap() error { return e.Err }

// ToolError reports a failed tools/call. Err is set for protocol-level
// failures; Message carries the server's text when it flagged the result
// as an error.
type ToolError struct {
	Tool    string
	Message string
	Err     error
}

func (e *ToolError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("mcp call tool %q: %v", e.Tool, e.Err)
	case e.Message != "":
		return fmt.Sprintf("mcp call tool %q: server reported error: %s", e.Tool, e.Message)
	default:
		return fmt.Sprintf("mcp call tool %q: server reported error", e.Tool)
	}
}

func (e *ToolError) Unwrap() error { return e.Err }

// DecodeError is returned when a RawText result is decoded as JSON, or when
// decoded JSON does not fit the target type.
type DecodeError struct {
	Text string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return "mcp decode result: " + e.Err.Error()
	}
	return "mcp decode result: response is not JSON"
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ArgumentError is returned by opt-in validation before anything is sent.
type ArgumentError struct {
	Tool string
	Err  error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("mcp call tool %q: invalid arguments: %v", e.Tool, e.Err)
}

func (e *ArgumentError) Unwrap() error { return e.Err }

// IsConnectError reports whether err came from dialing or the handshake.
func IsConnectError(err error) bool {
	var e *ConnectError
	return errors.As(err, &e)
}

// IsToolError reports whether err came from a tools/call.
func IsToolError(err error) bool {
	var e *ToolError
	return errors.As(err, &e)
}
