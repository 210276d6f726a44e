package client

import (
	"context"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// requestLogging logs every outgoing MCP request at debug level.
func requestLogging(logger *slog.Logger) mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			attrs := []any{"method", method}
			if p, ok := req.GetParams().(*mcp.CallToolParams); ok {
				attrs = append(attrs, "tool", p.Name)
			}
			start := time.Now()
			res, err := next(ctx, method, req)
			attrs = append(attrs, "duration_ms", time.Since(start).Milliseconds())
			if err != nil {
				logger.Debug("mcp request failed", append(attrs, "err", err)...)
				return res, err
			}
			logger.Debug("mcp request", attrs...)
			return res, err
		}
	}
}
