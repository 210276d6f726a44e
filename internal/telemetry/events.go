package telemetry

import (
	"context"
	"time"

	"github.com/Suntory-Y-Water/mcp-code-execution/internal/metrics"
)

// EmitToolCall records one tools/call round trip. Argument and result bodies
// are never written; only their sizes.
func EmitToolCall(ctx context.Context, tool string, d time.Duration, inputSize, outputSize int, kind string, err error) {
	runID, _ := RunIDFromContext(ctx)
	fields := map[string]any{
		"run_id":      runID,
		"tool_name":   tool,
		"duration_ms": d.Milliseconds(),
		"input_size":  inputSize,
		"output_size": outputSize,
		"result_kind": kind,
		"error":       nil,
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	Emit("tool_call", fields)
}

// EmitDecodeAnomaly records a text response that was not valid JSON.
func EmitDecodeAnomaly(ctx context.Context, tool string, textSize int) {
	runID, _ := RunIDFromContext(ctx)
	Emit("decode_anomaly", map[string]any{
		"run_id":    runID,
		"tool_name": tool,
		"text_size": textSize,
	})
}

// EmitFileWritten records one generated file and its size figures.
func EmitFileWritten(ctx context.Context, path, source string) {
	runID, _ := RunIDFromContext(ctx)
	f := metrics.CountFile(source)
	Emit("file_written", map[string]any{
		"run_id": runID,
		"path":   path,
		"bytes":  f.Bytes,
		"runes":  f.Runes,
		"lines":  f.Lines,
	})
}
