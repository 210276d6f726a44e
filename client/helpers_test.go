package client_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Suntory-Y-Water/mcp-code-execution/client"
)

func textResult(s string) *mcp.CallToolResult {
	return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: s}}}
}

func objectSchema(required []string, props map[string]string) *jsonschema.Schema {
	s := &jsonschema.Schema{Type: "object", Properties: map[string]*jsonschema.Schema{}, Required: required}
	for name, typ := range props {
		s.Properties[name] = &jsonschema.Schema{Type: typ}
	}
	return s
}

// newTestServer registers a fixed set of tools that cover every response shape.
func newTestServer() *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{Name: "fake-serena", Version: "test"}, nil)
	add := func(name, desc string, schema *jsonschema.Schema, h mcp.ToolHandler) {
		s.AddTool(&mcp.Tool{Name: name, Description: desc, InputSchema: schema}, h)
	}
	add("list_dir", "Lists files and directories.", objectSchema([]string{"a_relative_path", "b_recursive"}, map[string]string{
		"a_relative_path":      "string",
		"b_recursive":          "boolean",
		"c_max_answer_chars":   "integer",
		"d_skip_ignored_files": "boolean",
	}), func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return textResult(`{"dirs":[],"files":[]}`), nil
	})
	add("plain", "Answers in prose.", objectSchema(nil, nil),
		func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return textResult("not json"), nil
		})
	add("image", "Answers with an image.", objectSchema(nil, nil),
		func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return &mcp.CallToolResult{Content: []mcp.Content{&mcp.ImageContent{Data: []byte("png"), MIMEType: "image/png"}}}, nil
		})
	add("fail", "Always fails.", objectSchema(nil, nil),
		func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			r := textResult("boom")
			r.IsError = true
			return r, nil
		})
	add("echo", "Echoes its arguments.", objectSchema(nil, map[string]string{"n": "integer"}),
		func(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return textResult(string(req.Params.Arguments)), nil
		})
	add("greet", "Greets by name.", objectSchema([]string{"name"}, map[string]string{"name": "string"}),
		func(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			var in struct{ Name string }
			_ = json.Unmarshal(req.Params.Arguments, &in)
			b, _ := json.Marshal("hello " + in.Name)
			return textResult(string(b)), nil
		})
	return s
}

// inMemoryDialer connects server to a fresh in-memory pipe on every dial.
func inMemoryDialer(t *testing.T, server *mcp.Server, dials *atomic.Int32) client.Dialer {
	t.Helper()
	return func(ctx context.Context) (mcp.Transport, error) {
		dials.Add(1)
		ct, st := mcp.NewInMemoryTransports()
		ss, err := server.Connect(ctx, st, nil)
		if err != nil {
			return nil, err
		}
		t.Cleanup(func() { _ = ss.Close() })
		return ct, nil
	}
}

// syncBuffer is a goroutine-safe log sink.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newManager(t *testing.T, opts *client.Options) (*client.Manager, *atomic.Int32, *syncBuffer) {
	t.Helper()
	var dials atomic.Int32
	logs := &syncBuffer{}
	if opts == nil {
		opts = &client.Options{}
	}
	opts.Logger = slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := client.New(inMemoryDialer(t, newTestServer(), &dials), opts)
	t.Cleanup(func() { _ = m.Close() })
	return m, &dials, logs
}
