package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tidwall/gjson"

	"github.com/Suntory-Y-Water/mcp-code-execution/internal/telemetry"
	"github.com/Suntory-Y-Water/mcp-code-execution/toolspec"
)

const (
	defaultName    = "mcp-code-executor"
	defaultVersion = "0.1.0"
)

// Dialer produces a fresh transport for each new session.
type Dialer func(ctx context.Context) (mcp.Transport, error)

// ExecDialer launches newCmd's process for every dial and speaks MCP over
// its stdin and stdout.
func ExecDialer(newCmd func() *exec.Cmd) Dialer {
	return func(context.Context) (mcp.Transport, error) {
		return &mcp.CommandTransport{Command: newCmd()}, nil
	}
}

// CommandDialer is ExecDialer for a fixed command line.
func CommandDialer(name string, args ...string) Dialer {
	return ExecDialer(func() *exec.Cmd { return exec.Command(name, args...) })
}

// Caller is what wrapper functions depend on.
type Caller interface {
	Invoke(ctx context.Context, tool string, args any) (Result, error)
}

// Options tunes a Manager; the zero value is usable.
type Options struct {
	// Name and Version identify this client in the handshake.
	Name    string
	Version string
	Logger  *slog.Logger
	// ValidateArgs checks arguments against the listed input schema before
	// each call. Off by default so failures surface from the server.
	ValidateArgs bool
}

// Manager holds at most one open session.
type Manager struct {
	dial   Dialer
	opts   Options
	logger *slog.Logger

	mu      sync.Mutex
	session *mcp.ClientSession
	tap     *listTap

	listMu  sync.Mutex
	schemas schemaCache
}

var _ Caller = (*Manager)(nil)

// New returns a Manager that dials lazily. opts may be nil.
func New(dial Dialer, opts *Options) *Manager {
	m := &Manager{dial: dial}
	if opts != nil {
		m.opts = *opts
	}
	if m.opts.Name == "" {
		m.opts.Name = defaultName
	}
	if m.opts.Version == "" {
		m.opts.Version = defaultVersion
	}
	m.logger = m.opts.Logger
	if m.logger == nil {
		m.logger = slog.Default()
	}
	return m
}

// Session returns the open session, dialing and handshaking first if there
// is none.
func (m *Manager) Session(ctx context.Context) (*mcp.ClientSession, error) {
	cs, _, err := m.open(ctx)
	return cs, err
}

func (m *Manager) open(ctx context.Context) (*mcp.ClientSession, *listTap, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session != nil {
		return m.session, m.tap, nil
	}
	t, err := m.dial(ctx)
	if err != nil {
		return nil, nil, &ConnectError{Err: err}
	}
	tap := newListTap()
	c := mcp.NewClient(&mcp.Implementation{Name: m.opts.Name, Version: m.opts.Version}, nil)
	c.AddSendingMiddleware(requestLogging(m.logger))
	cs, err := c.Connect(ctx, &tapTransport{inner: t, tap: tap}, nil)
	if err != nil {
		return nil, nil, &ConnectError{Err: err}
	}
	m.logger.Debug("mcp session opened", "client", m.opts.Name)
	m.session, m.tap = cs, tap
	return cs, tap, nil
}

// Close ends the session if one is open. Calling it again is a no-op, and a
// later Session dials fresh.
func (m *Manager) Close() error {
	m.mu.Lock()
	cs := m.session
	m.session, m.tap = nil, nil
	m.mu.Unlock()
	if cs == nil {
		return nil
	}
	m.logger.Debug("mcp session closing")
	return cs.Close()
}

// ListTools returns every tool the server lists, following pagination, with
// input schema properties in server order.
func (m *Manager) ListTools(ctx context.Context) ([]toolspec.Descriptor, error) {
	cs, tap, err := m.open(ctx)
	if err != nil {
		return nil, err
	}
	// One tools/list in flight at a time so the tap capture matches the page.
	m.listMu.Lock()
	defer m.listMu.Unlock()

	var (
		out    []toolspec.Descriptor
		raw    = map[string]json.RawMessage{}
		cursor string
	)
	for {
		tap.take()
		res, err := cs.ListTools(ctx, &mcp.ListToolsParams{Cursor: cursor})
		if err != nil {
			return nil, fmt.Errorf("mcp list tools: %w", err)
		}
		page, schemas, err := decodeToolsPage(tap.take(), res)
		if err != nil {
			return nil, fmt.Errorf("mcp list tools: %w", err)
		}
		out = append(out, page...)
		for k, v := range schemas {
			raw[k] = v
		}
		if res.NextCursor == "" {
			break
		}
		cursor = res.NextCursor
	}
	m.schemas.store(raw)
	return out, nil
}

// decodeToolsPage prefers the captured wire bytes and falls back to
// re-encoding the SDK's decoded tools.
func decodeToolsPage(captured json.RawMessage, res *mcp.ListToolsResult) ([]toolspec.Descriptor, map[string]json.RawMessage, error) {
	var tools []gjson.Result
	if len(captured) > 0 {
		tools = gjson.GetBytes(captured, "tools").Array()
	}
	if len(tools) != len(res.Tools) {
		b, err := json.Marshal(res.Tools)
		if err != nil {
			return nil, nil, err
		}
		tools = gjson.ParseBytes(b).Array()
	}
	out := make([]toolspec.Descriptor, 0, len(tools))
	schemas := make(map[string]json.RawMessage, len(tools))
	for _, t := range tools {
		var d toolspec.Descriptor
		if err := json.Unmarshal([]byte(t.Raw), &d); err != nil {
			return nil, nil, fmt.Errorf("decode tool: %w", err)
		}
		out = append(out, d)
		if s := t.Get("inputSchema"); s.Exists() {
			schemas[d.Name] = json.RawMessage(s.Raw)
		}
	}
	return out, schemas, nil
}

// Invoke calls tool once with args and classifies the response.
func (m *Manager) Invoke(ctx context.Context, tool string, args any) (Result, error) {
	cs, err := m.Session(ctx)
	if err != nil {
		return Result{}, err
	}
	if args == nil {
		args = map[string]any{}
	}
	encoded, err := json.Marshal(args)
	if err != nil {
		return Result{}, &ArgumentError{Tool: tool, Err: err}
	}
	if m.opts.ValidateArgs {
		if err := m.validate(ctx, tool, encoded); err != nil {
			return Result{}, err
		}
	}

	start := time.Now()
	res, err := cs.CallTool(ctx, &mcp.CallToolParams{Name: tool, Arguments: json.RawMessage(encoded)})
	if err != nil {
		err = &ToolError{Tool: tool, Err: err}
		telemetry.EmitToolCall(ctx, tool, time.Since(start), len(encoded), 0, "", err)
		return Result{}, err
	}
	raw, err := json.Marshal(res)
	if err != nil {
		return Result{}, &DecodeError{Err: err}
	}
	r := DecodeEnvelope(raw)
	if res.IsError {
		msg := r.Text
		if r.Kind == Decoded {
			msg = string(r.JSON)
		}
		err = &ToolError{Tool: tool, Message: msg}
		telemetry.EmitToolCall(ctx, tool, time.Since(start), len(encoded), len(raw), r.Kind.String(), err)
		return Result{}, err
	}
	if r.Kind == RawText {
		m.logger.Warn("tool response is not JSON; returning raw text", "tool", tool, "bytes", len(r.Text))
		telemetry.EmitDecodeAnomaly(ctx, tool, len(r.Text))
	}
	telemetry.EmitToolCall(ctx, tool, time.Since(start), len(encoded), len(r.Bytes()), r.Kind.String(), nil)
	return r, nil
}

func (m *Manager) validate(ctx context.Context, tool string, encoded []byte) error {
	if !m.schemas.loaded() {
		if _, err := m.ListTools(ctx); err != nil {
			return err
		}
	}
	s, err := m.schemas.schema(tool)
	if err != nil {
		return &ArgumentError{Tool: tool, Err: err}
	}
	if err := validateArgs(s, encoded); err != nil {
		return &ArgumentError{Tool: tool, Err: err}
	}
	return nil
}
