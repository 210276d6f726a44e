package client

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// listTap records the raw result bytes of tools/list responses. The SDK
// decodes schemas into Go maps, which loses property order.
type listTap struct {
	mu      sync.Mutex
	pending map[jsonrpc.ID]bool
	last    json.RawMessage
}

func newListTap() *listTap {
	return &listTap{pending: make(map[jsonrpc.ID]bool)}
}

func (t *listTap) sent(msg jsonrpc.Message) {
	req, ok := msg.(*jsonrpc.Request)
	if !ok || req.Method != "tools/list" || !req.ID.IsValid() {
		return
	}
	t.mu.Lock()
	t.pending[req.ID] = true
	t.mu.Unlock()
}

func (t *listTap) received(msg jsonrpc.Message) {
	resp, ok := msg.(*jsonrpc.Response)
	if !ok {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.pending[resp.ID] {
		return
	}
	delete(t.pending, resp.ID)
	if resp.Error == nil {
		t.last = append(json.RawMessage(nil), resp.Result...)
	}
}

// take returns and clears the most recent capture.
func (t *listTap) take() json.RawMessage {
	t.mu.Lock()
	defer t.mu.Unlock()
	raw := t.last
	t.last = nil
	return raw
}

type tapTransport struct {
	inner mcp.Transport
	tap   *listTap
}

func (t *tapTransport) Connect(ctx context.Context) (mcp.Connection, error) {
	conn, err := t.inner.Connect(ctx)
	if err != nil {
		return nil, err
	}
	return &tapConn{Connection: conn, tap: t.tap}, nil
}

type tapConn struct {
	mcp.Connection
	tap *listTap
}

func (c *tapConn) Read(ctx context.Context) (jsonrpc.Message, error) {
	msg, err := c.Connection.Read(ctx)
	if err == nil {
		c.tap.received(msg)
	}
	return msg, err
}

func (c *tapConn) Write(ctx context.Context, msg jsonrpc.Message) error {
	c.tap.sent(msg)
	return c.Connection.Write(ctx, msg)
}
