package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// schemaCache compiles listed input schemas on first use.
type schemaCache struct {
	mu       sync.Mutex
	raw      map[string]json.RawMessage
	compiled map[string]*jsonschema.Schema
}

func (c *schemaCache) store(raw map[string]json.RawMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.raw = raw
	c.compiled = make(map[string]*jsonschema.Schema, len(raw))
}

func (c *schemaCache) loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.raw != nil
}

func (c *schemaCache) schema(tool string) (*jsonschema.Schema, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.compiled[tool]; ok {
		return s, nil
	}
	raw, ok := c.raw[tool]
	if !ok {
		return nil, fmt.Errorf("tool %q is not listed by the server", tool)
	}
	comp := jsonschema.NewCompiler()
	url := tool + ".schema.json"
	if err := comp.AddResource(url, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("schema resource: %w", err)
	}
	s, err := comp.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	c.compiled[tool] = s
	return s, nil
}

// validateArgs checks encoded arguments against the tool's input schema.
func validateArgs(s *jsonschema.Schema, encoded []byte) error {
	var doc any
	if err := json.Unmarshal(encoded, &doc); err != nil {
		return fmt.Errorf("parse arguments: %w", err)
	}
	return s.Validate(doc)
}
