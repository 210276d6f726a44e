// Package toolspec holds the tool descriptors an MCP server lists and the
// restricted JSON Schema subset used to shape wrapper signatures.
//
// Decoding keeps the server's property order, so generated types list fields
// the way the server declared them.
package toolspec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Descriptor describes one tool exposed by a server.
type Descriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	InputSchema Schema `json:"inputSchema"`
}

// Schema is the subset of JSON Schema read from a tool's input schema.
type Schema struct {
	Type       string                                  `json:"type,omitempty"`
	Properties *orderedmap.OrderedMap[string, Property] `json:"properties,omitempty"`
	Required   []string                                `json:"required,omitempty"`
}

// Property is a single entry of Schema.Properties. Title, Description and
// Default are carried for display only.
type Property struct {
	Type        string `json:"type,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Default     any    `json:"default,omitempty"`
}

// UnmarshalJSON accepts any shape for "type"; only a plain string is kept.
func (p *Property) UnmarshalJSON(b []byte) error {
	var wire struct {
		Type        json.RawMessage `json:"type"`
		Title       string          `json:"title"`
		Description string          `json:"description"`
		Default     any             `json:"default"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	*p = Property{Title: wire.Title, Description: wire.Description, Default: wire.Default}
	if t := bytes.TrimSpace(wire.Type); len(t) > 0 && t[0] == '"' {
		if err := json.Unmarshal(t, &p.Type); err != nil {
			return fmt.Errorf("property type: %w", err)
		}
	}
	return nil
}

// Len returns the number of declared properties.
func (s Schema) Len() int {
	if s.Properties == nil {
		return 0
	}
	return s.Properties.Len()
}

// IsRequired reports whether name appears in the required list.
func (s Schema) IsRequired(name string) bool {
	return slices.Contains(s.Required, name)
}

// Each calls fn for every property in declaration order.
func (s Schema) Each(fn func(name string, p Property)) {
	if s.Properties == nil {
		return
	}
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// PropertyNames returns the property names in declaration order.
func (s Schema) PropertyNames() []string {
	names := make([]string, 0, s.Len())
	s.Each(func(name string, _ Property) { names = append(names, name) })
	return names
}

// NewSchema builds an object schema from ordered name/property pairs.
func NewSchema(required []string, props ...NamedProperty) Schema {
	s := Schema{Type: "object", Required: required}
	if len(props) > 0 {
		s.Properties = orderedmap.New[string, Property]()
		for _, np := range props {
			s.Properties.Set(np.Name, np.Property)
		}
	}
	return s
}

// NamedProperty pairs a property with its name for NewSchema.
type NamedProperty struct {
	Name string
	Property
}

// Prop is shorthand for a NamedProperty carrying only a type tag.
func Prop(name, typ string) NamedProperty {
	return NamedProperty{Name: name, Property: Property{Type: typ}}
}

var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidName reports whether a tool name is safe to use both as a file name
// seed and as an identifier seed.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// DecodeSchema decodes a raw JSON schema document. An empty document yields
// the zero Schema.
func DecodeSchema(raw []byte) (Schema, error) {
	var s Schema
	if len(bytes.TrimSpace(raw)) == 0 || string(bytes.TrimSpace(raw)) == "null" {
		return s, nil
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return Schema{}, err
	}
	return s, nil
}
