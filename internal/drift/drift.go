// Package drift compares the input types of hand-written wrappers with the
// schemas a server currently lists.
package drift

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/Suntory-Y-Water/mcp-code-execution/internal/codegen"
	"github.com/Suntory-Y-Water/mcp-code-execution/toolspec"
)

// Kind classifies a Finding.
type Kind string

const (
	// ToolMissing: a wrapped tool is not listed by the server.
	ToolMissing Kind = "tool_missing"
	// ToolUnwrapped: the server lists a tool with no wrapper. Not blocking.
	ToolUnwrapped Kind = "tool_unwrapped"
	// FieldMissing: the server declares a field the wrapper cannot send.
	FieldMissing Kind = "field_missing"
	// FieldExtra: the wrapper sends a field the server does not declare.
	FieldExtra      Kind = "field_extra"
	OptionalityDiff Kind = "optionality"
	TypeDiff        Kind = "type"
)

// Finding is one difference between a wrapper and the live server.
type Finding struct {
	Tool  string `json:"tool"`
	Field string `json:"field,omitempty"`
	Kind  Kind   `json:"kind"`
	Want  string `json:"want,omitempty"`
	Got   string `json:"got,omitempty"`
}

// Blocking reports whether the finding means the wrapper is out of date.
func (f Finding) Blocking() bool { return f.Kind != ToolUnwrapped }

func (f Finding) String() string {
	var b strings.Builder
	b.WriteString(f.Tool)
	if f.Field != "" {
		b.WriteString(".")
		b.WriteString(f.Field)
	}
	fmt.Fprintf(&b, ": %s", f.Kind)
	if f.Want != "" || f.Got != "" {
		fmt.Fprintf(&b, " (wrapper %s, server %s)", orNone(f.Want), orNone(f.Got))
	}
	return b.String()
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

// Expected is the input a wrapper sends for one tool.
type Expected struct {
	Name   string
	Schema toolspec.Schema
}

// FromReflected converts a reflected wrapper schema to the subset compared
// against listed schemas.
func FromReflected(name string, s *jsonschema.Schema) (Expected, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return Expected{}, fmt.Errorf("drift: encode %s schema: %w", name, err)
	}
	out, err := toolspec.DecodeSchema(b)
	if err != nil {
		return Expected{}, fmt.Errorf("drift: decode %s schema: %w", name, err)
	}
	return Expected{Name: name, Schema: out}, nil
}

// Report is the outcome of Compare.
type Report struct {
	Findings []Finding
}

// Drifted reports whether any blocking finding exists.
func (r Report) Drifted() bool {
	for _, f := range r.Findings {
		if f.Blocking() {
			return true
		}
	}
	return false
}

// Compare checks each expected tool against the live descriptors. Findings
// are ordered by tool then field.
func Compare(expected []Expected, live []toolspec.Descriptor) Report {
	byName := make(map[string]toolspec.Descriptor, len(live))
	for _, d := range live {
		byName[d.Name] = d
	}
	wrapped := make(map[string]bool, len(expected))

	var r Report
	for _, e := range expected {
		wrapped[e.Name] = true
		d, ok := byName[e.Name]
		if !ok {
			r.Findings = append(r.Findings, Finding{Tool: e.Name, Kind: ToolMissing})
			continue
		}
		r.Findings = append(r.Findings, compareFields(e.Name, e.Schema, d.InputSchema)...)
	}
	for _, d := range live {
		if !wrapped[d.Name] {
			r.Findings = append(r.Findings, Finding{Tool: d.Name, Kind: ToolUnwrapped})
		}
	}
	sort.SliceStable(r.Findings, func(i, j int) bool {
		a, b := r.Findings[i], r.Findings[j]
		if a.Tool != b.Tool {
			return a.Tool < b.Tool
		}
		return a.Field < b.Field
	})
	return r
}

func compareFields(tool string, want, got toolspec.Schema) []Finding {
	wantFields := fieldsByName(codegen.LowerSchema(want, ""))
	gotFields := fieldsByName(codegen.LowerSchema(got, ""))

	var out []Finding
	for name, g := range gotFields {
		w, ok := wantFields[name]
		if !ok {
			out = append(out, Finding{Tool: tool, Field: name, Kind: FieldMissing, Got: optionality(g)})
			continue
		}
		if w.Optional != g.Optional {
			out = append(out, Finding{Tool: tool, Field: name, Kind: OptionalityDiff, Want: optionality(w), Got: optionality(g)})
		}
		// An untyped server field accepts anything the wrapper sends.
		if g.Kind != codegen.Untyped && w.Kind != g.Kind {
			out = append(out, Finding{Tool: tool, Field: name, Kind: TypeDiff, Want: w.Kind.String(), Got: g.Kind.String()})
		}
	}
	for name := range wantFields {
		if _, ok := gotFields[name]; !ok {
			out = append(out, Finding{Tool: tool, Field: name, Kind: FieldExtra})
		}
	}
	return out
}

func fieldsByName(t codegen.InputType) map[string]codegen.Field {
	m := make(map[string]codegen.Field, len(t.Fields))
	for _, f := range t.Fields {
		m[f.Name] = f
	}
	return m
}

func optionality(f codegen.Field) string {
	if f.Optional {
		return "optional"
	}
	return "required"
}
