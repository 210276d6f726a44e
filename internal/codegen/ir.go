package codegen

import (
	"fmt"
	"strings"

	"github.com/Suntory-Y-Water/mcp-code-execution/toolspec"
)

// FieldKind is the language-neutral type of one input field.
type FieldKind int

const (
	Untyped FieldKind = iota
	Text
	Boolean
	Number
	Mapping
	Sequence
)

var kindNames = [...]string{"untyped", "text", "boolean", "number", "mapping", "sequence"}

func (k FieldKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
	return kindNames[k]
}

// KindOf maps a JSON Schema type tag to a FieldKind. Unknown or empty tags
// are Untyped.
func KindOf(tag string) FieldKind {
	switch tag {
	case "string":
		return Text
	case "boolean":
		return Boolean
	case "integer", "number":
		return Number
	case "object":
		return Mapping
	case "array":
		return Sequence
	default:
		return Untyped
	}
}

// Field is one property of a tool's input.
type Field struct {
	Name        string
	Kind        FieldKind
	Optional    bool
	Description string
}

// InputType is the flat record a wrapper accepts.
type InputType struct {
	Name   string
	Fields []Field
}

// Empty reports whether the type permits no fields at all.
func (t InputType) Empty() bool { return len(t.Fields) == 0 }

// ToolIR is everything a renderer needs for one tool.
type ToolIR struct {
	Name         string
	FunctionName string
	TypeName     string
	Input        InputType
	Doc          []string
}

// LowerSchema builds the input type for schema under typeName.
func LowerSchema(schema toolspec.Schema, typeName string) InputType {
	t := InputType{Name: typeName}
	schema.Each(func(name string, p toolspec.Property) {
		t.Fields = append(t.Fields, Field{
			Name:        name,
			Kind:        KindOf(p.Type),
			Optional:    !schema.IsRequired(name),
			Description: p.Description,
		})
	})
	return t
}

// Lower converts one descriptor. The name must be identifier-safe because it
// seeds both file names and identifiers.
func Lower(d toolspec.Descriptor) (ToolIR, error) {
	if !toolspec.ValidName(d.Name) {
		return ToolIR{}, fmt.Errorf("codegen: tool name %q is not identifier-safe", d.Name)
	}
	typeName := TypeName(d.Name)
	return ToolIR{
		Name:         d.Name,
		FunctionName: FunctionName(d.Name),
		TypeName:     typeName,
		Input:        LowerSchema(d.InputSchema, typeName+"Input"),
		Doc:          strings.Split(d.Description, "\n"),
	}, nil
}

// LowerAll converts descriptors in order and rejects duplicate names.
func LowerAll(ds []toolspec.Descriptor) ([]ToolIR, error) {
	seen := make(map[string]bool, len(ds))
	out := make([]ToolIR, 0, len(ds))
	for _, d := range ds {
		if seen[d.Name] {
			return nil, fmt.Errorf("codegen: duplicate tool name %q", d.Name)
		}
		seen[d.Name] = true
		ir, err := Lower(d)
		if err != nil {
			return nil, err
		}
		out = append(out, ir)
	}
	return out, nil
}
