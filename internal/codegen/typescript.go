package codegen

import (
	"regexp"
	"strings"

	"github.com/Suntory-Y-Water/mcp-code-execution/toolspec"
)

// DefaultClientImport is where TypeScript wrappers find callMCPTool, relative
// to servers/<server>/. The module is expected from the host project; nothing
// here provides it.
const DefaultClientImport = "../../src/client.js"

const tsIndexHeader = "// Auto-generated file. Do not edit manually.\n" +
	"// Generated from Serena MCP server tool definitions.\n"

var tsIdent = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// TypeScript renders <tool>.ts wrappers and an index.ts barrel.
type TypeScript struct {
	clientImport string
}

// NewTypeScript returns a TypeScript renderer. An empty clientImport selects
// DefaultClientImport.
func NewTypeScript(clientImport string) *TypeScript {
	if clientImport == "" {
		clientImport = DefaultClientImport
	}
	return &TypeScript{clientImport: clientImport}
}

// TypeFromSchema renders the input type declaration for schema.
func TypeFromSchema(schema toolspec.Schema, typeName string) string {
	return tsInputType(LowerSchema(schema, typeName))
}

func tsInputType(t InputType) string {
	if t.Empty() {
		return "type " + t.Name + " = Record<string, never>;"
	}
	var b strings.Builder
	b.WriteString("type " + t.Name + " = {\n")
	for _, f := range t.Fields {
		key := f.Name
		if !tsIdent.MatchString(key) {
			key = tsQuote(key)
		}
		opt := ""
		if f.Optional {
			opt = "?"
		}
		b.WriteString("  " + key + opt + ": " + tsType(f.Kind) + ";\n")
	}
	b.WriteString("};")
	return b.String()
}

func tsType(k FieldKind) string {
	switch k {
	case Text:
		return "string"
	case Boolean:
		return "boolean"
	case Number:
		return "number"
	case Mapping:
		return "Record<string, unknown>"
	case Sequence:
		return "unknown[]"
	default:
		return "unknown"
	}
}

func tsQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)
	return "'" + r.Replace(s) + "'"
}

// ToolFile renders one wrapper module.
func (r *TypeScript) ToolFile(t ToolIR) (File, error) {
	var b strings.Builder
	b.WriteString("import { callMCPTool } from " + tsQuote(r.clientImport) + ";\n\n")
	b.WriteString(tsInputType(t.Input))
	b.WriteString("\n\n/**\n")
	for _, line := range t.Doc {
		// A literal "*/" would end the comment early.
		b.WriteString(" * " + strings.ReplaceAll(line, "*/", `*\/`) + "\n")
	}
	b.WriteString(" */\n")
	b.WriteString("export async function " + t.FunctionName + "(input: " + t.Input.Name + "): Promise<unknown> {\n")
	b.WriteString("  return await callMCPTool('" + t.Name + "', input);\n")
	b.WriteString("}\n")
	return File{Path: t.Name + ".ts", Source: b.String()}, nil
}

// IndexFile re-exports every module in the order given.
func (r *TypeScript) IndexFile(tools []ToolIR) (File, error) {
	lines := make([]string, 0, len(tools))
	for _, t := range tools {
		lines = append(lines, "export * from './"+t.Name+".js';")
	}
	return File{Path: "index.ts", Source: tsIndexHeader + "\n" + strings.Join(lines, "\n") + "\n"}, nil
}
