package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"
)

// DefaultClientPackage is the import path generated Go wrappers call through.
const DefaultClientPackage = "github.com/Suntory-Y-Water/mcp-code-execution/client"

const goHeader = "// Code generated by mcpexec; DO NOT EDIT.\n\n"

// Golang renders <tool>.go wrappers and a tools.go listing.
type Golang struct {
	pkg       string
	clientPkg string
}

// NewGo returns a Go renderer. Empty arguments pick "tools" and
// DefaultClientPackage.
func NewGo(pkg, clientPkg string) *Golang {
	if pkg == "" {
		pkg = "tools"
	}
	if clientPkg == "" {
		clientPkg = DefaultClientPackage
	}
	return &Golang{pkg: pkg, clientPkg: clientPkg}
}

// ToolFile renders the input struct and the wrapper function for one tool.
func (g *Golang) ToolFile(t ToolIR) (File, error) {
	if p := goFileProblem(t.Name); p != "" {
		return File{}, fmt.Errorf("codegen: tool %q: %s.go %s", t.Name, t.Name, p)
	}
	var b strings.Builder
	b.WriteString(goHeader)
	fmt.Fprintf(&b, "package %s\n\n", g.pkg)
	fmt.Fprintf(&b, "import (\n\t\"context\"\n\n\t%q\n)\n\n", g.clientPkg)

	fmt.Fprintf(&b, "// %s is the input of the %s tool.\n", t.Input.Name, t.Name)
	if t.Input.Empty() {
		fmt.Fprintf(&b, "type %s struct{}\n\n", t.Input.Name)
	} else {
		fmt.Fprintf(&b, "type %s struct {\n", t.Input.Name)
		for i, name := range goFieldNames(t.Input.Fields) {
			f := t.Input.Fields[i]
			tag := f.Name
			if f.Optional {
				tag += ",omitempty"
			}
			fmt.Fprintf(&b, "\t%s %s `json:%s`\n", name, goType(f), strconv.Quote(tag))
		}
		b.WriteString("}\n\n")
	}

	fmt.Fprintf(&b, "// %s calls the %s tool.\n", t.TypeName, t.Name)
	if len(t.Doc) > 0 && strings.Join(t.Doc, "") != "" {
		b.WriteString("//\n")
		for _, line := range t.Doc {
			if line = strings.TrimRight(line, " \t\r"); line == "" {
				b.WriteString("//\n")
				continue
			}
			b.WriteString("// " + line + "\n")
		}
	}
	fmt.Fprintf(&b, "func %s(ctx context.Context, c client.Caller, input %s) (client.Result, error) {\n", t.TypeName, t.Input.Name)
	fmt.Fprintf(&b, "\treturn c.Invoke(ctx, %q, input)\n}\n", t.Name)

	src, err := formatGo(t.Name+".go", b.String())
	if err != nil {
		return File{}, err
	}
	return File{Path: t.Name + ".go", Source: src}, nil
}

// IndexFile lists the tool names in the order given.
func (g *Golang) IndexFile(tools []ToolIR) (File, error) {
	if err := checkGoCollisions(tools); err != nil {
		return File{}, err
	}
	var b strings.Builder
	b.WriteString(goHeader)
	fmt.Fprintf(&b, "package %s\n\n", g.pkg)
	b.WriteString("// ToolNames lists the server's tools in listing order.\n")
	b.WriteString("var ToolNames = []string{\n")
	for _, t := range tools {
		fmt.Fprintf(&b, "\t%q,\n", t.Name)
	}
	b.WriteString("}\n")
	src, err := formatGo("tools.go", b.String())
	if err != nil {
		return File{}, err
	}
	return File{Path: "tools.go", Source: src}, nil
}

func formatGo(name, src string) (string, error) {
	out, err := imports.Process(name, []byte(src), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return "", fmt.Errorf("codegen: format %s: %w", name, err)
	}
	return string(out), nil
}

func goType(f Field) string {
	var base string
	switch f.Kind {
	case Text:
		base = "string"
	case Boolean:
		base = "bool"
	case Number:
		base = "float64"
	case Mapping:
		return "map[string]any"
	case Sequence:
		return "[]any"
	default:
		return "any"
	}
	if f.Optional {
		return "*" + base
	}
	return base
}

// goFieldNames derives exported, unique Go identifiers from property names.
func goFieldNames(fields []Field) []string {
	used := make(map[string]bool, len(fields))
	names := make([]string, len(fields))
	for i, f := range fields {
		n := TypeName(sanitizeIdent(f.Name))
		if n == "" {
			n = "Field"
		}
		if c := n[0]; c >= '0' && c <= '9' {
			n = "X" + n
		}
		for k, base := 2, n; used[n]; k++ {
			n = base + strconv.Itoa(k)
		}
		used[n] = true
		names[i] = n
	}
	return names
}

// File name suffixes the go tool reads as build constraints.
var (
	knownOS = map[string]bool{
		"aix": true, "android": true, "darwin": true, "dragonfly": true, "freebsd": true,
		"hurd": true, "illumos": true, "ios": true, "js": true, "linux": true, "nacl": true,
		"netbsd": true, "openbsd": true, "plan9": true, "solaris": true, "wasip1": true,
		"windows": true, "zos": true,
	}
	knownArch = map[string]bool{
		"386": true, "amd64": true, "amd64p32": true, "arm": true, "armbe": true,
		"arm64": true, "arm64be": true, "loong64": true, "mips": true, "mipsle": true,
		"mips64": true, "mips64le": true, "mips64p32": true, "mips64p32le": true,
		"ppc": true, "ppc64": true, "ppc64le": true, "riscv": true, "riscv64": true,
		"s390": true, "s390x": true, "sparc": true, "sparc64": true, "wasm": true,
	}
)

// goFileProblem reports why <stem>.go would not compile into the package on
// every platform, or "" if it would.
func goFileProblem(stem string) string {
	if strings.HasPrefix(stem, "_") || strings.HasPrefix(stem, ".") {
		return "is ignored by the go tool"
	}
	parts := strings.Split(stem, "_")
	n := len(parts)
	if n > 1 && parts[n-1] == "test" {
		return "is a test-only file"
	}
	if n > 1 && (knownOS[parts[n-1]] || knownArch[parts[n-1]]) {
		return "is build-constrained by its " + parts[n-1] + " suffix"
	}
	return ""
}

func sanitizeIdent(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, s)
}

// A tool whose function name equals another tool's input type name would not
// compile once both files share a package.
func checkGoCollisions(tools []ToolIR) error {
	idents := make(map[string]string, 2*len(tools)+1)
	idents["ToolNames"] = "tools.go"
	for _, t := range tools {
		for _, id := range []string{t.TypeName, t.Input.Name} {
			if prev, ok := idents[id]; ok {
				return fmt.Errorf("codegen: identifier %s of tool %q collides with %s", id, t.Name, prev)
			}
			idents[id] = t.Name
		}
	}
	return nil
}
