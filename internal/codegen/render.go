package codegen

import "fmt"

// File is one generated source unit. Path is relative to the server's
// output directory.
type File struct {
	Path   string
	Source string
}

// Renderer turns lowered tools into source files for one target language.
type Renderer interface {
	ToolFile(ToolIR) (File, error)
	IndexFile([]ToolIR) (File, error)
}

// Lang selects a renderer.
type Lang string

const (
	LangTypeScript Lang = "ts"
	LangGo         Lang = "go"
)

// RenderOptions carries per-language settings; zero values pick defaults.
type RenderOptions struct {
	// ClientImport is the module specifier TypeScript wrappers import
	// callMCPTool from.
	ClientImport string
	// Package is the Go package clause of generated files.
	Package string
	// ClientPackage is the import path of the Go client package.
	ClientPackage string
}

// NewRenderer returns the renderer for lang.
func NewRenderer(lang Lang, opts RenderOptions) (Renderer, error) {
	switch lang {
	case LangTypeScript, "":
		return NewTypeScript(opts.ClientImport), nil
	case LangGo:
		return NewGo(opts.Package, opts.ClientPackage), nil
	default:
		return nil, fmt.Errorf("codegen: unknown language %q (want ts or go)", lang)
	}
}
