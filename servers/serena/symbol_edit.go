package serena

import (
	"context"

	"github.com/Suntory-Y-Water/mcp-code-execution/client"
)

// SymbolEditInput addresses a symbol by name path within one file and
// carries the replacement or inserted body.
type SymbolEditInput struct {
	NamePath     string `json:"name_path" jsonschema_description:"Name path of the symbol, e.g. 'class/method'."`
	RelativePath string `json:"relative_path" jsonschema_description:"File containing the symbol."`
	Body         string `json:"body"`
}

type (
	InsertAfterSymbolInput  = SymbolEditInput
	InsertBeforeSymbolInput = SymbolEditInput
	ReplaceSymbolBodyInput  = SymbolEditInput
)

var InsertAfterSymbolDefinition = ToolDefinition{
	Name: "insert_after_symbol",
	Description: "Inserts the given body/content after the end of the definition of the given symbol (via the symbol's location).\n" +
		"A typical use case is to insert a new class, function, method, field or variable assignment.",
	InputSchema: GenerateSchema[InsertAfterSymbolInput](),
}

func InsertAfterSymbol(ctx context.Context, c client.Caller, input InsertAfterSymbolInput) (client.Result, error) {
	return c.Invoke(ctx, InsertAfterSymbolDefinition.Name, input)
}

var InsertBeforeSymbolDefinition = ToolDefinition{
	Name: "insert_before_symbol",
	Description: "Inserts the given content before the beginning of the definition of the given symbol (via the symbol's location).\n" +
		"A typical use case is to insert a new class, function, method, field or variable assignment; or\n" +
		"a new import statement before the first symbol in the file.",
	InputSchema: GenerateSchema[InsertBeforeSymbolInput](),
}

func InsertBeforeSymbol(ctx context.Context, c client.Caller, input InsertBeforeSymbolInput) (client.Result, error) {
	return c.Invoke(ctx, InsertBeforeSymbolDefinition.Name, input)
}

var ReplaceSymbolBodyDefinition = ToolDefinition{
	Name: "replace_symbol_body",
	Description: "Replaces the body of the symbol with the given `name_path`.\n\n" +
		"The tool shall be used to replace symbol bodies that have been previously retrieved\n" +
		"(e.g. via `find_symbol`).\n" +
		"IMPORTANT: Do not use this tool if you do not know what exactly constitutes the body of the symbol.",
	InputSchema: GenerateSchema[ReplaceSymbolBodyInput](),
}

func ReplaceSymbolBody(ctx context.Context, c client.Caller, input ReplaceSymbolBodyInput) (client.Result, error) {
	return c.Invoke(ctx, ReplaceSymbolBodyDefinition.Name, input)
}

type RenameSymbolInput struct {
	NamePath     string `json:"name_path"`
	RelativePath string `json:"relative_path"`
	NewName      string `json:"new_name"`
}

var RenameSymbolDefinition = ToolDefinition{
	Name: "rename_symbol",
	Description: "Renames the symbol with the given `name_path` to `new_name` throughout the entire codebase.\n" +
		"Note: for languages with method overloading, like Java, name_path may have to include a method's\n" +
		"signature to uniquely identify a method. Returns result summary indicating success or failure.",
	InputSchema: GenerateSchema[RenameSymbolInput](),
}

func RenameSymbol(ctx context.Context, c client.Caller, input RenameSymbolInput) (client.Result, error) {
	return c.Invoke(ctx, RenameSymbolDefinition.Name, input)
}
