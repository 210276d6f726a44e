package serena

import (
	"context"
	"encoding/json"

	"github.com/Suntory-Y-Water/mcp-code-execution/client"
)

type FindReferencingSymbolsInput struct {
	NamePath       string       `json:"name_path"`
	RelativePath   string       `json:"relative_path" jsonschema_description:"File containing the referenced symbol."`
	IncludeKinds   []SymbolKind `json:"include_kinds,omitempty"`
	ExcludeKinds   []SymbolKind `json:"exclude_kinds,omitempty"`
	MaxAnswerChars *int         `json:"max_answer_chars,omitempty"`
}

// Reference is a symbol that refers to the requested one. Serena adds a
// code snippet around the reference whose shape varies between releases,
// so it is kept raw.
type Reference struct {
	Symbol
	ContentAroundReference json.RawMessage `json:"content_around_reference,omitempty"`
}

var FindReferencingSymbolsDefinition = ToolDefinition{
	Name: "find_referencing_symbols",
	Description: "Finds references to the symbol at the given `name_path`. The result will contain metadata about the referencing symbols\n" +
		"as well as a short code snippet around the reference. Returns a list of JSON objects with the symbols referencing the requested symbol.",
	InputSchema: GenerateSchema[FindReferencingSymbolsInput](),
}

func FindReferencingSymbols(ctx context.Context, c client.Caller, input FindReferencingSymbolsInput) ([]Reference, error) {
	return client.As[[]Reference](c.Invoke(ctx, FindReferencingSymbolsDefinition.Name, input))
}
