package serena

import (
	"context"

	"github.com/Suntory-Y-Water/mcp-code-execution/client"
)

type FindSymbolInput struct {
	NamePath          string       `json:"name_path" jsonschema_description:"Simple name, relative path 'class/method' or absolute path '/class/method' in the symbol tree."`
	Depth             *int         `json:"depth,omitempty" jsonschema_description:"Depth of descendants to include, e.g. 1 for the methods of a class."`
	RelativePath      string       `json:"relative_path,omitempty" jsonschema_description:"Restrict the search to this file or directory."`
	IncludeBody       *bool        `json:"include_body,omitempty"`
	IncludeKinds      []SymbolKind `json:"include_kinds,omitempty"`
	ExcludeKinds      []SymbolKind `json:"exclude_kinds,omitempty"`
	SubstringMatching *bool        `json:"substring_matching,omitempty"`
	MaxAnswerChars    *int         `json:"max_answer_chars,omitempty"`
}

var FindSymbolDefinition = ToolDefinition{
	Name: "find_symbol",
	Description: "Retrieves information on all symbols/code entities (classes, methods, etc.) based on the given `name_path`,\n" +
		"which represents a pattern for the symbol's path within the symbol tree of a single file.\n" +
		"The returned symbol location can be used for edits or further queries.\n" +
		"Specify `depth > 0` to retrieve children (e.g., methods of a class).\n\n" +
		"The matching behavior is determined by the structure of `name_path`, which can\n" +
		"either be a simple name (e.g. \"method\") or a name path like \"class/method\" (relative name path)\n" +
		"or \"/class/method\" (absolute name path). Note that the name path is not a path in the file system\n" +
		"but rather a path in the symbol tree **within a single file**. Thus, file or directory names should never\n" +
		"be included in the `name_path`. For restricting the search to a single file or directory,\n" +
		"the `within_relative_path` parameter should be used instead. The retrieved symbols' `name_path` attribute\n" +
		"will always be composed of symbol names, never file or directory names.\n\n" +
		"Key aspects of the name path matching behavior:\n" +
		"- Trailing slashes in `name_path` play no role and are ignored.\n" +
		"- The name of the retrieved symbols will match (either exactly or as a substring)\n" +
		"  the last segment of `name_path`, while other segments will restrict the search to symbols that\n" +
		"  have a desired sequence of ancestors.\n" +
		"- If there is no starting or intermediate slash in `name_path`, there is no\n" +
		"  restriction on the ancestor symbols. For example, passing `method` will match\n" +
		"  against symbols with name paths like `method`, `class/method`, `class/nested_class/method`, etc.\n" +
		"- If `name_path` contains a `/` but doesn't start with a `/`, the matching is restricted to symbols\n" +
		"  with the same ancestors as the last segment of `name_path`. For example, passing `class/method` will match against\n" +
		"  `class/method` as well as `nested_class/class/method` but not `method`.\n" +
		"- If `name_path` starts with a `/`, it will be treated as an absolute name path pattern, meaning\n" +
		"  that the first segment of it must match the first segment of the symbol's name path.\n" +
		"  For example, passing `/class` will match only against top-level symbols like `class` but not against `nested_class/class`.\n" +
		"  Passing `/class/method` will match against `class/method` but not `nested_class/class/method` or `method`. Returns a list of symbols (with locations) matching the name.",
	InputSchema: GenerateSchema[FindSymbolInput](),
}

// FindSymbol returns the symbols whose name path matches input.NamePath.
func FindSymbol(ctx context.Context, c client.Caller, input FindSymbolInput) ([]Symbol, error) {
	return client.As[[]Symbol](c.Invoke(ctx, FindSymbolDefinition.Name, input))
}
