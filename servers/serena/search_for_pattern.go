package serena

import (
	"context"

	"github.com/Suntory-Y-Water/mcp-code-execution/client"
)

type SearchForPatternInput struct {
	SubstringPattern          string `json:"substring_pattern" jsonschema_description:"Regular expression, compiled with DOTALL."`
	ContextLinesBefore        *int   `json:"context_lines_before,omitempty"`
	ContextLinesAfter         *int   `json:"context_lines_after,omitempty"`
	PathsIncludeGlob          string `json:"paths_include_glob,omitempty"`
	PathsExcludeGlob          string `json:"paths_exclude_glob,omitempty"`
	RelativePath              string `json:"relative_path,omitempty"`
	RestrictSearchToCodeFiles *bool  `json:"restrict_search_to_code_files,omitempty"`
	MaxAnswerChars            *int   `json:"max_answer_chars,omitempty"`
}

// SearchForPatternResult maps a file path to its matched consecutive lines.
type SearchForPatternResult map[string][]string

var SearchForPatternDefinition = ToolDefinition{
	Name: "search_for_pattern",
	Description: "Offers a flexible search for arbitrary patterns in the codebase, including the\n" +
		"possibility to search in non-code files.\n" +
		"Generally, symbolic operations like find_symbol or find_referencing_symbols\n" +
		"should be preferred if you know which symbols you are looking for.\n\n" +
		"Pattern Matching Logic:\n" +
		"    For each match, the returned result will contain the full lines where the\n" +
		"    substring pattern is found, as well as optionally some lines before and after it. The pattern will be compiled with\n" +
		"    DOTALL, meaning that the dot will match all characters including newlines.\n" +
		"    This also means that it never makes sense to have .* at the beginning or end of the pattern,\n" +
		"    but it may make sense to have it in the middle for complex patterns.\n" +
		"    If a pattern matches multiple lines, all those lines will be part of the match.\n" +
		"    Be careful to not use greedy quantifiers unnecessarily, it is usually better to use non-greedy quantifiers like .*? to avoid\n" +
		"    matching too much content.\n\n" +
		"File Selection Logic:\n" +
		"    The files in which the search is performed can be restricted very flexibly.\n" +
		"    Using `restrict_search_to_code_files` is useful if you are only interested in code symbols (i.e., those\n" +
		"    symbols that can be manipulated with symbolic tools like find_symbol).\n" +
		"    You can also restrict the search to a specific file or directory,\n" +
		"    and provide glob patterns to include or exclude certain files on top of that.\n" +
		"    The globs are matched against relative file paths from the project root (not to the `relative_path` parameter that\n" +
		"    is used to further restrict the search).\n" +
		"    Smartly combining the various restrictions allows you to perform very targeted searches. Returns A mapping of file paths to lists of matched consecutive lines.",
	InputSchema: GenerateSchema[SearchForPatternInput](),
}

func SearchForPattern(ctx context.Context, c client.Caller, input SearchForPatternInput) (SearchForPatternResult, error) {
	return client.As[SearchForPatternResult](c.Invoke(ctx, SearchForPatternDefinition.Name, input))
}
