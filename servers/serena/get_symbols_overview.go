package serena

import (
	"context"

	"github.com/Suntory-Y-Water/mcp-code-execution/client"
)

type GetSymbolsOverviewInput struct {
	RelativePath   string `json:"relative_path"`
	MaxAnswerChars *int   `json:"max_answer_chars,omitempty"`
}

var GetSymbolsOverviewDefinition = ToolDefinition{
	Name: "get_symbols_overview",
	Description: "Use this tool to get a high-level understanding of the code symbols in a file.\n" +
		"This should be the first tool to call when you want to understand a new file, unless you already know\n" +
		"what you are looking for. Returns a JSON object containing info about top-level symbols in the file.",
	InputSchema: GenerateSchema[GetSymbolsOverviewInput](),
}

// GetSymbolsOverview returns the top-level symbols of one file.
func GetSymbolsOverview(ctx context.Context, c client.Caller, input GetSymbolsOverviewInput) ([]Symbol, error) {
	return client.As[[]Symbol](c.Invoke(ctx, GetSymbolsOverviewDefinition.Name, input))
}
