package serena

import (
	"context"

	"github.com/Suntory-Y-Water/mcp-code-execution/client"
)

type FindFileInput struct {
	FileMask     string `json:"file_mask" jsonschema_description:"Filename or glob with * and ? wildcards."`
	RelativePath string `json:"relative_path" jsonschema_description:"Directory to search in; '.' for the project root."`
}

// FindFileResult lists the matching files relative to the project root.
type FindFileResult struct {
	Files []string `json:"files"`
}

var FindFileDefinition = ToolDefinition{
	Name:        "find_file",
	Description: "Finds non-gitignored files matching the given file mask within the given relative path. Returns a JSON object with the list of matching files.",
	InputSchema: GenerateSchema[FindFileInput](),
}

func FindFile(ctx context.Context, c client.Caller, input FindFileInput) (FindFileResult, error) {
	return client.As[FindFileResult](c.Invoke(ctx, FindFileDefinition.Name, input))
}
