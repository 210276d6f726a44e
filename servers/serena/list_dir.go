package serena

import (
	"context"

	"github.com/Suntory-Y-Water/mcp-code-execution/client"
)

type ListDirInput struct {
	RelativePath     string `json:"relative_path" jsonschema_description:"Directory to list; '.' for the project root."`
	Recursive        bool   `json:"recursive"`
	SkipIgnoredFiles *bool  `json:"skip_ignored_files,omitempty"`
	MaxAnswerChars   *int   `json:"max_answer_chars,omitempty"`
}

type ListDirResult struct {
	Dirs  []string `json:"dirs"`
	Files []string `json:"files"`
}

var ListDirDefinition = ToolDefinition{
	Name:        "list_dir",
	Description: "Lists files and directories in the given directory (optionally with recursion). Returns a JSON object with the names of directories and files within the given directory.",
	InputSchema: GenerateSchema[ListDirInput](),
}

func ListDir(ctx context.Context, c client.Caller, input ListDirInput) (ListDirResult, error) {
	return client.As[ListDirResult](c.Invoke(ctx, ListDirDefinition.Name, input))
}
