package serena

import (
	"context"

	"github.com/Suntory-Y-Water/mcp-code-execution/client"
)

type ListMemoriesInput struct{}

var ListMemoriesDefinition = ToolDefinition{
	Name:        "list_memories",
	Description: "List available memories. Any memory can be read using the `read_memory` tool.",
	InputSchema: GenerateSchema[ListMemoriesInput](),
}

// ListMemories returns the memory file names serena knows about.
func ListMemories(ctx context.Context, c client.Caller, input ListMemoriesInput) ([]string, error) {
	return client.As[[]string](c.Invoke(ctx, ListMemoriesDefinition.Name, input))
}
