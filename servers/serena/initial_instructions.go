package serena

import (
	"context"

	"github.com/Suntory-Y-Water/mcp-code-execution/client"
)

type InitialInstructionsInput struct{}

var InitialInstructionsDefinition = ToolDefinition{
	Name: "initial_instructions",
	Description: "Provides the 'Serena Instructions Manual', which contains essential information on how to use the Serena toolbox.\n" +
		"Call this tool if you have not yet read this very important manual!.",
	InputSchema: GenerateSchema[InitialInstructionsInput](),
}

func InitialInstructions(ctx context.Context, c client.Caller, input InitialInstructionsInput) (client.Result, error) {
	return c.Invoke(ctx, InitialInstructionsDefinition.Name, input)
}
