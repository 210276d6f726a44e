package serena

import (
	"context"

	"github.com/Suntory-Y-Water/mcp-code-execution/client"
)

type OnboardingInput struct{}

var OnboardingDefinition = ToolDefinition{
	Name: "onboarding",
	Description: "Call this tool if onboarding was not performed yet.\n" +
		"You will call this tool at most once per conversation. Returns instructions on how to create the onboarding information.",
	InputSchema: GenerateSchema[OnboardingInput](),
}

func Onboarding(ctx context.Context, c client.Caller, input OnboardingInput) (client.Result, error) {
	return c.Invoke(ctx, OnboardingDefinition.Name, input)
}
