package serena

import (
	"context"

	"github.com/Suntory-Y-Water/mcp-code-execution/client"
)

type CheckOnboardingPerformedInput struct{}

var CheckOnboardingPerformedDefinition = ToolDefinition{
	Name: "check_onboarding_performed",
	Description: "Checks whether project onboarding was already performed.\n" +
		"You should always call this tool before beginning to actually work on the project/after activating a project,\n" +
		"but after calling the initial instructions tool.",
	InputSchema: GenerateSchema[CheckOnboardingPerformedInput](),
}

// CheckOnboardingPerformed reports whether onboarding memories exist for the
// active project.
func CheckOnboardingPerformed(ctx context.Context, c client.Caller, input CheckOnboardingPerformedInput) (client.Result, error) {
	return c.Invoke(ctx, CheckOnboardingPerformedDefinition.Name, input)
}
