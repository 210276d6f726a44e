package serena

import (
	"context"

	"github.com/Suntory-Y-Water/mcp-code-execution/client"
)

// The think_about_* tools take no arguments and answer with a prompt for
// the caller to reflect on.

type ThinkAboutCollectedInformationInput struct{}

var ThinkAboutCollectedInformationDefinition = ToolDefinition{
	Name: "think_about_collected_information",
	Description: "Think about the collected information and whether it is sufficient and relevant.\n" +
		"This tool should ALWAYS be called after you have completed a non-trivial sequence of searching steps like\n" +
		"find_symbol, find_referencing_symbols, search_files_for_pattern, read_file, etc.",
	InputSchema: GenerateSchema[ThinkAboutCollectedInformationInput](),
}

func ThinkAboutCollectedInformation(ctx context.Context, c client.Caller, input ThinkAboutCollectedInformationInput) (client.Result, error) {
	return c.Invoke(ctx, ThinkAboutCollectedInformationDefinition.Name, input)
}

type ThinkAboutTaskAdherenceInput struct{}

var ThinkAboutTaskAdherenceDefinition = ToolDefinition{
	Name: "think_about_task_adherence",
	Description: "Think about the task at hand and whether you are still on track.\n" +
		"Especially important if the conversation has been going on for a while and there\n" +
		"has been a lot of back and forth.\n\n" +
		"This tool should ALWAYS be called before you insert, replace, or delete code.",
	InputSchema: GenerateSchema[ThinkAboutTaskAdherenceInput](),
}

func ThinkAboutTaskAdherence(ctx context.Context, c client.Caller, input ThinkAboutTaskAdherenceInput) (client.Result, error) {
	return c.Invoke(ctx, ThinkAboutTaskAdherenceDefinition.Name, input)
}

type ThinkAboutWhetherYouAreDoneInput struct{}

var ThinkAboutWhetherYouAreDoneDefinition = ToolDefinition{
	Name:        "think_about_whether_you_are_done",
	Description: "Whenever you feel that you are done with what the user has asked for, it is important to call this tool.",
	InputSchema: GenerateSchema[ThinkAboutWhetherYouAreDoneInput](),
}

func ThinkAboutWhetherYouAreDone(ctx context.Context, c client.Caller, input ThinkAboutWhetherYouAreDoneInput) (client.Result, error) {
	return c.Invoke(ctx, ThinkAboutWhetherYouAreDoneDefinition.Name, input)
}
