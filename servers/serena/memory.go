package serena

import (
	"context"

	"github.com/Suntory-Y-Water/mcp-code-execution/client"
)

type DeleteMemoryInput struct {
	MemoryFileName string `json:"memory_file_name"`
}

var DeleteMemoryDefinition = ToolDefinition{
	Name: "delete_memory",
	Description: "Delete a memory file. Should only happen if a user asks for it explicitly,\n" +
		"for example by saying that the information retrieved from a memory file is no longer correct\n" +
		"or no longer relevant for the project.",
	InputSchema: GenerateSchema[DeleteMemoryInput](),
}

func DeleteMemory(ctx context.Context, c client.Caller, input DeleteMemoryInput) (client.Result, error) {
	return c.Invoke(ctx, DeleteMemoryDefinition.Name, input)
}

type ReadMemoryInput struct {
	MemoryFileName string `json:"memory_file_name"`
	MaxAnswerChars *int   `json:"max_answer_chars,omitempty"`
}

var ReadMemoryDefinition = ToolDefinition{
	Name: "read_memory",
	Description: "Read the content of a memory file. This tool should only be used if the information\n" +
		"is relevant to the current task. You can infer whether the information\n" +
		"is relevant from the memory file name.\n" +
		"You should not read the same memory file multiple times in the same conversation.",
	InputSchema: GenerateSchema[ReadMemoryInput](),
}

// ReadMemory returns the memory content. Markdown rarely parses as JSON, so
// expect a RawText result.
func ReadMemory(ctx context.Context, c client.Caller, input ReadMemoryInput) (client.Result, error) {
	return c.Invoke(ctx, ReadMemoryDefinition.Name, input)
}

type WriteMemoryInput struct {
	MemoryFileName string `json:"memory_file_name" jsonschema_description:"Meaningful name of the memory, without extension."`
	Content        string `json:"content" jsonschema_description:"Markdown body to store."`
	MaxAnswerChars *int   `json:"max_answer_chars,omitempty"`
}

var WriteMemoryDefinition = ToolDefinition{
	Name: "write_memory",
	Description: "Write some information (utf-8-encoded) about this project that can be useful for future tasks to a memory in md format.\n" +
		"The memory name should be meaningful.",
	InputSchema: GenerateSchema[WriteMemoryInput](),
}

func WriteMemory(ctx context.Context, c client.Caller, input WriteMemoryInput) (client.Result, error) {
	return c.Invoke(ctx, WriteMemoryDefinition.Name, input)
}
