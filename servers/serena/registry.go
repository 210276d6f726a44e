package serena

import (
	"github.com/invopop/jsonschema"
)

// ToolDefinition describes one wrapped tool as this package expects the
// server to declare it.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
}

// GenerateSchema reflects the input schema of T. Fields without omitempty are
// required.
func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

// Registry returns every wrapped tool in alphabetical order.
func Registry() []ToolDefinition {
	return []ToolDefinition{
		CheckOnboardingPerformedDefinition,
		DeleteMemoryDefinition,
		FindFileDefinition,
		FindReferencingSymbolsDefinition,
		FindSymbolDefinition,
		GetSymbolsOverviewDefinition,
		InitialInstructionsDefinition,
		InsertAfterSymbolDefinition,
		InsertBeforeSymbolDefinition,
		ListDirDefinition,
		ListMemoriesDefinition,
		OnboardingDefinition,
		ReadMemoryDefinition,
		RenameSymbolDefinition,
		ReplaceSymbolBodyDefinition,
		SearchForPatternDefinition,
		ThinkAboutCollectedInformationDefinition,
		ThinkAboutTaskAdherenceDefinition,
		ThinkAboutWhetherYouAreDoneDefinition,
		WriteMemoryDefinition,
	}
}

// Lookup finds a definition by tool name.
func Lookup(name string) (ToolDefinition, bool) {
	for _, d := range Registry() {
		if d.Name == name {
			return d, true
		}
	}
	return ToolDefinition{}, false
}
