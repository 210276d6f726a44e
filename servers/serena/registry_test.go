package serena_test

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Suntory-Y-Water/mcp-code-execution/servers/serena"
	"github.com/Suntory-Y-Water/mcp-code-execution/toolspec"
)

func TestRegistry_ToolNames(t *testing.T) {
	want := []string{
		"check_onboarding_performed",
		"delete_memory",
		"find_file",
		"find_referencing_symbols",
		"find_symbol",
		"get_symbols_overview",
		"initial_instructions",
		"insert_after_symbol",
		"insert_before_symbol",
		"list_dir",
		"list_memories",
		"onboarding",
		"read_memory",
		"rename_symbol",
		"replace_symbol_body",
		"search_for_pattern",
		"think_about_collected_information",
		"think_about_task_adherence",
		"think_about_whether_you_are_done",
		"write_memory",
	}
	var got []string
	for _, d := range serena.Registry() {
		if d.Description == "" || d.InputSchema == nil {
			t.Errorf("%s: incomplete definition", d.Name)
		}
		got = append(got, d.Name)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("registry mismatch (-want +got):\n%s", diff)
	}
	if !slices.IsSorted(got) {
		t.Fatalf("registry not sorted: %v", got)
	}
}

func TestLookup(t *testing.T) {
	d, ok := serena.Lookup("list_dir")
	if !ok || d.Name != "list_dir" {
		t.Fatalf("want list_dir; got %+v ok=%v", d, ok)
	}
	if _, ok := serena.Lookup("nope"); ok {
		t.Fatalf("want miss for unknown tool")
	}
}

func decoded(t *testing.T, d serena.ToolDefinition) toolspec.Schema {
	t.Helper()
	b, err := json.Marshal(d.InputSchema)
	if err != nil {
		t.Fatalf("marshal %s: %v", d.Name, err)
	}
	s, err := toolspec.DecodeSchema(b)
	if err != nil {
		t.Fatalf("decode %s: %v", d.Name, err)
	}
	return s
}

func TestGenerateSchema_FieldsAndOptionality(t *testing.T) {
	s := decoded(t, serena.FindSymbolDefinition)
	wantNames := []string{
		"name_path", "depth", "relative_path", "include_body",
		"include_kinds", "exclude_kinds", "substring_matching", "max_answer_chars",
	}
	if diff := cmp.Diff(wantNames, s.PropertyNames()); diff != "" {
		t.Fatalf("property order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"name_path"}, s.Required); diff != "" {
		t.Fatalf("required (-want +got):\n%s", diff)
	}

	types := map[string]string{}
	s.Each(func(name string, p toolspec.Property) { types[name] = p.Type })
	wantTypes := map[string]string{
		"name_path":          "string",
		"depth":              "integer",
		"relative_path":      "string",
		"include_body":       "boolean",
		"include_kinds":      "array",
		"exclude_kinds":      "array",
		"substring_matching": "boolean",
		"max_answer_chars":   "integer",
	}
	if diff := cmp.Diff(wantTypes, types); diff != "" {
		t.Fatalf("types (-want +got):\n%s", diff)
	}
}

func TestGenerateSchema_RequiredToolArguments(t *testing.T) {
	cases := map[string][]string{
		"list_dir":            {"relative_path", "recursive"},
		"find_file":           {"file_mask", "relative_path"},
		"rename_symbol":       {"name_path", "relative_path", "new_name"},
		"insert_after_symbol": {"name_path", "relative_path", "body"},
		"write_memory":        {"memory_file_name", "content"},
		"search_for_pattern":  {"substring_pattern"},
	}
	for name, want := range cases {
		d, ok := serena.Lookup(name)
		if !ok {
			t.Fatalf("missing %s", name)
		}
		if diff := cmp.Diff(want, decoded(t, d).Required); diff != "" {
			t.Errorf("%s required (-want +got):\n%s", name, diff)
		}
	}
}

func TestGenerateSchema_EmptyInput(t *testing.T) {
	for _, d := range []serena.ToolDefinition{
		serena.OnboardingDefinition,
		serena.ListMemoriesDefinition,
		serena.ThinkAboutWhetherYouAreDoneDefinition,
	} {
		s := decoded(t, d)
		if s.Len() != 0 || len(s.Required) != 0 {
			t.Errorf("%s: want no fields; got %v required %v", d.Name, s.PropertyNames(), s.Required)
		}
		if s.Type != "object" {
			t.Errorf("%s: want object type; got %q", d.Name, s.Type)
		}
	}
}
