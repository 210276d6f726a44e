package drift_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Suntory-Y-Water/mcp-code-execution/internal/drift"
	"github.com/Suntory-Y-Water/mcp-code-execution/servers/serena"
	"github.com/Suntory-Y-Water/mcp-code-execution/toolspec"
)

type listDirInput struct {
	RelativePath   string `json:"relative_path"`
	Recursive      bool   `json:"recursive"`
	MaxAnswerChars *int   `json:"max_answer_chars,omitempty"`
}

func expected(t *testing.T) []drift.Expected {
	t.Helper()
	e, err := drift.FromReflected("list_dir", serena.GenerateSchema[listDirInput]())
	if err != nil {
		t.Fatalf("FromReflected: %v", err)
	}
	return []drift.Expected{e}
}

func liveListDir(required []string, props ...toolspec.NamedProperty) []toolspec.Descriptor {
	return []toolspec.Descriptor{{Name: "list_dir", InputSchema: toolspec.NewSchema(required, props...)}}
}

func TestCompare_Clean(t *testing.T) {
	live := liveListDir([]string{"relative_path", "recursive"},
		toolspec.Prop("relative_path", "string"),
		toolspec.Prop("recursive", "boolean"),
		// number and integer lower to the same kind
		toolspec.Prop("max_answer_chars", "number"),
	)
	r := drift.Compare(expected(t), live)
	if r.Drifted() || len(r.Findings) != 0 {
		t.Fatalf("want no findings; got %v", r.Findings)
	}
}

func TestCompare_Findings(t *testing.T) {
	live := liveListDir([]string{"relative_path", "max_answer_chars", "skip_ignored_files"},
		toolspec.Prop("relative_path", "string"),
		toolspec.Prop("max_answer_chars", "string"),
		toolspec.Prop("skip_ignored_files", "boolean"),
	)
	r := drift.Compare(expected(t), live)
	want := []drift.Finding{
		{Tool: "list_dir", Field: "max_answer_chars", Kind: drift.OptionalityDiff, Want: "optional", Got: "required"},
		{Tool: "list_dir", Field: "max_answer_chars", Kind: drift.TypeDiff, Want: "number", Got: "text"},
		{Tool: "list_dir", Field: "recursive", Kind: drift.FieldExtra},
		{Tool: "list_dir", Field: "skip_ignored_files", Kind: drift.FieldMissing, Got: "required"},
	}
	if diff := cmp.Diff(want, r.Findings); diff != "" {
		t.Fatalf("findings (-want +got):\n%s", diff)
	}
	if !r.Drifted() {
		t.Fatalf("want drift")
	}
}

func TestCompare_UntypedServerFieldAcceptsAnything(t *testing.T) {
	live := liveListDir([]string{"relative_path", "recursive"},
		toolspec.Prop("relative_path", ""),
		toolspec.Prop("recursive", "boolean"),
		toolspec.Prop("max_answer_chars", "integer"),
	)
	if r := drift.Compare(expected(t), live); len(r.Findings) != 0 {
		t.Fatalf("want no findings; got %v", r.Findings)
	}
}

func TestCompare_ToolPresence(t *testing.T) {
	live := []toolspec.Descriptor{{Name: "activate_project"}}
	r := drift.Compare(expected(t), live)
	want := []drift.Finding{
		{Tool: "activate_project", Kind: drift.ToolUnwrapped},
		{Tool: "list_dir", Kind: drift.ToolMissing},
	}
	if diff := cmp.Diff(want, r.Findings); diff != "" {
		t.Fatalf("findings (-want +got):\n%s", diff)
	}

	// An unwrapped tool alone is not drift.
	r = drift.Compare(nil, live)
	if r.Drifted() {
		t.Fatalf("unwrapped tool should not block: %v", r.Findings)
	}
}

func TestFinding_String(t *testing.T) {
	f := drift.Finding{Tool: "find_symbol", Field: "depth", Kind: drift.TypeDiff, Want: "number", Got: "text"}
	if got, want := f.String(), "find_symbol.depth: type (wrapper number, server text)"; got != want {
		t.Fatalf("want %q; got %q", want, got)
	}
	f = drift.Finding{Tool: "find_symbol", Field: "within_file", Kind: drift.FieldMissing, Got: "optional"}
	if got, want := f.String(), "find_symbol.within_file: field_missing (wrapper none, server optional)"; got != want {
		t.Fatalf("want %q; got %q", want, got)
	}
	f = drift.Finding{Tool: "onboarding", Kind: drift.ToolMissing}
	if got, want := f.String(), "onboarding: tool_missing"; got != want {
		t.Fatalf("want %q; got %q", want, got)
	}
}

// The registry compared with descriptors built from itself never drifts.
func TestCompare_RegistryAgainstItself(t *testing.T) {
	var (
		exp  []drift.Expected
		live []toolspec.Descriptor
	)
	for _, d := range serena.Registry() {
		e, err := drift.FromReflected(d.Name, d.InputSchema)
		if err != nil {
			t.Fatalf("%s: %v", d.Name, err)
		}
		exp = append(exp, e)
		live = append(live, toolspec.Descriptor{Name: d.Name, Description: d.Description, InputSchema: e.Schema})
	}
	if r := drift.Compare(exp, live); len(r.Findings) != 0 {
		t.Fatalf("want no findings; got %v", r.Findings)
	}
}
