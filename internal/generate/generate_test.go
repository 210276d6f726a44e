package generate_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Suntory-Y-Water/mcp-code-execution/internal/codegen"
	"github.com/Suntory-Y-Water/mcp-code-execution/internal/generate"
	"github.com/Suntory-Y-Water/mcp-code-execution/internal/safety"
	"github.com/Suntory-Y-Water/mcp-code-execution/toolspec"
)

type fakeSource struct {
	tools  []toolspec.Descriptor
	err    error
	closed int
}

func (f *fakeSource) ListTools(context.Context) ([]toolspec.Descriptor, error) {
	return f.tools, f.err
}

func (f *fakeSource) Close() error {
	f.closed++
	return nil
}

func sampleTools() []toolspec.Descriptor {
	return []toolspec.Descriptor{
		{Name: "list_dir", Description: "Lists.", InputSchema: toolspec.NewSchema(
			[]string{"relative_path", "recursive"},
			toolspec.Prop("relative_path", "string"),
			toolspec.Prop("recursive", "boolean"),
		)},
		{Name: "activate_project", Description: "Activates."},
		{Name: "find_file", Description: "Finds."},
	}
}

func tsOptions(out string) generate.Options {
	return generate.Options{OutDir: out, Server: "serena", Renderer: codegen.NewTypeScript("")}
}

func readDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestRun_WritesEveryToolAndIndex(t *testing.T) {
	out := t.TempDir()
	src := &fakeSource{tools: sampleTools()}

	sum, err := generate.Run(context.Background(), src, tsOptions(out))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if src.closed != 1 {
		t.Fatalf("want source closed once; got %d", src.closed)
	}
	want := []string{"activate_project.ts", "find_file.ts", "index.ts", "list_dir.ts"}
	if diff := cmp.Diff(want, readDir(t, filepath.Join(out, "serena"))); diff != "" {
		t.Fatalf("files (-want +got):\n%s", diff)
	}
	if sum.Tools != 3 || sum.Files != 4 || len(sum.Paths) != 4 {
		t.Fatalf("summary: %+v", sum)
	}
	if !strings.HasSuffix(sum.Paths[3], "index.ts") {
		t.Fatalf("index must be written last: %v", sum.Paths)
	}

	idx, err := os.ReadFile(filepath.Join(out, "serena", "index.ts"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	l, a, f := strings.Index(string(idx), "list_dir"), strings.Index(string(idx), "activate_project"), strings.Index(string(idx), "find_file")
	if !(l < a && a < f) {
		t.Fatalf("index must follow listing order:\n%s", idx)
	}
}

func TestRun_RewritesUnconditionally(t *testing.T) {
	out := t.TempDir()
	stale := filepath.Join(out, "serena", "list_dir.ts")
	if err := os.MkdirAll(filepath.Dir(stale), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(stale, []byte("hand edits"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := generate.Run(context.Background(), &fakeSource{tools: sampleTools()}, tsOptions(out)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	b, _ := os.ReadFile(stale)
	if strings.Contains(string(b), "hand edits") {
		t.Fatalf("existing file was not rewritten")
	}
}

func TestRun_ListErrorStillCloses(t *testing.T) {
	sentinel := errors.New("server down")
	src := &fakeSource{err: sentinel}
	_, err := generate.Run(context.Background(), src, tsOptions(t.TempDir()))
	if !errors.Is(err, sentinel) {
		t.Fatalf("want sentinel; got %v", err)
	}
	if src.closed != 1 {
		t.Fatalf("want close on failure; got %d", src.closed)
	}
}

func TestRun_WriteFailureAbortsWithoutRollback(t *testing.T) {
	out := t.TempDir()
	// A directory where the second file should go makes that write fail.
	if err := os.MkdirAll(filepath.Join(out, "serena", "activate_project.ts"), 0o755); err != nil {
		t.Fatal(err)
	}
	src := &fakeSource{tools: sampleTools()}
	sum, err := generate.Run(context.Background(), src, tsOptions(out))
	var pe safety.PathError
	if !errors.As(err, &pe) {
		t.Fatalf("want PathError; got %v", err)
	}
	if sum.Files != 1 {
		t.Fatalf("want one file written before abort; got %d", sum.Files)
	}
	if _, err := os.Stat(filepath.Join(out, "serena", "list_dir.ts")); err != nil {
		t.Fatalf("first file should remain: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "serena", "index.ts")); !os.IsNotExist(err) {
		t.Fatalf("index must not be written after abort; err=%v", err)
	}
	if src.closed != 1 {
		t.Fatalf("want close on failure; got %d", src.closed)
	}
}

func TestRun_UnsafeNameWritesNothing(t *testing.T) {
	out := t.TempDir()
	tools := append(sampleTools(), toolspec.Descriptor{Name: "../../escape"})
	if _, err := generate.Run(context.Background(), &fakeSource{tools: tools}, tsOptions(out)); err == nil {
		t.Fatal("want error for unsafe tool name")
	}
	if _, err := os.Stat(filepath.Join(out, "serena")); !os.IsNotExist(err) {
		t.Fatalf("nothing should be written; err=%v", err)
	}
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := &fakeSource{tools: sampleTools()}
	_, err := generate.Run(ctx, src, tsOptions(t.TempDir()))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled; got %v", err)
	}
	if src.closed != 1 {
		t.Fatalf("want close; got %d", src.closed)
	}
}

func TestRun_GoRenderer(t *testing.T) {
	out := t.TempDir()
	opts := generate.Options{OutDir: out, Server: "serena", Renderer: codegen.NewGo("serena", "")}
	if _, err := generate.Run(context.Background(), generate.Static(sampleTools()), opts); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{"activate_project.go", "find_file.go", "list_dir.go", "tools.go"}
	if diff := cmp.Diff(want, readDir(t, filepath.Join(out, "serena"))); diff != "" {
		t.Fatalf("files (-want +got):\n%s", diff)
	}
}

func TestRun_NoRenderer(t *testing.T) {
	src := &fakeSource{tools: sampleTools()}
	if _, err := generate.Run(context.Background(), src, generate.Options{OutDir: t.TempDir(), Server: "x"}); err == nil {
		t.Fatal("want error without renderer")
	}
	if src.closed != 1 {
		t.Fatalf("want close; got %d", src.closed)
	}
}

func TestRun_FileNameClashWritesNothing(t *testing.T) {
	tests := []struct {
		name     string
		tool     string
		renderer codegen.Renderer
		want     string
	}{
		{"ts index", "index", codegen.NewTypeScript(""), "index.ts"},
		{"ts index other case", "Index", codegen.NewTypeScript(""), "index.ts"},
		{"go listing", "tools", codegen.NewGo("serena", ""), "tools"},
		{"go test file", "run_test", codegen.NewGo("serena", ""), "run_test.go"},
		{"go platform file", "scan_linux", codegen.NewGo("serena", ""), "scan_linux.go"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := t.TempDir()
			tools := append(sampleTools(), toolspec.Descriptor{Name: tt.tool})
			opts := generate.Options{OutDir: out, Server: "serena", Renderer: tt.renderer}
			_, err := generate.Run(context.Background(), generate.Static(tools), opts)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("want error naming %s; got %v", tt.want, err)
			}
			if _, err := os.Stat(filepath.Join(out, "serena")); !os.IsNotExist(err) {
				t.Fatalf("nothing should be written; err=%v", err)
			}
		})
	}
}
