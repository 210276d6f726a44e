package safety_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/Suntory-Y-Water/mcp-code-execution/internal/safety"
)

func realRoot(t *testing.T) string {
	t.Helper()
	root, err := safety.InitRoot(t.TempDir())
	if err != nil {
		t.Fatalf("init root: %v", err)
	}
	return root
}

func TestValidateWritePath_Rejections(t *testing.T) {
	root := realRoot(t)
	abs, err := filepath.Abs(".")
	if err != nil {
		t.Skipf("cannot compute abs: %v", err)
	}

	cases := []struct {
		name string
		rel  string
		code string
	}{
		{"absolute", abs, safety.CodeOutsideRoot},
		{"traversal", "../../x.ts", safety.CodeOutsideRoot},
		{"sneaky traversal", "serena/../../x.ts", safety.CodeOutsideRoot},
		{"empty", "", safety.CodeInvalidPath},
		{"root itself", ".", safety.CodeInvalidPath},
		{"git", ".git/HEAD", safety.CodeDeniedWrite},
		{"artifacts", ".mcpexec/events.jsonl", safety.CodeDeniedWrite},
		{"go.mod", "go.mod", safety.CodeDeniedWrite},
		{"go.sum deep", "a/b/go.sum", safety.CodeDeniedWrite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := safety.ValidateWritePath(root, tc.rel)
			if err == nil {
				t.Fatalf("want rejection for %q", tc.rel)
			}
			var pe safety.PathError
			if !errors.As(err, &pe) {
				t.Fatalf("want PathError, got %T: %v", err, err)
			}
			if pe.Code != tc.code {
				t.Fatalf("want code %s; got %s", tc.code, pe.Code)
			}
		})
	}
}

func TestValidateWritePath_SymlinkEscapeOnNewFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink test skipped on Windows")
	}
	root := realRoot(t)
	outside := t.TempDir()
	if err := os.Symlink(outside, filepath.Join(root, "out")); err != nil {
		t.Skipf("symlink not allowed on this FS: %v", err)
	}

	_, err := safety.ValidateWritePath(root, "out/deeper/new.ts")
	if err == nil || !strings.Contains(err.Error(), safety.CodeOutsideRoot) {
		t.Fatalf("want %s, got %v", safety.CodeOutsideRoot, err)
	}
}

func TestValidateWritePath_AllowsMissingDirectories(t *testing.T) {
	root := realRoot(t)
	p, err := safety.ValidateWritePath(root, "serena/find_symbol.ts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(root, "serena", "find_symbol.ts")
	if p != want {
		t.Fatalf("want %q; got %q", want, p)
	}
}

func TestPathError_IsCompactJSON(t *testing.T) {
	err := safety.PathError{Code: "X", Message: "y"}
	if got := err.Error(); got != `{"code":"X","message":"y"}` {
		t.Fatalf("want compact JSON; got %s", got)
	}
}
