// Package fsops writes generated files under a confined output root.
package fsops

import (
	"os"
	"path/filepath"

	"github.com/Suntory-Y-Water/mcp-code-execution/internal/safety"
)

// Writer writes files addressed by paths relative to Root.
type Writer struct {
	Root string
}

// NewWriter resolves root once and returns a Writer bound to it.
func NewWriter(root string) (*Writer, error) {
	abs, err := safety.InitRoot(root)
	if err != nil {
		return nil, err
	}
	return &Writer{Root: abs}, nil
}

// EnsureDir creates relDir and its parents under the root. Existing
// directories are left untouched.
func (w *Writer) EnsureDir(relDir string) (string, error) {
	abs, err := safety.ValidateWritePath(w.Root, relDir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return "", err
	}
	return abs, nil
}

// WriteFile replaces the file at relPath with content, creating parent
// directories as needed. It returns the absolute path written.
func (w *Writer) WriteFile(relPath, content string) (string, error) {
	abs, err := safety.ValidateWritePath(w.Root, relPath)
	if err != nil {
		return "", err // PathError unchanged
	}
	fi, err := os.Stat(abs)
	if err == nil && fi.IsDir() {
		return "", safety.PathError{Code: "ERR_NOT_A_FILE", Message: "path is a directory"}
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		return "", err
	}
	return abs, nil
}
