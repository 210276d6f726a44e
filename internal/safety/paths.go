// Package safety confines generated output to a single root directory.
package safety

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathError is a machine-readable rejection of an output path.
type PathError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error returns a compact, single-line JSON string.
func (e PathError) Error() string {
	b, _ := json.Marshal(e)
	return string(b)
}

const (
	CodeOutsideRoot  = "ERR_PATH_OUTSIDE_ROOT"
	CodeDeniedWrite  = "ERR_DENIED_WRITE"
	CodeInvalidPath  = "ERR_INVALID_PATH"
	artifactsDirName = ".mcpexec"
)

// InitRoot resolves root to an absolute, symlink-free directory. An empty root
// means the working directory.
func InitRoot(root string) (string, error) {
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		root = cwd
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("abs(root): %w", err)
	}
	// The root may not exist yet; fall back to the absolute path as-is.
	if r, err := filepath.EvalSymlinks(abs); err == nil {
		abs = r
	}
	return abs, nil
}

// ValidateWritePath resolves relPath against absRoot and returns the absolute
// target. It rejects absolute inputs, parent traversal and symlink escapes,
// and denies writes under .git/ and .mcpexec/ or to go.mod and go.sum.
func ValidateWritePath(absRoot, relPath string) (string, error) {
	if relPath == "" || strings.ContainsRune(relPath, 0) {
		return "", PathError{Code: CodeInvalidPath, Message: "path is empty or contains NUL"}
	}
	if filepath.IsAbs(relPath) {
		return "", PathError{Code: CodeOutsideRoot, Message: "absolute paths are not allowed"}
	}

	candidate := filepath.Join(absRoot, filepath.Clean(relPath))

	// Resolve the deepest existing ancestor so a symlinked parent directory
	// cannot redirect a not-yet-created file outside the root.
	candidate = resolveExisting(candidate)

	rel, err := filepath.Rel(absRoot, candidate)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return "", PathError{Code: CodeOutsideRoot, Message: "requested path resolves outside the output root"}
	}
	if rel == "." {
		return "", PathError{Code: CodeInvalidPath, Message: "path names the output root itself"}
	}

	relSlash := filepath.ToSlash(rel)
	for _, dir := range []string{".git", artifactsDirName} {
		if relSlash == dir || strings.HasPrefix(relSlash, dir+"/") {
			return "", PathError{Code: CodeDeniedWrite, Message: "writes under " + dir + "/ are not allowed"}
		}
	}
	switch filepath.Base(candidate) {
	case "go.mod", "go.sum":
		return "", PathError{Code: CodeDeniedWrite, Message: "writes to go.mod or go.sum are not allowed"}
	}
	return candidate, nil
}

func resolveExisting(p string) string {
	var tail []string
	cur := p
	for {
		if r, err := filepath.EvalSymlinks(cur); err == nil {
			return filepath.Join(append([]string{r}, tail...)...)
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return p
		}
		tail = append([]string{filepath.Base(cur)}, tail...)
		cur = parent
	}
}
