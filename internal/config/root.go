package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// RootEnv names the project root explicitly and wins over path inference.
const RootEnv = "SERENA_PROJECT_ROOT"

// skillsMarker separates a project root from a project-local skill install,
// e.g. <project>/.claude/skills/<skill>/bin/mcpexec.
const skillsMarker = "/.claude/skills/"

// ResolveProjectRoot picks the project root from lookup, then from the path
// prefix in front of a .claude/skills/ folder in installDir, and fails
// otherwise. A prefix equal to homeDir is the user-global skills folder and
// names no project.
func ResolveProjectRoot(lookup func(string) (string, bool), installDir, homeDir string) (string, error) {
	if v, ok := lookup(RootEnv); ok && v != "" {
		return v, nil
	}
	if installDir == "" {
		return "", unresolved("the install location is unknown")
	}
	slashed := filepath.ToSlash(filepath.Clean(installDir))
	i := strings.Index(slashed+"/", skillsMarker)
	if i < 0 {
		return "", unresolved("the install location " + installDir + " is not inside a project's .claude/skills/ directory")
	}
	root := filepath.FromSlash(slashed[:i])
	if root == "" {
		return "", unresolved("the install location " + installDir + " has no project above .claude/skills/")
	}
	if homeDir != "" && root == filepath.Clean(homeDir) {
		return "", unresolved("the install location " + installDir + " is the user-global skills directory")
	}
	return root, nil
}

func unresolved(reason string) error {
	return &Error{Msg: RootEnv + " is not set and " + reason + "; " +
		"export " + RootEnv + "=/path/to/project or add it to a .env file in the working directory"}
}

var (
	rootOnce sync.Once
	rootPath string
	rootErr  error
)

func initRoot() {
	// .env never overrides variables already set in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		rootErr = &Error{Msg: "load .env: " + err.Error()}
		return
	}
	var dir string
	if exe, err := os.Executable(); err == nil {
		if r, err := filepath.EvalSymlinks(exe); err == nil {
			exe = r
		}
		dir = filepath.Dir(exe)
	}
	home, _ := os.UserHomeDir()
	rootPath, rootErr = ResolveProjectRoot(os.LookupEnv, dir, home)
}

// ProjectRoot resolves the project root once per process.
func ProjectRoot() (string, error) {
	rootOnce.Do(initRoot)
	return rootPath, rootErr
}
