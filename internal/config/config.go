// Package config loads mcpexec settings and resolves the project root the
// tool server is launched against.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is read when no --config flag is given. Its absence is not an error.
const DefaultFile = "mcpexec.yaml"

// RootPlaceholder in server args is replaced with the resolved project root.
const RootPlaceholder = "${PROJECT_ROOT}"

// Error reports a configuration problem that must be fixed before any
// connection attempt.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return "config: " + e.Msg }

type Config struct {
	Server Server `yaml:"server"`
	Output Output `yaml:"output"`
}

// Server describes how to launch the tool server subprocess.
type Server struct {
	Name    string            `yaml:"name"`
	Command string            `yaml:"command"`
	Args    []string          `yaml:"args"`
	Env     map[string]string `yaml:"env,omitempty"`
}

// Output controls where and how wrappers are generated.
type Output struct {
	Dir          string `yaml:"dir"`
	Lang         string `yaml:"lang"`
	ClientImport string `yaml:"client_import,omitempty"`
	GoPackage    string `yaml:"go_package,omitempty"`
}

// Default returns the serena server launched through uvx.
func Default() Config {
	return Config{
		Server: Server{
			Name:    "serena",
			Command: "uvx",
			Args: []string{
				"--from", "git+https://github.com/oraios/serena",
				"serena", "start-mcp-server",
				"--context", "ide-assistant",
				"--project", RootPlaceholder,
				"--enable-web-dashboard=false",
			},
		},
		Output: Output{Dir: "servers", Lang: "ts"},
	}
}

// Load reads path over the defaults. A missing DefaultFile yields Default();
// any other missing path is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the fields every run depends on.
func (c Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Server.Name) == "":
		return &Error{Msg: "server.name is empty"}
	case strings.ContainsAny(c.Server.Name, `/\`) || c.Server.Name == "." || c.Server.Name == "..":
		return &Error{Msg: fmt.Sprintf("server.name %q must be a single path segment", c.Server.Name)}
	case strings.TrimSpace(c.Server.Command) == "":
		return &Error{Msg: "server.command is empty"}
	case c.Output.Lang != "ts" && c.Output.Lang != "go":
		return &Error{Msg: fmt.Sprintf("output.lang %q is not ts or go", c.Output.Lang)}
	}
	return nil
}

// NeedsRoot reports whether any arg references RootPlaceholder.
func (s Server) NeedsRoot() bool {
	for _, a := range s.Args {
		if strings.Contains(a, RootPlaceholder) {
			return true
		}
	}
	return false
}

// Argv returns the server args with RootPlaceholder substituted.
func (s Server) Argv(root string) []string {
	out := make([]string, len(s.Args))
	for i, a := range s.Args {
		out[i] = strings.ReplaceAll(a, RootPlaceholder, root)
	}
	return out
}

// Environ returns base extended with the configured server env.
func (s Server) Environ(base []string) []string {
	out := append([]string(nil), base...)
	for k, v := range s.Env {
		out = append(out, k+"="+v)
	}
	return out
}
