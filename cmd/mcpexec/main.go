// Command mcpexec generates typed wrappers for the tools an MCP server
// exposes and calls those tools from the command line.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Suntory-Y-Water/mcp-code-execution/client"
	"github.com/Suntory-Y-Water/mcp-code-execution/internal/config"
)

func main() {
	// Ctrl-C (SIGINT) / SIGTERM cancel the run; deferred closes still run.
	ctx, cancel := context.WithCancel(context.Background())
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigch
		fmt.Fprintln(os.Stderr, "\nExiting...")
		cancel()
	}()

	code := newApp(os.Stdout, os.Stderr).execute(ctx, os.Args[1:])
	signal.Stop(sigch)
	cancel()
	os.Exit(code)
}

// dialFunc builds the dialer for the configured server.
type dialFunc func(s config.Server, stderr io.Writer, verbose bool) (client.Dialer, error)

type app struct {
	stdout, stderr io.Writer
	dial           dialFunc

	configPath string
	verbose    bool
	logger     *slog.Logger
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr, dial: serverDialer}
}

func (a *app) execute(ctx context.Context, args []string) int {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	return exitCode(root.ExecuteContext(ctx), a.stderr)
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mcpexec",
		Short:         "Typed wrappers and calls for MCP server tools",
		Long:          "mcpexec launches an MCP tool server over stdio, lists its tools, generates one wrapper file per tool, and forwards calls.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (default "+config.DefaultFile+" if present)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging and server stderr passthrough")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return &usageError{err: err} })

	root.AddCommand(a.generateCmd(), a.toolsCmd(), a.callCmd(), a.checkCmd())
	return root
}

// manager opens nothing; the first call through it launches the server.
func (a *app) manager(cfg config.Config, validate bool) (*client.Manager, error) {
	d, err := a.dial(cfg.Server, a.stderr, a.verbose)
	if err != nil {
		return nil, err
	}
	return client.New(d, &client.Options{Logger: a.logger, ValidateArgs: validate}), nil
}

// serverDialer launches the configured command, resolving the project root
// first when the args need it.
func serverDialer(s config.Server, stderr io.Writer, verbose bool) (client.Dialer, error) {
	var root string
	if s.NeedsRoot() {
		r, err := config.ProjectRoot()
		if err != nil {
			return nil, err
		}
		root = r
	}
	argv := s.Argv(root)
	return client.ExecDialer(func() *exec.Cmd {
		cmd := exec.Command(s.Command, argv...)
		cmd.Env = s.Environ(os.Environ())
		if verbose {
			cmd.Stderr = stderr
		}
		return cmd
	}), nil
}

var errDrift = errors.New("wrappers have drifted from the server")

type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func usageArgs(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := v(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

func exitCode(err error, stderr io.Writer) int {
	var ue *usageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &ue):
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
}
