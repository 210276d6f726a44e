package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Suntory-Y-Water/mcp-code-execution/internal/config"
	"github.com/Suntory-Y-Water/mcp-code-execution/internal/drift"
	"github.com/Suntory-Y-Water/mcp-code-execution/servers/serena"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Compare the hand-written serena wrappers with the live server",
		Long: `Reflect the input types of package servers/serena and compare them with the
schemas the server lists. Missing or extra fields, optionality and type
mismatches fail the check. Tools the server lists without a wrapper are
reported but do not fail it.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			var expected []drift.Expected
			for _, d := range serena.Registry() {
				e, err := drift.FromReflected(d.Name, d.InputSchema)
				if err != nil {
					return err
				}
				expected = append(expected, e)
			}

			m, err := a.manager(cfg, false)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := m.Close(); err == nil {
					err = cerr
				}
			}()
			live, err := m.ListTools(cmd.Context())
			if err != nil {
				return err
			}

			report := drift.Compare(expected, live)
			for _, f := range report.Findings {
				fmt.Fprintln(a.stdout, f)
			}
			if report.Drifted() {
				return errDrift
			}
			fmt.Fprintf(a.stdout, "%d wrappers match the server\n", len(expected))
			return nil
		},
	}
}
