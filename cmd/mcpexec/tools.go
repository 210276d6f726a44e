package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/Suntory-Y-Water/mcp-code-execution/internal/config"
	"github.com/Suntory-Y-Water/mcp-code-execution/internal/listing"
	"github.com/Suntory-Y-Water/mcp-code-execution/toolspec"
)

func (a *app) toolsCmd() *cobra.Command {
	var (
		save   string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the tools the server exposes",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
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

			descs, err := m.ListTools(cmd.Context())
			if err != nil {
				return err
			}
			if save != "" {
				snap := listing.Snapshot{Server: cfg.Server.Name, FetchedAt: time.Now().UTC(), Tools: descs}
				if err := listing.Save(save, snap); err != nil {
					return err
				}
				a.logger.Info("saved tool listing", "path", save, "tools", len(descs))
			}
			if asJSON {
				b, err := json.Marshal(descs)
				if err != nil {
					return err
				}
				_, err = a.stdout.Write(pretty.Pretty(b))
				return err
			}
			printTools(a.stdout, descs)
			return nil
		},
	}
	cmd.Flags().StringVar(&save, "save", "", "also write the listing to this file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw descriptors as JSON")
	return cmd
}

// printTools writes one signature line per tool, optional parameters marked
// with "?", followed by the first line of its description.
func printTools(w io.Writer, descs []toolspec.Descriptor) {
	for _, d := range descs {
		var params []string
		d.InputSchema.Each(func(name string, _ toolspec.Property) {
			if !d.InputSchema.IsRequired(name) {
				name += "?"
			}
			params = append(params, name)
		})
		fmt.Fprintf(w, "%s(%s)\n", d.Name, strings.Join(params, ", "))
		if first, _, _ := strings.Cut(d.Description, "\n"); first != "" {
			fmt.Fprintf(w, "    %s\n", first)
		}
	}
}
