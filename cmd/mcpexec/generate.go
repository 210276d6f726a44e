package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Suntory-Y-Water/mcp-code-execution/internal/codegen"
	"github.com/Suntory-Y-Water/mcp-code-execution/internal/config"
	"github.com/Suntory-Y-Water/mcp-code-execution/internal/generate"
	"github.com/Suntory-Y-Water/mcp-code-execution/internal/listing"
)

func (a *app) generateCmd() *cobra.Command {
	var (
		out, lang, from     string
		clientImport, goPkg string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write one wrapper file per server tool plus an index",
		Long: `Fetch the server's tool list once and write servers/<server>/<tool>.ts
for every tool, then index.ts re-exporting them all (or <tool>.go and tools.go
with --lang go). Existing files are overwritten; files for tools the server
no longer lists are left in place.

With --from, the tool list is read from a snapshot saved by "mcpexec tools
--save" and no server is launched.

TypeScript wrappers import callMCPTool from --ts-client-import (default
` + codegen.DefaultClientImport + `). mcpexec does not ship that module: point
the flag at your runtime's client, or use --lang go to call through
` + codegen.DefaultClientPackage + `.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("out") {
				cfg.Output.Dir = out
			}
			if flags.Changed("lang") {
				cfg.Output.Lang = lang
			}
			if flags.Changed("ts-client-import") {
				cfg.Output.ClientImport = clientImport
			}
			if flags.Changed("go-package") {
				cfg.Output.GoPackage = goPkg
			}

			var src generate.Source
			if from != "" {
				snap, err := listing.Load(from)
				if err != nil {
					return err
				}
				if snap.Server != "" {
					cfg.Server.Name = snap.Server
				}
				src = generate.Static(snap.Tools)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			r, err := codegen.NewRenderer(codegen.Lang(cfg.Output.Lang), codegen.RenderOptions{
				ClientImport: cfg.Output.ClientImport,
				Package:      cfg.Output.GoPackage,
			})
			if err != nil {
				return err
			}
			if src == nil {
				m, err := a.manager(cfg, false)
				if err != nil {
					return err
				}
				src = m
			}

			sum, err := generate.Run(cmd.Context(), src, generate.Options{
				OutDir:   cfg.Output.Dir,
				Server:   cfg.Server.Name,
				Renderer: r,
				Logger:   a.logger,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "generated %d tools in %s (%d files, %d lines, %d bytes)\n",
				sum.Tools, sum.Dir, sum.Files, sum.Lines, sum.Bytes)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&out, "out", "o", "", "output root (default from config: servers)")
	f.StringVar(&lang, "lang", "", "wrapper language: ts or go (default from config: ts)")
	f.StringVar(&from, "from", "", "generate from a saved tool listing instead of a live server")
	f.StringVar(&clientImport, "ts-client-import", "", "module specifier TypeScript wrappers import callMCPTool from")
	f.StringVar(&goPkg, "go-package", "", "package clause of generated Go files")
	return cmd
}
