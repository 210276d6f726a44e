package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/Suntory-Y-Water/mcp-code-execution/client"
	"github.com/Suntory-Y-Water/mcp-code-execution/internal/config"
	"github.com/Suntory-Y-Water/mcp-code-execution/internal/telemetry"
)

func (a *app) callCmd() *cobra.Command {
	var (
		base     string
		validate bool
	)
	cmd := &cobra.Command{
		Use:   "call TOOL [key=value | key:=json]...",
		Short: "Invoke one tool and print its decoded result",
		Long: `Invoke TOOL once with the given arguments.

key=value sets a string, key:=json sets any JSON value, and --json supplies a
starting object. Keys are sjson paths, so a.b=c nests. JSON results are
pretty-printed; non-JSON text is printed as is.`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			tool := args[0]
			doc, err := buildArgs(base, args[1:])
			if err != nil {
				return err
			}
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			m, err := a.manager(cfg, validate)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := m.Close(); err == nil {
					err = cerr
				}
			}()

			ctx, _ := telemetry.EnsureRunID(cmd.Context())
			r, err := m.Invoke(ctx, tool, json.RawMessage(doc))
			if err != nil {
				return err
			}
			if r.Kind == client.RawText {
				text := r.Text
				if !strings.HasSuffix(text, "\n") {
					text += "\n"
				}
				_, err = fmt.Fprint(a.stdout, text)
				return err
			}
			_, err = a.stdout.Write(pretty.Pretty(r.JSON))
			return err
		},
	}
	cmd.Flags().StringVar(&base, "json", "", "JSON object to start the arguments from")
	cmd.Flags().BoolVar(&validate, "validate", false, "check arguments against the listed input schema before sending")
	return cmd
}

// buildArgs applies key=value and key:=json pairs onto the base object.
func buildArgs(base string, pairs []string) ([]byte, error) {
	if strings.TrimSpace(base) == "" {
		base = "{}"
	}
	if !gjson.Valid(base) || !gjson.Parse(base).IsObject() {
		return nil, usagef("--json must be a JSON object")
	}
	doc := []byte(base)
	for _, p := range pairs {
		var err error
		if k, v, ok := strings.Cut(p, ":="); ok && !strings.Contains(k, "=") {
			if k == "" {
				return nil, usagef("argument %q has an empty key", p)
			}
			if !gjson.Valid(v) {
				return nil, usagef("argument %q: value is not valid JSON", p)
			}
			doc, err = sjson.SetRawBytes(doc, k, []byte(v))
		} else if k, v, ok := strings.Cut(p, "="); ok {
			if k == "" {
				return nil, usagef("argument %q has an empty key", p)
			}
			doc, err = sjson.SetBytes(doc, k, v)
		} else {
			return nil, usagef("argument %q is not key=value or key:=json", p)
		}
		if err != nil {
			return nil, usagef("argument %q: %v", p, err)
		}
	}
	return doc, nil
}
