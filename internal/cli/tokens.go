package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/tagtree/internal/ui/pretty"
	"github.com/yaklabco/tagtree/pkg/config"
	"github.com/yaklabco/tagtree/pkg/markup"
	"github.com/yaklabco/tagtree/pkg/render"
)

func newTokensCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tokens [paths...]",
		Short: "Print the token stream without building a tree",
		Long: `Tokenize markup input and print the token stream, one token per line.

Reads from stdin when no paths are given.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, json")

	return cmd
}

func runTokens(cmd *cobra.Command, args []string, format string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(format)
	}

	inputs, err := readInputs(args)
	if err != nil {
		return err
	}

	colorEnabled := pretty.IsColorEnabled(string(cfg.Color), cmd.OutOrStdout())
	styles := pretty.NewStyles(colorEnabled)

	for _, in := range inputs {
		snap := markup.Parse(in.path, in.content)

		if cfg.Format == config.FormatJSON {
			renderer := render.NewJSONRenderer(render.Options{
				Writer:     cmd.OutOrStdout(),
				ShowTokens: true,
			})

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if err := renderer.Render(ctx, snap); err != nil {
				return err
			}
			continue
		}

		fmt.Fprint(cmd.OutOrStdout(), styles.FormatTokens(snap.Tokens))
		fmt.Fprint(cmd.ErrOrStderr(), styles.FormatDiagnostics(snap))
	}

	return nil
}
