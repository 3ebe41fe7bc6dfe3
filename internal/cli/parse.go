package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/tagtree/internal/logging"
	"github.com/yaklabco/tagtree/internal/ui/pretty"
	"github.com/yaklabco/tagtree/pkg/config"
	"github.com/yaklabco/tagtree/pkg/markup"
	"github.com/yaklabco/tagtree/pkg/render"
)

// ErrSyntaxIssues is returned when diagnostics are found in strict mode.
var ErrSyntaxIssues = errors.New("syntax issues found")

type parseFlags struct {
	format     string
	indent     int
	showTokens bool
	strict     bool
}

func newParseCommand() *cobra.Command {
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:   "parse [paths...]",
		Short: "Parse markup and print the document tree",
		Long:  parseLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output format: text, json")
	cmd.Flags().IntVar(&flags.indent, "indent", 0, "spaces per depth level in text output")
	cmd.Flags().BoolVar(&flags.showTokens, "show-tokens", false,
		"include the token stream before the tree")
	cmd.Flags().BoolVar(&flags.strict, "strict", false,
		"exit non-zero if any diagnostics are reported")

	return cmd
}

const parseLongDescription = `Parse markup input and print the resulting document tree.

Reads from stdin when no paths are given. Stray end tags, unterminated
tags, and empty tag names are reported as diagnostics on stderr, but the
best-effort tree is always printed.

Examples:
  tagtree parse page.html           # Parse a file
  cat page.html | tagtree parse     # Parse stdin
  tagtree parse --show-tokens p.html
  tagtree parse --format json p.html
  tagtree parse --strict p.html     # Diagnostics fail the run`

func runParse(cmd *cobra.Command, args []string, flags *parseFlags) error {
	logger := logging.Default()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}
	applyParseFlags(cmd, cfg, flags)

	inputs, err := readInputs(args)
	if err != nil {
		return err
	}

	colorEnabled := pretty.IsColorEnabled(string(cfg.Color), cmd.OutOrStdout())
	styles := pretty.NewStyles(colorEnabled)

	stats := pretty.Stats{}
	for _, in := range inputs {
		snap := markup.Parse(in.path, in.content)

		logger.Debug("parsed input",
			logging.FieldPath, snap.Path,
			logging.FieldBytes, len(snap.Content),
			logging.FieldTokens, len(snap.Tokens),
			logging.FieldDiagnostics, len(snap.Diagnostics),
		)

		if err := writeSnapshot(cmd, cfg, styles, colorEnabled, snap); err != nil {
			return err
		}

		fmt.Fprint(cmd.ErrOrStderr(), styles.FormatDiagnostics(snap))

		stats.FilesProcessed++
		stats.Diagnostics += len(snap.Diagnostics)
		if len(snap.Diagnostics) > 0 {
			stats.FilesWithIssues++
		}
	}

	fmt.Fprint(cmd.ErrOrStderr(), styles.FormatSummaryOneLine(stats))

	if cfg.Strict && stats.Diagnostics > 0 {
		return ErrSyntaxIssues
	}
	return nil
}

// applyParseFlags overlays explicitly provided CLI flags on the config.
func applyParseFlags(cmd *cobra.Command, cfg *config.Config, flags *parseFlags) {
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("indent") {
		cfg.Indent = flags.indent
	}
	cfg.ShowTokens = flags.showTokens
	cfg.Strict = flags.strict
}

// writeSnapshot renders one snapshot to stdout. Text output on a color
// terminal goes through the styled tree formatter; everything else goes
// through the plain renderers.
func writeSnapshot(cmd *cobra.Command, cfg *config.Config, styles *pretty.Styles, colorEnabled bool, snap *markup.Snapshot) error {
	out := cmd.OutOrStdout()

	if cfg.Format == config.FormatText && colorEnabled {
		if cfg.ShowTokens {
			fmt.Fprint(out, styles.FormatTokens(snap.Tokens))
			fmt.Fprintln(out)
		}
		width := pretty.TerminalWidth(out)
		fmt.Fprint(out, styles.FormatTree(snap.Root, cfg.Indent, width))
		return nil
	}

	renderer, err := render.New(render.Options{
		Format:     render.Format(cfg.Format),
		Writer:     out,
		Indent:     cfg.Indent,
		ShowTokens: cfg.ShowTokens,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return renderer.Render(ctx, snap)
}
