package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/tagtree/internal/configloader"
	"github.com/yaklabco/tagtree/pkg/config"
)

// input is one markup buffer to process. Path is empty for stdin.
type input struct {
	path    string
	content []byte
}

// readInputs collects the input buffers for the given args. No args, or the
// single arg "-", means read stdin.
func readInputs(args []string) ([]input, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return []input{{content: content}}, nil
	}

	inputs := make([]input, 0, len(args))
	for _, path := range args {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		inputs = append(inputs, input{path: path, content: content})
	}

	return inputs, nil
}

// resolveConfig loads the configuration and applies persistent flags from
// the root command.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, err
	}
	cfg := result.Config

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		return nil, fmt.Errorf("get color flag: %w", err)
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = config.ColorMode(colorMode)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
