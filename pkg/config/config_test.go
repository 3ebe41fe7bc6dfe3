package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/tagtree/pkg/config"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()

	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Equal(t, 2, cfg.Indent)
	assert.Equal(t, config.ColorAuto, cfg.Color)
	assert.Equal(t, "info", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(_ *config.Config) {},
		},
		{
			name:    "bad format",
			mutate:  func(c *config.Config) { c.Format = "xml" },
			wantErr: "invalid format",
		},
		{
			name:    "bad color mode",
			mutate:  func(c *config.Config) { c.Color = "sometimes" },
			wantErr: "invalid color mode",
		},
		{
			name:    "indent too small",
			mutate:  func(c *config.Config) { c.Indent = 0 },
			wantErr: "indent must be",
		},
		{
			name:    "indent too large",
			mutate:  func(c *config.Config) { c.Indent = 17 },
			wantErr: "indent must be",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.Default()
			testCase.mutate(cfg)

			err := cfg.Validate()
			if testCase.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), testCase.wantErr)
		})
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Format = config.FormatJSON
	cfg.Indent = 4

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, cfg.Format, parsed.Format)
	assert.Equal(t, cfg.Indent, parsed.Indent)
	assert.Equal(t, cfg.Color, parsed.Color)
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		check   func(t *testing.T, cfg *config.Config)
		wantErr bool
	}{
		{
			name:  "partial config keeps defaults",
			input: "format: json\n",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, config.FormatJSON, cfg.Format)
				assert.Equal(t, 2, cfg.Indent)
			},
		},
		{
			name:  "empty file is all defaults",
			input: "",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, config.FormatText, cfg.Format)
			},
		},
		{
			name:    "unknown key rejected",
			input:   "formatting: json\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			input:   "format: [unclosed\n",
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.FromYAML([]byte(testCase.input))
			if testCase.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			testCase.check(t, cfg)
		})
	}
}
