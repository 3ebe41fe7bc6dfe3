// Package config defines core configuration types for tagtree.
// These types are pure data structures; discovery and loading live in
// internal/configloader.
package config

import "fmt"

// OutputFormat specifies the output format for rendered trees.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is supported.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// ColorMode controls colorized output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is supported.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for tagtree.
type Config struct {
	// Format specifies the output format ("text" or "json").
	Format OutputFormat `yaml:"format"`

	// Indent is the number of spaces per tree depth level in text output.
	Indent int `yaml:"indent"`

	// Color controls colorized output ("auto", "always", "never").
	Color ColorMode `yaml:"color"`

	// LogLevel is the logging verbosity ("debug", "info", "warn", "error").
	LogLevel string `yaml:"log_level"`

	// CLI-level options (not persisted to config files).

	// ShowTokens includes the token stream listing in output.
	ShowTokens bool `yaml:"-"`

	// Strict makes any diagnostic fail the run with a non-zero exit code.
	Strict bool `yaml:"-"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Format:   FormatText,
		Indent:   2,
		Color:    ColorAuto,
		LogLevel: "info",
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if !c.Format.IsValid() {
		return fmt.Errorf("invalid format %q", c.Format)
	}
	if !c.Color.IsValid() {
		return fmt.Errorf("invalid color mode %q", c.Color)
	}
	if c.Indent < 1 || c.Indent > 16 {
		return fmt.Errorf("indent must be between 1 and 16, got %d", c.Indent)
	}
	return nil
}
