package render

import (
	"io"
	"os"
)

// Format identifies an output format.
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// IsValid returns true if the format is supported.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// Options controls rendering behavior.
type Options struct {
	// Format selects the output format. Defaults to FormatText.
	Format Format

	// Writer receives the rendered output. Defaults to os.Stdout.
	Writer io.Writer

	// Indent is the number of spaces per tree depth level for text output.
	// Defaults to 2, matching the classic debug printer.
	Indent int

	// ShowTokens includes the token stream listing before the tree.
	ShowTokens bool

	// Compact disables JSON indentation.
	Compact bool
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() Options {
	return Options{
		Format: FormatText,
		Writer: os.Stdout,
		Indent: 2,
	}
}
