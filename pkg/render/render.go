// Package render formats parsed markup for human and machine consumption.
package render

import (
	"context"
	"fmt"

	"github.com/yaklabco/tagtree/pkg/markup"
)

// Compile-time interface checks.
var (
	_ Renderer = (*TextRenderer)(nil)
	_ Renderer = (*JSONRenderer)(nil)
)

// Renderer formats and writes a parsed snapshot.
type Renderer interface {
	// Render writes formatted output for the given snapshot.
	Render(ctx context.Context, snap *markup.Snapshot) error
}

// New creates a Renderer for the specified options.
func New(opts Options) (Renderer, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}
	if opts.Indent <= 0 {
		opts.Indent = DefaultOptions().Indent
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatText:
		return NewTextRenderer(opts), nil
	case FormatJSON:
		return NewJSONRenderer(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
