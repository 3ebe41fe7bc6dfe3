package render

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/tagtree/pkg/markup"
)

const bufWriterSize = 32 * 1024

// TextRenderer writes an indented plain-text view of the tree, one line per
// node: elements as open/close tag lines, text nodes as quoted content.
type TextRenderer struct {
	opts Options
}

// NewTextRenderer creates a new text renderer.
func NewTextRenderer(opts Options) *TextRenderer {
	return &TextRenderer{opts: opts}
}

// Render implements Renderer.
func (r *TextRenderer) Render(_ context.Context, snap *markup.Snapshot) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if r.opts.ShowTokens {
		if err := writeTokens(bw, snap.Tokens); err != nil {
			return err
		}
	}

	return r.writeTree(bw, snap.Root)
}

// writeTokens writes a one-line-per-token listing of the stream.
func writeTokens(bw *bufio.Writer, tokens []markup.Token) error {
	for _, tok := range tokens {
		if _, err := fmt.Fprintf(bw, "%s: %s\n", tok.Kind, tok.Data); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(bw); err != nil {
		return err
	}
	return nil
}

// writeTree writes the depth-first indented tree. The document root opens
// the listing but gets no closing line; every other element is closed after
// its children.
func (r *TextRenderer) writeTree(bw *bufio.Writer, root *markup.Node) error {
	depth := 0

	return markup.WalkWithContext(root,
		func(n *markup.Node) error {
			indent := strings.Repeat(" ", r.opts.Indent*depth)
			depth++

			if n.Kind == markup.NodeText {
				_, err := fmt.Fprintf(bw, "%sText: %q\n", indent, n.Text)
				return err
			}

			_, err := fmt.Fprintf(bw, "%s<%s>\n", indent, n.Tag)
			return err
		},
		func(n *markup.Node) error {
			depth--

			if n.Kind != markup.NodeElement {
				return nil
			}

			indent := strings.Repeat(" ", r.opts.Indent*depth)
			_, err := fmt.Fprintf(bw, "%s</%s>\n", indent, n.Tag)
			return err
		})
}
