package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/tagtree/pkg/markup"
)

// FormatTree renders the tree as indented lines with styled tags and text,
// matching the plain renderer's shape: open/close lines for elements, quoted
// content for text nodes, no closing line for the document root. Text lines
// longer than width columns are truncated; width 0 disables truncation.
func (s *Styles) FormatTree(root *markup.Node, indent, width int) string {
	var builder strings.Builder
	depth := 0

	//nolint:errcheck // callbacks only return nil
	markup.WalkWithContext(root,
		func(n *markup.Node) error {
			pad := strings.Repeat(" ", indent*depth)
			depth++

			if n.Kind == markup.NodeText {
				line := truncate(fmt.Sprintf("Text: %q", n.Text), width-len(pad))
				builder.WriteString(pad + s.Text.Render(line) + "\n")
				return nil
			}

			builder.WriteString(pad + s.Tag.Render("<"+n.Tag+">") + "\n")
			return nil
		},
		func(n *markup.Node) error {
			depth--

			if n.Kind != markup.NodeElement {
				return nil
			}

			pad := strings.Repeat(" ", indent*depth)
			builder.WriteString(pad + s.Tag.Render("</"+n.Tag+">") + "\n")
			return nil
		})

	return builder.String()
}

// FormatTokens renders the token stream one token per line.
func (s *Styles) FormatTokens(tokens []markup.Token) string {
	var builder strings.Builder
	for _, tok := range tokens {
		kind := s.Bold.Render(tok.Kind.String())
		if tok.IsTag() {
			builder.WriteString(fmt.Sprintf("%s: %s\n", kind, s.Tag.Render(tok.Data)))
		} else {
			builder.WriteString(fmt.Sprintf("%s: %s\n", kind, s.Text.Render(tok.Data)))
		}
	}
	return builder.String()
}
