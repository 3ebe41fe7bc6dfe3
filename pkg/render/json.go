package render

import (
	"bufio"
	"context"
	"encoding/json"

	"github.com/yaklabco/tagtree/pkg/markup"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Path        string           `json:"path,omitempty"`
	Tokens      []JSONToken      `json:"tokens,omitempty"`
	Tree        *JSONNode        `json:"tree"`
	Diagnostics []JSONDiagnostic `json:"diagnostics,omitempty"`
}

// JSONToken represents a single token.
type JSONToken struct {
	Kind        string `json:"kind"`
	Data        string `json:"data"`
	StartOffset int    `json:"startOffset"`
	EndOffset   int    `json:"endOffset"`
}

// JSONNode represents a tree node. Elements carry a tag and children; text
// nodes carry their content.
type JSONNode struct {
	Kind     string      `json:"kind"`
	Tag      string      `json:"tag,omitempty"`
	Text     string      `json:"text,omitempty"`
	Children []*JSONNode `json:"children,omitempty"`
}

// JSONDiagnostic represents a single diagnostic.
type JSONDiagnostic struct {
	Kind        string `json:"kind"`
	Message     string `json:"message"`
	StartLine   int    `json:"startLine"`
	StartColumn int    `json:"startColumn"`
	StartOffset int    `json:"startOffset"`
	EndOffset   int    `json:"endOffset"`
}

// JSONRenderer formats snapshots as JSON.
type JSONRenderer struct {
	opts Options
}

// NewJSONRenderer creates a new JSON renderer.
func NewJSONRenderer(opts Options) *JSONRenderer {
	return &JSONRenderer{opts: opts}
}

// Render implements Renderer.
func (r *JSONRenderer) Render(_ context.Context, snap *markup.Snapshot) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(snap)

	encoder := json.NewEncoder(bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	return encoder.Encode(output)
}

func (r *JSONRenderer) buildOutput(snap *markup.Snapshot) JSONOutput {
	output := JSONOutput{
		Path: snap.Path,
		Tree: buildJSONNode(snap.Root),
	}

	if r.opts.ShowTokens {
		output.Tokens = make([]JSONToken, 0, len(snap.Tokens))
		for _, tok := range snap.Tokens {
			output.Tokens = append(output.Tokens, JSONToken{
				Kind:        tok.Kind.String(),
				Data:        tok.Data,
				StartOffset: tok.StartOffset,
				EndOffset:   tok.EndOffset,
			})
		}
	}

	for _, diag := range snap.Diagnostics {
		line, col := snap.LineAt(diag.StartOffset)
		output.Diagnostics = append(output.Diagnostics, JSONDiagnostic{
			Kind:        diag.Kind.String(),
			Message:     diag.Message,
			StartLine:   line,
			StartColumn: col,
			StartOffset: diag.StartOffset,
			EndOffset:   diag.EndOffset,
		})
	}

	return output
}

func buildJSONNode(n *markup.Node) *JSONNode {
	if n == nil {
		return nil
	}

	out := &JSONNode{Kind: n.Kind.String()}
	switch n.Kind {
	case markup.NodeText:
		out.Text = n.Text
	default:
		out.Tag = n.Tag
	}

	for child := n.FirstChild; child != nil; child = child.Next {
		out.Children = append(out.Children, buildJSONNode(child))
	}

	return out
}
