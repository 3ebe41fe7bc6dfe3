// Package markup provides the core markup representation for tagtree.
// It defines a complete view of one parsed input buffer:
// - Token stream: start tags, end tags, and text runs in source order
// - Document tree: elements and text nodes under a synthetic root
// - Diagnostics: recoverable defects found while tokenizing and building
package markup

// Snapshot is an immutable view of one parsed input buffer. It holds the
// raw content, line metadata, token stream, tree root, and diagnostics.
type Snapshot struct {
	// Path is the source path (may be empty for in-memory content).
	Path string

	// Content is the full input bytes.
	Content []byte

	// Lines contains metadata for each line in the input.
	Lines []LineInfo

	// Tokens is the full token stream in source order.
	Tokens []Token

	// Root is the tree root node (Document).
	Root *Node

	// Diagnostics lists recoverable defects from both passes, in the order
	// they were found: tokenizer diagnostics first, then tree diagnostics.
	Diagnostics []Diagnostic
}

// Parse runs the full pipeline on one input buffer: line indexing,
// tokenization, and tree building. It is total; malformed input yields a
// best-effort snapshot with diagnostics rather than an error.
//
// Each call owns its own state, so Parse is safe for concurrent use on
// independent inputs.
func Parse(path string, content []byte) *Snapshot {
	tokens, diags := Tokenize(content)
	root, treeDiags := BuildTree(tokens)

	return &Snapshot{
		Path:        path,
		Content:     content,
		Lines:       BuildLines(content),
		Tokens:      tokens,
		Root:        root,
		Diagnostics: append(diags, treeDiags...),
	}
}
