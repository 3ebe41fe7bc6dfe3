package markup

// TokenKind classifies the type of a token in the markup source.
type TokenKind uint8

// Token kinds for the three lexical units the tokenizer produces.
const (
	TokText TokenKind = iota
	TokStartTag
	TokEndTag
)

// String returns a human-readable name for the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokText:
		return "Text"
	case TokStartTag:
		return "StartTag"
	case TokEndTag:
		return "EndTag"
	default:
		return "Unknown"
	}
}

// Token represents one lexical unit of the markup source: a start tag,
// an end tag, or a run of text.
type Token struct {
	// Kind classifies what this token represents.
	Kind TokenKind

	// Data is the tag name for TokStartTag/TokEndTag, or the text content
	// for TokText. Bytes are taken verbatim from the input, never empty.
	Data string

	// StartOffset is the byte index where this token's lexeme begins,
	// including tag delimiters (inclusive).
	StartOffset int

	// EndOffset is the byte index just past the lexeme, including the
	// closing '>' for tags (exclusive).
	EndOffset int
}

// Len returns the length of this token's lexeme in bytes.
func (t Token) Len() int {
	return t.EndOffset - t.StartOffset
}

// IsTag returns true for start and end tag tokens.
func (t Token) IsTag() bool {
	return t.Kind == TokStartTag || t.Kind == TokEndTag
}

// Source reconstructs the markup text of this token: "<name>" for start
// tags, "</name>" for end tags, and the raw content for text runs.
func (t Token) Source() string {
	switch t.Kind {
	case TokStartTag:
		return "<" + t.Data + ">"
	case TokEndTag:
		return "</" + t.Data + ">"
	default:
		return t.Data
	}
}
