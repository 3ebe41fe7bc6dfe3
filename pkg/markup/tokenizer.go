package markup

// tokenizer performs a single-pass tokenization of markup content.
// It produces start tag, end tag, and text tokens in source order.
type tokenizer struct {
	content []byte
	tokens  []Token
	diags   []Diagnostic
	pos     int
}

// Tokenize performs a single left-to-right pass over the given content and
// returns the token stream plus any recoverable defects found along the way.
// It never fails: malformed input degrades to a best-effort stream.
func Tokenize(content []byte) ([]Token, []Diagnostic) {
	if len(content) == 0 {
		return nil, nil
	}

	const initialCapacityDivisor = 8 // reasonable initial capacity estimate
	tok := &tokenizer{
		content: content,
		tokens:  make([]Token, 0, len(content)/initialCapacityDivisor+1),
		pos:     0,
	}

	tok.tokenize()

	return tok.tokens, tok.diags
}

// tokenize performs the main tokenization loop.
func (t *tokenizer) tokenize() {
	for t.pos < len(t.content) {
		if t.content[t.pos] == '<' {
			t.consumeTag()
		} else {
			t.consumeText()
		}
	}
}

// consumeText consumes a run of text up to the next '<' or end of input and
// emits it as a single TokText. Runs are maximal, so consecutive tags never
// produce an empty text token between them.
func (t *tokenizer) consumeText() {
	start := t.pos

	for t.pos < len(t.content) && t.content[t.pos] != '<' {
		t.pos++
	}

	if t.pos > start {
		t.emit(TokText, string(t.content[start:t.pos]), start, t.pos)
	}
}

// consumeTag consumes a tag starting at '<'. A '/' directly after '<' marks
// an end tag. The name runs to the next '>', which is consumed but not part
// of the name. Input ending before '>' takes the remainder as the name and
// records an unterminated-tag diagnostic; the token is still emitted.
func (t *tokenizer) consumeTag() {
	start := t.pos
	t.pos++ // consume '<'

	kind := TokStartTag
	if t.pos < len(t.content) && t.content[t.pos] == '/' {
		kind = TokEndTag
		t.pos++
	}

	nameStart := t.pos
	for t.pos < len(t.content) && t.content[t.pos] != '>' {
		t.pos++
	}
	name := string(t.content[nameStart:t.pos])

	terminated := t.pos < len(t.content)
	if terminated {
		t.pos++ // consume '>'
	} else {
		t.diags = append(t.diags, newDiagnostic(DiagUnterminatedTag, start, t.pos,
			"input ends inside tag %q", string(t.content[start:t.pos])))
	}

	if name == "" {
		// "<>", "</>", or a bare trailing "<": tokens never carry empty
		// names, so nothing is emitted.
		t.diags = append(t.diags, newDiagnostic(DiagEmptyTagName, start, t.pos,
			"tag with empty name"))
		return
	}

	t.emit(kind, name, start, t.pos)
}

// emit adds a token to the token list.
func (t *tokenizer) emit(kind TokenKind, data string, start, end int) {
	t.tokens = append(t.tokens, Token{
		Kind:        kind,
		Data:        data,
		StartOffset: start,
		EndOffset:   end,
	})
}
