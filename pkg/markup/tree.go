package markup

// treeBuilder consumes a token stream and assembles the document tree using
// an explicit stack of open elements, innermost last.
type treeBuilder struct {
	root  *Node
	stack []*Node
	diags []Diagnostic
}

// BuildTree consumes the token stream in order and returns the root of the
// assembled tree. The root is a synthetic "document" element that is never
// closed; elements left open when the tokens run out stay open in the result.
// Like Tokenize, it never fails.
func BuildTree(tokens []Token) (*Node, []Diagnostic) {
	root := NewDocument()
	b := &treeBuilder{
		root:  root,
		stack: []*Node{root},
	}

	for _, tok := range tokens {
		switch tok.Kind {
		case TokStartTag:
			b.openElement(tok)
		case TokEndTag:
			b.closeElement(tok)
		case TokText:
			b.appendText(tok)
		}
	}

	return root, b.diags
}

// top returns the innermost open element.
func (b *treeBuilder) top() *Node {
	return b.stack[len(b.stack)-1]
}

// openElement creates an element for a start tag, attaches it to the
// innermost open element, and makes it the new innermost.
func (b *treeBuilder) openElement(tok Token) {
	node := NewElement(tok.Data)
	setSpan(node, tok)
	AppendChild(b.top(), node)
	b.stack = append(b.stack, node)
}

// closeElement handles an end tag. The nearest open element with a matching
// tag name is closed, implicitly closing anything opened inside it. An end
// tag that matches nothing on the stack is ignored; the root never matches
// and never pops, so the stack never drops below size 1.
func (b *treeBuilder) closeElement(tok Token) {
	for i := len(b.stack) - 1; i >= 1; i-- {
		if b.stack[i].Tag == tok.Data {
			b.stack = b.stack[:i]
			return
		}
	}

	b.diags = append(b.diags, newDiagnostic(DiagUnbalancedClose,
		tok.StartOffset, tok.EndOffset,
		"end tag </%s> has no open element", tok.Data))
}

// appendText attaches a text node to the innermost open element. Text nodes
// cannot have children and are never pushed onto the stack.
func (b *treeBuilder) appendText(tok Token) {
	node := NewText(tok.Data)
	setSpan(node, tok)
	AppendChild(b.top(), node)
}
