package markup

// NewNode creates a new node of the specified kind with no parent,
// children, or source association.
func NewNode(kind NodeKind) *Node {
	return &Node{
		Kind:        kind,
		StartOffset: -1,
		EndOffset:   -1,
	}
}

// NewDocument creates a new document root node.
func NewDocument() *Node {
	node := NewNode(NodeDocument)
	node.Tag = DocumentTag
	return node
}

// NewElement creates a new element node with the given tag name.
func NewElement(tag string) *Node {
	node := NewNode(NodeElement)
	node.Tag = tag
	return node
}

// NewText creates a new text node with the given content.
func NewText(text string) *Node {
	node := NewNode(NodeText)
	node.Text = text
	return node
}

// AppendChild appends a child node to a parent, maintaining the
// parent/child/sibling pointers.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}

	// Remove from previous parent if any.
	if child.Parent != nil {
		RemoveChild(child.Parent, child)
	}

	child.Parent = parent
	child.Prev = parent.LastChild
	child.Next = nil

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}

	parent.LastChild = child
}

// RemoveChild removes a child from its parent.
func RemoveChild(parent, child *Node) {
	if parent == nil || child == nil || child.Parent != parent {
		return
	}

	if child.Prev != nil {
		child.Prev.Next = child.Next
	} else {
		parent.FirstChild = child.Next
	}

	if child.Next != nil {
		child.Next.Prev = child.Prev
	} else {
		parent.LastChild = child.Prev
	}

	child.Parent = nil
	child.Prev = nil
	child.Next = nil
}

// setSpan records the source span of the token that produced a node.
func setSpan(n *Node, tok Token) {
	n.StartOffset = tok.StartOffset
	n.EndOffset = tok.EndOffset
}
