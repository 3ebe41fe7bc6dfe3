package markup

// NodeKind classifies the type of a tree node.
type NodeKind uint8

// Node kinds for the document tree.
const (
	// NodeDocument is the synthetic root wrapping the whole input.
	// Exactly one exists per tree and it is never closed or removed.
	NodeDocument NodeKind = iota

	// NodeElement is an element created from a start tag.
	NodeElement

	// NodeText is a leaf holding a run of text. It never has children.
	NodeText
)

// String returns a human-readable name for the node kind.
func (k NodeKind) String() string {
	switch k {
	case NodeDocument:
		return "Document"
	case NodeElement:
		return "Element"
	case NodeText:
		return "Text"
	default:
		return "Unknown"
	}
}

// DocumentTag is the tag name of the synthetic root element.
const DocumentTag = "document"

// Node represents a single node in the document tree.
// Nodes form a strict tree: every node has at most one parent and owns its
// children exclusively.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Tag is the element name for NodeElement nodes, and DocumentTag for
	// the root. Empty for text nodes.
	Tag string

	// Text is the content of NodeText nodes. Empty for elements.
	Text string

	// StartOffset and EndOffset locate the token that produced this node
	// in the source. Both are -1 for the synthetic root.
	StartOffset int
	EndOffset   int
}

// IsElement returns true for element nodes, including the document root.
func (n *Node) IsElement() bool {
	return n.Kind == NodeDocument || n.Kind == NodeElement
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Children returns a slice of all direct children in document order.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}
