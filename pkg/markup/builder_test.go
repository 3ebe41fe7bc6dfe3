package markup_test

import (
	"testing"

	"github.com/yaklabco/tagtree/pkg/markup"
)

func TestAppendChild(t *testing.T) {
	t.Parallel()

	parent := markup.NewElement("parent")
	first := markup.NewText("first")
	second := markup.NewText("second")

	markup.AppendChild(parent, first)
	markup.AppendChild(parent, second)

	if parent.FirstChild != first || parent.LastChild != second {
		t.Error("first/last child pointers wrong after append")
	}
	if first.Next != second || second.Prev != first {
		t.Error("sibling pointers wrong after append")
	}
	if first.Parent != parent || second.Parent != parent {
		t.Error("parent pointers wrong after append")
	}
	if parent.ChildCount() != 2 {
		t.Errorf("expected 2 children, got %d", parent.ChildCount())
	}
}

func TestAppendChild_Reparents(t *testing.T) {
	t.Parallel()

	oldParent := markup.NewElement("old")
	newParent := markup.NewElement("new")
	child := markup.NewText("child")

	markup.AppendChild(oldParent, child)
	markup.AppendChild(newParent, child)

	if oldParent.HasChildren() {
		t.Error("child not detached from previous parent")
	}
	if child.Parent != newParent {
		t.Error("child not attached to new parent")
	}
}

func TestAppendChild_NilSafe(t *testing.T) {
	t.Parallel()

	parent := markup.NewElement("parent")

	markup.AppendChild(parent, nil)
	markup.AppendChild(nil, markup.NewText("orphan"))

	if parent.HasChildren() {
		t.Error("nil child appended")
	}
}

func TestRemoveChild(t *testing.T) {
	t.Parallel()

	parent := markup.NewElement("parent")
	a := markup.NewText("a")
	b := markup.NewText("b")
	c := markup.NewText("c")
	markup.AppendChild(parent, a)
	markup.AppendChild(parent, b)
	markup.AppendChild(parent, c)

	markup.RemoveChild(parent, b)

	if parent.ChildCount() != 2 {
		t.Fatalf("expected 2 children, got %d", parent.ChildCount())
	}
	if a.Next != c || c.Prev != a {
		t.Error("sibling pointers not relinked after removal")
	}
	if b.Parent != nil || b.Prev != nil || b.Next != nil {
		t.Error("removed child still linked")
	}
}

func TestNewDocument(t *testing.T) {
	t.Parallel()

	doc := markup.NewDocument()

	if doc.Kind != markup.NodeDocument {
		t.Errorf("expected NodeDocument, got %s", doc.Kind)
	}
	if doc.Tag != markup.DocumentTag {
		t.Errorf("expected tag %q, got %q", markup.DocumentTag, doc.Tag)
	}
	if doc.StartOffset != -1 || doc.EndOffset != -1 {
		t.Error("synthetic root should have no source span")
	}
}
