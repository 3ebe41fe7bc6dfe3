package markup

import "fmt"

// DiagnosticKind classifies a recoverable defect found in the input.
type DiagnosticKind uint8

const (
	// DiagUnterminatedTag reports input that ends inside a tag, before '>'.
	// The remainder of the input becomes the tag name.
	DiagUnterminatedTag DiagnosticKind = iota

	// DiagUnbalancedClose reports an end tag with no matching open element.
	// The token is ignored.
	DiagUnbalancedClose

	// DiagEmptyTagName reports "<>" or "</>". No token is emitted for the
	// tag since tokens never carry empty names.
	DiagEmptyTagName
)

// String returns a stable identifier for the diagnostic kind.
func (k DiagnosticKind) String() string {
	switch k {
	case DiagUnterminatedTag:
		return "unterminated-tag"
	case DiagUnbalancedClose:
		return "unbalanced-close"
	case DiagEmptyTagName:
		return "empty-tag-name"
	default:
		return "unknown"
	}
}

// Diagnostic describes a recoverable defect in the input. Diagnostics are
// advisory: the tokenizer and tree builder always produce a best-effort
// result alongside them.
type Diagnostic struct {
	// Kind classifies the defect.
	Kind DiagnosticKind

	// StartOffset and EndOffset delimit the offending bytes in the source.
	StartOffset int
	EndOffset   int

	// Message is a human-readable description.
	Message string
}

// newDiagnostic builds a diagnostic with a formatted message.
func newDiagnostic(kind DiagnosticKind, start, end int, format string, args ...any) Diagnostic {
	return Diagnostic{
		Kind:        kind,
		StartOffset: start,
		EndOffset:   end,
		Message:     fmt.Sprintf(format, args...),
	}
}
