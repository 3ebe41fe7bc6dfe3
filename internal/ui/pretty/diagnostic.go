package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/tagtree/pkg/markup"
)

// FormatDiagnostic formats a single diagnostic for terminal output.
// The snapshot provides path and line/column resolution.
func (s *Styles) FormatDiagnostic(snap *markup.Snapshot, diag markup.Diagnostic) string {
	line, col := snap.LineAt(diag.StartOffset)

	path := snap.Path
	if path == "" {
		path = "<stdin>"
	}

	location := fmt.Sprintf("%s:%d:%d", s.FilePath.Render(path), line, col)
	kind := s.DiagKind.Render("(" + diag.Kind.String() + ")")

	return fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		s.Warning.Render("WARN"),
		s.Message.Render(diag.Message),
		kind,
	)
}

// FormatDiagnostics formats all diagnostics of a snapshot, one per line.
func (s *Styles) FormatDiagnostics(snap *markup.Snapshot) string {
	var builder strings.Builder
	for _, diag := range snap.Diagnostics {
		builder.WriteString(s.FormatDiagnostic(snap, diag))
	}
	return builder.String()
}
