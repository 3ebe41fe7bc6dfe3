package pretty

import (
	"fmt"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

// Stats holds aggregate statistics for a run over one or more inputs.
type Stats struct {
	FilesProcessed  int
	FilesWithIssues int
	Diagnostics     int
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 issues in 2 files (4 files parsed)".
func (s *Styles) FormatSummaryOneLine(stats Stats) string {
	fileWord := wordFiles
	if stats.FilesProcessed == 1 {
		fileWord = wordFile
	}

	if stats.Diagnostics == 0 {
		return s.Success.Render("No issues found") +
			s.Dim.Render(fmt.Sprintf(" (%d %s parsed)", stats.FilesProcessed, fileWord)) + "\n"
	}

	issueWord := "issues"
	if stats.Diagnostics == 1 {
		issueWord = "issue"
	}
	issueFileWord := wordFiles
	if stats.FilesWithIssues == 1 {
		issueFileWord = wordFile
	}

	return s.Warning.Render(fmt.Sprintf("%d %s", stats.Diagnostics, issueWord)) +
		fmt.Sprintf(" in %d %s", stats.FilesWithIssues, issueFileWord) +
		s.Dim.Render(fmt.Sprintf(" (%d %s parsed)", stats.FilesProcessed, fileWord)) + "\n"
}
