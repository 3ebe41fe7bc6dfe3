package pretty

import (
	"io"
	"os"

	"golang.org/x/term"
)

// defaultWidth is used when the writer is not a terminal or its size is
// unavailable.
const defaultWidth = 80

// TerminalWidth returns the column width of the terminal behind the writer,
// or defaultWidth when the writer is not a terminal.
func TerminalWidth(writer io.Writer) int {
	f, ok := writer.(*os.File)
	if !ok {
		return defaultWidth
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// truncate shortens s to at most width bytes, appending an ellipsis when it
// cuts. Width values below 4 disable truncation entirely.
func truncate(s string, width int) string {
	if width < 4 || len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}
