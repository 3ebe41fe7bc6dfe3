package markup

import "sort"

// LineInfo holds metadata for a single line in the input.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// EndOffset is the byte index just after the newline (or end of input).
	EndOffset int
}

// BuildLines constructs line metadata from input content.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char == '\n' {
			lines = append(lines, LineInfo{
				StartOffset: lineStart,
				EndOffset:   idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Last line may not have a trailing newline.
	if lineStart < len(content) {
		lines = append(lines, LineInfo{
			StartOffset: lineStart,
			EndOffset:   len(content),
		})
	}

	return lines
}

// LineCount returns the number of lines in the input.
func (s *Snapshot) LineCount() int {
	return len(s.Lines)
}

// LineAt converts a byte offset to 1-based line and column numbers.
// Column counts bytes, not runes. Returns (0, 0) if the offset is out of
// range or the input is empty.
func (s *Snapshot) LineAt(offset int) (int, int) {
	if offset < 0 || len(s.Lines) == 0 {
		return 0, 0
	}

	if offset >= len(s.Content) {
		lastLine := s.Lines[len(s.Lines)-1]
		return len(s.Lines), offset - lastLine.StartOffset + 1
	}

	lineIdx := sort.Search(len(s.Lines), func(i int) bool {
		return s.Lines[i].EndOffset > offset
	})

	if lineIdx >= len(s.Lines) {
		lineIdx = len(s.Lines) - 1
	}

	return lineIdx + 1, offset - s.Lines[lineIdx].StartOffset + 1
}
