package source

import "sort"

// LineCount returns the number of lines in the file. A trailing newline
// starts an (empty) final line.
func (f *File) LineCount() int {
	return len(f.LineIdx) + 1
}

// LineStart returns the offset of the first byte of the given 0-based line.
func (f *File) LineStart(line int) (int, bool) {
	switch {
	case line < 0 || line > len(f.LineIdx):
		return 0, false
	case line == 0:
		return 0, true
	default:
		return int(f.LineIdx[line-1]) + 1, true
	}
}

// LineEnd returns the offset of the newline terminating line, or the
// content length for the last line.
func (f *File) LineEnd(line int) (int, bool) {
	switch {
	case line < 0 || line > len(f.LineIdx):
		return 0, false
	case line == len(f.LineIdx):
		return len(f.Content), true
	default:
		return int(f.LineIdx[line]), true
	}
}

// Line returns the text of a 0-based line without its newline.
func (f *File) Line(line int) (string, bool) {
	start, ok := f.LineStart(line)
	if !ok {
		return "", false
	}
	end, _ := f.LineEnd(line)
	return string(f.Content[start:end]), true
}

// Locate maps a byte offset to its 0-based line and column. Offsets past
// the end of the content are clamped to the end.
func (f *File) Locate(off int) Position {
	if off < 0 {
		off = 0
	}
	if off > len(f.Content) {
		off = len(f.Content)
	}
	// first newline at or after off is the end of off's line
	line := sort.Search(len(f.LineIdx), func(i int) bool {
		return int(f.LineIdx[i]) >= off
	})
	start, _ := f.LineStart(line)
	return Position{Line: line, Column: off - start}
}

// Offset maps a 0-based line and column back to a byte offset. ok is
// false when the line does not exist.
func (f *File) Offset(line, column int) (int, bool) {
	start, ok := f.LineStart(line)
	if !ok || column < 0 {
		return 0, false
	}
	return start + column, true
}

// Resolve converts a span into start and end positions.
func (f *File) Resolve(span Span) (start, end Position) {
	return f.Locate(int(span.Start)), f.Locate(int(span.End))
}

// IndentAt returns the leading whitespace of the line containing off.
func (f *File) IndentAt(off int) string {
	pos := f.Locate(off)
	start, _ := f.LineStart(pos.Line)
	end, _ := f.LineEnd(pos.Line)
	i := start
	for i < end && (f.Content[i] == ' ' || f.Content[i] == '\t') {
		i++
	}
	return string(f.Content[start:i])
}
