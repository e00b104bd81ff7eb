package editor

import "strings"

// EndOfLine returns the offset of the newline ending the line that
// contains off, or the source length on the last line.
func (e *Editor) EndOfLine(off int) int {
	if off < 0 {
		off = 0
	}
	if off >= len(e.src) {
		return len(e.src)
	}
	if i := strings.IndexByte(e.src[off:], '\n'); i >= 0 {
		return off + i
	}
	return len(e.src)
}

// LineIndent returns the leading whitespace of the line containing off.
func (e *Editor) LineIndent(off int) string {
	if off > len(e.src) {
		off = len(e.src)
	}
	start := strings.LastIndexByte(e.src[:off], '\n') + 1
	end := start
	for end < len(e.src) && (e.src[end] == ' ' || e.src[end] == '\t') {
		end++
	}
	return e.src[start:end]
}

// AppendToEndOfLine inserts text at the end of the line containing off.
func (e *Editor) AppendToEndOfLine(off int, text string) {
	e.Insert(e.EndOfLine(off), text)
}

// AppendLineAfter starts a new line with the given indent after the line
// containing off and writes text there.
func (e *Editor) AppendLineAfter(off int, indent, text string) {
	e.Insert(e.EndOfLine(off), "\n"+indent+text)
}

// InsertLineAfter inserts a line break, indent and text at off. Callers
// pass the end of the code that the new line follows.
func (e *Editor) InsertLineAfter(off int, indent, text string) {
	e.Insert(off, "\n"+indent+text)
}
