// Package editor records text edits against an immutable original source
// and renders them in a single pass. All offsets refer to the original
// text, so edits registered in any order compose without shifting.
package editor

import (
	"fmt"
	"strings"
)

// Op is the kind of a recorded edit.
type Op uint8

const (
	OpInsert Op = iota
	OpOverwrite
	OpRemove
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpOverwrite:
		return "overwrite"
	case OpRemove:
		return "remove"
	}
	return "unknown"
}

// Edit is one recorded operation. Inserts have Start == End.
type Edit struct {
	Op    Op
	Start int
	End   int
	Text  string
	seq   int
}

// Editor is a ledger of edits over one source text. The first conflicting
// or out-of-range edit is remembered and returned by Err and Render; later
// edits are still checked against the accepted ones.
type Editor struct {
	src     string
	inserts []Edit
	ranges  []Edit
	seq     int
	err     error
}

func New(src string) *Editor {
	return &Editor{src: src}
}

// Err returns the first rejected edit, if any.
func (e *Editor) Err() error { return e.err }

// Len returns the number of accepted edits.
func (e *Editor) Len() int { return len(e.inserts) + len(e.ranges) }

// Insert adds text at off. Several inserts at one offset render in the
// order they were issued, before any range replaced from that offset.
func (e *Editor) Insert(off int, text string) {
	if text == "" {
		return
	}
	ed := Edit{Op: OpInsert, Start: off, End: off, Text: text}
	if e.check(ed) {
		e.inserts = append(e.inserts, e.stamp(ed))
	}
}

// Overwrite replaces [start, end) with text.
func (e *Editor) Overwrite(start, end int, text string) {
	if start == end {
		e.Insert(start, text)
		return
	}
	ed := Edit{Op: OpOverwrite, Start: start, End: end, Text: text}
	if e.check(ed) {
		e.ranges = append(e.ranges, e.stamp(ed))
	}
}

// Remove deletes [start, end).
func (e *Editor) Remove(start, end int) {
	if start == end {
		return
	}
	ed := Edit{Op: OpRemove, Start: start, End: end}
	if e.check(ed) {
		e.ranges = append(e.ranges, e.stamp(ed))
	}
}

func (e *Editor) stamp(ed Edit) Edit {
	ed.seq = e.seq
	e.seq++
	return ed
}

// Edits returns accepted edits in issuance order.
func (e *Editor) Edits() []Edit {
	out := make([]Edit, 0, e.Len())
	out = append(out, e.inserts...)
	out = append(out, e.ranges...)
	sortBySeq(out)
	return out
}

// Render applies every accepted edit to the original text.
func (e *Editor) Render() (string, error) {
	if e.err != nil {
		return "", e.err
	}
	inserts := append([]Edit(nil), e.inserts...)
	ranges := append([]Edit(nil), e.ranges...)
	sortByStart(inserts)
	sortByStart(ranges)

	var b strings.Builder
	b.Grow(len(e.src))
	pos, ii := 0, 0
	emitUpTo := func(limit int) {
		for ii < len(inserts) && inserts[ii].Start <= limit {
			b.WriteString(e.src[pos:inserts[ii].Start])
			pos = inserts[ii].Start
			b.WriteString(inserts[ii].Text)
			ii++
		}
		b.WriteString(e.src[pos:limit])
		pos = limit
	}
	for _, r := range ranges {
		emitUpTo(r.Start)
		b.WriteString(r.Text)
		pos = r.End
	}
	emitUpTo(len(e.src))
	return b.String(), nil
}

// String renders the buffer, or describes the error.
func (e *Editor) String() string {
	out, err := e.Render()
	if err != nil {
		return fmt.Sprintf("<editor error: %v>", err)
	}
	return out
}
