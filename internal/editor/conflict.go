package editor

import (
	"fmt"
	"sort"
)

// ConflictError reports an edit that was rejected.
type ConflictError struct {
	Edit     Edit
	Existing *Edit // nil when the edit was out of range
}

func (c *ConflictError) Error() string {
	if c.Existing == nil {
		return fmt.Sprintf("%s at [%d, %d) is outside the source", c.Edit.Op, c.Edit.Start, c.Edit.End)
	}
	return fmt.Sprintf("%s at [%d, %d) overlaps %s at [%d, %d)",
		c.Edit.Op, c.Edit.Start, c.Edit.End,
		c.Existing.Op, c.Existing.Start, c.Existing.End)
}

// check validates ed against the source bounds and the accepted edits.
// It records the first failure and reports whether ed may be stored.
func (e *Editor) check(ed Edit) bool {
	if ed.Start < 0 || ed.End < ed.Start || ed.End > len(e.src) {
		e.fail(&ConflictError{Edit: ed})
		return false
	}
	for i := range e.ranges {
		if editsConflict(e.ranges[i], ed) {
			existing := e.ranges[i]
			e.fail(&ConflictError{Edit: ed, Existing: &existing})
			return false
		}
	}
	if ed.Op == OpInsert {
		return true
	}
	for i := range e.inserts {
		if editsConflict(e.inserts[i], ed) {
			existing := e.inserts[i]
			e.fail(&ConflictError{Edit: ed, Existing: &existing})
			return false
		}
	}
	return true
}

func (e *Editor) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

// editsConflict treats spans as half-open intervals [Start, End). Two
// inserts never conflict. An insert conflicts with a range only strictly
// inside it: at the range start it renders before the replacement, at the
// range end after it. Two ranges conflict on any overlap.
func editsConflict(a, b Edit) bool {
	aStart, aEnd := a.Start, a.End
	bStart, bEnd := b.Start, b.End

	if aStart == aEnd && bStart == bEnd {
		return false
	}
	if aStart == aEnd {
		return bStart < aStart && aStart < bEnd
	}
	if bStart == bEnd {
		return aStart < bStart && bStart < aEnd
	}
	return aStart < bEnd && bStart < aEnd
}

func sortByStart(edits []Edit) {
	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].Start != edits[j].Start {
			return edits[i].Start < edits[j].Start
		}
		return edits[i].seq < edits[j].seq
	})
}

func sortBySeq(edits []Edit) {
	sort.SliceStable(edits, func(i, j int) bool { return edits[i].seq < edits[j].seq })
}
