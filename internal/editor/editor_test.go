package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, e *Editor) string {
	t.Helper()
	out, err := e.Render()
	require.NoError(t, err)
	return out
}

func TestEditor_NoEditsIsIdentity(t *testing.T) {
	assert.Equal(t, "a += b", render(t, New("a += b")))
}

func TestEditor_InsertsAtOneOffsetKeepIssuanceOrder(t *testing.T) {
	e := New("a")
	e.Insert(0, "(")
	e.Insert(0, "!")
	e.Insert(1, ")")
	e.Insert(1, ";")
	assert.Equal(t, "(!a);", render(t, e))
}

func TestEditor_OffsetsReferToOriginal(t *testing.T) {
	e := New("when a then b")
	e.Overwrite(6, 11, ":")
	e.Overwrite(0, 4, "case")
	e.Insert(13, ";")
	assert.Equal(t, "case a: b;", render(t, e))
}

func TestEditor_InsertAtRangeBoundaries(t *testing.T) {
	e := New("else c")
	e.Overwrite(0, 4, "default:")
	e.Insert(0, "<")
	e.Insert(4, ">")
	assert.Equal(t, "<default:> c", render(t, e))
}

func TestEditor_InsertBeforeRangeIssuedLater(t *testing.T) {
	e := New("if a")
	e.Remove(0, 3)
	e.Insert(3, "!")
	assert.Equal(t, "!a", render(t, e))
}

func TestEditor_AdjacentRanges(t *testing.T) {
	e := New("abcd")
	e.Overwrite(0, 2, "X")
	e.Remove(2, 4)
	assert.Equal(t, "X", render(t, e))
}

func TestEditor_Conflicts(t *testing.T) {
	tests := []struct {
		name  string
		apply func(e *Editor)
	}{
		{"overlapping overwrites", func(e *Editor) {
			e.Overwrite(0, 4, "x")
			e.Overwrite(2, 6, "y")
		}},
		{"remove inside overwrite", func(e *Editor) {
			e.Overwrite(0, 6, "x")
			e.Remove(2, 3)
		}},
		{"insert strictly inside range", func(e *Editor) {
			e.Remove(1, 5)
			e.Insert(3, "z")
		}},
		{"range swallowing earlier insert", func(e *Editor) {
			e.Insert(3, "z")
			e.Overwrite(1, 5, "y")
		}},
		{"out of range", func(e *Editor) {
			e.Insert(99, "z")
		}},
		{"reversed range", func(e *Editor) {
			e.Remove(4, 2)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New("abcdefgh")
			tt.apply(e)
			_, err := e.Render()
			require.Error(t, err)
			var conflict *ConflictError
			require.ErrorAs(t, err, &conflict)
			assert.Equal(t, err, e.Err())
		})
	}
}

func TestEditor_FirstConflictSticks(t *testing.T) {
	e := New("abcdefgh")
	e.Overwrite(0, 4, "x")
	e.Overwrite(2, 6, "y")
	e.Remove(3, 5)
	var conflict *ConflictError
	require.ErrorAs(t, e.Err(), &conflict)
	assert.Equal(t, 2, conflict.Edit.Start)
	require.NotNil(t, conflict.Existing)
	assert.Equal(t, 0, conflict.Existing.Start)
	assert.Equal(t, 1, e.Len())
}

func TestEditor_LineHelpers(t *testing.T) {
	src := "switch a\n  when 1\n    b\nc"
	e := New(src)

	assert.Equal(t, 8, e.EndOfLine(0))
	assert.Equal(t, 23, e.EndOfLine(22))
	assert.Equal(t, len(src), e.EndOfLine(24))
	assert.Equal(t, "    ", e.LineIndent(22))
	assert.Equal(t, "", e.LineIndent(24))

	e.AppendLineAfter(22, "    ", "break;")
	e.AppendToEndOfLine(0, " {")
	assert.Equal(t, "switch a {\n  when 1\n    b\n    break;\nc", render(t, e))

	e = New("a = b # note")
	e.InsertLineAfter(5, "", "}")
	e.Insert(5, ";")
	assert.Equal(t, "a = b\n}; # note", render(t, e))
}

func TestEditor_EditsInIssuanceOrder(t *testing.T) {
	e := New("abc")
	e.Remove(1, 2)
	e.Insert(0, "x")
	e.Overwrite(2, 3, "y")
	edits := e.Edits()
	require.Len(t, edits, 3)
	assert.Equal(t, OpRemove, edits[0].Op)
	assert.Equal(t, OpInsert, edits[1].Op)
	assert.Equal(t, OpOverwrite, edits[2].Op)
}
