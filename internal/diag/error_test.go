package diag_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhvaleri/decaffeinate/internal/diag"
	"github.com/bhvaleri/decaffeinate/internal/parsectx"
	"github.com/bhvaleri/decaffeinate/internal/source"
)

func TestAsPatchError_SeesThroughWrapping(t *testing.T) {
	ctx := parsectx.New(source.NewFile("a.coffee", "a += b"), nil)
	pe := diag.New(diag.PatchMissingToken, "expected OPERATOR token between assignee and expression", ctx, 1, 2)

	wrapped := fmt.Errorf("convert a.coffee: %w", pe)
	got, ok := diag.AsPatchError(wrapped)
	require.True(t, ok)
	assert.Same(t, pe, got)
	assert.Equal(t, "a += b", got.Source())

	_, ok = diag.AsPatchError(errors.New("plain"))
	assert.False(t, ok)
}

func TestPatchError_Unwrap(t *testing.T) {
	cause := errors.New("overlap")
	pe := diag.Wrap(cause, diag.PatchEditConflict, "conflicting edits", nil, 0, 0)
	assert.ErrorIs(t, pe, cause)
	assert.Equal(t, "conflicting edits", pe.Error())
	assert.Equal(t, "", pe.Source())
}

func TestCode_ID(t *testing.T) {
	assert.Equal(t, "LEX1001", diag.LexUnexpectedChar.ID())
	assert.Equal(t, "SYN2001", diag.SynUnexpectedToken.ID())
	assert.Equal(t, "PAT3001", diag.PatchStructuralDesync.ID())
	assert.Equal(t, "E0000", diag.UnknownCode.ID())
	assert.Equal(t, "missing expected token", diag.PatchMissingToken.Title())
}
