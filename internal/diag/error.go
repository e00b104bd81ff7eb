package diag

import (
	"errors"
	"fmt"

	"github.com/bhvaleri/decaffeinate/internal/parsectx"
)

// PatchError is a positioned failure in one source file. Start and End
// are byte offsets into Context's source, End exclusive.
type PatchError struct {
	Code    Code
	Message string
	Context *parsectx.Context
	Start   int
	End     int
	Err     error // optional cause
}

// New returns a PatchError over [start, end).
func New(code Code, msg string, ctx *parsectx.Context, start, end int) *PatchError {
	return &PatchError{Code: code, Message: msg, Context: ctx, Start: start, End: end}
}

// Newf is New with a formatted message.
func Newf(code Code, ctx *parsectx.Context, start, end int, format string, args ...any) *PatchError {
	return New(code, fmt.Sprintf(format, args...), ctx, start, end)
}

// Wrap attaches a cause to a new PatchError.
func Wrap(err error, code Code, msg string, ctx *parsectx.Context, start, end int) *PatchError {
	pe := New(code, msg, ctx, start, end)
	pe.Err = err
	return pe
}

func (e *PatchError) Error() string {
	return e.Message
}

func (e *PatchError) Unwrap() error {
	return e.Err
}

// Source returns the text the error positions refer to.
func (e *PatchError) Source() string {
	if e.Context == nil {
		return ""
	}
	return e.Context.Source()
}

// AsPatchError reports whether err is, or wraps, a *PatchError.
func AsPatchError(err error) (*PatchError, bool) {
	var pe *PatchError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
