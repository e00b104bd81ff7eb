// Package diagfmt renders *diag.PatchError values for humans and tools.
package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bhvaleri/decaffeinate/internal/diag"
)

// PrettyPrint returns the message followed by an uncoloured code frame of
// the error's range with two lines of context. Without a context only the
// message is returned.
func PrettyPrint(err *diag.PatchError) string {
	return format(err, PrettyOpts{})
}

// Pretty writes err with the given options.
func Pretty(w io.Writer, err *diag.PatchError, opts PrettyOpts) error {
	_, werr := io.WriteString(w, format(err, opts)+"\n")
	return werr
}

func format(err *diag.PatchError, opts PrettyOpts) string {
	pal := newPalette(opts.Color)

	var b strings.Builder
	if opts.Header {
		b.WriteString(Short(err, opts.PathMode))
		b.WriteString(" ")
		b.WriteString(pal.title(err.Code.ID()))
		b.WriteString("\n")
	} else {
		b.WriteString(err.Message)
		b.WriteString("\n")
	}
	if err.Context == nil || err.Context.File == nil {
		return strings.TrimSuffix(b.String(), "\n")
	}
	b.WriteString(codeFrame(err.Context.File, err.Start, err.End, opts.context(), pal))
	return b.String()
}

// Short returns "path:line:col: message" with a 1-based position.
func Short(err *diag.PatchError, mode PathMode) string {
	if err.Context == nil || err.Context.File == nil {
		return err.Message
	}
	pos := err.Context.File.Locate(err.Start)
	return fmt.Sprintf("%s:%d:%d: %s", displayPath(err.Context.Path(), mode), pos.Line+1, pos.Column+1, err.Message)
}

func displayPath(p string, mode PathMode) string {
	if mode == PathModeBasename {
		return filepath.Base(p)
	}
	return p
}
