package diagfmt

import (
	"encoding/json"
	"io"

	"github.com/bhvaleri/decaffeinate/internal/diag"
)

// LocationJSON is an error location. Lines and columns are 1-based.
type LocationJSON struct {
	File      string `json:"file,omitempty"`
	StartByte int    `json:"start_byte"`
	EndByte   int    `json:"end_byte"`
	StartLine int    `json:"start_line,omitempty"`
	StartCol  int    `json:"start_col,omitempty"`
	EndLine   int    `json:"end_line,omitempty"`
	EndCol    int    `json:"end_col,omitempty"`
}

// ErrorJSON is the machine-readable form of a PatchError.
type ErrorJSON struct {
	Code     string       `json:"code"`
	Title    string       `json:"title"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Cause    string       `json:"cause,omitempty"`
}

// BuildErrorJSON converts err without writing it.
func BuildErrorJSON(err *diag.PatchError, opts JSONOpts) ErrorJSON {
	out := ErrorJSON{
		Code:    err.Code.ID(),
		Title:   err.Code.Title(),
		Message: err.Message,
		Location: LocationJSON{
			StartByte: err.Start,
			EndByte:   err.End,
		},
	}
	if err.Err != nil {
		out.Cause = err.Err.Error()
	}
	if err.Context == nil || err.Context.File == nil {
		return out
	}
	out.Location.File = displayPath(err.Context.Path(), opts.PathMode)
	if opts.IncludePositions {
		s, e := err.Context.File.Locate(err.Start), err.Context.File.Locate(err.End)
		out.Location.StartLine, out.Location.StartCol = s.Line+1, s.Column+1
		out.Location.EndLine, out.Location.EndCol = e.Line+1, e.Column+1
	}
	return out
}

// JSON writes err as one JSON document.
func JSON(w io.Writer, err *diag.PatchError, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	if opts.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(BuildErrorJSON(err, opts))
}
