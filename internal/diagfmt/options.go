package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAsIs prints the path as stored in the file.
	PathModeAsIs PathMode = iota
	// PathModeBasename prints only the file name.
	PathModeBasename
)

// PrettyOpts configures pretty-printing of errors.
type PrettyOpts struct {
	Color    bool
	Context  int // lines shown above and below the error, default 2
	PathMode PathMode
	Header   bool // prefix with "path:line:col: CODE"
}

// DefaultContext is the number of surrounding lines in a code frame.
const DefaultContext = 2

func (o PrettyOpts) context() int {
	if o.Context <= 0 {
		return DefaultContext
	}
	return o.Context
}

// JSONOpts configures JSON output of errors.
type JSONOpts struct {
	IncludePositions bool // add line/col
	PathMode         PathMode
	Indent           bool
}
