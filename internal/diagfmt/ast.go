package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/bhvaleri/decaffeinate/internal/ast"
	"github.com/bhvaleri/decaffeinate/internal/source"
)

// FormatASTPretty prints the tree with two-space indentation, one node per
// line, followed by its span and a short label.
func FormatASTPretty(w io.Writer, root ast.Node, f *source.File) error {
	var err error
	var walk func(n ast.Node, depth int)
	walk = func(n ast.Node, depth int) {
		if err != nil {
			return
		}
		start, end := f.Resolve(n.Span())
		_, err = fmt.Fprintf(w, "%s%s %d:%d-%d:%d%s\n",
			strings.Repeat("  ", depth), n.Kind(),
			start.Line+1, start.Column+1, end.Line+1, end.Column+1,
			nodeLabel(n))
		for _, c := range n.Children() {
			walk(c, depth+1)
		}
	}
	walk(root, 0)
	return err
}

func nodeLabel(n ast.Node) string {
	switch v := n.(type) {
	case *ast.Identifier:
		return " " + v.Name
	case *ast.Literal:
		return " " + v.Raw
	case *ast.Unary:
		return " " + v.Op
	case *ast.Binary:
		return " " + v.Op
	case *ast.CompoundAssign:
		return " " + v.Op
	case *ast.Function:
		if v.Bound {
			return " =>"
		}
		return " ->"
	case *ast.Conditional:
		if v.Unless {
			return " unless"
		}
	case *ast.Block:
		if v.Inline {
			return " inline"
		}
	}
	return ""
}
