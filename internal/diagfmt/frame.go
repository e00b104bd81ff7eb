package diagfmt

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"

	"github.com/bhvaleri/decaffeinate/internal/source"
)

type palette struct {
	marker func(a ...any) string
	caret  func(a ...any) string
	gutter func(a ...any) string
	title  func(a ...any) string
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return palette{
		marker: mk(color.FgRed, color.Bold),
		caret:  mk(color.FgRed, color.Bold),
		gutter: mk(color.FgHiBlack),
		title:  mk(color.Bold),
	}
}

// codeFrame renders the lines around [start, end) as a three-column table:
// a '>' marker on every line the range covers, the 1-based line number with
// a '|' gutter, and the source line. A range on one line gets a caret row
// under it.
func codeFrame(f *source.File, start, end, context int, pal palette) string {
	startPos, endPos := f.Locate(start), f.Locate(end)
	first := max(0, startPos.Line-context)
	last := min(f.LineCount()-1, endPos.Line+context)

	rows := make([][]string, 0, last-first+2)
	for line := first; line <= last; line++ {
		text, _ := f.Line(line)
		text = strings.TrimRight(text, " \t")

		marker := ""
		if line >= startPos.Line && line <= endPos.Line {
			marker = pal.marker(">")
		}
		rows = append(rows, []string{marker, pal.gutter(fmt.Sprintf("%d |", line+1)), text})

		if startPos.Line == endPos.Line && line == startPos.Line {
			raw, _ := f.Line(line)
			rows = append(rows, []string{"", pal.gutter("|"), caretRow(raw, startPos.Column, endPos.Column, pal)})
		}
	}

	var buf bytes.Buffer
	tw := tablewriter.NewWriter(&buf)
	tw.SetAutoWrapText(false)
	tw.SetAutoFormatHeaders(false)
	tw.SetBorder(false)
	tw.SetHeaderLine(false)
	tw.SetRowLine(false)
	tw.SetCenterSeparator("")
	tw.SetColumnSeparator("")
	tw.SetRowSeparator("")
	tw.SetTablePadding(" ")
	tw.SetNoWhiteSpace(true)
	tw.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})
	tw.AppendBulk(rows)
	tw.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

// caretRow pads to the start column, keeping tabs so the carets line up
// with the source row, then underlines end-start columns.
func caretRow(line string, startCol, endCol int, pal palette) string {
	if startCol > len(line) {
		startCol = len(line)
	}
	if endCol > len(line) {
		endCol = max(startCol, len(line))
	}
	var pad strings.Builder
	for _, r := range line[:startCol] {
		if r == '\t' {
			pad.WriteByte('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	width := runewidth.StringWidth(line[startCol:endCol])
	if width == 0 {
		return pad.String()
	}
	return pad.String() + pal.caret(strings.Repeat("^", width))
}
