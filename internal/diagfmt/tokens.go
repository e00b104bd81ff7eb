package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/bhvaleri/decaffeinate/internal/source"
	"github.com/bhvaleri/decaffeinate/internal/token"
)

type TokenOutput struct {
	Index int    `json:"index"`
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Line  int    `json:"line"`
	Col   int    `json:"col"`
}

func tokenOutputs(tokens []token.Token, f *source.File) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for i, tok := range tokens {
		pos := f.Locate(tok.Start())
		out = append(out, TokenOutput{
			Index: i,
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Start: tok.Start(),
			End:   tok.End(),
			Line:  pos.Line + 1,
			Col:   pos.Column + 1,
		})
	}
	return out
}

// FormatTokensPretty prints one table row per token.
func FormatTokensPretty(w io.Writer, tokens []token.Token, f *source.File) error {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"#", "Kind", "Text", "Span", "Pos"})
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetBorder(false)
	tw.SetCenterSeparator("")
	tw.SetColumnSeparator("")
	tw.SetRowSeparator("")
	tw.SetHeaderLine(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})
	for _, t := range tokenOutputs(tokens, f) {
		tw.Append([]string{
			fmt.Sprint(t.Index),
			t.Kind,
			fmt.Sprintf("%q", t.Text),
			fmt.Sprintf("%d-%d", t.Start, t.End),
			fmt.Sprintf("%d:%d", t.Line, t.Col),
		})
	}
	tw.Render()
	return nil
}

// FormatTokensJSON writes the tokens as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token, f *source.File) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tokenOutputs(tokens, f))
}
