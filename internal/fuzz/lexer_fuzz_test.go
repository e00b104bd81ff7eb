package fuzztests

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bhvaleri/decaffeinate/internal/lexer"
	"github.com/bhvaleri/decaffeinate/internal/source"
)

func FuzzLexerTokens(f *testing.F) {
	addSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		file := source.NewFileSet().AddVirtual("fuzz.coffee", clamp(input))
		toks, _ := lexer.Tokenize(file, lexer.Options{})

		size := len(file.Content)
		prev := 0
		for _, tok := range toks {
			require.LessOrEqual(t, prev, tok.Start(), "tokens out of order")
			require.LessOrEqual(t, tok.Start(), tok.End())
			require.LessOrEqual(t, tok.End(), size)
			prev = tok.End()
		}
	})
}
