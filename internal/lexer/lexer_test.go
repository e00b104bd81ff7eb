package lexer_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhvaleri/decaffeinate/internal/lexer"
	"github.com/bhvaleri/decaffeinate/internal/source"
	"github.com/bhvaleri/decaffeinate/internal/token"
)

func lex(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := lexer.Tokenize(source.NewFile("test.coffee", src), lexer.Options{})
	require.NoError(t, err)
	return toks
}

func kinds(toks []token.Token) string {
	parts := make([]string, 0, len(toks))
	for _, tok := range toks {
		parts = append(parts, tok.Kind.String())
	}
	return strings.Join(parts, " ")
}

func texts(toks []token.Token) []string {
	out := make([]string, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Text)
	}
	return out
}

func TestTokenize_Kinds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"switch header", "switch a\n  when 1, 2 then b", "SWITCH IDENTIFIER NEWLINE WHEN NUMBER COMMA NUMBER THEN IDENTIFIER"},
		{"compound assign", "a += 1", "IDENTIFIER OPERATOR NUMBER"},
		{"word operators", "a is b and not c", "IDENTIFIER OPERATOR IDENTIFIER OPERATOR OPERATOR IDENTIFIER"},
		{"call parens", "f(a)(b)", "IDENTIFIER CALL_START IDENTIFIER CALL_END CALL_START IDENTIFIER CALL_END"},
		{"grouping parens", "f (a)", "IDENTIFIER LPAREN IDENTIFIER RPAREN"},
		{"nested", "(f(a))", "LPAREN IDENTIFIER CALL_START IDENTIFIER CALL_END RPAREN"},
		{"function", "(x) => x", "LPAREN IDENTIFIER RPAREN FUNCTION IDENTIFIER"},
		{"object", "{a: 1}", "LBRACE IDENTIFIER COLON NUMBER RBRACE"},
		{"literals", "yes null undefined 'a' \"b\" 1.5e3 0xff", "BOOL NULL UNDEFINED STRING STRING NUMBER NUMBER"},
		{"comment", "a # note\nb", "IDENTIFIER COMMENT NEWLINE IDENTIFIER"},
		{"member keyword", "a.on", "IDENTIFIER DOT IDENTIFIER"},
		{"unless else", "unless a then b else c", "UNLESS IDENTIFIER THEN IDENTIFIER ELSE IDENTIFIER"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kinds(lex(t, tt.src)))
		})
	}
}

func TestTokenize_CompoundOperatorsAreSingleTokens(t *testing.T) {
	toks := lex(t, "a or= b\nc and= d\ne ?= f\ng **= h\ni ||= j")
	var ops []string
	for _, tok := range toks {
		if tok.Kind == token.Operator {
			ops = append(ops, tok.Text)
		}
	}
	assert.Equal(t, []string{"or=", "and=", "?=", "**=", "||="}, ops)
}

func TestTokenize_Spans(t *testing.T) {
	toks := lex(t, "x  ?= 'y'")
	require.Len(t, toks, 3)
	assert.Equal(t, []string{"x", "?=", "'y'"}, texts(toks))
	assert.Equal(t, 3, toks[1].Start())
	assert.Equal(t, 5, toks[1].End())
	assert.Equal(t, 9, toks[2].End())
}

func TestTokenize_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"unterminated string", "a = 'b", "unterminated string literal"},
		{"interpolation", `a = "#{b}"`, "string interpolation is not supported"},
		{"unmatched close", "a)", "unmatched ')'"},
		{"unclosed open", "(a", "missing ')'"},
		{"stray char", "a ~ b", "unexpected character '~'"},
		{"bad hex", "0x", "malformed hex literal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lexer.Tokenize(source.NewFile("test.coffee", tt.src), lexer.Options{})
			require.Error(t, err)
			var lexErr *lexer.Error
			require.ErrorAs(t, err, &lexErr)
			assert.Equal(t, tt.msg, lexErr.Message)
		})
	}
}

func TestTokenize_NonASCIIOutsideStrings(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		msg        string
		start, end uint32
	}{
		{"two byte operator", "x = 'é'\ny = 1 ÷ 2", "unexpected character '÷'", 15, 17},
		{"three byte char", "a = b → c", "unexpected character '→'", 6, 9},
		{"broken encoding", "a = \xff", "invalid UTF-8 byte 0xff", 4, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := lexer.Tokenize(source.NewFile("test.coffee", tt.src), lexer.Options{})
			var lexErr *lexer.Error
			require.ErrorAs(t, err, &lexErr)
			assert.Equal(t, tt.msg, lexErr.Message)
			assert.True(t, utf8.ValidString(lexErr.Message))
			assert.Equal(t, tt.start, lexErr.Span.Start)
			assert.Equal(t, tt.end, lexErr.Span.End)

			var invalid []token.Token
			for _, tok := range toks {
				if tok.Kind == token.Invalid {
					invalid = append(invalid, tok)
				}
			}
			require.Len(t, invalid, 1, "one token for the whole character")
			assert.Equal(t, tt.src[tt.start:tt.end], invalid[0].Text)
		})
	}
}

type collect struct{ msgs []string }

func (c *collect) Report(_ source.Span, msg string) { c.msgs = append(c.msgs, msg) }

func TestTokenize_ReporterSeesEveryError(t *testing.T) {
	rep := &collect{}
	_, err := lexer.Tokenize(source.NewFile("test.coffee", "a ~ b ~ c"), lexer.Options{Reporter: rep})
	require.Error(t, err)
	assert.Len(t, rep.msgs, 2)
}
