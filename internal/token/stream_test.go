package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhvaleri/decaffeinate/internal/source"
	"github.com/bhvaleri/decaffeinate/internal/token"
)

func tok(k token.Kind, start, end uint32) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: start, End: end}}
}

// "a += (b)" with an ELSE at index 0 to exercise the zero index.
func sampleStream() *token.Stream {
	return token.NewStream([]token.Token{
		tok(token.Else, 0, 4),
		tok(token.Identifier, 5, 6),
		tok(token.Operator, 7, 9),
		tok(token.LParen, 10, 11),
		tok(token.Identifier, 11, 12),
		tok(token.RParen, 12, 13),
		tok(token.Newline, 13, 14),
	})
}

func TestStream_ForwardScan(t *testing.T) {
	s := sampleStream()

	i, ok := s.IndexOfTokenMatchingPredicate(token.OfKind(token.Operator), 1, 5)
	require.True(t, ok)
	assert.Equal(t, token.Index(2), i)

	_, ok = s.IndexOfTokenMatchingPredicate(token.OfKind(token.Operator), 3, 5)
	assert.False(t, ok, "range end is exclusive of earlier tokens only")

	_, ok = s.IndexOfTokenMatchingPredicate(token.OfKind(token.Operator), 1, 2)
	assert.False(t, ok, "to is exclusive")

	i, ok = s.IndexOfTokenMatchingPredicate(token.OfKind(token.Newline), 0, 100)
	require.True(t, ok)
	assert.Equal(t, token.Index(6), i)
}

func TestStream_MatchAtIndexZeroIsFound(t *testing.T) {
	s := sampleStream()

	i, ok := s.IndexOfTokenMatchingPredicate(token.OfKind(token.Else), 0, s.End())
	require.True(t, ok)
	assert.Equal(t, token.Index(0), i)

	i, ok = s.LastIndexOfTokenMatchingPredicate(token.OfKind(token.Else), 4)
	require.True(t, ok)
	assert.Equal(t, token.Index(0), i)
}

func TestStream_BackwardScanNearestWins(t *testing.T) {
	s := sampleStream()

	i, ok := s.LastIndexOfTokenMatchingPredicate(token.OfKind(token.Identifier), 5)
	require.True(t, ok)
	assert.Equal(t, token.Index(4), i)

	i, ok = s.LastIndexOfTokenMatchingPredicate(token.OfKind(token.Identifier), 4)
	require.True(t, ok, "start is inclusive")
	assert.Equal(t, token.Index(4), i)

	_, ok = s.LastIndexOfTokenMatchingPredicate(token.OfKind(token.Comma), 6)
	assert.False(t, ok)
}

func TestStream_OffsetLookups(t *testing.T) {
	s := sampleStream()

	i, ok := s.IndexOfTokenStartingAt(7)
	require.True(t, ok)
	assert.Equal(t, token.Index(2), i)
	_, ok = s.IndexOfTokenStartingAt(8)
	assert.False(t, ok)

	i, ok = s.IndexOfTokenEndingAt(13)
	require.True(t, ok)
	assert.Equal(t, token.Index(5), i)

	i, ok = s.IndexOfTokenContainingOffset(8)
	require.True(t, ok)
	assert.Equal(t, token.Index(2), i)
	_, ok = s.IndexOfTokenContainingOffset(9)
	assert.False(t, ok, "offset 9 is whitespace")

	i, ok = s.IndexOfFirstTokenAtOrAfter(9)
	require.True(t, ok)
	assert.Equal(t, token.Index(3), i)
}

func TestIndex_Ordering(t *testing.T) {
	a, b := token.Index(2), token.Index(5)
	assert.True(t, a.IsBefore(b))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
	assert.Equal(t, token.Index(3), a.Next())
	assert.Equal(t, token.Index(1), a.Previous())
	assert.Equal(t, token.Index(4), b.Advance(-1))
	assert.False(t, token.NoIndex.Valid())
	assert.True(t, token.Index(0).Valid())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "SWITCH", token.Switch.String())
	assert.Equal(t, "CALL_START", token.CallStart.String())
	assert.Equal(t, "INVALID", token.Kind(200).String())

	k, ok := token.LookupKeyword("isnt")
	require.True(t, ok)
	assert.Equal(t, token.Operator, k)
	_, ok = token.LookupKeyword("Switch")
	assert.False(t, ok)
}
