package token

import "sort"

// Stream is the ordered, immutable token list of one source file.
type Stream struct {
	tokens []Token
}

// NewStream wraps tokens, which must be sorted by start offset and must
// not overlap.
func NewStream(tokens []Token) *Stream {
	return &Stream{tokens: tokens}
}

// Len returns the number of tokens.
func (s *Stream) Len() int { return len(s.tokens) }

// Start is the index of the first token.
func (s *Stream) Start() Index { return 0 }

// End is the index one past the last token.
func (s *Stream) End() Index { return Index(len(s.tokens)) }

// At returns the token at i.
func (s *Stream) At(i Index) (Token, bool) {
	if i < 0 || int(i) >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[i], true
}

// Tokens returns the underlying slice. Callers must not modify it.
func (s *Stream) Tokens() []Token { return s.tokens }

// IndexOfTokenMatchingPredicate scans forward over [from, to) and returns
// the first match. A to beyond the stream is clamped.
func (s *Stream) IndexOfTokenMatchingPredicate(pred Predicate, from, to Index) (Index, bool) {
	if from < 0 {
		from = 0
	}
	if to > s.End() {
		to = s.End()
	}
	for i := from; i < to; i++ {
		if pred(s.tokens[i]) {
			return i, true
		}
	}
	return NoIndex, false
}

// LastIndexOfTokenMatchingPredicate scans backward from start (inclusive)
// to the beginning of the stream and returns the nearest match.
func (s *Stream) LastIndexOfTokenMatchingPredicate(pred Predicate, start Index) (Index, bool) {
	if start >= s.End() {
		start = s.End().Previous()
	}
	for i := start; i >= 0; i-- {
		if pred(s.tokens[i]) {
			return i, true
		}
	}
	return NoIndex, false
}

// IndexOfTokenStartingAt returns the token whose first byte is off.
func (s *Stream) IndexOfTokenStartingAt(off int) (Index, bool) {
	i := sort.Search(len(s.tokens), func(i int) bool { return s.tokens[i].Start() >= off })
	if i < len(s.tokens) && s.tokens[i].Start() == off {
		return Index(i), true
	}
	return NoIndex, false
}

// IndexOfTokenEndingAt returns the token whose last byte is just before off.
func (s *Stream) IndexOfTokenEndingAt(off int) (Index, bool) {
	i := sort.Search(len(s.tokens), func(i int) bool { return s.tokens[i].End() >= off })
	if i < len(s.tokens) && s.tokens[i].End() == off {
		return Index(i), true
	}
	return NoIndex, false
}

// IndexOfTokenContainingOffset returns the token covering off.
func (s *Stream) IndexOfTokenContainingOffset(off int) (Index, bool) {
	i := sort.Search(len(s.tokens), func(i int) bool { return s.tokens[i].End() > off })
	if i < len(s.tokens) && s.tokens[i].Start() <= off {
		return Index(i), true
	}
	return NoIndex, false
}

// IndexOfFirstTokenAtOrAfter returns the first token starting at or after off.
func (s *Stream) IndexOfFirstTokenAtOrAfter(off int) (Index, bool) {
	i := sort.Search(len(s.tokens), func(i int) bool { return s.tokens[i].Start() >= off })
	if i < len(s.tokens) {
		return Index(i), true
	}
	return NoIndex, false
}
