package token

// Predicate selects tokens during stream scans.
type Predicate func(Token) bool

// OfKind matches tokens of any of the given kinds.
func OfKind(kinds ...Kind) Predicate {
	return func(t Token) bool {
		for _, k := range kinds {
			if t.Kind == k {
				return true
			}
		}
		return false
	}
}

// Not inverts a predicate.
func Not(p Predicate) Predicate {
	return func(t Token) bool { return !p(t) }
}

// And matches when every predicate matches.
func And(ps ...Predicate) Predicate {
	return func(t Token) bool {
		for _, p := range ps {
			if !p(t) {
				return false
			}
		}
		return true
	}
}

// IsSemantic matches tokens other than newlines and comments.
func IsSemantic(t Token) bool { return !t.IsTrivia() }
