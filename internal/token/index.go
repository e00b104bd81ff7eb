package token

// Index is a position in a Stream. Indices compare in source order.
type Index int

// NoIndex is the invalid index. Lookups report absence through a separate
// boolean, so index 0 is always a real token.
const NoIndex Index = -1

// IsBefore reports whether i comes strictly before other.
func (i Index) IsBefore(other Index) bool { return i < other }

// IsAfter reports whether i comes strictly after other.
func (i Index) IsAfter(other Index) bool { return i > other }

// Next returns the following index.
func (i Index) Next() Index { return i + 1 }

// Previous returns the preceding index.
func (i Index) Previous() Index { return i - 1 }

// Advance moves the index by n, which may be negative.
func (i Index) Advance(n int) Index { return i + Index(n) }

// Valid reports whether the index can address a token at all.
func (i Index) Valid() bool { return i >= 0 }
