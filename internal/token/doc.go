// Package token defines lexical token kinds and the indexed token stream
// used to locate edit points in CoffeeScript source.
// Invariants:
//   - Token.Span is a byte range of the original source; tokens never overlap
//     and are stored in source order.
//   - Every operator, including '=' and the compound assignments, has kind
//     Operator. Callers inspect the source text to tell them apart.
//   - Parentheses that open a call directly after a callee are CallStart and
//     CallEnd, never LParen and RParen.
package token
