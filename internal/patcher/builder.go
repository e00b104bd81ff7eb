package patcher

import (
	"github.com/bhvaleri/decaffeinate/internal/ast"
	"github.com/bhvaleri/decaffeinate/internal/diag"
	"github.com/bhvaleri/decaffeinate/internal/token"
)

// Builder creates the patcher tree. Constructors use it to build their
// children and to initialise their embedded NodePatcher.
type Builder struct {
	shared *shared
}

// Build returns the patcher registered for n's kind.
func (b *Builder) Build(n ast.Node) (Patcher, error) {
	ctor, ok := Lookup(n.Kind())
	if !ok {
		sp := n.Span()
		return nil, diag.Newf(diag.PatchUnsupported, b.shared.ctx, int(sp.Start), int(sp.End),
			"no patcher registered for %s nodes", n.Kind())
	}
	return ctor(n, b)
}

// BuildOptional is Build that maps a nil node to a nil patcher.
func (b *Builder) BuildOptional(n ast.Node) (Patcher, error) {
	if n == nil {
		return nil, nil
	}
	return b.Build(n)
}

func (b *Builder) buildAll(nodes []ast.Node) ([]Patcher, error) {
	out := make([]Patcher, 0, len(nodes))
	for _, n := range nodes {
		c, err := b.Build(n)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Init wires np, embedded in self, to n and resolves its bounds: content
// bounds are the node's own tokens, outer bounds also cover parentheses
// written around it.
func (b *Builder) Init(np *NodePatcher, self Patcher, n ast.Node) error {
	np.shared = b.shared
	np.self = self
	np.node = n

	sp := n.Span()
	np.contentStart, np.contentEnd = int(sp.Start), int(sp.End)

	toks := b.shared.ctx.Tokens
	start, ok := toks.IndexOfTokenStartingAt(np.contentStart)
	if !ok {
		return np.errorf(diag.PatchStructuralDesync, "cannot find first token of %s node", n.Kind())
	}
	end, ok := toks.IndexOfTokenEndingAt(np.contentEnd)
	if !ok {
		return np.errorf(diag.PatchStructuralDesync, "cannot find last token of %s node", n.Kind())
	}
	np.contentStartTok, np.contentEndTok = start, end

	for {
		prev, okPrev := toks.LastIndexOfTokenMatchingPredicate(token.IsSemantic, start.Previous())
		next, okNext := toks.IndexOfTokenMatchingPredicate(token.IsSemantic, end.Next(), toks.End())
		if !okPrev || !okNext {
			break
		}
		open, _ := toks.At(prev)
		closing, _ := toks.At(next)
		if open.Kind != token.LParen || closing.Kind != token.RParen {
			break
		}
		start, end = prev, next
	}
	np.outerStartTok, np.outerEndTok = start, end
	first, _ := toks.At(start)
	last, _ := toks.At(end)
	np.outerStart, np.outerEnd = first.Start(), last.End()
	return nil
}

// initRoot sets up a patcher spanning the whole file, whose span may begin
// and end in whitespace or comments.
func (b *Builder) initRoot(np *NodePatcher, self Patcher, n ast.Node) {
	np.shared = b.shared
	np.self = self
	np.node = n
	sp := n.Span()
	np.contentStart, np.contentEnd = int(sp.Start), int(sp.End)
	np.outerStart, np.outerEnd = np.contentStart, np.contentEnd

	toks := b.shared.ctx.Tokens
	np.contentStartTok, np.outerStartTok = toks.Start(), toks.Start()
	np.contentEndTok, np.outerEndTok = toks.End().Previous(), toks.End().Previous()
}
