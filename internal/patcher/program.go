package patcher

import (
	"github.com/bhvaleri/decaffeinate/internal/ast"
	"github.com/bhvaleri/decaffeinate/internal/token"
)

// ProgramPatcher patches the file body and turns `#` comments into `//`.
type ProgramPatcher struct {
	NodePatcher
	body Patcher // nil for an empty file
}

func newProgramPatcher(n ast.Node, b *Builder) (Patcher, error) {
	node := n.(*ast.Program)
	p := &ProgramPatcher{}
	b.initRoot(&p.NodePatcher, p, n)
	if node.Body != nil {
		body, err := b.Build(node.Body)
		if err != nil {
			return nil, err
		}
		p.body = body
	}
	return p, nil
}

func (p *ProgramPatcher) patchAsStatement() error {
	for _, tok := range p.ctx.Tokens.Tokens() {
		if tok.Kind == token.Comment {
			p.overwrite(tok.Start(), tok.Start()+1, "//")
		}
	}
	if p.body == nil {
		return nil
	}
	return p.body.PatchAsStatement()
}
