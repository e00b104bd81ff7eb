package ast

import (
	"github.com/bhvaleri/decaffeinate/internal/source"
)

type Program struct {
	base
	Body *Block // nil for an empty file
}

func NewProgram(span source.Span, body *Block) *Program {
	return &Program{base: base{span}, Body: body}
}

func (*Program) Kind() Kind         { return KindProgram }
func (n *Program) Children() []Node { return nonNil(n.Body) }

// Block is a statement list. Inline blocks follow `then` or an arrow on
// the same line as their owner.
type Block struct {
	base
	Statements []Node
	Inline     bool
}

func NewBlock(span source.Span, stmts []Node, inline bool) *Block {
	return &Block{base: base{span}, Statements: stmts, Inline: inline}
}

func (*Block) Kind() Kind         { return KindBlock }
func (n *Block) Children() []Node { return nonNil(n.Statements...) }

type Identifier struct {
	base
	Name string
}

func NewIdentifier(span source.Span, name string) *Identifier {
	return &Identifier{base: base{span}, Name: name}
}

func (*Identifier) Kind() Kind       { return KindIdentifier }
func (*Identifier) Children() []Node { return nil }

// Literal covers numbers, strings, booleans, null and undefined. Raw is the
// source spelling.
type Literal struct {
	base
	kind Kind
	Raw  string
}

func NewLiteral(kind Kind, span source.Span, raw string) *Literal {
	return &Literal{base: base{span}, kind: kind, Raw: raw}
}

func (n *Literal) Kind() Kind     { return n.kind }
func (*Literal) Children() []Node { return nil }

type Object struct {
	base
	Properties []*Property
}

func NewObject(span source.Span, props []*Property) *Object {
	return &Object{base: base{span}, Properties: props}
}

func (*Object) Kind() Kind { return KindObject }
func (n *Object) Children() []Node {
	out := make([]Node, 0, len(n.Properties))
	for _, p := range n.Properties {
		out = append(out, p)
	}
	return out
}

type Property struct {
	base
	Key   *Identifier
	Value Node
}

func NewProperty(span source.Span, key *Identifier, value Node) *Property {
	return &Property{base: base{span}, Key: key, Value: value}
}

func (*Property) Kind() Kind         { return KindProperty }
func (n *Property) Children() []Node { return nonNil(n.Key, n.Value) }

// Member is `object.name`.
type Member struct {
	base
	Object   Node
	Property *Identifier
}

func NewMember(span source.Span, object Node, prop *Identifier) *Member {
	return &Member{base: base{span}, Object: object, Property: prop}
}

func (*Member) Kind() Kind         { return KindMember }
func (n *Member) Children() []Node { return nonNil(n.Object, n.Property) }

type Call struct {
	base
	Callee Node
	Args   []Node
}

func NewCall(span source.Span, callee Node, args []Node) *Call {
	return &Call{base: base{span}, Callee: callee, Args: args}
}

func (*Call) Kind() Kind { return KindCall }
func (n *Call) Children() []Node {
	return nonNil(append([]Node{n.Callee}, n.Args...)...)
}

type Unary struct {
	base
	Op      string
	Operand Node
}

func NewUnary(span source.Span, op string, operand Node) *Unary {
	return &Unary{base: base{span}, Op: op, Operand: operand}
}

func (*Unary) Kind() Kind         { return KindUnary }
func (n *Unary) Children() []Node { return nonNil(n.Operand) }

type Binary struct {
	base
	Op          string
	Left, Right Node
}

func NewBinary(span source.Span, op string, left, right Node) *Binary {
	return &Binary{base: base{span}, Op: op, Left: left, Right: right}
}

func (*Binary) Kind() Kind         { return KindBinary }
func (n *Binary) Children() []Node { return nonNil(n.Left, n.Right) }

type Assign struct {
	base
	Assignee   Node
	Expression Node
}

func NewAssign(span source.Span, assignee, expr Node) *Assign {
	return &Assign{base: base{span}, Assignee: assignee, Expression: expr}
}

func (*Assign) Kind() Kind         { return KindAssign }
func (n *Assign) Children() []Node { return nonNil(n.Assignee, n.Expression) }

// CompoundAssign is `assignee op= expression`. Op is the source spelling
// including the '=' (e.g. "+=", "or=").
type CompoundAssign struct {
	base
	Op         string
	Assignee   Node
	Expression Node
}

func NewCompoundAssign(span source.Span, op string, assignee, expr Node) *CompoundAssign {
	return &CompoundAssign{base: base{span}, Op: op, Assignee: assignee, Expression: expr}
}

func (*CompoundAssign) Kind() Kind         { return KindCompoundAssign }
func (n *CompoundAssign) Children() []Node { return nonNil(n.Assignee, n.Expression) }

// Function is `(params) -> body`. Bound is set for `=>`.
type Function struct {
	base
	Params    []*Identifier
	HasParens bool
	Bound     bool
	Body      *Block // nil for `->` with no body
}

func NewFunction(span source.Span, params []*Identifier, hasParens, bound bool, body *Block) *Function {
	return &Function{base: base{span}, Params: params, HasParens: hasParens, Bound: bound, Body: body}
}

func (*Function) Kind() Kind { return KindFunction }
func (n *Function) Children() []Node {
	out := make([]Node, 0, len(n.Params)+1)
	for _, p := range n.Params {
		out = append(out, p)
	}
	return append(out, nonNil(n.Body)...)
}

type Return struct {
	base
	Expression Node // may be nil
}

func NewReturn(span source.Span, expr Node) *Return {
	return &Return{base: base{span}, Expression: expr}
}

func (*Return) Kind() Kind         { return KindReturn }
func (n *Return) Children() []Node { return nonNil(n.Expression) }

// Conditional is if/unless with an optional else. Alternate is a *Block or,
// for `else if`, a *Conditional.
type Conditional struct {
	base
	Condition  Node
	Consequent *Block
	Alternate  Node
	Unless     bool
}

func NewConditional(span source.Span, cond Node, cons *Block, alt Node, unless bool) *Conditional {
	return &Conditional{base: base{span}, Condition: cond, Consequent: cons, Alternate: alt, Unless: unless}
}

func (*Conditional) Kind() Kind { return KindConditional }
func (n *Conditional) Children() []Node {
	return nonNil(n.Condition, n.Consequent, n.Alternate)
}

// Switch is `switch [expression]` with when-cases and an optional else.
type Switch struct {
	base
	Expression Node // nil for a subject-less switch
	Cases      []*SwitchCase
	Alternate  *Block
}

func NewSwitch(span source.Span, expr Node, cases []*SwitchCase, alt *Block) *Switch {
	return &Switch{base: base{span}, Expression: expr, Cases: cases, Alternate: alt}
}

func (*Switch) Kind() Kind { return KindSwitch }
func (n *Switch) Children() []Node {
	out := nonNil(n.Expression)
	for _, c := range n.Cases {
		out = append(out, c)
	}
	return append(out, nonNil(n.Alternate)...)
}

type SwitchCase struct {
	base
	Conditions []Node
	Consequent *Block
}

func NewSwitchCase(span source.Span, conds []Node, cons *Block) *SwitchCase {
	return &SwitchCase{base: base{span}, Conditions: conds, Consequent: cons}
}

func (*SwitchCase) Kind() Kind { return KindSwitchCase }
func (n *SwitchCase) Children() []Node {
	return nonNil(append(append([]Node{}, n.Conditions...), n.Consequent)...)
}
