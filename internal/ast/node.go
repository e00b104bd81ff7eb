// Package ast holds the syntax tree of the CoffeeScript subset. Every node
// records its content span; surrounding parentheses are not part of it.
package ast

import (
	"github.com/bhvaleri/decaffeinate/internal/source"
)

// Kind identifies the concrete node type.
type Kind uint8

const (
	KindProgram Kind = iota
	KindBlock
	KindIdentifier
	KindNumber
	KindString
	KindBool
	KindNull
	KindUndefined
	KindObject
	KindProperty
	KindMember
	KindCall
	KindUnary
	KindBinary
	KindAssign
	KindCompoundAssign
	KindFunction
	KindReturn
	KindConditional
	KindSwitch
	KindSwitchCase
)

var kindNames = [...]string{
	KindProgram:        "Program",
	KindBlock:          "Block",
	KindIdentifier:     "Identifier",
	KindNumber:         "Number",
	KindString:         "String",
	KindBool:           "Bool",
	KindNull:           "Null",
	KindUndefined:      "Undefined",
	KindObject:         "Object",
	KindProperty:       "Property",
	KindMember:         "Member",
	KindCall:           "Call",
	KindUnary:          "Unary",
	KindBinary:         "Binary",
	KindAssign:         "Assign",
	KindCompoundAssign: "CompoundAssign",
	KindFunction:       "Function",
	KindReturn:         "Return",
	KindConditional:    "Conditional",
	KindSwitch:         "Switch",
	KindSwitchCase:     "SwitchCase",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Node is implemented by every syntax tree node.
type Node interface {
	Kind() Kind
	Span() source.Span
	// Children returns direct children in source order, skipping absent ones.
	Children() []Node
}

type base struct {
	span source.Span
}

func (b *base) Span() source.Span { return b.span }

// SetSpan is used by the parser once a node's extent is known.
func (b *base) SetSpan(sp source.Span) { b.span = sp }

func nonNil(nodes ...Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil && !isNilNode(n) {
			out = append(out, n)
		}
	}
	return out
}

// isNilNode catches typed nil pointers stored in a Node.
func isNilNode(n Node) bool {
	switch v := n.(type) {
	case *Block:
		return v == nil
	case *Identifier:
		return v == nil
	case *Conditional:
		return v == nil
	}
	return false
}
