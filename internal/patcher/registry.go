package patcher

import (
	"sync"

	"github.com/bhvaleri/decaffeinate/internal/ast"
)

// Constructor builds the patcher for one node, including its children.
type Constructor func(n ast.Node, b *Builder) (Patcher, error)

var (
	registryMu sync.RWMutex
	registry   = map[ast.Kind]Constructor{}
)

// Register installs ctor for kind, replacing any previous constructor.
func Register(kind ast.Kind, ctor Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[kind] = ctor
}

func Lookup(kind ast.Kind) (Constructor, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ctor, ok := registry[kind]
	return ctor, ok
}

func init() {
	Register(ast.KindProgram, newProgramPatcher)
	Register(ast.KindBlock, newBlockPatcher)
	Register(ast.KindIdentifier, newIdentifierPatcher)
	for _, k := range []ast.Kind{ast.KindNumber, ast.KindString, ast.KindNull, ast.KindUndefined} {
		Register(k, newLiteralPatcher)
	}
	Register(ast.KindBool, newBoolPatcher)
	Register(ast.KindObject, newObjectPatcher)
	Register(ast.KindProperty, newPropertyPatcher)
	Register(ast.KindMember, newMemberAccessPatcher)
	Register(ast.KindCall, newCallPatcher)
	Register(ast.KindUnary, newUnaryOpPatcher)
	Register(ast.KindBinary, newBinaryOpPatcher)
	Register(ast.KindAssign, newAssignOpPatcher)
	Register(ast.KindCompoundAssign, newCompoundAssignOpPatcher)
	Register(ast.KindFunction, newFunctionPatcher)
	Register(ast.KindReturn, newReturnPatcher)
	Register(ast.KindConditional, newConditionalPatcher)
	Register(ast.KindSwitch, newSwitchPatcher)
	Register(ast.KindSwitchCase, newSwitchCasePatcher)
}
