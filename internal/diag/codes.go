package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnexpectedChar Code = 1001
	LexBadLiteral     Code = 1002

	// Syntax
	SynUnexpectedToken Code = 2001
	SynBadIndentation  Code = 2002
	SynUnsupported     Code = 2003

	// Patching
	PatchStructuralDesync Code = 3001 // AST and token stream disagree
	PatchMissingToken     Code = 3002 // expected token absent between two patchers
	PatchOutOfRange       Code = 3003 // token found outside the node's own bounds
	PatchEditConflict     Code = 3004 // overlapping edits registered on the editor
	PatchUnsupported      Code = 3005 // construct the engine cannot rewrite
	PatchInternal         Code = 3099
)

var codeTitles = map[Code]string{
	UnknownCode:           "unknown error",
	LexUnexpectedChar:     "unexpected character",
	LexBadLiteral:         "malformed literal",
	SynUnexpectedToken:    "unexpected token",
	SynBadIndentation:     "bad indentation",
	SynUnsupported:        "unsupported syntax",
	PatchStructuralDesync: "structural desync",
	PatchMissingToken:     "missing expected token",
	PatchOutOfRange:       "token out of range",
	PatchEditConflict:     "conflicting edits",
	PatchUnsupported:      "unsupported construct",
	PatchInternal:         "internal error",
}

// ID returns the stable string form, e.g. "PAT3002".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("PAT%04d", ic)
	}
	return "E0000"
}

// Title is a short human label for the code.
func (c Code) Title() string {
	if t, ok := codeTitles[c]; ok {
		return t
	}
	return codeTitles[UnknownCode]
}

func (c Code) String() string {
	return c.ID()
}
