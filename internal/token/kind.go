package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota

	// Identifier represents a name.
	Identifier
	// Number represents a numeric literal.
	Number
	// String represents a quoted string literal without interpolation.
	String
	// Bool represents true/false/yes/no/on/off.
	Bool
	// Null represents the 'null' literal.
	Null
	// Undefined represents the 'undefined' literal.
	Undefined

	// Switch represents the 'switch' keyword.
	Switch // switch
	// When represents the 'when' keyword.
	When // when
	// Then represents the 'then' keyword.
	Then // then
	// Else represents the 'else' keyword.
	Else // else
	// If represents the 'if' keyword.
	If // if
	// Unless represents the 'unless' keyword.
	Unless // unless
	// Return represents the 'return' keyword.
	Return // return

	// Operator covers every operator, assignments and word operators included.
	Operator
	// LParen is a grouping '('.
	LParen // (
	// RParen is a grouping ')'.
	RParen // )
	// CallStart is the '(' opening an argument list.
	CallStart // (
	// CallEnd is the ')' closing an argument list.
	CallEnd // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// Colon represents ':'.
	Colon // :
	// Comma represents ','.
	Comma // ,
	// Dot represents '.'.
	Dot // .
	// Function is the '->' or '=>' arrow.
	Function

	// Newline terminates a logical line.
	Newline
	// Comment is a '#' line comment.
	Comment
)

var kindNames = [...]string{
	Invalid:    "INVALID",
	Identifier: "IDENTIFIER",
	Number:     "NUMBER",
	String:     "STRING",
	Bool:       "BOOL",
	Null:       "NULL",
	Undefined:  "UNDEFINED",
	Switch:     "SWITCH",
	When:       "WHEN",
	Then:       "THEN",
	Else:       "ELSE",
	If:         "IF",
	Unless:     "UNLESS",
	Return:     "RETURN",
	Operator:   "OPERATOR",
	LParen:     "LPAREN",
	RParen:     "RPAREN",
	CallStart:  "CALL_START",
	CallEnd:    "CALL_END",
	LBrace:     "LBRACE",
	RBrace:     "RBRACE",
	Colon:      "COLON",
	Comma:      "COMMA",
	Dot:        "DOT",
	Function:   "FUNCTION",
	Newline:    "NEWLINE",
	Comment:    "COMMENT",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "INVALID"
}
