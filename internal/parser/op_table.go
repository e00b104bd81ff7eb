package parser

// Binary operator precedence, higher binds tighter.
const (
	precNone           = 0
	precLogicalOr      = 1 // or ||
	precLogicalAnd     = 2 // and &&
	precEquality       = 3 // is isnt == !=
	precComparison     = 4 // < <= > >=
	precAdditive       = 5 // + -
	precMultiplicative = 6 // * / %
	precExponent       = 7 // ** (right-associative)
)

func binaryPrec(op string) int {
	switch op {
	case "or", "||":
		return precLogicalOr
	case "and", "&&":
		return precLogicalAnd
	case "is", "isnt", "==", "!=":
		return precEquality
	case "<", "<=", ">", ">=":
		return precComparison
	case "+", "-":
		return precAdditive
	case "*", "/", "%":
		return precMultiplicative
	case "**":
		return precExponent
	}
	return precNone
}

var compoundAssignOps = map[string]bool{
	"+=": true, "-=": true, "*=": true, "/=": true, "%=": true, "**=": true,
	"||=": true, "&&=": true, "?=": true, "or=": true, "and=": true,
}

func isPrefixOperator(op string) bool {
	switch op {
	case "not", "!", "-", "+":
		return true
	}
	return false
}
