package token

var keywords = map[string]Kind{
	"switch":    Switch,
	"when":      When,
	"then":      Then,
	"else":      Else,
	"if":        If,
	"unless":    Unless,
	"return":    Return,
	"true":      Bool,
	"false":     Bool,
	"yes":       Bool,
	"no":        Bool,
	"on":        Bool,
	"off":       Bool,
	"null":      Null,
	"undefined": Undefined,
	"and":       Operator,
	"or":        Operator,
	"not":       Operator,
	"is":        Operator,
	"isnt":      Operator,
}

// LookupKeyword reports the kind of a reserved word. Keywords are
// case-sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
