package lexer

// Byte classes for the ASCII-only identifier and number grammar.
const (
	classIdentStart uint8 = 1 << iota
	classDigit
	classHex
)

var byteClass = func() (t [256]uint8) {
	for c := 'a'; c <= 'z'; c++ {
		t[c] |= classIdentStart
	}
	for c := 'A'; c <= 'Z'; c++ {
		t[c] |= classIdentStart
	}
	t['_'] |= classIdentStart
	t['$'] |= classIdentStart
	for c := '0'; c <= '9'; c++ {
		t[c] |= classDigit | classHex
	}
	for _, c := range "abcdefABCDEF" {
		t[c] |= classHex
	}
	return t
}()

func isIdentStartByte(b byte) bool    { return byteClass[b]&classIdentStart != 0 }
func isIdentContinueByte(b byte) bool { return byteClass[b]&(classIdentStart|classDigit) != 0 }
func isDec(b byte) bool               { return byteClass[b]&classDigit != 0 }
func isHex(b byte) bool               { return byteClass[b]&classHex != 0 }
