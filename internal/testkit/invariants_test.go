package testkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckBalancedDelimiters(t *testing.T) {
	ok := []string{
		"",
		"f(a, [1, {b: 2}]);",
		"x = ')' + \"}\"; // (",
		"(() => { switch (a) {\n  case 1: return b;\n} })();",
	}
	for _, js := range ok {
		assert.NoError(t, CheckBalancedDelimiters(js), js)
	}

	bad := []string{"(", ")", "(]", "{ 'x }", "f(a}"}
	for _, js := range bad {
		assert.Error(t, CheckBalancedDelimiters(js), js)
	}
}

func TestCheckSpanInvariants(t *testing.T) {
	prog, ctx := MustParse(t, "switch (a)\n  when 1 then b\nelse c # note\n")
	require.NoError(t, CheckSpanInvariants(prog, ctx.File))
	assert.Error(t, CheckSpanInvariants(nil, ctx.File))
}
