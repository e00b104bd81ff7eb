package patcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhvaleri/decaffeinate/internal/patcher"
	"github.com/bhvaleri/decaffeinate/internal/testkit"
)

func convert(t *testing.T, src string) string {
	t.Helper()
	prog, ctx := testkit.MustParse(t, src)
	out, err := patcher.Patch(prog, ctx)
	require.NoError(t, err)
	require.NoError(t, testkit.CheckBalancedDelimiters(out), out)
	return out
}

type conversion struct {
	name string
	src  string
	want string
}

func runConversions(t *testing.T, tests []conversion) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convert(t, tt.src))
		})
	}
}

func TestPatch_Switch(t *testing.T) {
	runConversions(t, []conversion{
		{
			name: "subject with else at switch indent",
			src:  "switch a\n  when 1\n    b\nelse\n    c",
			want: "switch (a) {\n  case 1:\n    b;\n    break;\ndefault:\n    c;\n}",
		},
		{
			name: "inline cases with several conditions",
			src:  "switch a\n  when 1, 2 then b\n  else c",
			want: "switch (a) {\n  case 1: case 2: b; break;\n  default: c;\n}",
		},
		{
			name: "parenthesised subject",
			src:  "switch (a)\n  when 1 then b",
			want: "switch (a) {\n  case 1: b; break;\n}",
		},
		{
			name: "no subject negates conditions",
			src:  "switch\n  when a then b\n  when c is d then e",
			want: "switch (false) {\n  case !a: b; break;\n  case c !== d: e; break;\n}",
		},
		{
			name: "explicit return skips break",
			src:  "switch a\n  when 1\n    return b\n  when 2\n    c",
			want: "switch (a) {\n  case 1:\n    return b;\n  case 2:\n    c;\n    break;\n}",
		},
		{
			name: "expression",
			src:  "x = switch a\n  when 1 then b\n  else c",
			want: "x = (() => { switch (a) {\n  case 1: return b;\n  default: return c;\n} })();",
		},
		{
			name: "expression without else",
			src:  "x = switch a\n  when 1 then b",
			want: "x = (() => { switch (a) {\n  case 1: return b;\n} })();",
		},
		{
			name: "expression without subject or else",
			src:  "x = switch\n  when a then b\n  when c then d",
			want: "x = (() => { switch (false) {\n  case !a: return b;\n  case !c: return d;\n} })();",
		},
		{
			name: "implicit return from function",
			src:  "f = (a) ->\n  switch a\n    when 1 then 'one'\n    else 'other'",
			want: "f = function(a) {\n  switch (a) {\n    case 1: return 'one';\n    default: return 'other';\n  }\n};",
		},
		{
			name: "nested",
			src:  "switch a\n  when 1\n    switch b\n      when 2 then c",
			want: "switch (a) {\n  case 1:\n    switch (b) {\n      case 2: c; break;\n    }\n    break;\n}",
		},
	})
}

func TestPatch_CompoundAssign(t *testing.T) {
	runConversions(t, []conversion{
		{"arithmetic kept", "a += 1", "a += 1;"},
		{"or", "a or= b", "a ||= b;"},
		{"and", "a and= b", "a &&= b;"},
		{"existence", "a ?= b", "a ??= b;"},
		{"member assignee", "a.b **= 2", "a.b **= 2;"},
		{"object assignee needs parens", "{a: 1}.b += 2", "({a: 1}.b += 2);"},
		{"parenthesised object assignee", "({a: 1}).b += 2", "({a: 1}).b += 2;"},
		{"value is rewritten", "a or= b is c", "a ||= b === c;"},
	})
}

func TestPatch_Conditional(t *testing.T) {
	runConversions(t, []conversion{
		{"inline", "if a then b else c", "if (a) { b; } else { c; }"},
		{"block", "if a\n  b\nelse\n  c", "if (a) {\n  b;\n} else {\n  c;\n}"},
		{"unless", "unless a\n  b", "if (!a) {\n  b;\n}"},
		{"unless composite", "unless a and b then c", "if (!(a && b)) { c; }"},
		{"unless equality flips", "unless a is b then c", "if (a !== b) { c; }"},
		{"else if", "if a\n  b\nelse if c\n  d\nelse\n  e", "if (a) {\n  b;\n} else if (c) {\n  d;\n} else {\n  e;\n}"},
		{"ternary", "x = if a then b else c", "x = a ? b : c;"},
		{"ternary without else", "x = unless a then b", "x = !a ? b : undefined;"},
		{"chained ternary", "x = if a then b else if c then d else e", "x = a ? b : c ? d : e;"},
		{
			"block expression",
			"x = if a\n  b\nelse\n  c",
			"x = (() => { if (a) {\n  return b;\n} else {\n  return c;\n} })();",
		},
	})
}

func TestPatch_Functions(t *testing.T) {
	runConversions(t, []conversion{
		{"params", "f = (x, y) -> x + y", "f = function(x, y) { return x + y; };"},
		{"bound without params", "g = => x", "g = () => { return x; };"},
		{"bound with params", "h = (a) => a", "h = (a) => { return a; };"},
		{"empty", "k = ->", "k = function() {};"},
		{"block body", "f = ->\n  a\n  b", "f = function() {\n  a;\n  return b;\n};"},
		{"statement needs parens", "-> a", "(function() { return a; });"},
		{"call argument", "f(a, (x) -> x)", "f(a, function(x) { return x; });"},
		{"explicit return", "f = -> return a", "f = function() { return a; };"},
	})
}

func TestPatch_Expressions(t *testing.T) {
	runConversions(t, []conversion{
		{"bool aliases", "a = yes and not no", "a = true && !false;"},
		{"on off", "a = on or off", "a = true || false;"},
		{"not composite", "b = not (c or d)", "b = !(c || d);"},
		{"equality", "a isnt b", "a !== b;"},
		{"call and member", "f(a, b).c", "f(a, b).c;"},
		{"object statement", "{a: 1, b: c is d}", "({a: 1, b: c === d});"},
		{"literals", "x = null\ny = undefined\nz = 'q'", "x = null;\ny = undefined;\nz = 'q';"},
	})
}

func TestPatch_Comments(t *testing.T) {
	runConversions(t, []conversion{
		{"lead and trailing", "# hi\na = 1 # one", "// hi\na = 1; // one"},
		{"after block line", "switch a\n  when 1 then b # note", "switch (a) {\n  case 1: b; break;\n} // note"},
		{"after switch expression", "x = switch a\n  when 1 then b # note", "x = (() => { switch (a) {\n  case 1: return b;\n} })(); // note"},
		{"only comments", "# a\n# b\n", "// a\n// b\n"},
	})
}
