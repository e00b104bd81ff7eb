package fuzztests

import "testing"

const maxFuzzInput = 1 << 16

var seeds = []string{
	"",
	"a",
	"a = b\n",
	"a += 1",
	"a or= b is c",
	"a ?= b\nc and= d",
	"{a: 1}.b += 2",
	"if a then b else c",
	"unless a and b then c",
	"x = if a then b else if c then d else e",
	"if a\n  b\nelse\n  c\n",
	"switch a\n  when 1, 2 then b\n  when 3\n    c\n  else d\n",
	"switch\n  when a then b\n",
	"x = switch a\n  when 1 then b\n  else c\n",
	"f = (a) ->\n  switch a\n    when 1 then 'one'\n    else 'other'",
	"f = (x, y) -> x + y",
	"g = => x",
	"f(a, (x) -> x)",
	"a = yes and not no",
	"b = not (c or d)",
	"# comment\na = 1 # trailing\n",
	"f(a, b).c",
	"a = 'b",
	"a = = b",
	"(a",
	"a)",
	"switch a\n  when",
	"a = 1\r\nb = 2\r\n",
}

func addSeeds(f *testing.F) {
	for _, s := range seeds {
		f.Add([]byte(s))
	}
}

func clamp(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}

func truncateForLog(input []byte, maxLen int) string {
	if len(input) <= maxLen {
		return string(input)
	}
	return string(input[:maxLen]) + "..."
}
