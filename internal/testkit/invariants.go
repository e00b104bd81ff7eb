// Package testkit holds structural checks shared by package tests.
package testkit

import (
	"fmt"
	"testing"

	"fortio.org/safecast"

	"github.com/bhvaleri/decaffeinate/internal/ast"
	"github.com/bhvaleri/decaffeinate/internal/parser"
	"github.com/bhvaleri/decaffeinate/internal/parsectx"
	"github.com/bhvaleri/decaffeinate/internal/source"
)

// MustParse parses src as test.coffee and fails the test on error.
func MustParse(t testing.TB, src string) (*ast.Program, *parsectx.Context) {
	t.Helper()
	prog, ctx, err := parser.Parse(source.NewFile("test.coffee", src))
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return prog, ctx
}

// CheckSpanInvariants verifies that
//  1. the program span covers the whole file,
//  2. every node span is non-empty and within the file,
//  3. every child span lies inside its parent's span.
func CheckSpanInvariants(prog *ast.Program, sf *source.File) error {
	if prog == nil || sf == nil {
		return fmt.Errorf("nil program or file")
	}
	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("content length overflow: %w", err)
	}
	if sp := prog.Span(); sp.Start != 0 || sp.End != size {
		return fmt.Errorf("program span %v does not cover file of %d bytes", sp, size)
	}

	var walk func(parent ast.Node) error
	walk = func(parent ast.Node) error {
		ps := parent.Span()
		for _, c := range parent.Children() {
			cs := c.Span()
			if cs.Empty() {
				return fmt.Errorf("empty %s span at %v", c.Kind(), cs)
			}
			if cs.File != sf.ID {
				return fmt.Errorf("%s span points to file %d, want %d", c.Kind(), cs.File, sf.ID)
			}
			if cs.Start < ps.Start || cs.End > ps.End {
				return fmt.Errorf("%s span %v escapes parent %s span %v", c.Kind(), cs, parent.Kind(), ps)
			}
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(prog)
}

// CheckBalancedDelimiters verifies that (), [] and {} in generated
// JavaScript nest properly. String literals and line comments are skipped.
func CheckBalancedDelimiters(js string) error {
	pairs := map[byte]byte{')': '(', ']': '[', '}': '{'}
	var stack []int
	for i := 0; i < len(js); i++ {
		switch c := js[i]; c {
		case '\'', '"', '`':
			end := skipString(js, i)
			if end < 0 {
				return fmt.Errorf("unterminated string at offset %d", i)
			}
			i = end
		case '/':
			if i+1 < len(js) && js[i+1] == '/' {
				for i < len(js) && js[i] != '\n' {
					i++
				}
			}
		case '(', '[', '{':
			stack = append(stack, i)
		case ')', ']', '}':
			if len(stack) == 0 {
				return fmt.Errorf("unmatched %q at offset %d", c, i)
			}
			top := stack[len(stack)-1]
			if js[top] != pairs[c] {
				return fmt.Errorf("%q at offset %d closes %q at offset %d", c, i, js[top], top)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return fmt.Errorf("unclosed %q at offset %d", js[top], top)
	}
	return nil
}

func skipString(s string, start int) int {
	quote := s[start]
	for i := start + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case quote:
			return i
		case '\n':
			if quote != '`' {
				return -1
			}
		}
	}
	return -1
}
