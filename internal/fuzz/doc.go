// Package fuzztests holds fuzz harnesses for the conversion pipeline:
// lexing, parsing and patching arbitrary input must fail with a
// positioned error or succeed with well-formed output, never panic or
// hang.
package fuzztests
