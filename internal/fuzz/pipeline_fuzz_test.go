package fuzztests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bhvaleri/decaffeinate/internal/diag"
	"github.com/bhvaleri/decaffeinate/internal/parser"
	"github.com/bhvaleri/decaffeinate/internal/patcher"
	"github.com/bhvaleri/decaffeinate/internal/source"
	"github.com/bhvaleri/decaffeinate/internal/testkit"
)

// convertTimeout bounds a single conversion; running past it means a loop
// that never consumes input.
const convertTimeout = 5 * time.Second

func FuzzParserNoHang(f *testing.F) {
	addSeeds(f)
	f.Add([]byte("switch a\n  when 1\n  when 2\n"))
	f.Add([]byte("((((((((a))))))))"))
	f.Add([]byte("f = -> -> -> -> a"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clamp(input)
		ctx, cancel := context.WithTimeout(context.Background(), convertTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			file := source.NewFileSet().AddVirtual("fuzz.coffee", input)
			_, _, _ = parser.Parse(file)
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("parser did not finish within %v\ninput (%d bytes): %q",
				convertTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

func FuzzPatchOutput(f *testing.F) {
	addSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		file := source.NewFileSet().AddVirtual("fuzz.coffee", clamp(input))
		prog, pctx, err := parser.Parse(file)
		if err != nil {
			requirePositioned(t, err, len(file.Content))
			return
		}
		require.NoError(t, testkit.CheckSpanInvariants(prog, file))

		out, err := patcher.Patch(prog, pctx)
		if err != nil {
			requirePositioned(t, err, len(file.Content))
			return
		}
		require.NoError(t, testkit.CheckBalancedDelimiters(out), "output:\n%s", out)
	})
}

func requirePositioned(t *testing.T, err error, size int) {
	t.Helper()
	pe, ok := diag.AsPatchError(err)
	require.True(t, ok, "error is not a *diag.PatchError: %v", err)
	require.NotEmpty(t, pe.Message)
	require.LessOrEqual(t, 0, pe.Start)
	require.LessOrEqual(t, pe.Start, pe.End)
	require.LessOrEqual(t, pe.End, size)
}
