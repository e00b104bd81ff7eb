package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.Jobs())
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse(`
[output]
dir = "build"
extension = ".mjs"

[diagnostics]
format = "json"
context = 0

[run]
jobs = 3
cache = true
`)
	require.NoError(t, err)
	assert.Equal(t, "build", cfg.Output.Dir)
	assert.Equal(t, ".mjs", cfg.Output.Extension)
	assert.Equal(t, "json", cfg.Diagnostics.Format)
	assert.Equal(t, 0, cfg.Diagnostics.Context)
	assert.Equal(t, "auto", cfg.Diagnostics.Color, "unset keys keep their default")
	assert.Equal(t, 3, cfg.Jobs())
	assert.True(t, cfg.Run.Cache)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"unknown key", "[run]\nthreads = 2", "unknown keys: run.threads"},
		{"unknown table", "[lint]\nstrict = true", "unknown keys: lint"},
		{"bad format", "[diagnostics]\nformat = \"xml\"", `invalid [diagnostics].format "xml" (expected pretty|short|json)`},
		{"bad color", "[diagnostics]\ncolor = \"always\"", `invalid [diagnostics].color "always" (expected auto|on|off)`},
		{"negative jobs", "[run]\njobs = -1", "[run].jobs must not be negative, got -1"},
		{"bad extension", "[output]\nextension = \"js\"", `[output].extension must start with '.', got "js"`},
		{"syntax", "[run", "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDiscover_WalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "lib")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := Discover(nested)
	require.NoError(t, err)
	assert.Empty(t, cfg.Path, "no file yields the defaults")

	path := filepath.Join(root, FileName)
	require.NoError(t, os.WriteFile(path, []byte("[output]\ndir = \"out\"\n"), 0o600))

	cfg, err = Discover(nested)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, filepath.Join(root, "out", "a.js"), cfg.OutputPath(filepath.Join(nested, "a.coffee")))
}

func TestLoad_ErrorNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("[run]\nbogus = 1\n"), 0o600))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path+": unknown keys")
}

func TestOutputPath(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join("src", "a.js"), cfg.OutputPath(filepath.Join("src", "a.coffee")))

	cfg.Output.Dir = "/tmp/out"
	cfg.Output.Extension = ".mjs"
	assert.Equal(t, filepath.Join("/tmp/out", "a.mjs"), cfg.OutputPath(filepath.Join("src", "a.coffee")))
}
