package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI in a fresh temporary working directory.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestConvert_Stdin(t *testing.T) {
	inTempDir(t)
	out, _, err := execute(t, "switch a\n  when 1 then b\n", "convert", "--color", "off")
	require.NoError(t, err)
	assert.Equal(t, "switch (a) {\n  case 1: b; break;\n}\n", out)
}

func TestConvert_StdinErrorShort(t *testing.T) {
	inTempDir(t)
	out, errOut, err := execute(t, "a = 'b", "convert", "-", "--format", "short", "--color", "off")
	assert.ErrorIs(t, err, errReported)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "<stdin>:1:")
	assert.Contains(t, errOut, "unterminated string literal")
}

func TestConvert_StdinErrorPretty(t *testing.T) {
	inTempDir(t)
	_, errOut, err := execute(t, "a = b ~ c", "convert", "--color", "off")
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, errOut, "unexpected character '~'")
	assert.Contains(t, errOut, "a = b ~ c", "code frame shows the line")
}

func TestConvert_Files(t *testing.T) {
	dir := inTempDir(t)
	write(t, filepath.Join(dir, "src", "a.coffee"), "a += 1\n")
	write(t, filepath.Join(dir, "src", "lib", "b.coffee"), "unless a then b\n")

	_, errOut, err := execute(t, "", "convert", "src", "--ui", "off", "--out-dir", "out", "--color", "off", "--timings")
	require.NoError(t, err)
	assert.Contains(t, errOut, "converted 2 of 2 files")
	assert.Contains(t, errOut, "timings:")

	a, err := os.ReadFile(filepath.Join(dir, "out", "a.js"))
	require.NoError(t, err)
	assert.Equal(t, "a += 1;\n", string(a))
	b, err := os.ReadFile(filepath.Join(dir, "out", "b.js"))
	require.NoError(t, err)
	assert.Equal(t, "if (!a) { b; }\n", string(b))
}

func TestConvert_ConfigFile(t *testing.T) {
	dir := inTempDir(t)
	write(t, filepath.Join(dir, "decaffeinate.toml"), "[output]\ndir = \"dist\"\nextension = \".mjs\"\n")
	write(t, filepath.Join(dir, "x.coffee"), "x = yes")

	_, _, err := execute(t, "", "convert", "x.coffee", "--ui", "off", "--quiet")
	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join(dir, "dist", "x.mjs"))
	require.NoError(t, err)
	assert.Equal(t, "x = true;", string(got))
}

func TestConvert_StdoutAndJSONErrors(t *testing.T) {
	dir := inTempDir(t)
	write(t, filepath.Join(dir, "ok.coffee"), "ok()")
	write(t, filepath.Join(dir, "bad.coffee"), "bad = ")

	out, errOut, err := execute(t, "", "convert", "ok.coffee", "bad.coffee", "--stdout", "--format", "json", "--quiet")
	assert.ErrorIs(t, err, errReported)
	assert.Equal(t, "ok();", out)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(errOut), &payload), errOut)
	assert.Equal(t, "unexpected end of input", payload["message"])
	loc, ok := payload["location"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "bad.coffee", loc["file"])
}

func TestConvert_BadFlags(t *testing.T) {
	dir := inTempDir(t)
	write(t, filepath.Join(dir, "a.coffee"), "a")

	_, _, err := execute(t, "", "convert", "a.coffee", "--ui", "sometimes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid --ui value "sometimes"`)

	_, _, err = execute(t, "", "convert", "a.coffee", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[diagnostics].format")

	_, _, err = execute(t, "", "convert", "empty-dir-that-does-not-exist")
	assert.ErrorIs(t, err, os.ErrNotExist)

	write(t, filepath.Join(dir, "decaffeinate.toml"), "[run]\nworkers = 4\n")
	_, _, err = execute(t, "", "convert", "a.coffee")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown keys: run.workers")
}

func TestConvert_TraceToStderr(t *testing.T) {
	inTempDir(t)
	_, errOut, err := execute(t, "a", "convert", "--trace-level", "detail")
	require.NoError(t, err)
	assert.Contains(t, errOut, "[pass] → parse")
	assert.Contains(t, errOut, "[pass] → patch")
}

func TestParse_Profiles(t *testing.T) {
	dir := inTempDir(t)
	write(t, filepath.Join(dir, "p.coffee"), "a = b\n")
	_, _, err := execute(t, "", "parse", "p.coffee", "--color", "off",
		"--cpu-profile", "cpu.pprof", "--mem-profile", "mem.pprof", "--runtime-trace", "run.trace")
	require.NoError(t, err)
	for _, name := range []string{"cpu.pprof", "mem.pprof", "run.trace"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}

func TestConvert_RingTraceDumpedOnFailure(t *testing.T) {
	inTempDir(t)
	_, errOut, err := execute(t, "a ~ b", "convert", "--trace-level", "detail", "--trace-mode", "ring", "--color", "off")
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, errOut, "trace (most recent events):")
	assert.Contains(t, errOut, "[file] ← <stdin>")
}

func TestTokenize_JSON(t *testing.T) {
	dir := inTempDir(t)
	write(t, filepath.Join(dir, "t.coffee"), "a ?= 1")

	out, _, err := execute(t, "", "tokenize", "t.coffee", "--format", "json")
	require.NoError(t, err)
	var toks []struct {
		Kind string `json:"kind"`
		Text string `json:"text"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &toks))
	require.Len(t, toks, 3)
	assert.Equal(t, "OPERATOR", toks[1].Kind)
	assert.Equal(t, "?=", toks[1].Text)
}

func TestTokenize_PrettyAndError(t *testing.T) {
	dir := inTempDir(t)
	write(t, filepath.Join(dir, "t.coffee"), "a = 'b")

	out, errOut, err := execute(t, "", "tokenize", "t.coffee", "--color", "off")
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "IDENTIFIER")
	assert.Contains(t, errOut, "unterminated string literal")

	_, _, err = execute(t, "", "tokenize", "t.coffee", "--format", "yaml")
	require.Error(t, err)
}

func TestParse(t *testing.T) {
	dir := inTempDir(t)
	write(t, filepath.Join(dir, "p.coffee"), "a = b")

	out, _, err := execute(t, "", "parse", "p.coffee")
	require.NoError(t, err)
	assert.Equal(t, "Program 1:1-1:6\n  Block 1:1-1:6\n    Assign 1:1-1:6\n      Identifier 1:1-1:2 a\n      Identifier 1:5-1:6 b\n", out)
}

func TestVersion(t *testing.T) {
	inTempDir(t)
	out, _, err := execute(t, "", "version", "--format", "json", "--hash")
	require.NoError(t, err)
	var payload versionPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "decaffeinate", payload.Tool)
	assert.NotEmpty(t, payload.Version)
	assert.NotEmpty(t, payload.GitCommit)
	assert.Empty(t, payload.BuildDate)

	out, _, err = execute(t, "", "version", "--full", "--color", "off")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "decaffeinate "))
	assert.Contains(t, out, "built:")

	_, _, err = execute(t, "", "version", "--format", "xml")
	require.Error(t, err)
}

func TestParseToggle(t *testing.T) {
	for in, want := range map[string]toggle{"": toggleAuto, "AUTO": toggleAuto, " on ": toggleOn, "off": toggleOff} {
		got, err := parseToggle("ui", in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := parseToggle("ui", "sometimes")
	assert.EqualError(t, err, `invalid --ui value "sometimes" (expected auto|on|off)`)

	assert.True(t, toggleOn.resolve(os.Stdout))
	assert.False(t, toggleOff.resolve(os.Stdout))
}
