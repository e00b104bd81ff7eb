package driver

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhvaleri/decaffeinate/internal/diag"
	"github.com/bhvaleri/decaffeinate/internal/trace"
)

type recordSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordSink) OnEvent(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *recordSink) statuses(file string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, ev := range s.events {
		if ev.File == file {
			out = append(out, string(ev.Stage)+":"+string(ev.Status))
		}
	}
	return out
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestTranspileSource(t *testing.T) {
	sink := &recordSink{}
	res := TranspileSource(context.Background(), "a.coffee", []byte("a or= b\n"), Options{Sink: sink})
	require.NoError(t, res.Err)
	assert.Equal(t, "a ||= b;\n", res.Output)
	assert.False(t, res.Cached)
	require.NotNil(t, res.Context)

	names := make([]string, 0, len(res.Timing.Phases))
	for _, p := range res.Timing.Phases {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"load", "parse", "patch"}, names)
	assert.Equal(t, []string{"load:working", "parse:working", "patch:working", "patch:done"}, sink.statuses("a.coffee"))
}

func TestTranspileSource_DecodesUTF16AndCRLF(t *testing.T) {
	// UTF-16LE with BOM: "x = 1\r\n"
	src := []byte{0xFF, 0xFE}
	for _, r := range "x = 1\r\n" {
		src = append(src, byte(r), 0)
	}
	res := TranspileSource(context.Background(), "w.coffee", src, Options{})
	require.NoError(t, res.Err)
	assert.Equal(t, "x = 1;\n", res.Output)
}

func TestTranspileSource_Errors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		stage Stage
		code  diag.Code
	}{
		{"lex", "a = 'b", StageParse, diag.LexBadLiteral},
		{"parse", "a = = b", StageParse, diag.SynUnexpectedToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordSink{}
			res := TranspileSource(context.Background(), "bad.coffee", []byte(tt.src), Options{Sink: sink})
			pe, ok := res.PatchError()
			require.True(t, ok, "got %v", res.Err)
			assert.Equal(t, tt.code, pe.Code)
			assert.Empty(t, res.Output)
			require.NotNil(t, res.Context)
			assert.Same(t, res.Context, pe.Context)

			statuses := sink.statuses("bad.coffee")
			assert.Equal(t, string(tt.stage)+":error", statuses[len(statuses)-1])
		})
	}
}

func TestTranspileSource_Traces(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDetail, trace.FormatText)
	ctx := trace.WithTracer(context.Background(), tr)

	res := TranspileSource(ctx, "t.coffee", []byte("switch a\n  when 1 then b"), Options{})
	require.NoError(t, res.Err)

	out := buf.String()
	assert.Contains(t, out, "[file] → t.coffee")
	assert.Contains(t, out, "[pass] → parse")
	assert.Contains(t, out, "[pass] → patch")
	assert.NotContains(t, out, "[node]", "node spans are debug only")
}

func TestTranspileSource_Cache(t *testing.T) {
	cache, err := NewDiskCache(t.TempDir())
	require.NoError(t, err)
	opts := Options{Cache: cache, CacheVersion: "test"}
	src := []byte("x = yes")

	first := TranspileSource(context.Background(), "c.coffee", src, opts)
	require.NoError(t, first.Err)
	assert.False(t, first.Cached)

	second := TranspileSource(context.Background(), "c.coffee", src, opts)
	require.NoError(t, second.Err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Output, second.Output)
	assert.Nil(t, second.Context)

	opts.CacheVersion = "other"
	third := TranspileSource(context.Background(), "c.coffee", src, opts)
	assert.False(t, third.Cached, "a new version misses the cache")
}

func TestTranspileSource_FailuresAreNotCached(t *testing.T) {
	cache, err := NewDiskCache(t.TempDir())
	require.NoError(t, err)
	opts := Options{Cache: cache}
	for range 2 {
		res := TranspileSource(context.Background(), "e.coffee", []byte("a ~ b"), opts)
		require.Error(t, res.Err)
		assert.False(t, res.Cached)
	}
}

func TestListSources(t *testing.T) {
	dir := t.TempDir()
	b := writeFile(t, dir, "src/b.coffee", "b")
	a := writeFile(t, dir, "src/nested/a.coffee", "a")
	writeFile(t, dir, "src/readme.md", "-")
	other := writeFile(t, dir, "script.txt", "c")

	got, err := ListSources([]string{other, filepath.Join(dir, "src")})
	require.NoError(t, err)
	assert.Equal(t, []string{other, b, a}, got)

	_, err = ListSources([]string{filepath.Join(dir, "missing")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestListSources_SkipsIgnored(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".gitignore", "vendor\n*.gen.coffee\n")
	a := writeFile(t, dir, "a.coffee", "a")
	writeFile(t, dir, "b.gen.coffee", "b")
	writeFile(t, dir, "vendor/c.coffee", "c")
	writeFile(t, dir, ".cache/d.coffee", "d")
	e := writeFile(t, dir, "lib/e.coffee", "e")

	got, err := ListSources([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, []string{a, e}, got)

	// an explicit file argument is never filtered
	gen := filepath.Join(dir, "b.gen.coffee")
	got, err = ListSources([]string{gen})
	require.NoError(t, err)
	assert.Equal(t, []string{gen}, got)
}

func TestTranspileFiles(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i, src := range []string{"a = 1", "b = 'x", "c += 2", "d"} {
		paths = append(paths, writeFile(t, dir, string(rune('a'+i))+".coffee", src))
	}
	paths = append(paths, filepath.Join(dir, "missing.coffee"))

	sink := &recordSink{}
	results, err := TranspileFiles(context.Background(), paths, Options{Jobs: 2, Sink: sink})
	require.NoError(t, err)
	require.Len(t, results, len(paths))

	for i, r := range results {
		assert.Equal(t, paths[i], r.Path)
	}
	assert.Equal(t, "a = 1;", results[0].Output)
	_, ok := results[1].PatchError()
	assert.True(t, ok)
	assert.Equal(t, "c += 2;", results[2].Output)
	assert.Equal(t, "d;", results[3].Output)
	assert.ErrorIs(t, results[4].Err, os.ErrNotExist)

	assert.Equal(t, []string{"load:queued", "load:error"}, sink.statuses(paths[4]))
	st := sink.statuses(paths[0])
	assert.Equal(t, "load:queued", st[0])
	assert.Equal(t, "patch:done", st[len(st)-1])
}

func TestTranspileFiles_Cancelled(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.coffee", "a")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := TranspileFiles(ctx, []string{path}, Options{})
	assert.ErrorIs(t, err, context.Canceled)

	results, err := TranspileFiles(context.Background(), nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestDiskCache(t *testing.T) {
	cache, err := NewDiskCache(t.TempDir())
	require.NoError(t, err)
	key := CacheKey("1", []byte("a"))
	assert.NotEqual(t, key, CacheKey("1", []byte("b")))
	assert.NotEqual(t, key, CacheKey("1a", nil), "version and source are separated")

	var got CachePayload
	ok, err := cache.Get(key, &got)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Put(key, &CachePayload{Path: "a.coffee", Output: "a;"}))
	ok, err = cache.Get(key, &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a;", got.Output)

	entries, err := os.ReadDir(filepath.Join(cache.Dir(), "js"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), ".mp"), "no temp files left behind")

	require.NoError(t, cache.DropAll())
	ok, err = cache.Get(key, &got)
	require.NoError(t, err)
	assert.False(t, ok)

	var nilCache *DiskCache
	require.NoError(t, nilCache.Put(key, &CachePayload{}))
	ok, err = nilCache.Get(key, &got)
	require.NoError(t, err)
	assert.False(t, ok)
}
