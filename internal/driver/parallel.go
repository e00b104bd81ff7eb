package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sync/errgroup"

	"github.com/bhvaleri/decaffeinate/internal/trace"
)

// SourceExt marks the files ListSources picks up from directories.
const SourceExt = ".coffee"

// ListSources expands directories into their *.coffee files, sorted.
// Plain file arguments are kept as given, whatever their extension.
// Directory walks skip hidden directories and whatever the .gitignore at
// the walked root excludes.
func ListSources(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		found, err := walkSources(p)
		if err != nil {
			return nil, err
		}
		out = append(out, found...)
	}
	return out, nil
}

func walkSources(root string) ([]string, error) {
	var ignore *gitignore.GitIgnore
	if gi := filepath.Join(root, ".gitignore"); fileExists(gi) {
		var err error
		if ignore, err = gitignore.CompileIgnoreFile(gi); err != nil {
			return nil, fmt.Errorf("%s: %w", gi, err)
		}
	}

	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if ignore != nil {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			if ignore.MatchesPath(filepath.ToSlash(rel)) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, SourceExt) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(found)
	return found, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// TranspileFiles converts paths on up to opts.Jobs goroutines. Results are
// in input order. Per-file failures are reported in the results; the
// returned error is only set when ctx is cancelled.
func TranspileFiles(ctx context.Context, paths []string, opts Options) ([]*Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	sink := opts.sink()
	for _, p := range paths {
		sink.OnEvent(Event{File: p, Stage: StageLoad, Status: StatusQueued})
	}

	span, ctx := trace.StartSpan(ctx, trace.ScopeDriver, "transpile")
	span.WithExtra("files", strconv.Itoa(len(paths))).WithExtra("jobs", strconv.Itoa(jobs))

	// each goroutine owns results[i]
	results := make([]*Result, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = TranspileFile(gctx, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.End(err.Error())
		return results, err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	span.WithExtra("failed", strconv.Itoa(failed)).End("ok")
	return results, nil
}
