// Package driver runs the lex, parse and patch pipeline over files, with
// tracing, timings, an optional on-disk cache and bounded parallelism.
package driver

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bhvaleri/decaffeinate/internal/diag"
	"github.com/bhvaleri/decaffeinate/internal/observ"
	"github.com/bhvaleri/decaffeinate/internal/parsectx"
	"github.com/bhvaleri/decaffeinate/internal/parser"
	"github.com/bhvaleri/decaffeinate/internal/patcher"
	"github.com/bhvaleri/decaffeinate/internal/source"
	"github.com/bhvaleri/decaffeinate/internal/trace"
	"github.com/bhvaleri/decaffeinate/internal/version"
)

// Options configure a conversion. The zero value converts without cache
// or progress reporting, using GOMAXPROCS workers.
type Options struct {
	Jobs  int
	Cache *DiskCache
	Sink  Sink
	// CacheVersion salts cache keys; defaults to version.Version.
	CacheVersion string
}

func (o Options) sink() Sink {
	if o.Sink == nil {
		return NopSink{}
	}
	return o.Sink
}

func (o Options) cacheVersion() string {
	if o.CacheVersion != "" {
		return o.CacheVersion
	}
	return version.Version
}

// Result is the outcome for one file.
type Result struct {
	Path   string
	Output string
	// Err is a *diag.PatchError when the source could not be converted,
	// or the I/O error that kept it from being read.
	Err error
	// Context is the parsed file, nil for cache hits and I/O failures.
	Context *parsectx.Context
	Timing  observ.Report
	Cached  bool
}

// PatchError returns Err as a *diag.PatchError, if it is one.
func (r *Result) PatchError() (*diag.PatchError, bool) {
	if r.Err == nil {
		return nil, false
	}
	return diag.AsPatchError(r.Err)
}

// TranspileFile reads path and converts it.
func TranspileFile(ctx context.Context, path string, opts Options) *Result {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		opts.sink().OnEvent(Event{File: path, Stage: StageLoad, Status: StatusError, Err: err})
		return &Result{Path: path, Err: err}
	}
	return TranspileSource(ctx, path, content, opts)
}

// TranspileSource converts src, reported under name. The tracer is taken
// from ctx.
func TranspileSource(ctx context.Context, name string, src []byte, opts Options) *Result {
	res := &Result{Path: name}
	sink := opts.sink()
	fileSpan, ctx := trace.StartSpan(ctx, trace.ScopeFile, name)
	timer := observ.NewTimer()
	started := time.Now()

	finish := func(stage Stage) *Result {
		res.Timing = timer.Report()
		status, detail := StatusDone, "ok"
		if res.Err != nil {
			status, detail = StatusError, res.Err.Error()
		}
		fileSpan.WithExtra("cached", fmt.Sprint(res.Cached)).End(detail)
		sink.OnEvent(Event{File: name, Stage: stage, Status: status, Err: res.Err, Elapsed: time.Since(started), Cached: res.Cached})
		return res
	}

	key := CacheKey(opts.cacheVersion(), src)
	if opts.Cache != nil {
		var payload CachePayload
		ok, err := opts.Cache.Get(key, &payload)
		if err != nil {
			trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache", "read failed: "+err.Error(), fileSpan.ID())
		}
		if ok {
			res.Output, res.Cached = payload.Output, true
			return finish(StagePatch)
		}
	}

	sink.OnEvent(Event{File: name, Stage: StageLoad, Status: StatusWorking})
	idx := timer.Begin("load")
	file, err := source.NewFileSet().Decode(name, src, 0)
	timer.End(idx, "")
	if err != nil {
		res.Err = err
		return finish(StageLoad)
	}

	sink.OnEvent(Event{File: name, Stage: StageParse, Status: StatusWorking})
	span, _ := trace.StartSpan(ctx, trace.ScopePass, "parse")
	idx = timer.Begin("parse")
	prog, pctx, err := parser.Parse(file)
	timer.End(idx, "")
	res.Context = pctx
	if err != nil {
		span.End(err.Error())
		res.Err = err
		return finish(StageParse)
	}
	span.End("ok")

	sink.OnEvent(Event{File: name, Stage: StagePatch, Status: StatusWorking})
	span, _ = trace.StartSpan(ctx, trace.ScopePass, "patch")
	idx = timer.Begin("patch")
	out, err := patcher.Patch(prog, pctx, patcher.WithTracer(trace.FromContext(ctx)), patcher.WithParentSpan(span.ID()))
	timer.End(idx, "")
	if err != nil {
		span.End(err.Error())
		res.Err = err
		return finish(StagePatch)
	}
	span.End("ok")
	res.Output = out

	if opts.Cache != nil {
		payload := CachePayload{Path: name, Output: out, Timing: timer.Report()}
		if err := opts.Cache.Put(key, &payload); err != nil {
			trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache", "write failed: "+err.Error(), fileSpan.ID())
		}
	}
	return finish(StagePatch)
}
