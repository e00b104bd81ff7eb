// Package trace is the logging layer of the transpiler. Work is recorded as
// begin/end spans grouped by scope, from whole CLI runs down to single
// patched nodes.
//
// Enable it from the command line:
//
//	decaffeinate convert --trace=- --trace-level=phase src/app.coffee
//
// Tracers:
//
//   - Nop: used when tracing is off
//   - StreamTracer: writes every event as it happens
//   - RingTracer: keeps the most recent events for a dump after a failure
//   - TeeTracer: both of the above, for --trace-mode=both
//
// A tracer travels with the context.Context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "patch", parentID)
//	defer span.End("")
package trace
