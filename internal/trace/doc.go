// Package trace records structured events for the wrought front-end.
//
// There is no general-purpose logger: the driver, the lexer pass and the
// parser emit spans and point events instead, and a tracer decides where
// they go.
//
//	wrought check --trace=- --trace-level=detail src/
//
// Tracers:
//
//   - Nop: tracing disabled
//   - StreamTracer: writes each event as text or NDJSON
//   - RingTracer: keeps the last N events for a dump on failure
//   - MultiTracer: fans out to several tracers
//
// Levels gate scopes: phase lets driver and pass events through, detail
// adds per-file module spans, debug adds node-level parser events such
// as backtracks.
//
//	ctx = trace.WithTracer(ctx, tr)
//	sp := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", parent)
//	defer sp.End("")
package trace
