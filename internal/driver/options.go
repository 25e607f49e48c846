package driver

import (
	"wrought/internal/observ"
	"wrought/internal/parser"
)

// Options configures a driver run.
type Options struct {
	// MaxDiagnostics caps each file's bag; <= 0 means unlimited.
	MaxDiagnostics int
	// MaxDepth is passed to the parser; <= 0 uses parser.DefaultMaxDepth.
	MaxDepth int
	// Jobs limits concurrent files in ParseFiles; <= 0 means GOMAXPROCS.
	Jobs int
	// Cache, if set, short-circuits lexing of unchanged files.
	Cache *TokenCache
	// Timer, if set, accumulates load/lex/parse durations.
	Timer *observ.Timer
	// Progress, if set, receives per-file events.
	Progress ProgressSink
}

func (o Options) parserOptions() parser.Options {
	return parser.Options{MaxDepth: o.MaxDepth}
}
