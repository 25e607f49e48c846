package driver

import (
	"context"
	"strconv"
	"time"

	"wrought/internal/diag"
	"wrought/internal/lexer"
	"wrought/internal/source"
	"wrought/internal/token"
	"wrought/internal/trace"
)

// TokenizeResult is the outcome of lexing one file from disk.
type TokenizeResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Tokens   []token.Token
	Bag      *diag.Bag
	CacheHit bool
}

// Tokenize lexes file into significant tokens (EOF excluded). Lexical
// errors land in the bag and lexing continues past them.
func Tokenize(ctx context.Context, file *source.File, opts Options) ([]token.Token, *diag.Bag) {
	toks, bag, _ := tokenize(ctx, file, opts)
	return toks, bag
}

func tokenize(ctx context.Context, file *source.File, opts Options) ([]token.Token, *diag.Bag, bool) {
	bag := diag.NewBag(opts.MaxDiagnostics)

	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopePass, "lex", trace.CurrentSpan(ctx).SpanID).
		WithExtra("file", file.Path)
	done := opts.Timer.Begin("lex")
	start := time.Now()
	emit(opts.Progress, Event{File: file.Path, Stage: StageLex, Status: StatusWorking})

	if toks, ok := opts.Cache.Get(file); ok {
		span.WithExtra("tokens", strconv.Itoa(len(toks))).End("cache hit")
		done("")
		emit(opts.Progress, Event{File: file.Path, Stage: StageLex, Status: StatusDone, Elapsed: time.Since(start)})
		return toks, bag, true
	}

	toks := lexer.Tokenize(file, lexer.Options{Reporter: diag.NewDedupReporter(diag.BagReporter{Bag: bag})})
	span.WithExtra("tokens", strconv.Itoa(len(toks)))

	if bag.HasErrors() {
		span.End("error")
		done("")
		emit(opts.Progress, Event{File: file.Path, Stage: StageLex, Status: StatusError, Elapsed: time.Since(start)})
		return toks, bag, false
	}
	if err := opts.Cache.Put(file, toks); err != nil {
		// кеш не влияет на результат
		trace.Point(tr, trace.ScopePass, "cache write failed", span.ID(), err.Error())
	}
	span.End("ok")
	done("")
	emit(opts.Progress, Event{File: file.Path, Stage: StageLex, Status: StatusDone, Elapsed: time.Since(start)})
	return toks, bag, false
}

// TokenizeFile loads path into a fresh FileSet and lexes it.
func TokenizeFile(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	file, err := load(fs, path, opts)
	if err != nil {
		return nil, err
	}
	toks, bag, hit := tokenize(ctx, file, opts)
	return &TokenizeResult{FileSet: fs, File: file, Tokens: toks, Bag: bag, CacheHit: hit}, nil
}

func load(fs *source.FileSet, path string, opts Options) (*source.File, error) {
	done := opts.Timer.Begin("load")
	start := time.Now()
	id, err := fs.Load(path)
	done("")
	if err != nil {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err, Elapsed: time.Since(start)})
		return nil, err
	}
	file := fs.Get(id)
	emit(opts.Progress, Event{File: file.Path, Stage: StageLoad, Status: StatusDone, Elapsed: time.Since(start)})
	return file, nil
}
