package driver

import (
	"context"
	"errors"
	"time"

	"wrought/internal/ast"
	"wrought/internal/diag"
	"wrought/internal/parser"
	"wrought/internal/source"
	"wrought/internal/token"
	"wrought/internal/trace"
)

// ParseResult is the front-end outcome for one file. Module is nil when
// lexing failed or the parser reported an error; in both cases Bag holds
// the diagnostics.
type ParseResult struct {
	Path     string
	FileSet  *source.FileSet
	File     *source.File
	Tokens   []token.Token
	Module   *ast.Module
	Bag      *diag.Bag
	Err      error // parse error, if any
	CacheHit bool
}

// OK reports whether the file produced a module without errors.
func (r *ParseResult) OK() bool {
	return r != nil && r.Module != nil && !r.Bag.HasErrors()
}

// ParseFile loads, lexes and parses path. The returned error covers I/O
// and cancellation only; source errors are reported in the result.
func ParseFile(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	var res *ParseResult
	err := traceFile(ctx, path, func(ctx context.Context) error {
		file, err := load(fs, path, opts)
		if err != nil {
			return err
		}
		res, err = parseLoaded(ctx, file, opts)
		return err
	})
	if err != nil {
		return nil, err
	}
	res.FileSet = fs
	return res, nil
}

func parseLoaded(ctx context.Context, file *source.File, opts Options) (*ParseResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	toks, bag, hit := tokenize(ctx, file, opts)
	res := &ParseResult{Path: file.Path, File: file, Tokens: toks, Bag: bag, CacheHit: hit}
	if bag.HasErrors() {
		// парсер не запускаем поверх сломанного потока токенов
		return res, nil
	}

	done := opts.Timer.Begin("parse")
	start := time.Now()
	emit(opts.Progress, Event{File: file.Path, Stage: StageParse, Status: StatusWorking})

	popts := opts.parserOptions()
	popts.Hints = hintsFor(toks)
	mod, err := parser.Parse(ctx, file, toks, popts)
	done("")
	if err != nil {
		var prov diag.Provider
		if !errors.As(err, &prov) {
			// отмена контекста и прочие не-синтаксические ошибки
			emit(opts.Progress, Event{File: file.Path, Stage: StageParse, Status: StatusError, Err: err, Elapsed: time.Since(start)})
			return nil, err
		}
		bag.Add(prov.Diagnostic())
		res.Err = err
		emit(opts.Progress, Event{File: file.Path, Stage: StageParse, Status: StatusError, Err: err, Elapsed: time.Since(start)})
		return res, nil
	}
	res.Module = mod
	emit(opts.Progress, Event{File: file.Path, Stage: StageParse, Status: StatusDone, Elapsed: time.Since(start)})
	return res, nil
}

// hintsFor sizes the component tables from the token count; roughly one
// expression per two tokens and one statement per eight.
func hintsFor(toks []token.Token) ast.Hints {
	n := uint(len(toks))
	return ast.Hints{Stmts: n/8 + 1, Exprs: n/2 + 1}
}

// traceFile wraps fn in a module-scope span named after the file.
func traceFile(ctx context.Context, path string, fn func(context.Context) error) error {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeModule, "file:"+path, trace.CurrentSpan(ctx).SpanID)
	err := fn(span.Context(ctx))
	if err != nil {
		span.End("error")
		return err
	}
	span.End("ok")
	return nil
}
