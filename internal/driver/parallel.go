package driver

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"wrought/internal/diag"
	"wrought/internal/project"
	"wrought/internal/source"
	"wrought/internal/trace"
)

// ParseDir parses every source file under dir.
func ParseDir(ctx context.Context, dir string, opts Options) ([]ParseResult, error) {
	files, err := project.ListSources(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, project.ErrNoSources)
	}
	return ParseFiles(ctx, files, opts)
}

// ParseFiles parses paths concurrently, at most opts.Jobs at a time.
// Results follow the order of paths; each file gets its own component
// and cursor, only the FileSet is shared and it is filled before any
// worker starts.
func ParseFiles(ctx context.Context, paths []string, opts Options) ([]ParseResult, error) {
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopeDriver, "parse-files", trace.CurrentSpan(ctx).SpanID).
		WithExtra("files", strconv.Itoa(len(paths)))
	ctx = span.Context(ctx)

	for _, p := range paths {
		emit(opts.Progress, Event{File: p, Stage: StageLoad, Status: StatusQueued})
	}

	// загрузка последовательная: FileSet не потокобезопасен
	fs := source.NewFileSet()
	files := make([]*source.File, len(paths))
	for i, p := range paths {
		f, err := load(fs, p, opts)
		if err != nil {
			span.End("error")
			return nil, fmt.Errorf("load %s: %w", p, err)
		}
		files[i] = f
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]ParseResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(files))))
	for i, f := range files {
		g.Go(func() error {
			return traceFile(gctx, f.Path, func(ctx context.Context) error {
				res, err := parseLoaded(ctx, f, opts)
				if err != nil {
					return err
				}
				res.FileSet = fs
				results[i] = *res
				return nil
			})
		})
	}
	if err := g.Wait(); err != nil {
		span.End("error")
		return nil, err
	}
	span.End("ok")
	return results, nil
}

// CountErrors sums error diagnostics over results.
func CountErrors(results []ParseResult) int {
	n := 0
	for i := range results {
		for _, d := range results[i].Bag.Items() {
			if d.Severity >= diag.SevError {
				n++
			}
		}
	}
	return n
}
