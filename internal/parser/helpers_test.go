package parser

import (
	"context"
	"testing"

	"wrought/internal/ast"
	"wrought/internal/diag"
	"wrought/internal/lexer"
	"wrought/internal/source"
	"wrought/internal/token"
)

func lexSource(t *testing.T, src string) (*source.File, []token.Token) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.wr", []byte(src)))
	bag := diag.NewBag(0)
	toks := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		t.Fatalf("lex errors in %q: %+v", src, bag.Items())
	}
	return file, toks
}

func makeInput(t *testing.T, src string) *Input {
	t.Helper()
	file, toks := lexSource(t, src)
	return NewInput(file, toks)
}

func parseSource(t *testing.T, src string) (*ast.Module, error) {
	t.Helper()
	file, toks := lexSource(t, src)
	return Parse(context.Background(), file, toks, Options{})
}

func mustParse(t *testing.T, src string) *ast.Component {
	t.Helper()
	mod, err := parseSource(t, src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return mod.Component
}

// newTestParser gives direct access to single productions.
func newTestParser(t *testing.T, src string, opts Options) *parser {
	t.Helper()
	file, toks := lexSource(t, src)
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &parser{
		ctx:  context.Background(),
		in:   NewInput(file, toks),
		comp: ast.NewComponent(file, opts.Hints),
		opts: opts,
	}
}

func parseStmt(t *testing.T, src string) (*ast.Component, ast.StatementID) {
	t.Helper()
	p := newTestParser(t, src, Options{})
	id, err := p.parseStatement()
	if err != nil {
		t.Fatalf("parse statement %q: %v", src, err)
	}
	if !p.in.Done() {
		t.Fatalf("statement %q left tokens unconsumed", src)
	}
	return p.comp, id
}

func parseExprSource(t *testing.T, src string) (*ast.Component, ast.ExpressionID) {
	t.Helper()
	p := newTestParser(t, src, Options{})
	id, err := p.parseExpr()
	if err != nil {
		t.Fatalf("parse expression %q: %v", src, err)
	}
	return p.comp, id
}

func span(file source.FileID, off, n uint32) source.Span {
	return source.NewSpan(file, off, n)
}
