package parser

import (
	"context"
	"fmt"
	"strconv"

	"wrought/internal/ast"
	"wrought/internal/source"
	"wrought/internal/token"
	"wrought/internal/trace"
)

// DefaultMaxDepth bounds nesting of blocks and expressions.
const DefaultMaxDepth = 256

type Options struct {
	// MaxDepth ограничивает вложенность; <= 0 означает DefaultMaxDepth.
	MaxDepth int
	// Hints preallocates the component tables.
	Hints ast.Hints
}

// parser - состояние разбора одного файла
type parser struct {
	ctx    context.Context
	in     *Input
	comp   *ast.Component
	opts   Options
	depth  int
	tracer trace.Tracer
	spanID uint64
}

// Parse runs the module production over tokens once. On success the
// returned component is complete; on failure it is dropped and the single
// error is returned.
func Parse(ctx context.Context, src *source.File, tokens []token.Token, opts Options) (*ast.Module, error) {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopePass, "parse", trace.CurrentSpan(ctx).SpanID).
		WithExtra("file", src.Path).
		WithExtra("tokens", strconv.Itoa(len(tokens)))

	p := &parser{
		ctx:    ctx,
		in:     NewInput(src, tokens),
		comp:   ast.NewComponent(src, opts.Hints),
		opts:   opts,
		tracer: tr,
		spanID: span.ID(),
	}
	if err := p.parseModule(); err != nil {
		span.End("error")
		return nil, err
	}
	span.End("ok")

	return &ast.Module{
		Component: p.comp,
		Span:      source.NewSpan(src.ID, 0, src.EndSpan().Offset()),
	}, nil
}

// enter увеличивает глубину вложенности; ошибка указывает на следующий токен.
func (p *parser) enter() error {
	if p.depth >= p.opts.MaxDepth {
		err := p.in.UnexpectedToken("")
		err.Kind = KindNestingTooDeep
		err.Description = fmt.Sprintf("more than %d nested blocks or expressions", p.opts.MaxDepth)
		return err
	}
	p.depth++
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// window смотрит на следующие n токенов и откатывает курсор.
func (p *parser) window(n int, match func([]token.Token) bool) bool {
	cp := p.in.Checkpoint()
	win, err := p.in.SliceNext(n)
	p.in.Restore(cp)
	if err != nil {
		return false
	}
	return match(win)
}

func (p *parser) backtracked(what string) {
	trace.Point(p.tracer, trace.ScopeNode, "backtrack", p.spanID, what)
}

// expectIdent съедает идентификатор и заводит для него имя.
func (p *parser) expectIdent(description string) (ast.NameID, source.Span, error) {
	tok, err := p.in.assertNext(token.Ident, description)
	if err != nil {
		return ast.NoNameID, tok.Span, err
	}
	return p.comp.NewName(tok.Text, tok.Span), tok.Span, nil
}
