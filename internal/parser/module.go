package parser

import (
	"wrought/internal/ast"
	"wrought/internal/source"
	"wrought/internal/token"
)

// parseModule: item* до конца токенов.
func (p *parser) parseModule() error {
	for !p.in.Done() {
		if err := p.ctx.Err(); err != nil {
			return err
		}
		if err := p.parseItem(); err != nil {
			return err
		}
	}
	return nil
}

// parseItem выбирает по первому токену нужный распознаватель top-level конструкции.
func (p *parser) parseItem() error {
	tok, err := p.in.Peek()
	if err != nil {
		return err
	}

	switch tok.Kind {
	case token.KwImport:
		_, err = p.parseImport()
		return err
	case token.KwLet:
		_, err = p.parseGlobal(false, tok.Span)
		return err
	case token.KwFunc:
		_, err = p.parseFunction(false, tok.Span)
		return err
	case token.KwExport:
		return p.parseExported(tok)
	}
	if tok.Kind.IsReservedDecl() {
		return p.in.Unsupported("'" + tok.Text + "' declarations")
	}
	return baseError(p.in.Source(), tok)
}

// export let ... | export func ... решается окном из двух токенов.
func (p *parser) parseExported(export token.Token) error {
	cp := p.in.Checkpoint()
	win, err := p.in.SliceNext(2)
	if err != nil {
		return err
	}
	p.in.Restore(cp)
	p.in.Next() // export
	next := win[1].Kind

	switch {
	case next == token.KwLet:
		_, err := p.parseGlobal(true, export.Span)
		return err
	case next == token.KwFunc:
		_, err := p.parseFunction(true, export.Span)
		return err
	case next.IsReservedDecl():
		return p.in.Unsupported("exported '" + next.String() + "' declarations")
	}
	return p.in.UnexpectedToken("'let' or 'func' after 'export'")
}

// import name: func(params) -> T;
func (p *parser) parseImport() (ast.ImportID, error) {
	start, err := p.in.AssertNext(token.KwImport, "'import'")
	if err != nil {
		return ast.NoImportID, err
	}
	ident, _, err := p.expectIdent("import name")
	if err != nil {
		return ast.NoImportID, err
	}
	if _, err := p.in.AssertNext(token.Colon, "':' after import name"); err != nil {
		return ast.NoImportID, err
	}
	fn, err := p.parseFnType()
	if err != nil {
		return ast.NoImportID, err
	}
	end, err := p.in.AssertNext(token.Semicolon, "';' after import")
	if err != nil {
		return ast.NoImportID, err
	}
	imp := ast.Import{
		Ident:    ident,
		External: ast.ExternalType{Kind: ast.ExternalFunction, Fn: fn},
	}
	return p.comp.NewImport(imp, start.To(end)), nil
}

// parseFnType: func(params) [-> T]
func (p *parser) parseFnType() (ast.FnType, error) {
	if _, err := p.in.AssertNext(token.KwFunc, "'func'"); err != nil {
		return ast.FnType{}, err
	}
	args, err := p.parseParams()
	if err != nil {
		return ast.FnType{}, err
	}
	ret, err := p.parseReturnType()
	if err != nil {
		return ast.FnType{}, err
	}
	return ast.FnType{Arguments: args, ReturnType: ret}, nil
}

// [export] let [mut] name: T = expr;
func (p *parser) parseGlobal(exported bool, start source.Span) (ast.GlobalID, error) {
	if _, err := p.in.AssertNext(token.KwLet, "'let'"); err != nil {
		return ast.NoGlobalID, err
	}
	_, mutable := p.in.NextIf(token.KwMut)
	ident, _, err := p.expectIdent("global name")
	if err != nil {
		return ast.NoGlobalID, err
	}
	if _, err := p.in.AssertNext(token.Colon, "':' and a type after global name"); err != nil {
		return ast.NoGlobalID, err
	}
	ty, err := p.parseValType()
	if err != nil {
		return ast.NoGlobalID, err
	}
	if _, err := p.in.AssertNext(token.Assign, "'=' and an initial value"); err != nil {
		return ast.NoGlobalID, err
	}
	init, err := p.parseExpr()
	if err != nil {
		return ast.NoGlobalID, err
	}
	end, err := p.in.AssertNext(token.Semicolon, "';' after global")
	if err != nil {
		return ast.NoGlobalID, err
	}
	g := ast.Global{
		Exported: exported,
		Mutable:  mutable,
		Ident:    ident,
		Type:     ty,
		Init:     init,
	}
	return p.comp.NewGlobal(g, start.To(end)), nil
}

// [export] func name(params) [-> T] { body }
func (p *parser) parseFunction(exported bool, start source.Span) (ast.FunctionID, error) {
	if _, err := p.in.AssertNext(token.KwFunc, "'func'"); err != nil {
		return ast.NoFunctionID, err
	}
	ident, _, err := p.expectIdent("function name")
	if err != nil {
		return ast.NoFunctionID, err
	}
	args, err := p.parseParams()
	if err != nil {
		return ast.NoFunctionID, err
	}
	ret, err := p.parseReturnType()
	if err != nil {
		return ast.NoFunctionID, err
	}
	body, end, err := p.parseBlock()
	if err != nil {
		return ast.NoFunctionID, err
	}
	fn := ast.Function{
		Exported: exported,
		Signature: ast.FunctionSignature{
			Ident:      ident,
			Arguments:  args,
			ReturnType: ret,
		},
		Body: body,
	}
	return p.comp.NewFunction(fn, start.To(end)), nil
}

// parseParams: ( [name: T {, name: T} [,]] )
func (p *parser) parseParams() ([]ast.Param, error) {
	if _, err := p.in.AssertNext(token.LParen, "'('"); err != nil {
		return nil, err
	}
	var params []ast.Param
	for {
		if _, ok := p.in.NextIf(token.RParen); ok {
			return params, nil
		}
		name, _, err := p.expectIdent("parameter name or ')'")
		if err != nil {
			return nil, err
		}
		if _, err := p.in.AssertNext(token.Colon, "':' after parameter name"); err != nil {
			return nil, err
		}
		ty, err := p.parseValType()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Param{Name: name, Type: ty})

		if _, ok := p.in.NextIf(token.Comma); ok {
			continue
		}
		if _, err := p.in.AssertNext(token.RParen, "',' or ')'"); err != nil {
			return nil, err
		}
		return params, nil
	}
}

// parseReturnType: [-> T]; NoTypeID если стрелки нет.
func (p *parser) parseReturnType() (ast.TypeID, error) {
	if _, ok := p.in.NextIf(token.Arrow); !ok {
		return ast.NoTypeID, nil
	}
	return p.parseValType()
}
