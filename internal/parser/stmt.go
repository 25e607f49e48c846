package parser

import (
	"wrought/internal/ast"
	"wrought/internal/source"
	"wrought/internal/token"
)

var assignOps = map[token.Kind]ast.AssignOp{
	token.Assign:        ast.AssignSet,
	token.PlusAssign:    ast.AssignAdd,
	token.MinusAssign:   ast.AssignSub,
	token.StarAssign:    ast.AssignMul,
	token.SlashAssign:   ast.AssignDiv,
	token.PercentAssign: ast.AssignRem,
}

// parseBlock: { statement* }; возвращает тело и span от '{' до '}'.
func (p *parser) parseBlock() ([]ast.StatementID, source.Span, error) {
	start, err := p.in.AssertNext(token.LBrace, "'{'")
	if err != nil {
		return nil, start, err
	}
	if err := p.enter(); err != nil {
		return nil, start, err
	}
	defer p.leave()

	var body []ast.StatementID
	for {
		tok, err := p.in.Peek()
		if err != nil {
			return nil, start, err
		}
		if tok.Kind == token.RBrace {
			p.in.Next()
			return body, start.To(tok.Span), nil
		}
		id, err := p.parseStatement()
		if err != nil {
			return nil, start, err
		}
		body = append(body, id)
	}
}

func (p *parser) parseStatement() (ast.StatementID, error) {
	tok, err := p.in.Peek()
	if err != nil {
		return ast.NoStatementID, err
	}

	switch tok.Kind {
	case token.KwLet:
		return p.parseLet()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwBreak:
		return p.parseJump(ast.BreakData{}, "';' after 'break'")
	case token.KwContinue:
		return p.parseJump(ast.ContinueData{}, "';' after 'continue'")
	case token.Ident:
		isAssign := p.window(2, func(w []token.Token) bool {
			return w[1].Kind.IsAssignOp()
		})
		if isAssign {
			return p.parseAssign()
		}
		p.backtracked("assignment")
	}
	return p.parseExprStatement()
}

// let [mut] name [: T] = expr;
func (p *parser) parseLet() (ast.StatementID, error) {
	start, err := p.in.AssertNext(token.KwLet, "'let'")
	if err != nil {
		return ast.NoStatementID, err
	}
	_, mutable := p.in.NextIf(token.KwMut)
	ident, _, err := p.expectIdent("variable name")
	if err != nil {
		return ast.NoStatementID, err
	}
	annotation := ast.NoTypeID
	if _, ok := p.in.NextIf(token.Colon); ok {
		if annotation, err = p.parseValType(); err != nil {
			return ast.NoStatementID, err
		}
	}
	if _, err := p.in.AssertNext(token.Assign, "'=' in let statement"); err != nil {
		return ast.NoStatementID, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return ast.NoStatementID, err
	}
	end, err := p.in.AssertNext(token.Semicolon, "';' after let statement")
	if err != nil {
		return ast.NoStatementID, err
	}
	return p.comp.AllocLet(mutable, ident, annotation, value, start.To(end)), nil
}

// place op= expr;
func (p *parser) parseAssign() (ast.StatementID, error) {
	target, err := p.in.assertNext(token.Ident, "assignment target")
	if err != nil {
		return ast.NoStatementID, err
	}
	opTok, err := p.in.Next()
	if err != nil {
		return ast.NoStatementID, err
	}
	op, ok := assignOps[opTok.Kind]
	if !ok {
		return ast.NoStatementID, unexpectedToken(p.in.Source(), "assignment operator", &opTok)
	}
	value, err := p.parseExpr()
	if err != nil {
		return ast.NoStatementID, err
	}
	end, err := p.in.AssertNext(token.Semicolon, "';' after assignment")
	if err != nil {
		return ast.NoStatementID, err
	}
	place := ast.NewIdentPlace(target.Text, target.Span)
	return p.comp.NewStatement(ast.AssignData{
		Target: ast.NewMBox(place, place.Span()),
		Op:     op,
		Value:  value,
	}, target.Span.To(end)), nil
}

// return [expr];
func (p *parser) parseReturn() (ast.StatementID, error) {
	start, err := p.in.AssertNext(token.KwReturn, "'return'")
	if err != nil {
		return ast.NoStatementID, err
	}
	if end, ok := p.in.NextIf(token.Semicolon); ok {
		return p.comp.NewStatement(ast.ReturnData{Value: ast.NoExpressionID}, start.To(end)), nil
	}
	value, err := p.parseExpr()
	if err != nil {
		return ast.NoStatementID, err
	}
	end, err := p.in.AssertNext(token.Semicolon, "';' after return value")
	if err != nil {
		return ast.NoStatementID, err
	}
	return p.comp.NewStatement(ast.ReturnData{Value: value}, start.To(end)), nil
}

// if cond { ... } [else if ... | else { ... }]
func (p *parser) parseIf() (ast.StatementID, error) {
	start, err := p.in.AssertNext(token.KwIf, "'if'")
	if err != nil {
		return ast.NoStatementID, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return ast.NoStatementID, err
	}
	then, end, err := p.parseBlock()
	if err != nil {
		return ast.NoStatementID, err
	}

	data := ast.IfData{Cond: cond, Then: then}
	if _, ok := p.in.NextIf(token.KwElse); ok {
		data.HasElse = true
		tok, err := p.in.Peek()
		if err != nil {
			return ast.NoStatementID, err
		}
		if tok.Kind == token.KwIf {
			if err := p.enter(); err != nil {
				return ast.NoStatementID, err
			}
			nested, err := p.parseIf()
			p.leave()
			if err != nil {
				return ast.NoStatementID, err
			}
			data.Else = []ast.StatementID{nested}
			end = p.comp.StatementSpan(nested)
		} else {
			if data.Else, end, err = p.parseBlock(); err != nil {
				return ast.NoStatementID, err
			}
		}
	}
	return p.comp.NewStatement(data, start.To(end)), nil
}

// while cond { ... }
func (p *parser) parseWhile() (ast.StatementID, error) {
	start, err := p.in.AssertNext(token.KwWhile, "'while'")
	if err != nil {
		return ast.NoStatementID, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return ast.NoStatementID, err
	}
	body, end, err := p.parseBlock()
	if err != nil {
		return ast.NoStatementID, err
	}
	return p.comp.NewStatement(ast.WhileData{Cond: cond, Body: body}, start.To(end)), nil
}

// break; | continue;
func (p *parser) parseJump(data ast.StatementData, description string) (ast.StatementID, error) {
	kw, err := p.in.Next()
	if err != nil {
		return ast.NoStatementID, err
	}
	end, err := p.in.AssertNext(token.Semicolon, description)
	if err != nil {
		return ast.NoStatementID, err
	}
	return p.comp.NewStatement(data, kw.Span.To(end)), nil
}

// expr;
func (p *parser) parseExprStatement() (ast.StatementID, error) {
	value, err := p.parseExpr()
	if err != nil {
		return ast.NoStatementID, err
	}
	end, err := p.in.AssertNext(token.Semicolon, "';' after expression")
	if err != nil {
		return ast.NoStatementID, err
	}
	span := p.comp.Expr().Span(value).To(end)
	return p.comp.NewStatement(ast.ExprStmtData{Expr: value}, span), nil
}
