package parser

import (
	"strconv"
	"strings"

	"wrought/internal/ast"
	"wrought/internal/token"
)

// parseExpr - главная точка входа для парсинга выражений
func (p *parser) parseExpr() (ast.ExpressionID, error) {
	return p.parseBinaryExpr(precLogicalOr)
}

// parseBinaryExpr: precedence climbing, minPrec - минимальный приоритет уровня.
func (p *parser) parseBinaryExpr(minPrec int) (ast.ExpressionID, error) {
	left, err := p.parseUnaryExpr()
	if err != nil {
		return ast.NoExpressionID, err
	}
	exprs := p.comp.Expr()

	for !p.in.Done() {
		tok, _ := p.in.Peek()
		bin, ok := binaryOperator(tok.Kind)
		if !ok || bin.prec < minPrec {
			break
		}
		p.in.Next()

		right, err := p.parseBinaryExpr(bin.prec + 1)
		if err != nil {
			return ast.NoExpressionID, err
		}
		span := exprs.Span(left).To(exprs.Span(right))
		left = exprs.NewBinary(span, bin.op, left, right)
	}
	return left, nil
}

// parseUnaryExpr: ("-" | "!") unary | postfix
func (p *parser) parseUnaryExpr() (ast.ExpressionID, error) {
	if err := p.enter(); err != nil {
		return ast.NoExpressionID, err
	}
	defer p.leave()

	tok, err := p.in.Peek()
	if err != nil {
		return ast.NoExpressionID, err
	}
	var op ast.ExprUnaryOp
	switch tok.Kind {
	case token.Minus:
		op = ast.UnaryNeg
	case token.Bang:
		op = ast.UnaryNot
	default:
		return p.parsePostfixExpr()
	}
	p.in.Next()

	operand, err := p.parseUnaryExpr()
	if err != nil {
		return ast.NoExpressionID, err
	}
	exprs := p.comp.Expr()
	return exprs.NewUnary(tok.Span.To(exprs.Span(operand)), op, operand), nil
}

// parsePostfixExpr: name(args) | primary
func (p *parser) parsePostfixExpr() (ast.ExpressionID, error) {
	isCall := p.window(2, func(w []token.Token) bool {
		return w[0].Kind == token.Ident && w[1].Kind == token.LParen
	})
	if !isCall {
		return p.parsePrimaryExpr()
	}

	callee, start, err := p.expectIdent("function name")
	if err != nil {
		return ast.NoExpressionID, err
	}
	p.in.Next() // (

	var args []ast.ExpressionID
	for {
		if end, ok := p.in.NextIf(token.RParen); ok {
			return p.comp.Expr().NewCall(start.To(end), callee, args), nil
		}
		arg, err := p.parseExpr()
		if err != nil {
			return ast.NoExpressionID, err
		}
		args = append(args, arg)

		if _, ok := p.in.NextIf(token.Comma); ok {
			continue
		}
		end, err := p.in.AssertNext(token.RParen, "',' or ')' in call arguments")
		if err != nil {
			return ast.NoExpressionID, err
		}
		return p.comp.Expr().NewCall(start.To(end), callee, args), nil
	}
}

func (p *parser) parsePrimaryExpr() (ast.ExpressionID, error) {
	tok, err := p.in.Next()
	if err != nil {
		return ast.NoExpressionID, err
	}
	exprs := p.comp.Expr()

	switch tok.Kind {
	case token.Ident:
		name := p.comp.NewName(tok.Text, tok.Span)
		return exprs.NewIdent(tok.Span, name), nil

	case token.IntLit:
		v, err := decodeInt(tok.Text)
		if err != nil {
			return ast.NoExpressionID, unexpectedToken(p.in.Source(), "an integer literal that fits in 64 bits", &tok)
		}
		return exprs.NewLiteral(tok.Span, ast.LiteralData{Kind: ast.LitInt, Int: v}), nil

	case token.FloatLit:
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return ast.NoExpressionID, unexpectedToken(p.in.Source(), "a representable float literal", &tok)
		}
		return exprs.NewLiteral(tok.Span, ast.LiteralData{Kind: ast.LitFloat, Float: v}), nil

	case token.StringLit:
		v, err := strconv.Unquote(tok.Text)
		if err != nil {
			return ast.NoExpressionID, unexpectedToken(p.in.Source(), "a string literal with valid escapes", &tok)
		}
		return exprs.NewLiteral(tok.Span, ast.LiteralData{Kind: ast.LitString, Str: v}), nil

	case token.KwTrue, token.KwFalse:
		return exprs.NewLiteral(tok.Span, ast.LiteralData{Kind: ast.LitBool, Bool: tok.Kind == token.KwTrue}), nil

	case token.LParen:
		inner, err := p.parseExpr()
		if err != nil {
			return ast.NoExpressionID, err
		}
		end, err := p.in.AssertNext(token.RParen, "')'")
		if err != nil {
			return ast.NoExpressionID, err
		}
		return exprs.NewGroup(tok.Span.To(end), inner), nil
	}
	return ast.NoExpressionID, unexpectedToken(p.in.Source(), "an expression", &tok)
}

// decodeInt разбирает целый литерал: 0b/0o/0x задают основание,
// без префикса число десятичное, ведущий 0 восьмеричным не считается.
func decodeInt(text string) (uint64, error) {
	digits := strings.ReplaceAll(text, "_", "")
	base := 10
	if len(digits) > 2 && digits[0] == '0' {
		switch digits[1] {
		case 'b', 'B':
			base = 2
		case 'o', 'O':
			base = 8
		case 'x', 'X':
			base = 16
		}
		if base != 10 {
			digits = digits[2:]
		}
	}
	return strconv.ParseUint(digits, base, 64)
}
