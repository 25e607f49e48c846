package parser

import (
	"wrought/internal/ast"
	"wrought/internal/token"
)

// parseValType: примитивный тип по имени. Прочие идентификаторы:
// именованные типы, их пока нет.
func (p *parser) parseValType() (ast.TypeID, error) {
	tok, err := p.in.assertNext(token.Ident, "a value type")
	if err != nil {
		return ast.NoTypeID, err
	}
	prim, ok := ast.LookupPrimitive(tok.Text)
	if !ok {
		return ast.NoTypeID, notYetSupported(p.in.Source(), "named types", &tok)
	}
	return p.comp.NewType(ast.PrimitiveValType(prim), tok.Span), nil
}
