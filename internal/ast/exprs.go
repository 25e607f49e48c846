package ast

import (
	"wrought/internal/source"
)

// ExpressionData manages allocation of expressions and their spans.
type ExpressionData struct {
	Arena    *Table[Expr]
	Idents   *Arena[IdentData]
	Literals *Arena[LiteralData]
	Calls    *Arena[CallData]
	Unaries  *Arena[UnaryData]
	Binaries *Arena[BinaryData]
	Groups   *Arena[GroupData]
}

// NewExpressionData creates per-kind arenas preallocated to capHint
// (1<<8 when zero).
func NewExpressionData(capHint uint) *ExpressionData {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &ExpressionData{
		Arena:    NewTable[Expr](capHint),
		Idents:   NewArena[IdentData](capHint),
		Literals: NewArena[LiteralData](capHint),
		Calls:    NewArena[CallData](capHint / 4),
		Unaries:  NewArena[UnaryData](capHint / 4),
		Binaries: NewArena[BinaryData](capHint),
		Groups:   NewArena[GroupData](capHint / 4),
	}
}

func (e *ExpressionData) new(kind ExprKind, span source.Span, payload uint32) ExpressionID {
	return ExpressionID(e.Arena.Push(Expr{Kind: kind, Payload: PayloadID(payload)}, span))
}

// Get returns the expression header with the given ID.
func (e *ExpressionData) Get(id ExpressionID) *Expr {
	return e.Arena.Get(uint32(id))
}

// Span returns the span of the expression with the given ID.
func (e *ExpressionData) Span(id ExpressionID) source.Span {
	return e.Arena.Span(uint32(id))
}

// Len reports how many expressions have been allocated.
func (e *ExpressionData) Len() uint32 {
	return e.Arena.Len()
}

func (e *ExpressionData) NewIdent(span source.Span, name NameID) ExpressionID {
	return e.new(ExprIdent, span, e.Idents.Allocate(IdentData{Ident: name}))
}

func (e *ExpressionData) Ident(id ExpressionID) (*IdentData, bool) {
	expr := e.Get(id)
	if expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

func (e *ExpressionData) NewLiteral(span source.Span, lit LiteralData) ExpressionID {
	return e.new(ExprLit, span, e.Literals.Allocate(lit))
}

func (e *ExpressionData) Literal(id ExpressionID) (*LiteralData, bool) {
	expr := e.Get(id)
	if expr.Kind != ExprLit {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

// NewCall copies args; the caller may reuse its slice.
func (e *ExpressionData) NewCall(span source.Span, callee NameID, args []ExpressionID) ExpressionID {
	payload := e.Calls.Allocate(CallData{
		Callee: callee,
		Args:   append([]ExpressionID(nil), args...),
	})
	return e.new(ExprCall, span, payload)
}

func (e *ExpressionData) Call(id ExpressionID) (*CallData, bool) {
	expr := e.Get(id)
	if expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

func (e *ExpressionData) NewUnary(span source.Span, op ExprUnaryOp, operand ExpressionID) ExpressionID {
	return e.new(ExprUnary, span, e.Unaries.Allocate(UnaryData{Op: op, Operand: operand}))
}

func (e *ExpressionData) Unary(id ExpressionID) (*UnaryData, bool) {
	expr := e.Get(id)
	if expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

func (e *ExpressionData) NewBinary(span source.Span, op ExprBinaryOp, left, right ExpressionID) ExpressionID {
	return e.new(ExprBinary, span, e.Binaries.Allocate(BinaryData{Op: op, Left: left, Right: right}))
}

func (e *ExpressionData) Binary(id ExpressionID) (*BinaryData, bool) {
	expr := e.Get(id)
	if expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

func (e *ExpressionData) NewGroup(span source.Span, inner ExpressionID) ExpressionID {
	return e.new(ExprGroup, span, e.Groups.Allocate(GroupData{Inner: inner}))
}

func (e *ExpressionData) Group(id ExpressionID) (*GroupData, bool) {
	expr := e.Get(id)
	if expr.Kind != ExprGroup {
		return nil, false
	}
	return e.Groups.Get(uint32(expr.Payload)), true
}
