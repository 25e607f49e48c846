package ast

import (
	"wrought/internal/source"
)

// Hints preallocates component tables; zero fields pick defaults.
type Hints struct{ Items, Types, Stmts, Exprs, Names uint }

// Component is the root of the tree for one source unit. It is filled
// while parsing and treated as read-only afterwards; later passes attach
// information through side tables keyed by handle.
type Component struct {
	Src *source.File

	imports   *Table[Import]
	globals   *Table[Global]
	functions *Table[Function]

	types *Table[ValType]
	stmts *Stmts
	exprs *ExpressionData
	names *Table[string]
}

// NewComponent creates an empty component for src.
func NewComponent(src *source.File, hints Hints) *Component {
	if hints.Items == 0 {
		hints.Items = 1 << 4
	}
	if hints.Types == 0 {
		hints.Types = 1 << 5
	}
	if hints.Names == 0 {
		hints.Names = 1 << 6
	}
	return &Component{
		Src:       src,
		imports:   NewTable[Import](hints.Items),
		globals:   NewTable[Global](hints.Items),
		functions: NewTable[Function](hints.Items),
		types:     NewTable[ValType](hints.Types),
		stmts:     NewStmts(hints.Stmts),
		exprs:     NewExpressionData(hints.Exprs),
		names:     NewTable[string](hints.Names),
	}
}

func (c *Component) NewName(name string, span source.Span) NameID {
	return NameID(c.names.Push(name, span))
}

func (c *Component) Name(id NameID) string {
	return *c.names.Get(uint32(id))
}

func (c *Component) NameSpan(id NameID) source.Span {
	return c.names.Span(uint32(id))
}

func (c *Component) NewType(t ValType, span source.Span) TypeID {
	return TypeID(c.types.Push(t, span))
}

func (c *Component) Type(id TypeID) *ValType {
	return c.types.Get(uint32(id))
}

func (c *Component) TypeSpan(id TypeID) source.Span {
	return c.types.Span(uint32(id))
}

// NewStatement allocates any statement payload with its span.
func (c *Component) NewStatement(data StatementData, span source.Span) StatementID {
	return c.stmts.New(data, span)
}

// AllocLet is NewStatement specialised for `let`.
func (c *Component) AllocLet(mutable bool, ident NameID, annotation TypeID, expr ExpressionID, span source.Span) StatementID {
	return c.stmts.New(LetData{
		Mutable:    mutable,
		Ident:      ident,
		Annotation: annotation,
		Expr:       expr,
	}, span)
}

func (c *Component) Statement(id StatementID) *Statement {
	return c.stmts.Get(id)
}

func (c *Component) StatementSpan(id StatementID) source.Span {
	return c.stmts.Span(id)
}

// Stmts exposes typed access to statement payloads.
func (c *Component) Stmts() *Stmts {
	return c.stmts
}

// Expr exposes the expression arena for reads and allocation.
func (c *Component) Expr() *ExpressionData {
	return c.exprs
}

func (c *Component) NewImport(imp Import, span source.Span) ImportID {
	return ImportID(c.imports.Push(imp, span))
}

func (c *Component) Import(id ImportID) *Import {
	return c.imports.Get(uint32(id))
}

func (c *Component) ImportSpan(id ImportID) source.Span {
	return c.imports.Span(uint32(id))
}

func (c *Component) NewGlobal(g Global, span source.Span) GlobalID {
	return GlobalID(c.globals.Push(g, span))
}

func (c *Component) Global(id GlobalID) *Global {
	return c.globals.Get(uint32(id))
}

func (c *Component) GlobalSpan(id GlobalID) source.Span {
	return c.globals.Span(uint32(id))
}

func (c *Component) NewFunction(fn Function, span source.Span) FunctionID {
	return FunctionID(c.functions.Push(fn, span))
}

func (c *Component) Function(id FunctionID) *Function {
	return c.functions.Get(uint32(id))
}

func (c *Component) FunctionSpan(id FunctionID) source.Span {
	return c.functions.Span(uint32(id))
}

// ImportIDs returns every import handle in declaration order.
func (c *Component) ImportIDs() []ImportID {
	return ids[ImportID](c.imports.Len())
}

// GlobalIDs returns every global handle in declaration order.
func (c *Component) GlobalIDs() []GlobalID {
	return ids[GlobalID](c.globals.Len())
}

// FunctionIDs returns every function handle in declaration order.
func (c *Component) FunctionIDs() []FunctionID {
	return ids[FunctionID](c.functions.Len())
}

func ids[ID ~uint32](n uint32) []ID {
	out := make([]ID, n)
	for i := range out {
		out[i] = ID(i)
	}
	return out
}

// Counts reports the size of every table.
type Counts struct {
	Imports     uint32
	Globals     uint32
	Functions   uint32
	Types       uint32
	Statements  uint32
	Expressions uint32
	Names       uint32
}

func (c *Component) Counts() Counts {
	return Counts{
		Imports:     c.imports.Len(),
		Globals:     c.globals.Len(),
		Functions:   c.functions.Len(),
		Types:       c.types.Len(),
		Statements:  c.stmts.Arena.Len(),
		Expressions: c.exprs.Len(),
		Names:       c.names.Len(),
	}
}
