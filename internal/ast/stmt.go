package ast

import (
	"fmt"

	"wrought/internal/source"
)

type StatementKind uint8

const (
	StmtLet StatementKind = iota
	StmtAssign
	StmtReturn
	StmtIf
	StmtWhile
	StmtBreak
	StmtContinue
	StmtExpr
)

var statementKindNames = [...]string{
	StmtLet:      "Let",
	StmtAssign:   "Assign",
	StmtReturn:   "Return",
	StmtIf:       "If",
	StmtWhile:    "While",
	StmtBreak:    "Break",
	StmtContinue: "Continue",
	StmtExpr:     "Expr",
}

func (k StatementKind) String() string {
	if int(k) < len(statementKindNames) {
		return statementKindNames[k]
	}
	return fmt.Sprintf("StatementKind(%d)", k)
}

// Statement is the header of a statement node; the payload lives in the
// per-kind arena selected by Kind.
type Statement struct {
	Kind    StatementKind
	Payload PayloadID
}

// StatementData is implemented by every statement payload.
type StatementData interface {
	StatementKind() StatementKind
}

// AssignOp enumerates `=` and the compound assignments.
type AssignOp uint8

const (
	AssignSet AssignOp = iota
	AssignAdd
	AssignSub
	AssignMul
	AssignDiv
	AssignRem
)

var assignOpNames = [...]string{"=", "+=", "-=", "*=", "/=", "%="}

func (op AssignOp) String() string {
	if int(op) < len(assignOpNames) {
		return assignOpNames[op]
	}
	return "?="
}

type LetData struct {
	Mutable    bool
	Ident      NameID
	Annotation TypeID // NoTypeID: без аннотации
	Expr       ExpressionID
}

type AssignData struct {
	Target MBox[Place]
	Op     AssignOp
	Value  ExpressionID
}

type ReturnData struct {
	Value ExpressionID // NoExpressionID: голый return
}

type IfData struct {
	Cond    ExpressionID
	Then    []StatementID
	HasElse bool
	// else if хранится как единственный If-оператор в Else
	Else []StatementID
}

type WhileData struct {
	Cond ExpressionID
	Body []StatementID
}

type BreakData struct{}

type ContinueData struct{}

type ExprStmtData struct {
	Expr ExpressionID
}

func (LetData) StatementKind() StatementKind      { return StmtLet }
func (AssignData) StatementKind() StatementKind   { return StmtAssign }
func (ReturnData) StatementKind() StatementKind   { return StmtReturn }
func (IfData) StatementKind() StatementKind       { return StmtIf }
func (WhileData) StatementKind() StatementKind    { return StmtWhile }
func (BreakData) StatementKind() StatementKind    { return StmtBreak }
func (ContinueData) StatementKind() StatementKind { return StmtContinue }
func (ExprStmtData) StatementKind() StatementKind { return StmtExpr }

// Stmts manages allocation of statements.
type Stmts struct {
	Arena   *Table[Statement]
	Lets    *Arena[LetData]
	Assigns *Arena[AssignData]
	Returns *Arena[ReturnData]
	Ifs     *Arena[IfData]
	Whiles  *Arena[WhileData]
	Exprs   *Arena[ExprStmtData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Stmts{
		Arena:   NewTable[Statement](capHint),
		Lets:    NewArena[LetData](capHint),
		Assigns: NewArena[AssignData](capHint / 2),
		Returns: NewArena[ReturnData](capHint / 4),
		Ifs:     NewArena[IfData](capHint / 4),
		Whiles:  NewArena[WhileData](capHint / 4),
		Exprs:   NewArena[ExprStmtData](capHint / 2),
	}
}

// New allocates data in its payload arena and records the header with span.
func (s *Stmts) New(data StatementData, span source.Span) StatementID {
	payload := NoPayloadID
	switch d := data.(type) {
	case LetData:
		payload = PayloadID(s.Lets.Allocate(d))
	case AssignData:
		payload = PayloadID(s.Assigns.Allocate(d))
	case ReturnData:
		payload = PayloadID(s.Returns.Allocate(d))
	case IfData:
		payload = PayloadID(s.Ifs.Allocate(d))
	case WhileData:
		payload = PayloadID(s.Whiles.Allocate(d))
	case ExprStmtData:
		payload = PayloadID(s.Exprs.Allocate(d))
	case BreakData, ContinueData:
	default:
		panic(fmt.Errorf("unknown statement payload %T", data))
	}
	return StatementID(s.Arena.Push(Statement{Kind: data.StatementKind(), Payload: payload}, span))
}

func (s *Stmts) Get(id StatementID) *Statement {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) Span(id StatementID) source.Span {
	return s.Arena.Span(uint32(id))
}

func (s *Stmts) Let(id StatementID) (*LetData, bool) {
	st := s.Get(id)
	if st.Kind != StmtLet {
		return nil, false
	}
	return s.Lets.Get(uint32(st.Payload)), true
}

func (s *Stmts) Assign(id StatementID) (*AssignData, bool) {
	st := s.Get(id)
	if st.Kind != StmtAssign {
		return nil, false
	}
	return s.Assigns.Get(uint32(st.Payload)), true
}

func (s *Stmts) Return(id StatementID) (*ReturnData, bool) {
	st := s.Get(id)
	if st.Kind != StmtReturn {
		return nil, false
	}
	return s.Returns.Get(uint32(st.Payload)), true
}

func (s *Stmts) If(id StatementID) (*IfData, bool) {
	st := s.Get(id)
	if st.Kind != StmtIf {
		return nil, false
	}
	return s.Ifs.Get(uint32(st.Payload)), true
}

func (s *Stmts) While(id StatementID) (*WhileData, bool) {
	st := s.Get(id)
	if st.Kind != StmtWhile {
		return nil, false
	}
	return s.Whiles.Get(uint32(st.Payload)), true
}

func (s *Stmts) ExprStmt(id StatementID) (*ExprStmtData, bool) {
	st := s.Get(id)
	if st.Kind != StmtExpr {
		return nil, false
	}
	return s.Exprs.Get(uint32(st.Payload)), true
}
