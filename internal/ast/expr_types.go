package ast

import "fmt"

// ExprKind enumerates the different kinds of expressions.
type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprLit
	ExprCall
	ExprUnary
	ExprBinary
	ExprGroup
)

var exprKindNames = [...]string{
	ExprIdent:  "Identifier",
	ExprLit:    "Literal",
	ExprCall:   "Call",
	ExprUnary:  "Unary",
	ExprBinary: "Binary",
	ExprGroup:  "Group",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return fmt.Sprintf("ExprKind(%d)", k)
}

// Expr represents an expression header; the payload lives in the per-kind
// arena selected by Kind.
type Expr struct {
	Kind    ExprKind
	Payload PayloadID
}

// ExprBinaryOp enumerates binary operator kinds.
type ExprBinaryOp uint8

const (
	// Арифметические
	BinAdd ExprBinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinRem

	// Битовые
	BinBitAnd
	BinBitOr
	BinBitXor
	BinShl
	BinShr

	// Сравнения
	BinEq
	BinNe
	BinLt
	BinLe
	BinGt
	BinGe

	// Логические
	BinLogicalAnd
	BinLogicalOr
)

var binaryOpNames = [...]string{
	BinAdd: "+", BinSub: "-", BinMul: "*", BinDiv: "/", BinRem: "%",
	BinBitAnd: "&", BinBitOr: "|", BinBitXor: "^", BinShl: "<<", BinShr: ">>",
	BinEq: "==", BinNe: "!=", BinLt: "<", BinLe: "<=", BinGt: ">", BinGe: ">=",
	BinLogicalAnd: "&&", BinLogicalOr: "||",
}

func (op ExprBinaryOp) String() string {
	if int(op) < len(binaryOpNames) {
		return binaryOpNames[op]
	}
	return "?"
}

// ExprUnaryOp enumerates unary operator kinds.
type ExprUnaryOp uint8

const (
	UnaryNeg ExprUnaryOp = iota // -x
	UnaryNot                    // !x
)

func (op ExprUnaryOp) String() string {
	switch op {
	case UnaryNeg:
		return "-"
	case UnaryNot:
		return "!"
	}
	return "?"
}

// LiteralKind enumerates literal families.
type LiteralKind uint8

const (
	LitInt LiteralKind = iota
	LitFloat
	LitString
	LitBool
)

func (k LiteralKind) String() string {
	switch k {
	case LitInt:
		return "int"
	case LitFloat:
		return "float"
	case LitString:
		return "string"
	case LitBool:
		return "bool"
	}
	return "?"
}

type IdentData struct {
	Ident NameID
}

// LiteralData holds a decoded literal; only the field matching Kind is set.
type LiteralData struct {
	Kind  LiteralKind
	Int   uint64
	Float float64
	Str   string
	Bool  bool
}

type CallData struct {
	Callee NameID
	Args   []ExpressionID
}

type UnaryData struct {
	Op      ExprUnaryOp
	Operand ExpressionID
}

type BinaryData struct {
	Op    ExprBinaryOp
	Left  ExpressionID
	Right ExpressionID
}

type GroupData struct {
	Inner ExpressionID
}
