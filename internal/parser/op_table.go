package parser

import (
	"wrought/internal/ast"
	"wrought/internal/token"
)

// Таблица приоритетов для бинарных операторов
// Чем больше число, тем выше приоритет; все левоассоциативные.
const (
	precLogicalOr      = 1  // ||
	precLogicalAnd     = 2  // &&
	precEquality       = 3  // == !=
	precComparison     = 4  // < <= > >=
	precBitwiseOr      = 5  // |
	precBitwiseXor     = 6  // ^
	precBitwiseAnd     = 7  // &
	precShift          = 8  // << >>
	precAdditive       = 9  // + -
	precMultiplicative = 10 // * / %
)

type binaryOp struct {
	prec int
	op   ast.ExprBinaryOp
}

var binaryOps = map[token.Kind]binaryOp{
	token.OrOr:    {precLogicalOr, ast.BinLogicalOr},
	token.AndAnd:  {precLogicalAnd, ast.BinLogicalAnd},
	token.EqEq:    {precEquality, ast.BinEq},
	token.BangEq:  {precEquality, ast.BinNe},
	token.Lt:      {precComparison, ast.BinLt},
	token.LtEq:    {precComparison, ast.BinLe},
	token.Gt:      {precComparison, ast.BinGt},
	token.GtEq:    {precComparison, ast.BinGe},
	token.Pipe:    {precBitwiseOr, ast.BinBitOr},
	token.Caret:   {precBitwiseXor, ast.BinBitXor},
	token.Amp:     {precBitwiseAnd, ast.BinBitAnd},
	token.Shl:     {precShift, ast.BinShl},
	token.Shr:     {precShift, ast.BinShr},
	token.Plus:    {precAdditive, ast.BinAdd},
	token.Minus:   {precAdditive, ast.BinSub},
	token.Star:    {precMultiplicative, ast.BinMul},
	token.Slash:   {precMultiplicative, ast.BinDiv},
	token.Percent: {precMultiplicative, ast.BinRem},
}

// binaryOperator возвращает приоритет и оператор; ok=false если токен не бинарный.
func binaryOperator(kind token.Kind) (binaryOp, bool) {
	op, ok := binaryOps[kind]
	return op, ok
}
