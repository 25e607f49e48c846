package lexer

import (
	"wrought/internal/diag"
	"wrought/internal/token"
)

var compoundAssign = map[byte]token.Kind{
	'+': token.PlusAssign,
	'-': token.MinusAssign,
	'*': token.StarAssign,
	'/': token.SlashAssign,
	'%': token.PercentAssign,
}

var singleOps = map[byte]token.Kind{
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'%': token.Percent,
	'=': token.Assign,
	'!': token.Bang,
	'<': token.Lt,
	'>': token.Gt,
	'&': token.Amp,
	'|': token.Pipe,
	'^': token.Caret,
	':': token.Colon,
	';': token.Semicolon,
	',': token.Comma,
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
}

// Жадность: сначала 2-символьные, затем 1-символьные.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	switch {
	case lx.try2('-', '>'):
		return lx.emit(token.Arrow, start)
	case lx.try2('&', '&'):
		return lx.emit(token.AndAnd, start)
	case lx.try2('|', '|'):
		return lx.emit(token.OrOr, start)
	case lx.try2('=', '='):
		return lx.emit(token.EqEq, start)
	case lx.try2('!', '='):
		return lx.emit(token.BangEq, start)
	case lx.try2('<', '='):
		return lx.emit(token.LtEq, start)
	case lx.try2('>', '='):
		return lx.emit(token.GtEq, start)
	case lx.try2('<', '<'):
		return lx.emit(token.Shl, start)
	case lx.try2('>', '>'):
		return lx.emit(token.Shr, start)
	}
	if b0, b1, ok := lx.cursor.Peek2(); ok && b1 == '=' {
		if k, ok := compoundAssign[b0]; ok {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.emit(k, start)
		}
	}

	ch := lx.cursor.Peek()
	if k, ok := singleOps[ch]; ok {
		lx.cursor.Bump()
		return lx.emit(k, start)
	}

	// неизвестный символ: съедаем руну целиком, чтобы не резать UTF-8
	lx.bumpRune()
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnknownChar, tok.Span, "unknown character")
	return tok
}
