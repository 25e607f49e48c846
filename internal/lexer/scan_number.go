package lexer

import (
	"wrought/internal/diag"
	"wrought/internal/token"
)

// Поддержка: 0, 123, 1_000, 0b..., 0o..., 0x..., 1.0, 1., 1e-3, 1.0e+10.
// Значение не вычисляется: парсер читает Token.Text через strconv.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	// ведущий 0 и база?
	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'b', 'B':
			lx.cursor.Bump()
			return lx.scanDigits(start, func(b byte) bool { return b == '0' || b == '1' })
		case 'o', 'O':
			lx.cursor.Bump()
			return lx.scanDigits(start, func(b byte) bool { return b >= '0' && b <= '7' })
		case 'x', 'X':
			lx.cursor.Bump()
			return lx.scanDigits(start, isHex)
		}
	}

	// десятичная целая часть
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}

	// дробная часть
	if lx.cursor.Eat('.') {
		kind = token.FloatLit
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
	}

	// экспонента
	if lx.cursor.Peek() == 'e' || lx.cursor.Peek() == 'E' {
		kind = token.FloatLit
		lx.cursor.Bump()
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			tok := lx.emit(token.Invalid, start)
			lx.errLex(diag.LexBadNumber, tok.Span, "expected digit after exponent")
			return tok
		}
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
	}

	return lx.emit(kind, start)
}

// scanDigits дочитывает цифры после префикса базы.
func (lx *Lexer) scanDigits(start Mark, digit func(byte) bool) token.Token {
	n := 0
	for {
		b := lx.cursor.Peek()
		if digit(b) {
			n++
		} else if b != '_' {
			break
		}
		lx.cursor.Bump()
	}
	if n == 0 {
		tok := lx.emit(token.Invalid, start)
		lx.errLex(diag.LexBadNumber, tok.Span, "expected digits after base prefix")
		return tok
	}
	return lx.emit(token.IntLit, start)
}
