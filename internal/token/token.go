package token

import (
	"fmt"

	"wrought/internal/source"
)

// Token represents a single significant source token with its location.
type Token struct {
	Kind Kind        `msgpack:"k"`
	Span source.Span `msgpack:"s"`
	Text string      `msgpack:"t"`
}

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwImport && t.Kind <= KwResource
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Describe renders the token for diagnostics: keywords and punctuation as
// their spelling, everything else as kind plus text.
func (t Token) Describe() string {
	switch t.Kind {
	case Ident, IntLit, FloatLit, StringLit, Invalid:
		return fmt.Sprintf("%s %q", t.Kind, t.Text)
	default:
		return "'" + t.Kind.String() + "'"
	}
}
