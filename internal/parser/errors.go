package parser

import (
	"fmt"

	"wrought/internal/diag"
	"wrought/internal/source"
	"wrought/internal/token"
)

// ErrorKind classifies parse failures.
type ErrorKind uint8

const (
	// KindBase: a region could not be parsed at all.
	KindBase ErrorKind = iota
	KindUnexpectedToken
	KindEndOfInput
	KindNotYetSupported
	KindNestingTooDeep
)

func (k ErrorKind) String() string {
	switch k {
	case KindBase:
		return "base"
	case KindUnexpectedToken:
		return "unexpected token"
	case KindEndOfInput:
		return "end of input"
	case KindNotYetSupported:
		return "not yet supported"
	case KindNestingTooDeep:
		return "nesting too deep"
	}
	return "unknown"
}

// Error is the single failure a parse can produce.
type Error struct {
	Kind ErrorKind
	// Description says what was expected (KindUnexpectedToken) or holds
	// the limit text (KindNestingTooDeep).
	Description string
	// Feature names the unsupported construct (KindNotYetSupported).
	Feature string
	// Token is the offending token; nil at end of input.
	Token  *token.Token
	Span   source.Span
	Source *source.File
}

// Sentinels for errors.Is; only Kind is compared.
var (
	ErrBase            = &Error{Kind: KindBase}
	ErrUnexpectedToken = &Error{Kind: KindUnexpectedToken}
	ErrEndOfInput      = &Error{Kind: KindEndOfInput}
	ErrNotYetSupported = &Error{Kind: KindNotYetSupported}
	ErrNestingTooDeep  = &Error{Kind: KindNestingTooDeep}
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindBase:
		return "failed to parse: unable to parse this code"
	case KindUnexpectedToken:
		if e.Token == nil {
			return fmt.Sprintf("unexpected end of input, expected %s", e.Description)
		}
		return fmt.Sprintf("unexpected %s, expected %s", e.Token.Describe(), e.Description)
	case KindEndOfInput:
		return "unexpected end of input"
	case KindNotYetSupported:
		return fmt.Sprintf("%s not yet supported", e.Feature)
	case KindNestingTooDeep:
		return "nesting too deep: " + e.Description
	}
	return "parse error"
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Diagnostic implements diag.Provider.
func (e *Error) Diagnostic() diag.Diagnostic {
	code := diag.SynCannotParse
	switch e.Kind {
	case KindUnexpectedToken:
		code = diag.SynUnexpectedToken
	case KindEndOfInput:
		code = diag.SynUnexpectedEOF
	case KindNotYetSupported:
		code = diag.FutNotYetSupported
	case KindNestingTooDeep:
		code = diag.SynNestingTooDeep
	}
	d := diag.NewError(code, e.Span, e.Error())
	if e.Kind == KindBase {
		d = d.WithNote(e.Span, "unable to parse this code")
	}
	return d
}

func unexpectedToken(src *source.File, description string, tok *token.Token) *Error {
	sp := src.EndSpan()
	if tok != nil {
		sp = tok.Span
	}
	return &Error{Kind: KindUnexpectedToken, Description: description, Token: tok, Span: sp, Source: src}
}

func notYetSupported(src *source.File, feature string, tok *token.Token) *Error {
	sp := src.EndSpan()
	if tok != nil {
		sp = tok.Span
	}
	return &Error{Kind: KindNotYetSupported, Feature: feature, Token: tok, Span: sp, Source: src}
}

func baseError(src *source.File, tok token.Token) *Error {
	return &Error{Kind: KindBase, Token: &tok, Span: tok.Span, Source: src}
}
