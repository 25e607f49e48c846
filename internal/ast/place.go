package ast

import "wrought/internal/source"

// PlaceKind enumerates the shapes of an assignable location.
type PlaceKind uint8

const (
	// PlaceIdent is a plain variable: `x`.
	PlaceIdent PlaceKind = iota
)

// Place names a memory location that can be read, assigned or operated on.
// It refers to storage, it never owns any.
type Place struct {
	Kind  PlaceKind
	Ident M[string]
}

// NewIdentPlace builds a PlaceIdent for name at span.
func NewIdentPlace(name string, span source.Span) Place {
	return Place{Kind: PlaceIdent, Ident: NewM(name, span)}
}

// Span covers the whole place expression.
func (p Place) Span() source.Span {
	return p.Ident.Span
}
