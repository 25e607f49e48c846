package ast

import "wrought/internal/source"

// Module is the result of parsing one source unit.
type Module struct {
	Component *Component
	// Span covers the whole file.
	Span source.Span
}
