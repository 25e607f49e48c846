package diag

import (
	"wrought/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// Provider is implemented by error values that know how to describe
// themselves as a Diagnostic. Rendering layers accept it instead of
// concrete error types.
type Provider interface {
	Diagnostic() Diagnostic
}
