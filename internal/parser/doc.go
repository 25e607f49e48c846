// Package parser turns the token stream of one wrought source unit into an
// ast.Component.
//
// Parsing is recursive descent over an Input cursor. Each production is a
// method returning a handle or an error; the first error aborts the parse
// and is returned as a *Error. Ambiguous constructs are decided by peeking
// at a fixed token window under a Checkpoint and restoring it, before any
// node is allocated.
package parser
