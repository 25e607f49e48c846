// Package diag defines the diagnostic model shared by the lexer, the parser
// and the driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity: Info, Warning or Error (severity.go).
//   - Code: compact numeric identifier with a stable string form such as
//     SYN2001 (codes.go).
//   - Message: short human-oriented text.
//   - Primary: the source.Span the finding points at.
//   - Notes: optional secondary spans with messages.
//
// # Producers
//
// Phases either emit through a Reporter (the lexer, which keeps going after
// an error) or return an error value implementing Provider (the parser,
// which stops at the first error). The driver turns both into entries of a
// Bag.
//
// Package diag does no formatting and no IO; rendering lives in
// internal/diagfmt.
package diag
