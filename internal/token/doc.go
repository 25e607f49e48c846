// Package token defines lexical token kinds for wrought source files.
// Invariants:
//   - Token.Text is the exact source slice covered by Token.Span
//     (identifiers are NFC-normalised, so Text may differ in bytes but
//     not in meaning).
//   - Comments and whitespace never reach the token stream.
//   - Value type names (i32, f64, string, ...) are identifiers.
//     They are recognized by the parser's type production, not the lexer.
package token
