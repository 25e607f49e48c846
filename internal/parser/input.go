package parser

import (
	"wrought/internal/source"
	"wrought/internal/token"
)

// Input is a cursor over an immutable token slice. The slice does not
// include an EOF token; running off the end yields EndOfInput errors.
type Input struct {
	src    *source.File
	tokens []token.Token
	index  int
}

// Checkpoint is a saved cursor position. Restoring it rewinds the cursor
// only; nodes allocated in between stay in the component.
type Checkpoint struct {
	index int
}

func NewInput(src *source.File, tokens []token.Token) *Input {
	return &Input{src: src, tokens: tokens}
}

func (in *Input) Source() *source.File {
	return in.src
}

// Done reports whether every token has been consumed.
func (in *Input) Done() bool {
	return in.index >= len(in.tokens)
}

// Peek returns the next token without consuming it.
func (in *Input) Peek() (token.Token, error) {
	if in.Done() {
		return token.Token{}, in.EndOfInput()
	}
	return in.tokens[in.index], nil
}

// Next consumes and returns the next token.
func (in *Input) Next() (token.Token, error) {
	if in.Done() {
		return token.Token{}, in.EndOfInput()
	}
	tok := in.tokens[in.index]
	in.index++
	return tok, nil
}

// AssertNext consumes the next token whether or not it has the expected
// kind. On a mismatch the error carries the consumed token.
func (in *Input) AssertNext(kind token.Kind, description string) (source.Span, error) {
	tok, err := in.assertNext(kind, description)
	return tok.Span, err
}

func (in *Input) assertNext(kind token.Kind, description string) (token.Token, error) {
	tok, err := in.Next()
	if err != nil {
		return tok, err
	}
	if tok.Kind != kind {
		return tok, unexpectedToken(in.src, description, &tok)
	}
	return tok, nil
}

// NextIf consumes the next token only if it has the given kind.
func (in *Input) NextIf(kind token.Kind) (source.Span, bool) {
	if in.Done() || in.tokens[in.index].Kind != kind {
		return source.Span{}, false
	}
	sp := in.tokens[in.index].Span
	in.index++
	return sp, true
}

func (in *Input) Checkpoint() Checkpoint {
	return Checkpoint{index: in.index}
}

func (in *Input) Restore(cp Checkpoint) {
	in.index = cp.index
}

// Has reports whether at least n tokens remain.
func (in *Input) Has(n int) bool {
	return in.index+n <= len(in.tokens)
}

// SliceNext consumes exactly n tokens, or none when fewer remain.
func (in *Input) SliceNext(n int) ([]token.Token, error) {
	if !in.Has(n) {
		return nil, in.EndOfInput()
	}
	win := in.tokens[in.index : in.index+n : in.index+n]
	in.index += n
	return win, nil
}

// UnexpectedToken builds an error anchored at the next token, or at end of
// input when none is left.
func (in *Input) UnexpectedToken(description string) *Error {
	if in.Done() {
		return unexpectedToken(in.src, description, nil)
	}
	tok := in.tokens[in.index]
	return unexpectedToken(in.src, description, &tok)
}

// Unsupported builds a NotYetSupported error anchored at the next token.
func (in *Input) Unsupported(feature string) *Error {
	if in.Done() {
		return notYetSupported(in.src, feature, nil)
	}
	tok := in.tokens[in.index]
	return notYetSupported(in.src, feature, &tok)
}

// EndOfInput builds an error anchored at the end of the file.
func (in *Input) EndOfInput() *Error {
	return &Error{Kind: KindEndOfInput, Span: in.src.EndSpan(), Source: in.src}
}
