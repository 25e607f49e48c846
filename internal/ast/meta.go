package ast

import "wrought/internal/source"

// M attaches a source span to a value.
type M[T any] struct {
	Span  source.Span
	Value T
}

// NewM wraps value with span.
func NewM[T any](value T, span source.Span) M[T] {
	return M[T]{Span: span, Value: value}
}

// NewMRange wraps value with the span running from the start of left to
// the end of right.
func NewMRange[T any](value T, left, right source.Span) M[T] {
	return M[T]{Span: left.To(right), Value: value}
}

// MBox is M with the value held by pointer, for recursive shapes.
type MBox[T any] struct {
	Span  source.Span
	Value *T
}

func NewMBox[T any](value T, span source.Span) MBox[T] {
	return MBox[T]{Span: span, Value: &value}
}

func NewMBoxRange[T any](value T, left, right source.Span) MBox[T] {
	return MBox[T]{Span: left.To(right), Value: &value}
}

// Unbox copies the boxed value into an M.
func (m MBox[T]) Unbox() M[T] {
	var zero T
	if m.Value == nil {
		return M[T]{Span: m.Span, Value: zero}
	}
	return M[T]{Span: m.Span, Value: *m.Value}
}
