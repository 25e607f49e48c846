package ast

import (
	"fmt"

	"fortio.org/safecast"

	"wrought/internal/source"
)

// Arena is an append-only slab of T addressed by 0-based indices.
type Arena[T any] struct {
	data []T
}

// NewArena creates an arena whose storage is preallocated to capHint.
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{
		data: make([]T, 0, capHint),
	}
}

// Allocate appends value and returns its index (0-based).
func (a *Arena[T]) Allocate(value T) uint32 {
	idx, err := safecast.Conv[uint32](len(a.data))
	if err != nil || idx == ^uint32(0) {
		panic(fmt.Errorf("arena overflow: %d entries", len(a.data)))
	}
	a.data = append(a.data, value)
	return idx
}

// Get returns a pointer to the entry at index. Out-of-range indices panic.
func (a *Arena[T]) Get(index uint32) *T {
	if int(index) >= len(a.data) {
		panic(fmt.Errorf("arena index %d out of range (len %d)", index, len(a.data)))
	}
	return &a.data[index]
}

// READONLY
func (a *Arena[T]) Slice() []T {
	return a.data
}

func (a *Arena[T]) Len() uint32 {
	return uint32(len(a.data))
}

// Table is an Arena with a span recorded for every entry.
type Table[T any] struct {
	Arena[T]
	spans []source.Span
}

func NewTable[T any](capHint uint) *Table[T] {
	return &Table[T]{
		Arena: Arena[T]{data: make([]T, 0, capHint)},
		spans: make([]source.Span, 0, capHint),
	}
}

// Push allocates value with its span and returns the index.
func (t *Table[T]) Push(value T, sp source.Span) uint32 {
	idx := t.Allocate(value)
	t.spans = append(t.spans, sp)
	return idx
}

// Span returns the span recorded for index. Out-of-range indices panic.
func (t *Table[T]) Span(index uint32) source.Span {
	if int(index) >= len(t.spans) {
		panic(fmt.Errorf("span index %d out of range (len %d)", index, len(t.spans)))
	}
	return t.spans[index]
}
