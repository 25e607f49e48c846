package lexer

import (
	"testing"

	"wrought/internal/source"
)

// helper function to create a file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.wr", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))

	for _, want := range []byte{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Peek(); got != want {
			t.Fatalf("Peek() = %q, want %q", got, want)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("Bump() = %q, want %q", got, want)
		}
	}
	if !cursor.EOF() {
		t.Error("Expected EOF at end")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Error("Peek/Bump at EOF must return 0")
	}
}

func TestMarkSpanReset(t *testing.T) {
	cursor := NewCursor(createFile("hello"))
	cursor.Bump()
	m := cursor.Mark()
	cursor.Bump()
	cursor.Bump()

	sp := cursor.SpanFrom(m)
	if sp.Start != 1 || sp.End != 3 {
		t.Errorf("SpanFrom = %+v, want 1..3", sp)
	}
	cursor.Reset(m)
	if cursor.Off != 1 {
		t.Errorf("Reset: Off = %d, want 1", cursor.Off)
	}
}

func TestPeek2AndEat(t *testing.T) {
	cursor := NewCursor(createFile("ab"))
	b0, b1, ok := cursor.Peek2()
	if !ok || b0 != 'a' || b1 != 'b' {
		t.Fatalf("Peek2 = %q %q %v", b0, b1, ok)
	}
	if cursor.Eat('b') {
		t.Fatal("Eat('b') must not match 'a'")
	}
	if !cursor.Eat('a') {
		t.Fatal("Eat('a') must match")
	}
	if _, _, ok := cursor.Peek2(); ok {
		t.Error("Peek2 with one byte left must report !ok")
	}
}
