package ast

import (
	"testing"

	"wrought/internal/source"
)

func TestNewMRangeMergeLaw(t *testing.T) {
	tests := []struct {
		name           string
		o1, l1, o2, l2 uint32
	}{
		{"let statement", 0, 3, 14, 1},
		{"same span", 5, 2, 5, 2},
		{"zero-length right", 2, 4, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left := source.NewSpan(0, tt.o1, tt.l1)
			right := source.NewSpan(0, tt.o2, tt.l2)
			want := source.NewSpan(0, tt.o1, tt.o2+tt.l2-tt.o1)

			if got := NewMRange("v", left, right); got.Span != want || got.Value != "v" {
				t.Errorf("NewMRange = %+v, want span %v", got, want)
			}
			boxed := NewMBoxRange(42, left, right)
			if boxed.Span != want || *boxed.Value != 42 {
				t.Errorf("NewMBoxRange = %v %d", boxed.Span, *boxed.Value)
			}
		})
	}
}

func TestMEquality(t *testing.T) {
	sp := source.NewSpan(0, 1, 2)
	if NewM("x", sp) != NewM("x", sp) {
		t.Error("equal value and span must compare equal")
	}
	if NewM("x", sp) == NewM("y", sp) {
		t.Error("different values must differ")
	}
	b := NewMBox("x", sp)
	if b.Unbox() != NewM("x", sp) {
		t.Errorf("Unbox = %+v", b.Unbox())
	}
}

func TestPlace(t *testing.T) {
	sp := source.NewSpan(0, 3, 4)
	p := NewIdentPlace("acc", sp)
	if p.Kind != PlaceIdent || p.Ident.Value != "acc" || p.Span() != sp {
		t.Errorf("place = %+v", p)
	}
}

func TestLookupPrimitive(t *testing.T) {
	for _, name := range []string{"bool", "u8", "u16", "u32", "u64", "i8", "i16", "i32", "i64", "f32", "f64", "string"} {
		p, ok := LookupPrimitive(name)
		if !ok || p.String() != name {
			t.Errorf("LookupPrimitive(%q) = %v, %v", name, p, ok)
		}
	}
	if _, ok := LookupPrimitive("Point"); ok {
		t.Error("named types are not primitives")
	}
}
