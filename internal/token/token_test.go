package token_test

import (
	"testing"

	"wrought/internal/source"
	"wrought/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{token.IntLit, token.FloatLit, token.StringLit, token.KwTrue, token.KwFalse}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwLet, token.Plus, token.LParen}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		in   string
		want token.Kind
		ok   bool
	}{
		{"func", token.KwFunc, true},
		{"export", token.KwExport, true},
		{"resource", token.KwResource, true},
		{"Func", token.Invalid, false},
		{"i32", token.Invalid, false},
	}
	for _, tt := range tests {
		got, ok := token.LookupKeyword(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("LookupKeyword(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
		if ok && !tok(got).IsKeyword() {
			t.Errorf("%v must be a keyword", got)
		}
	}
}

func TestKindPredicates(t *testing.T) {
	for _, k := range []token.Kind{token.Assign, token.PlusAssign, token.PercentAssign} {
		if !k.IsAssignOp() {
			t.Errorf("%v should be an assignment operator", k)
		}
	}
	if token.EqEq.IsAssignOp() {
		t.Errorf("== is not an assignment operator")
	}
	for _, k := range []token.Kind{token.KwType, token.KwEnum, token.KwRecord, token.KwVariant, token.KwResource} {
		if !k.IsReservedDecl() {
			t.Errorf("%v should be reserved", k)
		}
	}
	if token.KwFunc.IsReservedDecl() {
		t.Errorf("func is not reserved")
	}
}

func TestDescribe(t *testing.T) {
	cases := map[string]token.Token{
		`identifier "x"`:      {Kind: token.Ident, Text: "x"},
		`integer literal "5"`: {Kind: token.IntLit, Text: "5"},
		`'->'`:                {Kind: token.Arrow, Text: "->"},
		`'while'`:             {Kind: token.KwWhile, Text: "while"},
	}
	for want, tk := range cases {
		if got := tk.Describe(); got != want {
			t.Errorf("Describe() = %s, want %s", got, want)
		}
	}
}
