package parser

import (
	"errors"
	"strings"
	"testing"

	"wrought/internal/diag"
	"wrought/internal/token"
)

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		kind    ErrorKind
		tokText string // "" means anchored at end of input
		msg     string
	}{
		{"missing semicolon", "let x: i32 = 5 let", KindUnexpectedToken, "let", "unexpected 'let', expected ';' after global"},
		{"missing brace", "func f() { return 1;", KindEndOfInput, "", "unexpected end of input"},
		{"missing paren", "func f(a: i32 {}", KindUnexpectedToken, "{", "unexpected '{', expected ',' or ')'"},
		{"missing type", "let x = 1;", KindUnexpectedToken, "=", "unexpected '=', expected ':' and a type after global name"},
		{"bad expression", "func f() { return ); }", KindUnexpectedToken, ")", "unexpected ')', expected an expression"},
		{"named type", "let x: Point = 1;", KindNotYetSupported, "Point", "named types not yet supported"},
		{"type decl", "type T = i32;", KindNotYetSupported, "type", "'type' declarations not yet supported"},
		{"exported enum", "export enum E {}", KindNotYetSupported, "enum", "exported 'enum' declarations not yet supported"},
		{"bad export", "export import x: func();", KindUnexpectedToken, "import", "unexpected 'import', expected 'let' or 'func' after 'export'"},
		{"garbage item", "42;", KindBase, "42", "failed to parse: unable to parse this code"},
		{"unclosed call", "func f() { g(1, 2 }", KindUnexpectedToken, "}", "unexpected '}', expected ',' or ')' in call arguments"},
		{"export at end", "export", KindEndOfInput, "", "unexpected end of input"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mod, err := parseSource(t, tt.src)
			if mod != nil {
				t.Fatal("failed parse must not return a module")
			}
			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("err = %T %v", err, err)
			}
			if perr.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", perr.Kind, tt.kind)
			}
			if tt.tokText == "" {
				if perr.Token != nil {
					t.Errorf("expected end-of-input anchor, got %v", perr.Token)
				}
				if perr.Span != perr.Source.EndSpan() {
					t.Errorf("span = %v", perr.Span)
				}
			} else {
				if perr.Token == nil || perr.Token.Text != tt.tokText {
					t.Fatalf("token = %v, want %q", perr.Token, tt.tokText)
				}
				if perr.Span != perr.Token.Span {
					t.Errorf("span %v differs from token span %v", perr.Span, perr.Token.Span)
				}
			}
			if !strings.HasPrefix(err.Error(), tt.msg) {
				t.Errorf("message = %q, want prefix %q", err.Error(), tt.msg)
			}
		})
	}
}

func TestNestingLimit(t *testing.T) {
	deep := strings.Repeat("(", 40) + "1" + strings.Repeat(")", 40)
	file, toks := lexSource(t, "func f() { return "+deep+"; }")

	if _, err := Parse(t.Context(), file, toks, Options{MaxDepth: 200}); err != nil {
		t.Fatalf("depth 200: %v", err)
	}
	_, err := Parse(t.Context(), file, toks, Options{MaxDepth: 16})
	if !errors.Is(err, ErrNestingTooDeep) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(err.Error(), "more than 16") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestNestedBlocksHitLimit(t *testing.T) {
	body := strings.Repeat("if a { ", 10) + strings.Repeat("} ", 10)
	file, toks := lexSource(t, "func f() { "+body+"}")
	if _, err := Parse(t.Context(), file, toks, Options{MaxDepth: 5}); !errors.Is(err, ErrNestingTooDeep) {
		t.Fatalf("err = %v", err)
	}
}

func TestErrorsIsByKind(t *testing.T) {
	err := error(&Error{Kind: KindUnexpectedToken, Description: "x"})
	if !errors.Is(err, ErrUnexpectedToken) {
		t.Error("UnexpectedToken must match its sentinel")
	}
	if errors.Is(err, ErrEndOfInput) {
		t.Error("kinds must not cross-match")
	}
}

func TestErrorDiagnostic(t *testing.T) {
	tests := []struct {
		src   string
		code  diag.Code
		notes int
	}{
		{"let x: i32 = 5 let", diag.SynUnexpectedToken, 0},
		{"func f() {", diag.SynUnexpectedEOF, 0},
		{"let x: Point = 1;", diag.FutNotYetSupported, 0},
		{"42;", diag.SynCannotParse, 1},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := parseSource(t, tt.src)
			var p diag.Provider
			if !errors.As(err, &p) {
				t.Fatalf("%T does not provide a diagnostic", err)
			}
			d := p.Diagnostic()
			if d.Code != tt.code || d.Severity != diag.SevError {
				t.Errorf("diagnostic = %v %v", d.Severity, d.Code)
			}
			if len(d.Notes) != tt.notes {
				t.Errorf("notes = %d, want %d", len(d.Notes), tt.notes)
			}
			if d.Message != err.Error() {
				t.Errorf("message = %q", d.Message)
			}
		})
	}
}

func TestTokenDescriptionInMessage(t *testing.T) {
	_, err := parseSource(t, "let x: i32 = 5 y")
	if err == nil {
		t.Fatal("expected error")
	}
	want := `unexpected identifier "y", expected ';' after global`
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
	var perr *Error
	errors.As(err, &perr)
	if perr.Token.Kind != token.Ident {
		t.Errorf("token kind = %v", perr.Token.Kind)
	}
}
