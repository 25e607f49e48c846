package lexer_test

import (
	"strings"
	"testing"

	"wrought/internal/diag"
	"wrought/internal/lexer"
	"wrought/internal/source"
	"wrought/internal/token"
)

// tokenize лексит строку и собирает диагностики в Bag
func tokenize(t *testing.T, input string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.wr", []byte(input)))
	bag := diag.NewBag(0)
	toks := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return toks, bag
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tk := range toks {
		out[i] = tk.Kind
	}
	return out
}

func expectKinds(t *testing.T, input string, want ...token.Kind) []token.Token {
	t.Helper()
	toks, bag := tokenize(t, input)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics for %q: %+v", input, bag.Items())
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("%q: got kinds %v, want %v", input, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q: token %d is %v, want %v (all: %v)", input, i, got[i], want[i], got)
		}
	}
	return toks
}

func TestLetStatement(t *testing.T) {
	toks := expectKinds(t, "let x: i32 = 5;",
		token.KwLet, token.Ident, token.Colon, token.Ident, token.Assign, token.IntLit, token.Semicolon)

	wantSpans := [][2]uint32{{0, 3}, {4, 5}, {5, 6}, {7, 10}, {11, 12}, {13, 14}, {14, 15}}
	for i, ws := range wantSpans {
		if toks[i].Span.Start != ws[0] || toks[i].Span.End != ws[1] {
			t.Errorf("token %d span = %v, want %v", i, toks[i].Span, ws)
		}
	}
	if toks[3].Text != "i32" {
		t.Errorf("type token text = %q", toks[3].Text)
	}
}

func TestFunctionHeader(t *testing.T) {
	expectKinds(t, "export func add(a: i32, b: i32) -> i32 { return a + b; }",
		token.KwExport, token.KwFunc, token.Ident, token.LParen,
		token.Ident, token.Colon, token.Ident, token.Comma,
		token.Ident, token.Colon, token.Ident, token.RParen,
		token.Arrow, token.Ident, token.LBrace,
		token.KwReturn, token.Ident, token.Plus, token.Ident, token.Semicolon,
		token.RBrace)
}

func TestOperators(t *testing.T) {
	tests := []struct {
		in   string
		want token.Kind
	}{
		{"==", token.EqEq}, {"!=", token.BangEq}, {"<=", token.LtEq}, {">=", token.GtEq},
		{"<<", token.Shl}, {">>", token.Shr}, {"&&", token.AndAnd}, {"||", token.OrOr},
		{"+=", token.PlusAssign}, {"-=", token.MinusAssign}, {"*=", token.StarAssign},
		{"/=", token.SlashAssign}, {"%=", token.PercentAssign}, {"->", token.Arrow},
		{"^", token.Caret}, {"&", token.Amp}, {"|", token.Pipe}, {"!", token.Bang},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			expectKinds(t, tt.in, tt.want)
		})
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		in   string
		want token.Kind
	}{
		{"0", token.IntLit},
		{"1_000", token.IntLit},
		{"0xFF", token.IntLit},
		{"0b1010", token.IntLit},
		{"0o17", token.IntLit},
		{"1.5", token.FloatLit},
		{"2.", token.FloatLit},
		{"1e10", token.FloatLit},
		{"3.0e-2", token.FloatLit},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			toks := expectKinds(t, tt.in, tt.want)
			if toks[0].Text != tt.in {
				t.Errorf("Text = %q, want %q", toks[0].Text, tt.in)
			}
		})
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	src := "// line\nlet /* block /* nested */ still */ x = 1; // tail"
	expectKinds(t, src, token.KwLet, token.Ident, token.Assign, token.IntLit, token.Semicolon)
}

func TestStringLiteral(t *testing.T) {
	toks := expectKinds(t, `"a \"quoted\" word"`, token.StringLit)
	if toks[0].Text != `"a \"quoted\" word"` {
		t.Errorf("Text = %s", toks[0].Text)
	}
}

func TestReservedKeywords(t *testing.T) {
	expectKinds(t, "type enum record variant resource",
		token.KwType, token.KwEnum, token.KwRecord, token.KwVariant, token.KwResource)
}

func TestIdentifierNFC(t *testing.T) {
	// "é" в NFD (e + combining acute) и в NFC дают одно имя
	toks := expectKinds(t, "cafe\u0301 caf\u00e9", token.Ident, token.Ident)
	if toks[0].Text != toks[1].Text {
		t.Errorf("NFD %q and NFC %q identifiers differ", toks[0].Text, toks[1].Text)
	}
	if toks[0].Span.Len() != 6 {
		t.Errorf("span must cover source bytes, got len %d", toks[0].Span.Len())
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code diag.Code
	}{
		{"unknown char", "let $ = 1;", diag.LexUnknownChar},
		{"unterminated string", `"abc`, diag.LexUnterminatedString},
		{"newline in string", "\"ab\ncd\"", diag.LexUnterminatedString},
		{"unterminated comment", "/* open", diag.LexUnterminatedBlockComment},
		{"bad exponent", "1e+", diag.LexBadNumber},
		{"empty hex", "0x", diag.LexBadNumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bag := tokenize(t, tt.in)
			if !bag.HasErrors() {
				t.Fatalf("expected an error for %q", tt.in)
			}
			if got := bag.Items()[0].Code; got != tt.code {
				t.Errorf("code = %s, want %s", got.ID(), tt.code.ID())
			}
		})
	}
}

func TestNilReporterKeepsLexing(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("x.wr", []byte("a € b")))
	toks := lexer.Tokenize(file, lexer.Options{})
	got := kinds(toks)
	want := []token.Kind{token.Ident, token.Invalid, token.Ident}
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	if toks[1].Text != "€" {
		t.Errorf("invalid token must cover the whole rune, got %q", toks[1].Text)
	}
}

func TestNextAfterEOF(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("x.wr", []byte("  ")))
	lx := lexer.New(file, lexer.Options{})
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("call %d: got %v, want EOF", i, tok.Kind)
		}
	}
}

func TestLargeInput(t *testing.T) {
	src := strings.Repeat("x = x + 1;\n", 1000)
	toks, bag := tokenize(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %d", bag.Len())
	}
	if len(toks) != 6000 {
		t.Errorf("len(toks) = %d, want 6000", len(toks))
	}
}
