package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"wrought/internal/diag"
	"wrought/internal/source"
)

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("let x = \"unterminated string\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.wr", content)
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	bag.Add(diag.New(
		diag.SevError,
		diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 8, End: 28},
		"Unterminated string literal",
	))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/src/test.wr:1:9"},
		{"Relative path", PathModeRelative, "src/test.wr:1:9"},
		{"Basename only", PathModeBasename, "test.wr:1:9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			out := buf.String()

			if !strings.Contains(out, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, out)
			}
			if !strings.Contains(out, "ERROR LEX1002: Unterminated string literal") {
				t.Errorf("missing header, got:\n%s", out)
			}
		})
	}
}

func TestPrettyCaret(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.wr", []byte("func f() {\n\tlet x = 1 y;\n}\n"))
	bag := diag.NewBag(0)
	// "y" на второй строке: offset 11 + "\tlet x = 1 " (11 байт)
	bag.Add(diag.NewError(diag.SynUnexpectedToken, source.NewSpan(id, 22, 1), "unexpected identifier \"y\""))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	want := "a.wr:2:12: ERROR SYN2001: unexpected identifier \"y\"\n" +
		" 2 |     let x = 1 y;\n" +
		"   |               ^\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrettyEmptySpanCaret(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.wr", []byte("let x\n"))
	bag := diag.NewBag(0)
	// пустой span на конце строки рисуется одной ^
	bag.Add(diag.NewError(diag.SynUnexpectedToken, source.NewSpan(id, 5, 0), "unexpected end of input"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if want := " 1 | let x\n   |      ^\n"; !strings.HasSuffix(buf.String(), want) {
		t.Errorf("got:\n%s\nwant suffix:\n%s", buf.String(), want)
	}
}

func TestPrettyWideRunes(t *testing.T) {
	fs := source.NewFileSet()
	src := "let 名前 = 1 2;"
	id := fs.AddVirtual("w.wr", []byte(src))
	off := uint32(strings.Index(src, "2"))
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.SynUnexpectedToken, source.NewSpan(id, off, 1), "x"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("output:\n%s", buf.String())
	}
	// "let 名前 = 1 " занимает 13 колонок: два иероглифа по две
	if got := strings.Index(lines[2], "^") - strings.Index(lines[2], "|") - 2; got != 13 {
		t.Errorf("caret column = %d, want 13\n%s", got, buf.String())
	}
}

func TestPrettyUnderlineAndNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("n.wr", []byte("let x: Point = 1;\n"))
	d := diag.NewError(diag.FutNotYetSupported, source.NewSpan(id, 7, 5), "named types not yet supported").
		WithNote(source.NewSpan(id, 0, 3), "in this global")
	bag := diag.NewBag(0)
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true})
	out := buf.String()
	if !strings.Contains(out, "       ^~~~~\n") {
		t.Errorf("underline missing:\n%s", out)
	}
	if !strings.Contains(out, "note: n.wr:1:1: in this global") {
		t.Errorf("note missing:\n%s", out)
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("c.wr", []byte("x"))
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.SynCannotParse, source.NewSpan(id, 0, 1), "boom"))

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})
	if strings.Contains(plain.String(), "\x1b[") {
		t.Error("plain output has escape codes")
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Error("colored output has no escape codes")
	}
}

func TestPrettyDropped(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("d.wr", []byte("abc"))
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.NewSpan(id, 0, 1), "one"))
	bag.Add(diag.NewError(diag.LexUnknownChar, source.NewSpan(id, 1, 1), "two"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if !strings.Contains(buf.String(), "1 more diagnostic(s) not shown") {
		t.Errorf("output:\n%s", buf.String())
	}
}

func TestShortLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("s.wr", []byte("a\nbc"))
	d := diag.NewError(diag.SynUnexpectedEOF, source.NewSpan(id, 4, 0), "unexpected end of input")
	if got, want := ShortLine(d, fs, PathModeAuto), "s.wr:2:3: ERROR SYN2002: unexpected end of input"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
