package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("main.wr", []byte("let a: i32 = 1;"), 0)
	id2 := fs.Add("main.wr", []byte("let b: i32 = 2;"), 0)
	if id1 != 0 || id2 != 1 {
		t.Fatalf("expected ids 0 and 1, got %d and %d", id1, id2)
	}

	latest, ok := fs.GetLatest("main.wr")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %d, %v; want %d, true", latest, ok, id2)
	}
	// старая версия остаётся доступной
	if got := string(fs.Get(id1).Content); got != "let a: i32 = 1;" {
		t.Errorf("first version content = %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Len() = %d, want 2", fs.Len())
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.wr", []byte("a\nb\n"))
	file := fs.Get(id)

	want := []uint32{1, 3}
	if len(file.LineIdx) != len(want) {
		t.Fatalf("LineIdx = %v, want %v", file.LineIdx, want)
	}
	for i := range want {
		if file.LineIdx[i] != want[i] {
			t.Errorf("LineIdx[%d] = %d, want %d", i, file.LineIdx[i], want[i])
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag")
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("r.wr", []byte("func f() {\n  return 1;\n}\n"))

	start, end := fs.Resolve(Span{File: id, Start: 13, End: 19})
	if start != (LineCol{Line: 2, Col: 3}) {
		t.Errorf("start = %+v, want 2:3", start)
	}
	if end != (LineCol{Line: 2, Col: 9}) {
		t.Errorf("end = %+v, want 2:9", end)
	}
	if line := fs.Get(id).GetLine(2); line != "  return 1;" {
		t.Errorf("GetLine(2) = %q", line)
	}
}

func TestFileEndSpanAndText(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.wr", []byte("let x"))
	file := fs.Get(id)

	if sp := file.EndSpan(); sp != (Span{File: id, Start: 5, End: 5}) {
		t.Errorf("EndSpan() = %+v", sp)
	}
	if got := file.Text(Span{File: id, Start: 4, End: 5}); got != "x" {
		t.Errorf("Text() = %q, want %q", got, "x")
	}
	if got := file.Text(Span{File: id + 1, Start: 0, End: 1}); got != "" {
		t.Errorf("Text() for foreign span = %q, want empty", got)
	}
}

func TestLoadNormalizesBOMAndCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.wr")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("let x: i32 = 1;\r\n")...)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	file := fs.Get(id)
	if string(file.Content) != "let x: i32 = 1;\n" {
		t.Errorf("content = %q", file.Content)
	}
	if file.Flags&FileHadBOM == 0 || file.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("flags = %b, want BOM and CRLF bits", file.Flags)
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "missing.wr")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
