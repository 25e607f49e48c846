package diagfmt

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"wrought/internal/ast"
	"wrought/internal/lexer"
	"wrought/internal/parser"
	"wrought/internal/source"
)

func parseModule(t *testing.T, src string) (*ast.Module, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("m.wr", []byte(src)))
	mod, err := parser.Parse(context.Background(), file, lexer.Tokenize(file, lexer.Options{}), parser.Options{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return mod, fs
}

const treeSource = "import p: func(v: i32);\nfunc main() {\n\tlet mut x = -1;\n\tif x < 0 { p(x); }\n}\n"

func TestFormatASTTree(t *testing.T) {
	mod, fs := parseModule(t, treeSource)
	var buf bytes.Buffer
	if err := FormatASTTree(&buf, mod, fs); err != nil {
		t.Fatal(err)
	}
	want := `Module m.wr @1:1-6:1
├─ Import p {type=func(v: i32)} @1:1-1:24
└─ Function main {signature=()} @2:1-5:2
   ├─ Let x {mutable=true} @3:2-3:17
   │  └─ Unary {op=-} @3:14-3:16
   │     └─ Literal {kind=int, value=1} @3:15-3:16
   └─ If @4:2-4:20
      ├─ Binary {op=<} @4:5-4:10
      │  ├─ Identifier x @4:5-4:6
      │  └─ Literal {kind=int, value=0} @4:9-4:10
      └─ Then @4:13-4:18
         └─ Expr @4:13-4:18
            └─ Call p @4:13-4:17
               └─ Identifier x @4:15-4:16
`
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestFormatASTJSONAndYAMLAgree(t *testing.T) {
	mod, fs := parseModule(t, treeSource)

	var jbuf, ybuf bytes.Buffer
	if err := FormatAST(&jbuf, mod, fs, ASTFormatJSON); err != nil {
		t.Fatal(err)
	}
	if err := FormatAST(&ybuf, mod, fs, ASTFormatYAML); err != nil {
		t.Fatal(err)
	}

	var fromJSON, fromYAML ASTNode
	if err := json.Unmarshal(jbuf.Bytes(), &fromJSON); err != nil {
		t.Fatal(err)
	}
	if err := yaml.Unmarshal(ybuf.Bytes(), &fromYAML); err != nil {
		t.Fatal(err)
	}
	if fromJSON.Node != "Module" || len(fromJSON.Children) != 2 {
		t.Fatalf("json root = %+v", fromJSON)
	}
	if fromYAML.Children[1].Name != "main" || fromYAML.Children[1].Children[0].Fields["mutable"] != "true" {
		t.Errorf("yaml function = %+v", fromYAML.Children[1])
	}
	if !strings.Contains(ybuf.String(), "node: Module") {
		t.Errorf("yaml output:\n%s", ybuf.String())
	}
}

func TestFormatASTUnknown(t *testing.T) {
	mod, fs := parseModule(t, "")
	if err := FormatAST(&bytes.Buffer{}, mod, fs, "xml"); err == nil {
		t.Fatal("expected error")
	}
}
