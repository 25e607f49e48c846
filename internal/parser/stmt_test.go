package parser

import (
	"testing"

	"wrought/internal/ast"
)

func TestLetStatementSpans(t *testing.T) {
	comp, id := parseStmt(t, "let x: i32 = 5;")
	f := comp.Src.ID

	if got, want := comp.StatementSpan(id), span(f, 0, 15); got != want {
		t.Errorf("statement span = %v, want %v", got, want)
	}
	let, ok := comp.Stmts().Let(id)
	if !ok {
		t.Fatalf("statement kind = %v", comp.Statement(id).Kind)
	}
	if let.Mutable {
		t.Error("let must not be mutable")
	}
	if comp.Name(let.Ident) != "x" || comp.NameSpan(let.Ident) != span(f, 4, 1) {
		t.Errorf("ident = %q at %v", comp.Name(let.Ident), comp.NameSpan(let.Ident))
	}
	if comp.Type(let.Annotation).Primitive != ast.PrimI32 || comp.TypeSpan(let.Annotation) != span(f, 7, 3) {
		t.Errorf("annotation = %v at %v", comp.Type(let.Annotation), comp.TypeSpan(let.Annotation))
	}
	lit, ok := comp.Expr().Literal(let.Expr)
	if !ok || lit.Kind != ast.LitInt || lit.Int != 5 {
		t.Fatalf("value = %+v", lit)
	}
	if comp.Expr().Span(let.Expr) != span(f, 13, 1) {
		t.Errorf("literal span = %v", comp.Expr().Span(let.Expr))
	}
	if c := comp.Counts(); c.Statements != 1 || c.Names != 1 {
		t.Errorf("counts = %+v, want 1 statement and 1 name", c)
	}
}

func TestLetVariants(t *testing.T) {
	tests := []struct {
		src     string
		mutable bool
		typed   bool
	}{
		{"let a = 1;", false, false},
		{"let mut a = 1;", true, false},
		{"let mut a: f64 = 1.5;", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			comp, id := parseStmt(t, tt.src)
			let, ok := comp.Stmts().Let(id)
			if !ok {
				t.Fatal("not a let")
			}
			if let.Mutable != tt.mutable {
				t.Errorf("mutable = %v", let.Mutable)
			}
			if let.Annotation.IsValid() != tt.typed {
				t.Errorf("annotation = %v", let.Annotation)
			}
		})
	}
}

func TestAssignStatement(t *testing.T) {
	tests := []struct {
		src string
		op  ast.AssignOp
	}{
		{"x = 1;", ast.AssignSet},
		{"x += 1;", ast.AssignAdd},
		{"x -= 1;", ast.AssignSub},
		{"x *= 1;", ast.AssignMul},
		{"x /= 1;", ast.AssignDiv},
		{"x %= 1;", ast.AssignRem},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			comp, id := parseStmt(t, tt.src)
			as, ok := comp.Stmts().Assign(id)
			if !ok {
				t.Fatalf("kind = %v", comp.Statement(id).Kind)
			}
			if as.Op != tt.op {
				t.Errorf("op = %v, want %v", as.Op, tt.op)
			}
			place := as.Target.Unbox().Value
			if place.Kind != ast.PlaceIdent || place.Ident.Value != "x" {
				t.Errorf("target = %+v", place)
			}
			if as.Target.Span != span(comp.Src.ID, 0, 1) {
				t.Errorf("target span = %v", as.Target.Span)
			}
			if got := comp.StatementSpan(id); got.Start != 0 || got.End != uint32(len(tt.src)) {
				t.Errorf("span = %v", got)
			}
		})
	}
}

func TestExpressionStatementAfterBacktrack(t *testing.T) {
	comp, id := parseStmt(t, "f(x);")
	es, ok := comp.Stmts().ExprStmt(id)
	if !ok {
		t.Fatalf("kind = %v", comp.Statement(id).Kind)
	}
	call, ok := comp.Expr().Call(es.Expr)
	if !ok || comp.Name(call.Callee) != "f" || len(call.Args) != 1 {
		t.Fatalf("call = %+v", call)
	}
	if comp.StatementSpan(id) != span(comp.Src.ID, 0, 5) {
		t.Errorf("span = %v", comp.StatementSpan(id))
	}
}

// Backtracking from the assignment window must not leave nodes behind.
func TestBacktrackAllocatesNothing(t *testing.T) {
	comp, _ := parseStmt(t, "x;")
	c := comp.Counts()
	if c.Statements != 1 || c.Expressions != 1 || c.Names != 1 {
		t.Errorf("counts = %+v", c)
	}
}

func TestReturnStatement(t *testing.T) {
	comp, id := parseStmt(t, "return;")
	ret, ok := comp.Stmts().Return(id)
	if !ok || ret.Value.IsValid() {
		t.Fatalf("bare return = %+v", ret)
	}

	comp, id = parseStmt(t, "return a + 1;")
	ret, _ = comp.Stmts().Return(id)
	if _, ok := comp.Expr().Binary(ret.Value); !ok {
		t.Fatal("return value is not binary")
	}
	if comp.StatementSpan(id) != span(comp.Src.ID, 0, 13) {
		t.Errorf("span = %v", comp.StatementSpan(id))
	}
}

func TestIfElseChain(t *testing.T) {
	src := "if a { x = 1; } else if b { x = 2; } else { x = 3; y = 4; }"
	comp, id := parseStmt(t, src)
	outer, ok := comp.Stmts().If(id)
	if !ok {
		t.Fatal("not an if")
	}
	if len(outer.Then) != 1 || !outer.HasElse || len(outer.Else) != 1 {
		t.Fatalf("outer = %+v", outer)
	}
	inner, ok := comp.Stmts().If(outer.Else[0])
	if !ok {
		t.Fatal("else-if is not stored as a nested if")
	}
	if !inner.HasElse || len(inner.Else) != 2 {
		t.Fatalf("inner = %+v", inner)
	}
	if got := comp.StatementSpan(id); got.Start != 0 || got.End != uint32(len(src)) {
		t.Errorf("outer span = %v", got)
	}
	if got := comp.StatementSpan(outer.Else[0]); got.Start != 21 || got.End != uint32(len(src)) {
		t.Errorf("inner span = %v", got)
	}
}

func TestIfWithoutElse(t *testing.T) {
	comp, id := parseStmt(t, "if a {}")
	st, _ := comp.Stmts().If(id)
	if st.HasElse || st.Else != nil || st.Then != nil {
		t.Fatalf("if = %+v", st)
	}
}

func TestWhileBreakContinue(t *testing.T) {
	comp, id := parseStmt(t, "while i < 10 { i += 1; if i == 5 { continue; } break; }")
	w, ok := comp.Stmts().While(id)
	if !ok {
		t.Fatal("not a while")
	}
	if len(w.Body) != 3 {
		t.Fatalf("body len = %d", len(w.Body))
	}
	if k := comp.Statement(w.Body[2]).Kind; k != ast.StmtBreak {
		t.Errorf("last statement kind = %v", k)
	}
	inner, _ := comp.Stmts().If(w.Body[1])
	if k := comp.Statement(inner.Then[0]).Kind; k != ast.StmtContinue {
		t.Errorf("nested statement kind = %v", k)
	}
	if _, ok := comp.Expr().Binary(w.Cond); !ok {
		t.Error("condition is not binary")
	}
}
