package diagfmt

import (
	"fmt"
	"strconv"

	"wrought/internal/ast"
	"wrought/internal/source"
)

// ASTNode is the printable form of one syntax node. The tree, JSON and
// YAML dumps are all rendered from it.
type ASTNode struct {
	Node     string            `json:"node" yaml:"node"`
	Span     SpanOutput        `json:"span" yaml:"span"`
	Name     string            `json:"name,omitempty" yaml:"name,omitempty"`
	Fields   map[string]string `json:"fields,omitempty" yaml:"fields,omitempty"`
	Children []*ASTNode        `json:"children,omitempty" yaml:"children,omitempty"`
}

// SpanOutput is a span with resolved positions.
type SpanOutput struct {
	Start     uint32 `json:"start" yaml:"start"`
	End       uint32 `json:"end" yaml:"end"`
	StartLine uint32 `json:"start_line" yaml:"start_line"`
	StartCol  uint32 `json:"start_col" yaml:"start_col"`
	EndLine   uint32 `json:"end_line" yaml:"end_line"`
	EndCol    uint32 `json:"end_col" yaml:"end_col"`
}

type nodeBuilder struct {
	comp *ast.Component
	fs   *source.FileSet
}

// BuildASTDocument converts a parsed module into an ASTNode tree: imports,
// then globals, then functions, each group in declaration order.
func BuildASTDocument(mod *ast.Module, fs *source.FileSet) *ASTNode {
	b := nodeBuilder{comp: mod.Component, fs: fs}
	root := b.node("Module", mod.Span)
	if f := mod.Component.Src; f != nil {
		root.Name = f.Path
	}
	for _, id := range b.comp.ImportIDs() {
		root.Children = append(root.Children, b.importNode(id))
	}
	for _, id := range b.comp.GlobalIDs() {
		root.Children = append(root.Children, b.globalNode(id))
	}
	for _, id := range b.comp.FunctionIDs() {
		root.Children = append(root.Children, b.functionNode(id))
	}
	return root
}

func (b nodeBuilder) node(kind string, sp source.Span) *ASTNode {
	start, end := b.fs.Resolve(sp)
	return &ASTNode{
		Node: kind,
		Span: SpanOutput{
			Start: sp.Start, End: sp.End,
			StartLine: start.Line, StartCol: start.Col,
			EndLine: end.Line, EndCol: end.Col,
		},
	}
}

func (n *ASTNode) set(key, value string) *ASTNode {
	if n.Fields == nil {
		n.Fields = make(map[string]string)
	}
	n.Fields[key] = value
	return n
}

func (n *ASTNode) add(children ...*ASTNode) *ASTNode {
	n.Children = append(n.Children, children...)
	return n
}

func (b nodeBuilder) typeName(id ast.TypeID) string {
	if !id.IsValid() {
		return "<none>"
	}
	return b.comp.Type(id).String()
}

func (b nodeBuilder) signature(args []ast.Param, ret ast.TypeID) string {
	s := "("
	for i, p := range args {
		if i > 0 {
			s += ", "
		}
		s += b.comp.Name(p.Name) + ": " + b.typeName(p.Type)
	}
	s += ")"
	if ret.IsValid() {
		s += " -> " + b.typeName(ret)
	}
	return s
}

func (b nodeBuilder) importNode(id ast.ImportID) *ASTNode {
	imp := b.comp.Import(id)
	n := b.node("Import", b.comp.ImportSpan(id))
	n.Name = b.comp.Name(imp.Ident)
	return n.set("type", "func"+b.signature(imp.External.Fn.Args(), imp.External.Fn.Return()))
}

func (b nodeBuilder) globalNode(id ast.GlobalID) *ASTNode {
	g := b.comp.Global(id)
	n := b.node("Global", b.comp.GlobalSpan(id))
	n.Name = b.comp.Name(g.Ident)
	n.set("type", b.typeName(g.Type))
	if g.Exported {
		n.set("exported", "true")
	}
	if g.Mutable {
		n.set("mutable", "true")
	}
	return n.add(b.exprNode(g.Init))
}

func (b nodeBuilder) functionNode(id ast.FunctionID) *ASTNode {
	fn := b.comp.Function(id)
	n := b.node("Function", b.comp.FunctionSpan(id))
	n.Name = b.comp.Name(fn.Signature.Ident)
	n.set("signature", b.signature(fn.Signature.Args(), fn.Signature.Return()))
	if fn.Exported {
		n.set("exported", "true")
	}
	return n.add(b.stmtNodes(fn.Body)...)
}

func (b nodeBuilder) stmtNodes(ids []ast.StatementID) []*ASTNode {
	out := make([]*ASTNode, 0, len(ids))
	for _, id := range ids {
		out = append(out, b.stmtNode(id))
	}
	return out
}

func (b nodeBuilder) stmtNode(id ast.StatementID) *ASTNode {
	stmts := b.comp.Stmts()
	st := b.comp.Statement(id)
	n := b.node(st.Kind.String(), b.comp.StatementSpan(id))

	switch st.Kind {
	case ast.StmtLet:
		let, _ := stmts.Let(id)
		n.Name = b.comp.Name(let.Ident)
		if let.Annotation.IsValid() {
			n.set("type", b.typeName(let.Annotation))
		}
		if let.Mutable {
			n.set("mutable", "true")
		}
		n.add(b.exprNode(let.Expr))
	case ast.StmtAssign:
		as, _ := stmts.Assign(id)
		n.Name = as.Target.Unbox().Value.Ident.Value
		n.set("op", as.Op.String())
		n.add(b.exprNode(as.Value))
	case ast.StmtReturn:
		ret, _ := stmts.Return(id)
		if ret.Value.IsValid() {
			n.add(b.exprNode(ret.Value))
		}
	case ast.StmtIf:
		ifs, _ := stmts.If(id)
		n.add(b.exprNode(ifs.Cond))
		n.add(b.block("Then", ifs.Then))
		if ifs.HasElse {
			n.add(b.block("Else", ifs.Else))
		}
	case ast.StmtWhile:
		wh, _ := stmts.While(id)
		n.add(b.exprNode(wh.Cond), b.block("Body", wh.Body))
	case ast.StmtExpr:
		es, _ := stmts.ExprStmt(id)
		n.add(b.exprNode(es.Expr))
	}
	return n
}

// block groups statements under a synthetic node spanning them.
func (b nodeBuilder) block(label string, ids []ast.StatementID) *ASTNode {
	var sp source.Span
	if len(ids) > 0 {
		sp = b.comp.StatementSpan(ids[0]).To(b.comp.StatementSpan(ids[len(ids)-1]))
	}
	n := b.node(label, sp)
	n.Children = b.stmtNodes(ids)
	return n
}

func (b nodeBuilder) exprNode(id ast.ExpressionID) *ASTNode {
	exprs := b.comp.Expr()
	kind := exprs.Get(id).Kind
	n := b.node(kind.String(), exprs.Span(id))

	switch kind {
	case ast.ExprIdent:
		d, _ := exprs.Ident(id)
		n.Name = b.comp.Name(d.Ident)
	case ast.ExprLit:
		d, _ := exprs.Literal(id)
		n.set("kind", d.Kind.String())
		n.set("value", literalText(d))
	case ast.ExprCall:
		d, _ := exprs.Call(id)
		n.Name = b.comp.Name(d.Callee)
		for _, a := range d.Args {
			n.add(b.exprNode(a))
		}
	case ast.ExprUnary:
		d, _ := exprs.Unary(id)
		n.set("op", d.Op.String())
		n.add(b.exprNode(d.Operand))
	case ast.ExprBinary:
		d, _ := exprs.Binary(id)
		n.set("op", d.Op.String())
		n.add(b.exprNode(d.Left), b.exprNode(d.Right))
	case ast.ExprGroup:
		d, _ := exprs.Group(id)
		n.add(b.exprNode(d.Inner))
	}
	return n
}

func literalText(d *ast.LiteralData) string {
	switch d.Kind {
	case ast.LitInt:
		return strconv.FormatUint(d.Int, 10)
	case ast.LitFloat:
		return strconv.FormatFloat(d.Float, 'g', -1, 64)
	case ast.LitString:
		return strconv.Quote(d.Str)
	case ast.LitBool:
		return strconv.FormatBool(d.Bool)
	}
	return fmt.Sprintf("<%v>", d.Kind)
}
