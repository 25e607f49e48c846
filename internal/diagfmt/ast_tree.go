package diagfmt

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"wrought/internal/ast"
	"wrought/internal/source"
)

// FormatASTTree печатает модуль деревом:
//
//	Module main.wr @1:1-3:1
//	└─ Function main {signature=()} @1:1-3:2
//	   └─ Return @2:5-2:14
func FormatASTTree(w io.Writer, mod *ast.Module, fs *source.FileSet) error {
	root := BuildASTDocument(mod, fs)
	var sb strings.Builder
	sb.WriteString(nodeLabel(root))
	sb.WriteByte('\n')
	writeChildren(&sb, root.Children, "")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeChildren(sb *strings.Builder, children []*ASTNode, prefix string) {
	for i, child := range children {
		branch, next := "├─ ", "│  "
		if i == len(children)-1 {
			branch, next = "└─ ", "   "
		}
		sb.WriteString(prefix)
		sb.WriteString(branch)
		sb.WriteString(nodeLabel(child))
		sb.WriteByte('\n')
		writeChildren(sb, child.Children, prefix+next)
	}
}

func nodeLabel(n *ASTNode) string {
	var sb strings.Builder
	sb.WriteString(n.Node)
	if n.Name != "" {
		sb.WriteByte(' ')
		sb.WriteString(n.Name)
	}
	if len(n.Fields) > 0 {
		keys := make([]string, 0, len(n.Fields))
		for k := range n.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sb.WriteString(" {")
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k + "=" + n.Fields[k])
		}
		sb.WriteByte('}')
	}
	fmt.Fprintf(&sb, " @%d:%d-%d:%d", n.Span.StartLine, n.Span.StartCol, n.Span.EndLine, n.Span.EndCol)
	return sb.String()
}
