package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"wrought/internal/ast"
	"wrought/internal/source"
)

// FormatASTJSON пишет документ модуля в JSON с отступами.
func FormatASTJSON(w io.Writer, mod *ast.Module, fs *source.FileSet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildASTDocument(mod, fs))
}

// FormatASTYAML пишет тот же документ в YAML.
func FormatASTYAML(w io.Writer, mod *ast.Module, fs *source.FileSet) error {
	data, err := yaml.MarshalWithOptions(BuildASTDocument(mod, fs), yaml.Indent(2))
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ASTFormat selects a dump encoding for FormatAST.
type ASTFormat string

const (
	ASTFormatTree ASTFormat = "tree"
	ASTFormatJSON ASTFormat = "json"
	ASTFormatYAML ASTFormat = "yaml"
)

func FormatAST(w io.Writer, mod *ast.Module, fs *source.FileSet, format ASTFormat) error {
	switch format {
	case ASTFormatTree, "":
		return FormatASTTree(w, mod, fs)
	case ASTFormatJSON:
		return FormatASTJSON(w, mod, fs)
	case ASTFormatYAML:
		return FormatASTYAML(w, mod, fs)
	}
	return fmt.Errorf("unknown AST format %q (expected: tree|json|yaml)", format)
}
