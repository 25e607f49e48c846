package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"wrought/internal/source"
	"wrought/internal/token"
)

type TokenOutput struct {
	Kind string       `json:"kind"`
	Text string       `json:"text,omitempty"`
	Span LocationJSON `json:"span"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате:
//
//	  1: let             "let" at 1:1-1:4
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		start, end := fs.Resolve(tok.Span)
		if _, err := fmt.Fprintf(w, "%3d: %-15s %q at %d:%d-%d:%d\n",
			i+1, tok.Kind, tok.Text,
			start.Line, start.Col, end.Line, end.Col,
		); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: makeLocation(tok.Span, fs, PathModeAuto, true),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
