package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wrought/internal/diagfmt"
	"wrought/internal/driver"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] file.wr",
		Short: "Parse a wrought source file and print its AST",
		Long:  `Parse builds the syntax tree of one wrought source file and prints it, or the parse error`,
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().String("format", "tree", "output format (tree|json|yaml)")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	formatStr, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format := diagfmt.ASTFormat(formatStr)
	switch format {
	case diagfmt.ASTFormatTree, diagfmt.ASTFormatJSON, diagfmt.ASTFormatYAML:
	default:
		return fmt.Errorf("unknown format: %s", formatStr)
	}
	opts, err := resolveOptions(cmd, startDirFor(filePath), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	result, err := driver.ParseFile(cmd.Context(), filePath, opts.driver)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if !result.OK() {
		result.Bag.Sort()
		diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     opts.colorDiag,
			Context:   1,
			ShowNotes: true,
		})
		return &exitError{code: 1}
	}
	return diagfmt.FormatAST(cmd.OutOrStdout(), result.Module, result.FileSet, format)
}
