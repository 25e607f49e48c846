package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wrought/internal/diagfmt"
	"wrought/internal/driver"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.wr",
		Short: "Tokenize a wrought source file",
		Long:  `Tokenize breaks a wrought source file into its significant tokens`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	opts, err := resolveOptions(cmd, startDirFor(filePath), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	result, err := driver.TokenizeFile(cmd.Context(), filePath, opts.driver)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Диагностика в stderr, токены всё равно печатаем
	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     opts.colorDiag,
			Context:   1,
			ShowNotes: true,
		})
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		err = diagfmt.FormatTokensJSON(out, result.Tokens, result.FileSet)
	default:
		err = diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet)
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return &exitError{code: 1}
	}
	return nil
}
