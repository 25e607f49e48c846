package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"wrought/internal/version"
)

// exitError carries a non-zero exit status for failures whose
// diagnostics have already been printed.
type exitError struct{ code int }

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// newRootCmd собирает дерево команд; тесты создают свежий экземпляр на каждый прогон.
func newRootCmd() *cobra.Command {
	var sess session
	rootCmd := &cobra.Command{
		Use:           "wrought",
		Short:         "Wrought language front-end",
		Long:          `Wrought tokenizes and parses wrought sources and reports diagnostics`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return sess.start(cmd)
		},
	}

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics per file (0 = unlimited)")
	pf.Int("jobs", 0, "max parallel workers (0 = GOMAXPROCS)")
	pf.Int("max-depth", 0, "parser nesting limit (0 = manifest or default)")
	pf.Bool("cache", false, "reuse lexer output from the token cache")
	pf.String("cache-dir", "", "token cache directory (default: manifest or user cache dir)")

	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.String("trace-format", "auto", "trace encoding (auto|text|ndjson)")
	pf.Int("trace-ring-size", 0, "events kept in ring mode (0 = default)")
	pf.Duration("trace-heartbeat", 0, "emit heartbeat events at this interval (0 = off)")

	pf.String("cpu-profile", "", "write CPU profile to file")
	pf.String("mem-profile", "", "write heap profile to file on exit")
	pf.String("runtime-trace", "", "write runtime execution trace to file")

	rootCmd.AddCommand(newTokenizeCmd(), newParseCmd(), newCheckCmd(), newVersionCmd())

	// cobra не вызывает PersistentPostRun при ошибке, поэтому финализация здесь
	rootCmd.SetContext(withSession(context.Background(), &sess))
	return rootCmd
}

func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	sess := sessionFrom(rootCmd.Context())
	sess.finish(stderr, err != nil)

	if err == nil {
		return 0
	}
	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
	return 1
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// isTerminal проверяет, является ли w терминалом
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
