package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"wrought/internal/diag"
	"wrought/internal/diagfmt"
	"wrought/internal/driver"
	"wrought/internal/project"
	"wrought/internal/source"
	"wrought/internal/ui"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] [file.wr|directory]",
		Short: "Parse sources and report diagnostics",
		Long: `Check parses a file, every *.wr file under a directory, or the sources
listed in wrought.toml, and reports all diagnostics. Exits with status 1 on errors.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
	cmd.Flags().String("path-mode", "auto", "how to print file paths (auto|absolute|relative|basename)")
	cmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := ""
	if len(args) == 1 {
		target = args[0]
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "short", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	pathModeStr, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	pathMode, err := diagfmt.ParsePathMode(pathModeStr)
	if err != nil {
		return err
	}
	uiStr, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiStr)
	if err != nil {
		return err
	}

	opts, err := resolveOptions(cmd, startDirFor(target), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	files, err := checkTargets(target, opts.manifest)
	if err != nil {
		return err
	}

	var results []driver.ParseResult
	if format == "pretty" && !opts.quiet && shouldUseTUI(mode, cmd.OutOrStdout()) {
		results, err = parseWithProgress(cmd, files, opts.driver)
	} else {
		results, err = driver.ParseFiles(cmd.Context(), files, opts.driver)
	}
	if err != nil {
		return err
	}

	bag := mergeBags(results)
	fs := fileSetOf(results)
	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		diagfmt.Pretty(out, bag, fs, diagfmt.PrettyOpts{
			Color:     opts.colorDiag,
			Context:   1,
			PathMode:  pathMode,
			ShowNotes: true,
		})
	case "short":
		diagfmt.Short(out, bag, fs, pathMode)
	case "json":
		if err := diagfmt.JSON(out, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     true,
		}); err != nil {
			return err
		}
	}

	errCount := driver.CountErrors(results)
	if !opts.quiet && format != "json" {
		fmt.Fprintf(cmd.ErrOrStderr(), "checked %d file(s): %d error(s)\n", len(results), errCount)
	}
	if errCount > 0 {
		return &exitError{code: 1}
	}
	return nil
}

// checkTargets resolves what check should parse: an explicit file, a
// project directory, a plain directory, or the manifest's sources.
func checkTargets(target string, m *project.Manifest) ([]string, error) {
	if target == "" {
		if m == nil {
			return nil, fmt.Errorf("no %s found; pass a file or directory", project.ManifestName)
		}
		return m.Sources()
	}
	st, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}
	if !st.IsDir() {
		return []string{target}, nil
	}
	if m != nil && isProjectRoot(target, m) {
		return m.Sources()
	}
	files, err := project.ListSources(target)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", target, project.ErrNoSources)
	}
	return files, nil
}

func isProjectRoot(dir string, m *project.Manifest) bool {
	abs, err := filepath.Abs(dir)
	return err == nil && abs == m.Root
}

// parseWithProgress runs the driver in the background and the progress
// view in the foreground until the event channel closes.
func parseWithProgress(cmd *cobra.Command, files []string, opts driver.Options) ([]driver.ParseResult, error) {
	events := make(chan driver.Event, 64)
	opts.Progress = driver.ChannelSink{Ch: events}

	var (
		results []driver.ParseResult
		runErr  error
	)
	done := make(chan struct{})
	go func(ctx context.Context) {
		defer close(done)
		defer close(events)
		results, runErr = driver.ParseFiles(ctx, files, opts)
	}(cmd.Context())

	display := make([]string, len(files))
	for i, f := range files {
		display[i] = filepath.ToSlash(filepath.Clean(f))
	}
	uiErr := ui.RunProgress("check", display, events, cmd.OutOrStdout())
	if uiErr != nil {
		// вид упал: дочитываем канал, чтобы воркеры не зависли
		for range events {
		}
	}
	<-done
	return results, errors.Join(runErr, uiErr)
}

// mergeBags складывает диагностики всех файлов; лимит уже применён по файлам.
func mergeBags(results []driver.ParseResult) *diag.Bag {
	bag := diag.NewBag(0)
	for i := range results {
		bag.Merge(results[i].Bag)
	}
	bag.Sort()
	return bag
}

func fileSetOf(results []driver.ParseResult) *source.FileSet {
	if len(results) == 0 {
		return source.NewFileSet()
	}
	return results[0].FileSet
}
