package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"wrought/internal/driver"
	"wrought/internal/project"
)

// frontOptions merges the persistent flags with wrought.toml. An explicit
// flag wins over the manifest, the manifest over built-in defaults.
type frontOptions struct {
	manifest  *project.Manifest
	colorDiag bool
	quiet     bool
	driver    driver.Options
}

// resolveOptions looks for a manifest above startDir; a missing manifest is
// not an error. diagOut is where diagnostics will be written and decides
// colour in auto mode.
func resolveOptions(cmd *cobra.Command, startDir string, diagOut io.Writer) (*frontOptions, error) {
	flags := cmd.Root().PersistentFlags()
	opts := &frontOptions{}

	manifestPath, ok, err := project.FindManifest(startDir)
	if err != nil {
		return nil, err
	}
	if ok {
		if opts.manifest, err = project.Load(manifestPath); err != nil {
			return nil, err
		}
	}

	if opts.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}

	colorMode, err := flags.GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	if !flags.Changed("color") && opts.manifest != nil {
		colorMode = opts.manifest.Diagnostics.Color
	}
	if opts.colorDiag, err = useColor(colorMode, diagOut); err != nil {
		return nil, err
	}
	color.NoColor = !opts.colorDiag

	d := &opts.driver
	if d.MaxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if !flags.Changed("max-diagnostics") && opts.manifest != nil {
		d.MaxDiagnostics = opts.manifest.Diagnostics.Max
	}
	if d.MaxDepth, err = flags.GetInt("max-depth"); err != nil {
		return nil, fmt.Errorf("failed to get max-depth flag: %w", err)
	}
	if d.MaxDepth <= 0 && opts.manifest != nil {
		d.MaxDepth = opts.manifest.Parser.MaxDepth
	}
	if d.Jobs, err = flags.GetInt("jobs"); err != nil {
		return nil, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if d.Cache, err = openCache(cmd, opts.manifest); err != nil {
		return nil, err
	}
	if sess := sessionFrom(cmd.Context()); sess != nil {
		d.Timer = sess.timer
	}
	return opts, nil
}

func openCache(cmd *cobra.Command, m *project.Manifest) (*driver.TokenCache, error) {
	flags := cmd.Root().PersistentFlags()
	enabled, err := flags.GetBool("cache")
	if err != nil {
		return nil, fmt.Errorf("failed to get cache flag: %w", err)
	}
	dir, err := flags.GetString("cache-dir")
	if err != nil {
		return nil, fmt.Errorf("failed to get cache-dir flag: %w", err)
	}
	if !enabled && dir == "" {
		return nil, nil
	}
	if dir == "" {
		if m != nil {
			dir, err = m.CacheDir()
		} else {
			dir, err = project.DefaultCacheDir()
		}
		if err != nil {
			return nil, err
		}
	}
	return driver.OpenTokenCache(dir)
}

func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return isTerminal(w), nil
	}
	return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
}

// setColor применяет режим к глобальному переключателю fatih/color.
func setColor(mode string, w io.Writer) {
	if on, err := useColor(mode, w); err == nil {
		color.NoColor = !on
	}
}

// startDirFor is the directory the manifest search starts from.
func startDirFor(path string) string {
	if path == "" {
		return "."
	}
	if st, err := os.Stat(path); err == nil && st.IsDir() {
		return path
	}
	return filepath.Dir(path)
}
