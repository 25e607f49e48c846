package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is a decoded wrought.toml.
type Manifest struct {
	Package     PackageConfig     `toml:"package"`
	Build       BuildConfig       `toml:"build"`
	Parser      ParserConfig      `toml:"parser"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Cache       CacheConfig       `toml:"cache"`

	// Path and Root are filled by Load.
	Path string `toml:"-"`
	Root string `toml:"-"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type BuildConfig struct {
	// Sources are files or directories relative to the project root.
	Sources []string `toml:"sources"`
}

type ParserConfig struct {
	MaxDepth int `toml:"max_depth"`
}

type DiagnosticsConfig struct {
	Color string `toml:"color"` // auto|on|off
	Max   int    `toml:"max"`
}

type CacheConfig struct {
	Dir string `toml:"dir"` // "" - $XDG_CACHE_HOME/wrought
}

var (
	// ErrPackageNameMissing: в [package] нет name.
	ErrPackageNameMissing = errors.New("missing [package].name")
	// ErrNoSources: [build].sources пуст после применения значений по умолчанию.
	ErrNoSources = errors.New("no sources configured")
)

// Defaults returns the values used for keys the manifest leaves out.
func Defaults() Manifest {
	return Manifest{
		Build:       BuildConfig{Sources: []string{"src"}},
		Parser:      ParserConfig{MaxDepth: 256},
		Diagnostics: DiagnosticsConfig{Color: "auto", Max: 100},
	}
}

// Load decodes the manifest at path over Defaults and validates it.
// Unknown keys are rejected so that typos do not pass silently.
func Load(path string) (*Manifest, error) {
	m := Defaults()
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(m.Package.Name) == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.Path = path
	m.Root = filepath.Dir(path)
	return &m, nil
}

func (m *Manifest) validate() error {
	if len(m.Build.Sources) == 0 {
		return ErrNoSources
	}
	if m.Parser.MaxDepth < 0 {
		return fmt.Errorf("[parser].max_depth must not be negative, got %d", m.Parser.MaxDepth)
	}
	switch m.Diagnostics.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("[diagnostics].color must be auto, on or off, got %q", m.Diagnostics.Color)
	}
	return nil
}

// CacheDir resolves [cache].dir against the project root, falling back to
// the user cache directory.
func (m *Manifest) CacheDir() (string, error) {
	if m.Cache.Dir != "" {
		if filepath.IsAbs(m.Cache.Dir) {
			return m.Cache.Dir, nil
		}
		return filepath.Join(m.Root, m.Cache.Dir), nil
	}
	return DefaultCacheDir()
}

// DefaultCacheDir is $XDG_CACHE_HOME/wrought (or the OS equivalent).
func DefaultCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("user cache dir: %w", err)
	}
	return filepath.Join(base, "wrought"), nil
}
