package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// SourceExt is the extension of wrought source files.
const SourceExt = ".wr"

// ListSources expands files and directories into a sorted, de-duplicated
// list of source files. Directories are walked recursively; hidden
// directories are skipped.
func ListSources(paths ...string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", p, err)
		}
		if !info.IsDir() {
			out = append(out, filepath.Clean(p))
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && len(d.Name()) > 1 && d.Name()[0] == '.' {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) == SourceExt {
				out = append(out, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %q: %w", p, err)
		}
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

// Sources lists the files named by [build].sources.
func (m *Manifest) Sources() ([]string, error) {
	paths := make([]string, len(m.Build.Sources))
	for i, s := range m.Build.Sources {
		if filepath.IsAbs(s) {
			paths[i] = s
		} else {
			paths[i] = filepath.Join(m.Root, s)
		}
	}
	files, err := ListSources(paths...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", m.Path, ErrNoSources)
	}
	return files, nil
}

// IsNoSources reports whether err means the project has nothing to build.
func IsNoSources(err error) bool {
	return errors.Is(err, ErrNoSources)
}
