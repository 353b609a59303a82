package yamlstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/espanso/espanso-core/internal/event"
)

// FileSystem abstracts the file access Loader needs, so tests can supply
// an in-memory implementation instead of touching disk.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	Glob(pattern string) ([]string, error)
}

// OSFS implements FileSystem over the real file system.
type OSFS struct{}

func (OSFS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }
func (OSFS) Glob(pattern string) ([]string, error) { return filepath.Glob(pattern) }

// Loader reads a match store from a base file plus a directory of
// app-override files.
type Loader struct {
	fs FileSystem
}

// NewLoader builds a Loader over the real file system.
func NewLoader() *Loader {
	return &Loader{fs: OSFS{}}
}

// NewLoaderWithFS builds a Loader over a custom FileSystem, for tests.
func NewLoaderWithFS(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// Load reads basePath (the equivalent of default.yml) and every *.yml file
// in overrideDir (each an app-override layer), assigning sequential ids
// starting at 1 in file-then-list order. overrideDir may be empty, in
// which case only the base layer is loaded.
func (l *Loader) Load(basePath, overrideDir string) (*Store, error) {
	var nextID event.MatchID = 1

	base, nextID, err := l.loadBase(basePath, nextID)
	if err != nil {
		return nil, err
	}

	var overrides []override
	if overrideDir != "" {
		overrides, _, err = l.loadOverrides(overrideDir, nextID)
		if err != nil {
			return nil, err
		}
	}

	return &Store{base: base, overrides: overrides}, nil
}

func (l *Loader) loadBase(path string, nextID event.MatchID) ([]event.Match, event.MatchID, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, nextID, fmt.Errorf("yamlstore: reading %s: %w", path, err)
	}
	var file yamlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nextID, fmt.Errorf("yamlstore: parsing %s: %w", path, err)
	}
	matches := make([]event.Match, 0, len(file.Matches))
	for _, ym := range file.Matches {
		m, err := decodeMatch(nextID, ym)
		if err != nil {
			return nil, nextID, fmt.Errorf("yamlstore: %s: %w", path, err)
		}
		matches = append(matches, m)
		nextID++
	}
	return matches, nextID, nil
}

func (l *Loader) loadOverrides(dir string, nextID event.MatchID) ([]override, event.MatchID, error) {
	paths, err := l.fs.Glob(filepath.Join(dir, "*.yml"))
	if err != nil {
		return nil, nextID, fmt.Errorf("yamlstore: listing %s: %w", dir, err)
	}
	overrides := make([]override, 0, len(paths))
	for _, path := range paths {
		data, err := l.fs.ReadFile(path)
		if err != nil {
			return nil, nextID, fmt.Errorf("yamlstore: reading %s: %w", path, err)
		}
		var file appFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, nextID, fmt.Errorf("yamlstore: parsing %s: %w", path, err)
		}
		filter, err := compileAppFilter(file.Filter)
		if err != nil {
			return nil, nextID, fmt.Errorf("yamlstore: %s: %w", path, err)
		}
		matches := make([]event.Match, 0, len(file.Matches))
		for _, ym := range file.Matches {
			m, err := decodeMatch(nextID, ym)
			if err != nil {
				return nil, nextID, fmt.Errorf("yamlstore: %s: %w", path, err)
			}
			matches = append(matches, m)
			nextID++
		}
		overrides = append(overrides, override{filter: filter, matches: matches})
	}
	return overrides, nextID, nil
}
