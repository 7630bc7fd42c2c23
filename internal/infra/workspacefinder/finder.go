package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/domgen/internal/domain"
	"github.com/aalvaropc/domgen/internal/ports"
)

// ConfigMarker identifies a domgen project.
const ConfigMarker = "domgen.yaml"

// ComposerMarker identifies a PHP project without domgen configuration.
const ComposerMarker = "composer.json"

// Finder walks up from a directory until one of its markers is present.
type Finder struct {
	markers []string
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

type Option func(*Finder)

// WithMarkers replaces the file names that mark a project root.
func WithMarkers(names ...string) Option {
	return func(f *Finder) { f.markers = names }
}

func NewFinder(opts ...Option) *Finder {
	f := &Finder{markers: []string{ConfigMarker}}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	root, _, err := f.Find(startDir)
	return root, err
}

// Find returns the nearest root and the marker that matched there.
func (f *Finder) Find(startDir string) (string, string, error) {
	if startDir == "" {
		return "", "", &domain.OpError{
			Op:   "workspacefinder.find",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}
	if len(f.markers) == 0 {
		return "", "", &domain.OpError{
			Op:   "workspacefinder.find",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("no root markers configured"),
		}
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", "", &domain.OpError{Op: "workspacefinder.find", Kind: domain.KindExecution, Err: err}
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for dir = filepath.Clean(dir); ; {
		for _, m := range f.markers {
			if isFile(filepath.Join(dir, m)) {
				return dir, m, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", &domain.OpError{
				Op:   "workspacefinder.find",
				Kind: domain.KindNotFound,
				Path: startDir,
				Err:  domain.ErrNotFound,
			}
		}
		dir = parent
	}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
