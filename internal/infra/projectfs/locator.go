package projectfs

import (
	"os"
	"path/filepath"

	"github.com/aalvaropc/domgen/internal/ports"
)

// Locator checks generated paths against the project tree on disk.
type Locator struct {
	root string
}

func NewLocator(root string) *Locator {
	return &Locator{root: filepath.Clean(root)}
}

var _ ports.ArtifactLocator = (*Locator)(nil)

func (l *Locator) Exists(relPath string) bool {
	if relPath == "" {
		return false
	}
	p := filepath.FromSlash(relPath)
	if !filepath.IsAbs(p) {
		p = filepath.Join(l.root, p)
	}
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
