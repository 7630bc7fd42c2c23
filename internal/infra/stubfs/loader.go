package stubfs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalvaropc/domgen/internal/app/template"
	"github.com/aalvaropc/domgen/internal/domain"
	"github.com/aalvaropc/domgen/internal/ports"
)

//go:embed stubs/*.stub
var stubsFS embed.FS

const stubExt = ".stub"

// Loader serves stubs from a project override directory first, then from the
// stubs embedded in the binary.
type Loader struct {
	root     string
	stubsDir string
}

type Option func(*Loader)

// WithStubsDir sets the override directory, relative to the project root.
// An empty dir disables overrides.
func WithStubsDir(dir string) Option {
	return func(l *Loader) { l.stubsDir = dir }
}

func NewLoader(root string, opts ...Option) *Loader {
	l := &Loader{root: root, stubsDir: "stubs"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.StubLoader = (*Loader)(nil)

func (l *Loader) LoadStub(name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}

	if p := l.overridePath(name); p != "" {
		b, err := os.ReadFile(p)
		if err == nil {
			return string(b), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", &domain.OpError{
				Op:   "stubfs.load",
				Kind: domain.KindExecution,
				Path: p,
				Err:  err,
			}
		}
	}

	b, err := fs.ReadFile(stubsFS, path.Join("stubs", name+stubExt))
	if err != nil {
		return "", &domain.OpError{
			Op:   "stubfs.load",
			Kind: domain.KindNotFound,
			Path: name + stubExt,
			Err:  domain.ErrNotFound,
		}
	}
	return string(b), nil
}

func (l *Loader) ListStubs() ([]domain.StubRef, error) {
	refs := map[string]domain.StubRef{}

	entries, err := fs.ReadDir(stubsFS, "stubs")
	if err != nil {
		return nil, &domain.OpError{Op: "stubfs.list", Kind: domain.KindExecution, Err: err}
	}
	for _, e := range entries {
		if name, ok := stubName(e); ok {
			refs[name] = domain.StubRef{Name: name}
		}
	}

	if dir := l.overrideDir(); dir != "" {
		entries, err := os.ReadDir(dir)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.OpError{Op: "stubfs.list", Kind: domain.KindExecution, Path: dir, Err: err}
		}
		for _, e := range entries {
			if name, ok := stubName(e); ok {
				refs[name] = domain.StubRef{
					Name:       name,
					Overridden: true,
					Path:       filepath.Join(dir, e.Name()),
				}
			}
		}
	}

	out := make([]domain.StubRef, 0, len(refs))
	for _, r := range refs {
		body, err := l.LoadStub(r.Name)
		if err != nil {
			return nil, err
		}
		r.Placeholders = template.Placeholders(body)
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (l *Loader) overrideDir() string {
	if strings.TrimSpace(l.stubsDir) == "" {
		return ""
	}
	if filepath.IsAbs(l.stubsDir) {
		return l.stubsDir
	}
	return filepath.Join(l.root, l.stubsDir)
}

func (l *Loader) overridePath(name string) string {
	dir := l.overrideDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, name+stubExt)
}

func stubName(e fs.DirEntry) (string, bool) {
	if e.IsDir() || !strings.HasSuffix(e.Name(), stubExt) {
		return "", false
	}
	return strings.TrimSuffix(e.Name(), stubExt), true
}

func checkName(name string) error {
	if strings.TrimSpace(name) == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return &domain.OpError{
			Op:   "stubfs.load",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("invalid stub name %q", name),
		}
	}
	return nil
}
