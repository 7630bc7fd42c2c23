package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/domgen/internal/domain"
	"github.com/aalvaropc/domgen/internal/infra/config"
	"github.com/aalvaropc/domgen/internal/infra/projectfs"
	"github.com/aalvaropc/domgen/internal/infra/stubfs"
	"github.com/aalvaropc/domgen/internal/infra/workspacefinder"
	"github.com/aalvaropc/domgen/internal/naming"
	"github.com/aalvaropc/domgen/internal/ports"
	"github.com/aalvaropc/domgen/internal/usecase"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	debug     bool
	workspace string

	rootNamespace    string
	rootNamespaceSet bool
	ext              string
}

type workspaceCtx struct {
	root  string
	found bool
	cfg   domain.Config

	names *naming.Resolver
	stubs *stubfs.Loader
	files *projectfs.Locator
}

func loadWorkspace(g *globalFlags) (*workspaceCtx, error) {
	root, found, err := resolveWorkspaceRoot(g.workspace)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	cfg = applyFlags(cfg, g)

	return &workspaceCtx{
		root:  root,
		found: found,
		cfg:   cfg,
		names: naming.New(cfg.Naming),
		stubs: stubfs.NewLoader(root, stubfs.WithStubsDir(cfg.Paths.StubsDir)),
		files: projectfs.NewLocator(root),
	}, nil
}

// applyFlags layers CLI overrides on top of the loaded configuration.
func applyFlags(cfg domain.Config, g *globalFlags) domain.Config {
	if g.rootNamespaceSet {
		cfg.Naming.RootNamespace = strings.TrimSpace(g.rootNamespace)
	}
	if ext := strings.TrimPrefix(strings.TrimSpace(g.ext), "."); ext != "" {
		cfg.Naming.Extension = ext
	}
	return cfg
}

// resolveWorkspaceRoot returns the explicit workspace, or the nearest directory
// holding domgen.yaml. Without one it falls back to the nearest composer.json and
// then to the working directory. found reports whether domgen.yaml was seen.
func resolveWorkspaceRoot(workspaceFlag string) (root string, found bool, err error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", false, fmt.Errorf("invalid workspace path: %w", err)
		}
		_, statErr := os.Stat(filepath.Join(abs, config.FileName))
		return abs, statErr == nil, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("get working directory: %w", err)
	}

	finder := workspacefinder.NewFinder(workspacefinder.WithMarkers(
		workspacefinder.ConfigMarker,
		workspacefinder.ComposerMarker,
	))

	root, marker, err := finder.Find(wd)
	switch {
	case err == nil:
		return root, marker == workspacefinder.ConfigMarker, nil
	case domain.IsKind(err, domain.KindNotFound):
		return wd, false, nil
	default:
		return "", false, err
	}
}

func (ws *workspaceCtx) generators(log *slog.Logger) map[domain.ArtifactKind]ports.Generator {
	opts := []usecase.Option{
		usecase.WithLogger(log),
		usecase.WithFactoriesDir(ws.cfg.Paths.FactoriesDir),
	}
	return map[domain.ArtifactKind]ports.Generator{
		domain.ArtifactModel:      usecase.NewMakeModel(ws.names, ws.stubs, ws.files, opts...),
		domain.ArtifactController: usecase.NewMakeController(ws.names, ws.stubs, ws.files, opts...),
		domain.ArtifactService:    usecase.NewMakeService(ws.names, ws.stubs, ws.files, opts...),
		domain.ArtifactFactory:    usecase.NewMakeFactory(ws.names, ws.stubs, ws.files, opts...),
	}
}
