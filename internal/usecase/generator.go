package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/aalvaropc/domgen/internal/app/template"
	"github.com/aalvaropc/domgen/internal/domain"
	"github.com/aalvaropc/domgen/internal/naming"
	"github.com/aalvaropc/domgen/internal/ports"
)

// Option configures the shared parts of every generator.
type Option func(*generator)

// WithLogger sets the logger used for plan events.
func WithLogger(l *slog.Logger) Option {
	return func(g *generator) {
		if l != nil {
			g.log = l
		}
	}
}

// WithFactoriesDir sets the directory factories are written to, relative to the
// project root.
func WithFactoriesDir(dir string) Option {
	return func(g *generator) { g.factoriesDir = strings.Trim(dir, "/") }
}

// generator holds what every Make* use case needs: naming rules, stubs and a view
// of the files that already exist.
type generator struct {
	names        *naming.Resolver
	stubs        ports.StubLoader
	files        ports.ArtifactLocator
	log          *slog.Logger
	factoriesDir string
}

func newGenerator(names *naming.Resolver, stubs ports.StubLoader, files ports.ArtifactLocator, opts ...Option) generator {
	g := generator{
		names:        names,
		stubs:        stubs,
		files:        files,
		log:          slog.New(slog.NewJSONHandler(io.Discard, nil)),
		factoriesDir: domain.DefaultConfig().Paths.FactoriesDir,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// resolve treats names that already start with the root namespace as fully qualified
// and leaves them untouched.
func (g generator) resolve(name string, kind domain.ArtifactKind) (domain.Resolution, error) {
	if g.names.Qualified(name) {
		return g.names.ResolveQualified(name, string(kind))
	}
	return g.names.Resolve(name, string(kind))
}

// sibling names the kind artifact sharing res's First and Last parts. Raw names are
// reused as is.
func (g generator) sibling(res domain.Resolution, kind domain.ArtifactKind) (string, error) {
	if !g.names.Qualified(res.Raw) {
		return res.Raw, nil
	}
	return g.names.Join(res.First, res.Last, string(kind))
}

// build renders stubName for the resolved req with the base variables plus extra and
// checks whether the target already exists.
func (g generator) build(req domain.Request, res domain.Resolution, stubName string, extra map[string]string) (domain.Artifact, error) {
	art := domain.Artifact{
		Kind:          req.Kind,
		Class:         res.Class,
		Namespace:     res.Namespace,
		FullNamespace: res.FullNamespace,
		Path:          res.Path,
		Stub:          stubName,
	}
	if req.Kind == domain.ArtifactFactory {
		art.Path = g.factoryPath(res.Class)
	}
	art.Exists = g.files.Exists(art.Path)

	raw, err := g.stubs.LoadStub(stubName)
	if err != nil {
		return domain.Artifact{}, err
	}

	vars := map[string]string{
		"namespace": g.names.Code(res.Namespace),
		"class":     res.Class,
	}
	for k, v := range extra {
		vars[k] = v
	}

	art.Content, err = template.Render(raw, vars)
	if err != nil {
		return domain.Artifact{}, err
	}
	return art, nil
}

func (g generator) factoryPath(class string) string {
	file := class + "." + g.names.Extension()
	if g.factoriesDir == "" {
		return file
	}
	return path.Join(g.factoriesDir, file)
}

// classVars returns the "namespaced<Prefix>", "<prefix>" and "<prefix>Variable"
// stub variables for a fully qualified class name.
func (g generator) classVars(prefix, fqn string) map[string]string {
	base := g.names.Basename(fqn)
	return map[string]string{
		"namespaced" + naming.CamelCase(prefix): g.names.Code(fqn),
		prefix:                                  base,
		prefix + "Variable":                     g.names.VariableName(base),
	}
}

// qualify returns the fully qualified name of raw as the given kind, and whether a
// file for it already exists. Qualified names pass through unchanged.
func (g generator) qualify(raw string, kind domain.ArtifactKind) (string, bool, error) {
	res, err := g.resolve(raw, kind)
	if err != nil {
		return "", false, err
	}
	return res.FullNamespace, g.files.Exists(res.Path), nil
}

// finish wraps art into a plan. An existing artifact without force is skipped: its
// content and dependencies are dropped.
func (g generator) finish(req domain.Request, art domain.Artifact, deps []domain.Dependency) domain.Plan {
	plan := domain.Plan{Request: req, Artifact: art, Dependencies: deps}
	if art.Exists && !req.Has(domain.FlagForce) {
		plan.Skipped = true
		plan.Artifact.Content = ""
		plan.Dependencies = nil
	}

	g.log.Debug("make.plan",
		"kind", string(art.Kind),
		"class", art.Class,
		"path", art.Path,
		"stub", art.Stub,
		"skipped", plan.Skipped,
		"dependencies", len(plan.Dependencies),
	)
	return plan
}

// accept checks the context and fills in or verifies the request kind.
func accept(ctx context.Context, op string, req domain.Request, want domain.ArtifactKind) (domain.Request, error) {
	if err := ctx.Err(); err != nil {
		return req, err
	}
	if req.Kind == "" {
		req.Kind = want
	}
	if req.Kind != want {
		return req, &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("expected %s request, got %s", want, req.Kind),
		}
	}
	return req, nil
}
