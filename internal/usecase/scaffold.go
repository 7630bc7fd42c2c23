package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aalvaropc/domgen/internal/domain"
	"github.com/aalvaropc/domgen/internal/ports"
)

// MaxDepth bounds how far Scaffold follows dependencies from the root request.
const MaxDepth = 4

// Scaffold runs the generator for a root request and, when asked, for the internal
// dependencies its plans declare.
type Scaffold struct {
	generators map[domain.ArtifactKind]ports.Generator
	log        *slog.Logger
}

func NewScaffold(generators map[domain.ArtifactKind]ports.Generator, log *slog.Logger) *Scaffold {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Scaffold{generators: generators, log: log}
}

type queued struct {
	dep   domain.Dependency
	depth int
}

// Execute returns the plans in breadth-first order. Plans that target a path already
// planned are dropped. External dependencies stay declared on their plan and are
// never executed.
func (uc *Scaffold) Execute(ctx context.Context, root domain.Dependency, follow bool) ([]domain.Plan, error) {
	if root.External() {
		return nil, &domain.OpError{
			Op:   "usecase.scaffold",
			Kind: domain.KindInvalidConfig,
			Path: root.Request.Name,
			Err:  fmt.Errorf("%s artifacts are produced by the host framework", root.Request.Kind),
		}
	}

	var (
		plans []domain.Plan
		seen  = map[string]bool{}
		queue = []queued{{dep: root}}
	)

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return plans, err
		}

		cur := queue[0]
		queue = queue[1:]

		gen, ok := uc.generators[cur.dep.Request.Kind]
		if !ok {
			return plans, &domain.OpError{
				Op:   "usecase.scaffold",
				Kind: domain.KindNotFound,
				Path: string(cur.dep.Request.Kind),
				Err:  domain.ErrNotFound,
			}
		}

		plan, err := gen.Execute(ctx, cur.dep.Request)
		if err != nil {
			return plans, err
		}
		if seen[plan.Artifact.Path] {
			uc.log.Debug("scaffold.duplicate", "path", plan.Artifact.Path, "reason", cur.dep.Reason)
			continue
		}
		seen[plan.Artifact.Path] = true
		plans = append(plans, plan)

		if !follow || cur.depth >= MaxDepth {
			continue
		}
		for _, d := range plan.Dependencies {
			if d.External() {
				continue
			}
			queue = append(queue, queued{dep: d, depth: cur.depth + 1})
		}
	}

	uc.log.Info("scaffold.done",
		"kind", string(root.Request.Kind),
		"name", root.Request.Name,
		"follow", follow,
		"plans", len(plans),
	)
	return plans, nil
}

// External returns every external dependency declared by plans, in order.
func External(plans []domain.Plan) []domain.Dependency {
	var out []domain.Dependency
	for _, p := range plans {
		for _, d := range p.Dependencies {
			if d.External() {
				out = append(out, d)
			}
		}
	}
	return out
}
