package usecase

import (
	"context"

	"github.com/aalvaropc/domgen/internal/domain"
	"github.com/aalvaropc/domgen/internal/naming"
	"github.com/aalvaropc/domgen/internal/ports"
)

// MakeFactory plans a model factory under the factories directory.
type MakeFactory struct {
	generator
}

var _ ports.Generator = (*MakeFactory)(nil)

func NewMakeFactory(names *naming.Resolver, stubs ports.StubLoader, files ports.ArtifactLocator, opts ...Option) *MakeFactory {
	return &MakeFactory{generator: newGenerator(names, stubs, files, opts...)}
}

func (uc *MakeFactory) Execute(ctx context.Context, req domain.Request) (domain.Plan, error) {
	req, err := accept(ctx, "usecase.make_factory", req, domain.ArtifactFactory)
	if err != nil {
		return domain.Plan{}, err
	}

	res, err := uc.resolve(req.Name, req.Kind)
	if err != nil {
		return domain.Plan{}, err
	}

	// Without --model the factory targets the model it is named after.
	model := req.Option(domain.OptModel)
	if model == "" {
		if model, err = uc.sibling(res, domain.ArtifactModel); err != nil {
			return domain.Plan{}, err
		}
	}
	fqn, exists, err := uc.qualify(model, domain.ArtifactModel)
	if err != nil {
		return domain.Plan{}, err
	}

	var deps []domain.Dependency
	if !exists {
		deps = append(deps, domain.Dependency{
			Request: domain.Request{Kind: domain.ArtifactModel, Name: model},
			Reason:  "model " + fqn + " does not exist",
		})
	}

	art, err := uc.build(req, res, "factory", uc.classVars("model", fqn))
	if err != nil {
		return domain.Plan{}, err
	}
	return uc.finish(req, art, deps), nil
}
