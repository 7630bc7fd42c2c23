package usecase

import (
	"context"

	"github.com/aalvaropc/domgen/internal/domain"
	"github.com/aalvaropc/domgen/internal/naming"
	"github.com/aalvaropc/domgen/internal/ports"
)

// MakeService plans a service class, optionally bound to a model.
type MakeService struct {
	generator
}

var _ ports.Generator = (*MakeService)(nil)

func NewMakeService(names *naming.Resolver, stubs ports.StubLoader, files ports.ArtifactLocator, opts ...Option) *MakeService {
	return &MakeService{generator: newGenerator(names, stubs, files, opts...)}
}

func (uc *MakeService) Execute(ctx context.Context, req domain.Request) (domain.Plan, error) {
	req, err := accept(ctx, "usecase.make_service", req, domain.ArtifactService)
	if err != nil {
		return domain.Plan{}, err
	}

	res, err := uc.resolve(req.Name, req.Kind)
	if err != nil {
		return domain.Plan{}, err
	}

	stub := "service"
	vars := map[string]string{}
	var deps []domain.Dependency

	if model := req.Option(domain.OptModel); model != "" {
		fqn, exists, err := uc.qualify(model, domain.ArtifactModel)
		if err != nil {
			return domain.Plan{}, err
		}
		stub = "service.model"
		vars = uc.classVars("model", fqn)
		if !exists {
			deps = append(deps, domain.Dependency{
				Request: domain.Request{Kind: domain.ArtifactModel, Name: model},
				Reason:  "model " + fqn + " does not exist",
			})
		}
	}

	art, err := uc.build(req, res, stub, vars)
	if err != nil {
		return domain.Plan{}, err
	}
	return uc.finish(req, art, deps), nil
}
