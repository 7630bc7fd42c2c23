package usecase

import (
	"context"
	"strings"

	"github.com/aalvaropc/domgen/internal/domain"
	"github.com/aalvaropc/domgen/internal/naming"
	"github.com/aalvaropc/domgen/internal/ports"
)

// MakeController plans a controller class. The stub depends on the parent, model,
// invokable, resource, api and base options.
type MakeController struct {
	generator
}

var _ ports.Generator = (*MakeController)(nil)

func NewMakeController(names *naming.Resolver, stubs ports.StubLoader, files ports.ArtifactLocator, opts ...Option) *MakeController {
	return &MakeController{generator: newGenerator(names, stubs, files, opts...)}
}

func (uc *MakeController) Execute(ctx context.Context, req domain.Request) (domain.Plan, error) {
	req, err := accept(ctx, "usecase.make_controller", req, domain.ArtifactController)
	if err != nil {
		return domain.Plan{}, err
	}
	res, err := uc.resolve(req.Name, req.Kind)
	if err != nil {
		return domain.Plan{}, err
	}

	vars := map[string]string{}
	var deps []domain.Dependency

	parent := req.Option(domain.OptParent)
	model := req.Option(domain.OptModel)

	if parent != "" {
		fqn, exists, err := uc.qualify(parent, domain.ArtifactModel)
		if err != nil {
			return domain.Plan{}, err
		}
		merge(vars, uc.classVars("parentModel", fqn))
		if !exists {
			deps = append(deps, domain.Dependency{
				Request: domain.Request{Kind: domain.ArtifactModel, Name: parent},
				Reason:  "parent model " + fqn + " does not exist",
			})
		}
		// Nested controllers always bind a child model.
		if model == "" {
			if model, err = uc.sibling(res, domain.ArtifactModel); err != nil {
				return domain.Plan{}, err
			}
		}
	}

	if model != "" {
		fqn, exists, err := uc.qualify(model, domain.ArtifactModel)
		if err != nil {
			return domain.Plan{}, err
		}
		merge(vars, uc.classVars("model", fqn))
		if !exists && !uc.declared(deps, fqn) {
			deps = append(deps, domain.Dependency{
				Request: domain.Request{Kind: domain.ArtifactModel, Name: model},
				Reason:  "model " + fqn + " does not exist",
			})
		}
	}

	service, err := uc.serviceName(req, res)
	if err != nil {
		return domain.Plan{}, err
	}
	fqn, exists, err := uc.qualify(service, domain.ArtifactService)
	if err != nil {
		return domain.Plan{}, err
	}
	merge(vars, uc.classVars("service", fqn))
	if !exists && uc.wantsService(req) {
		svc := domain.Request{Kind: domain.ArtifactService, Name: service}
		if m := req.Option(domain.OptModel); m != "" {
			svc = svc.WithOption(domain.OptModel, m)
		}
		deps = append(deps, domain.Dependency{
			Request: svc,
			Reason:  "service " + fqn + " does not exist",
		})
	}

	art, err := uc.build(req, res, controllerStub(req), vars)
	if err != nil {
		return domain.Plan{}, err
	}
	return uc.finish(req, art, deps), nil
}

// serviceName returns the service bound to the controller: "name/X" for --service X,
// or the controller name itself.
func (uc *MakeController) serviceName(req domain.Request, res domain.Resolution) (string, error) {
	s := req.Option(domain.OptService)
	if s == "" || s == req.Name {
		return uc.sibling(res, domain.ArtifactService)
	}
	if uc.names.Qualified(req.Name) {
		return res.First + "/" + s, nil
	}
	return strings.TrimRight(req.Name, "/") + "/" + s, nil
}

func controllerStub(req domain.Request) string {
	var stub string
	switch {
	case req.Option(domain.OptParent) != "":
		stub = "controller.nested"
	case req.Option(domain.OptModel) != "":
		stub = "controller.model"
	case req.Has(domain.FlagInvokable):
		stub = "controller.invokable"
	case req.Has(domain.FlagResource):
		stub = "controller"
	}

	if req.Has(domain.FlagAPI) {
		switch {
		case stub == "":
			stub = "controller.api"
		case !req.Has(domain.FlagInvokable):
			stub += ".api"
		}
	}

	if req.Has(domain.FlagBase) {
		stub = "controller.base"
	}
	if stub == "" {
		stub = "controller.plain"
	}
	return stub
}

// wantsService reports whether the controller is bound to a service class.
func (uc *MakeController) wantsService(req domain.Request) bool {
	return req.Option(domain.OptService) != "" || req.Has(domain.FlagService) || req.Has(domain.FlagBase)
}

// declared reports whether deps already holds a model with the given FQN.
func (uc *MakeController) declared(deps []domain.Dependency, fqn string) bool {
	for _, d := range deps {
		if d.Request.Kind != domain.ArtifactModel {
			continue
		}
		if other, err := uc.resolve(d.Request.Name, domain.ArtifactModel); err == nil && other.FullNamespace == fqn {
			return true
		}
	}
	return false
}

func merge(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}
