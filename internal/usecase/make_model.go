package usecase

import (
	"context"

	"github.com/aalvaropc/domgen/internal/domain"
	"github.com/aalvaropc/domgen/internal/naming"
	"github.com/aalvaropc/domgen/internal/ports"
)

// MakeModel plans a model class and declares the companion artifacts its flags ask for.
type MakeModel struct {
	generator
}

var _ ports.Generator = (*MakeModel)(nil)

func NewMakeModel(names *naming.Resolver, stubs ports.StubLoader, files ports.ArtifactLocator, opts ...Option) *MakeModel {
	return &MakeModel{generator: newGenerator(names, stubs, files, opts...)}
}

func (uc *MakeModel) Execute(ctx context.Context, req domain.Request) (domain.Plan, error) {
	req, err := accept(ctx, "usecase.make_model", req, domain.ArtifactModel)
	if err != nil {
		return domain.Plan{}, err
	}

	res, err := uc.resolve(req.Name, req.Kind)
	if err != nil {
		return domain.Plan{}, err
	}

	pivot := req.Has(domain.FlagPivot)
	stub := "model"
	if pivot {
		stub = "model.pivot"
	}

	art, err := uc.build(req, res, stub, map[string]string{"table": tableName(res.Last, pivot)})
	if err != nil {
		return domain.Plan{}, err
	}

	return uc.finish(req, art, uc.dependencies(req, res)), nil
}

func (uc *MakeModel) dependencies(req domain.Request, res domain.Resolution) []domain.Dependency {
	if req.Has(domain.FlagAll) || req.Has(domain.FlagBase) {
		for _, f := range []string{
			domain.FlagFactory, domain.FlagSeed, domain.FlagMigration,
			domain.FlagController, domain.FlagResource, domain.FlagService,
		} {
			req = req.WithFlag(f, true)
		}
	}

	name := func(kind domain.ArtifactKind) string { return uc.companion(res, kind) }
	modelFQN := res.FullNamespace

	var deps []domain.Dependency

	if req.Has(domain.FlagFactory) {
		deps = append(deps, domain.Dependency{
			Request: domain.Request{
				Kind:    domain.ArtifactFactory,
				Name:    name(domain.ArtifactFactory),
				Options: map[string]string{domain.OptModel: modelFQN},
			},
			Reason: "factory requested for model",
		})
	}

	if req.Has(domain.FlagMigration) {
		table := tableName(res.Last, req.Has(domain.FlagPivot))
		deps = append(deps, domain.Dependency{
			Request: domain.Request{
				Kind:    domain.ArtifactMigration,
				Name:    "create_" + table + "_table",
				Options: map[string]string{domain.OptTable: table},
			},
			Reason: "migration requested for model",
		})
	}

	if req.Has(domain.FlagSeed) {
		deps = append(deps, domain.Dependency{
			Request: domain.Request{
				Kind: domain.ArtifactSeeder,
				Name: res.Last + string(domain.ArtifactSeeder),
			},
			Reason: "seeder requested for model",
		})
	}

	if req.Has(domain.FlagController) || req.Has(domain.FlagResource) || req.Has(domain.FlagAPI) {
		ctrl := domain.Request{
			Kind: domain.ArtifactController,
			Name: name(domain.ArtifactController),
		}
		if req.Has(domain.FlagResource) || req.Has(domain.FlagAPI) {
			ctrl = ctrl.WithOption(domain.OptModel, modelFQN)
		}
		if req.Has(domain.FlagAPI) {
			ctrl = ctrl.WithFlag(domain.FlagAPI, true)
		}
		if req.Has(domain.FlagBase) {
			ctrl = ctrl.WithFlag(domain.FlagBase, true)
		}
		deps = append(deps, domain.Dependency{Request: ctrl, Reason: "controller requested for model"})
	}

	if req.Has(domain.FlagService) {
		deps = append(deps, domain.Dependency{
			Request: domain.Request{
				Kind:    domain.ArtifactService,
				Name:    name(domain.ArtifactService),
				Options: map[string]string{domain.OptModel: modelFQN},
			},
			Reason: "service requested for model",
		})
	}

	return deps
}

// companion names a kind artifact living next to the model: "Billing/Invoice" gives
// "Billing/InvoiceFactory". When that short form would resolve to another class, as
// with "Billing/ModelItem" losing its "Model", the fully qualified name is used.
func (uc *MakeModel) companion(res domain.Resolution, kind domain.ArtifactKind) string {
	stem := res.First
	if res.HasSub {
		stem = res.First + "/" + res.Last
	}
	short := stem + string(kind)

	fqn, err := uc.names.Join(res.First, res.Last, string(kind))
	if err != nil {
		return short
	}
	if got, err := uc.resolve(short, kind); err == nil && got.FullNamespace == fqn {
		return short
	}
	return fqn
}

// tableName is the snake-cased plural of the model class; pivot tables stay singular.
func tableName(class string, pivot bool) string {
	if pivot {
		return naming.Singularize(naming.TableName(class))
	}
	return naming.TableName(class)
}
