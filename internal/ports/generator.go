package ports

import (
	"context"

	"github.com/aalvaropc/domgen/internal/domain"
)

// Generator produces the plan for one artifact kind.
type Generator interface {
	Execute(ctx context.Context, req domain.Request) (domain.Plan, error)
}
