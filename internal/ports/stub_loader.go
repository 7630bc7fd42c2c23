package ports

import "github.com/aalvaropc/domgen/internal/domain"

// StubLoader loads stub templates by name (e.g. "controller.api").
type StubLoader interface {
	LoadStub(name string) (string, error)
	ListStubs() ([]domain.StubRef, error)
}
