package ports

// WorkspaceLocator finds a domgen project root starting from an arbitrary directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}
