package ports

// ArtifactLocator answers whether a generated file already exists in the project.
// Paths are slash-delimited and relative to the project root.
type ArtifactLocator interface {
	Exists(relPath string) bool
}
