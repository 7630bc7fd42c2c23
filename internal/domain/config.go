package domain

// Config represents the domgen configuration loaded from domgen.yaml.
type Config struct {
	Naming NamingConfig
	Paths  PathsConfig
}

// NamingConfig drives name and namespace derivation.
type NamingConfig struct {
	// RootNamespace is prepended to every generated namespace (e.g. "Domains.").
	RootNamespace string
	// Separator is the canonical namespace separator. Raw names may also use "/".
	Separator string
	// ReservedWords are stripped from raw names, in order.
	ReservedWords []string
	// Extension is the source file extension, without the dot.
	Extension string
	// CodeSeparator replaces Separator when a namespace is written into generated source.
	CodeSeparator string
}

type PathsConfig struct {
	StubsDir     string
	FactoriesDir string
}

// DefaultReservedWords returns a fresh copy of the built-in reserved word list.
// Order matters: "Notification" is stripped before "NotificationTable".
func DefaultReservedWords() []string {
	return []string{
		"Console", "Controller", "Service", "Events", "Exception", "Request", "Jobs", "Listeners", "Mail",
		"Middleware", "Pipe", "Model", "Policy", "Provider", "Serve", "Test", "Resource", "Notification",
		"NotificationTable", "Channel", "SchemaDump", "Cast", "Rule", "Factory",
	}
}

// DefaultNamingConfig returns the built-in naming rules.
func DefaultNamingConfig() NamingConfig {
	return NamingConfig{
		RootNamespace: "Domains.",
		Separator:     ".",
		ReservedWords: DefaultReservedWords(),
		Extension:     "php",
		CodeSeparator: `\`,
	}
}

// DefaultConfig provides sane defaults if domgen.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Naming: DefaultNamingConfig(),
		Paths: PathsConfig{
			StubsDir:     "stubs",
			FactoriesDir: "database/factories",
		},
	}
}
