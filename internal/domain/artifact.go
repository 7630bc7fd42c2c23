package domain

import "strings"

// ArtifactKind is the category of artifact being generated. It drives suffixing and
// pluralization rules.
type ArtifactKind string

const (
	ArtifactModel      ArtifactKind = "Model"
	ArtifactController ArtifactKind = "Controller"
	ArtifactService    ArtifactKind = "Service"
	ArtifactFactory    ArtifactKind = "Factory"

	// Produced by the host framework's own generators; domgen only declares them.
	ArtifactMigration ArtifactKind = "Migration"
	ArtifactSeeder    ArtifactKind = "Seeder"
)

// External reports whether domgen has no generator for the kind.
func (k ArtifactKind) External() bool {
	return k == ArtifactMigration || k == ArtifactSeeder
}

// ParseArtifactKind maps user input ("model", "Controller") to a known kind.
func ParseArtifactKind(s string) (ArtifactKind, bool) {
	for _, k := range []ArtifactKind{
		ArtifactModel, ArtifactController, ArtifactService, ArtifactFactory, ArtifactMigration, ArtifactSeeder,
	} {
		if strings.EqualFold(string(k), strings.TrimSpace(s)) {
			return k, true
		}
	}
	return "", false
}

// Generator flag and option names shared by requests and dependencies.
const (
	FlagAll        = "all"
	FlagAPI        = "api"
	FlagBase       = "base"
	FlagController = "controller"
	FlagFactory    = "factory"
	FlagForce      = "force"
	FlagInvokable  = "invokable"
	FlagMigration  = "migration"
	FlagPivot      = "pivot"
	FlagResource   = "resource"
	FlagSeed       = "seed"
	FlagService    = "service"

	OptModel   = "model"
	OptParent  = "parent"
	OptService = "service"
	OptTable   = "create"
)

// Request describes one generator invocation.
type Request struct {
	Kind    ArtifactKind      `json:"kind" yaml:"kind"`
	Name    string            `json:"name" yaml:"name"`
	Flags   map[string]bool   `json:"flags,omitempty" yaml:"flags,omitempty"`
	Options map[string]string `json:"options,omitempty" yaml:"options,omitempty"`
}

// Has reports whether a boolean flag is set.
func (r Request) Has(flag string) bool {
	return r.Flags[flag]
}

// Option returns a trimmed option value ("" when unset).
func (r Request) Option(key string) string {
	return strings.TrimSpace(r.Options[key])
}

// WithFlag returns a copy of the request with the flag set.
func (r Request) WithFlag(flag string, on bool) Request {
	out := r
	out.Flags = make(map[string]bool, len(r.Flags)+1)
	for k, v := range r.Flags {
		out.Flags[k] = v
	}
	if on {
		out.Flags[flag] = true
	} else {
		delete(out.Flags, flag)
	}
	return out
}

// WithOption returns a copy of the request with the option set. Empty values are dropped.
func (r Request) WithOption(key, value string) Request {
	out := r
	out.Options = make(map[string]string, len(r.Options)+1)
	for k, v := range r.Options {
		out.Options[k] = v
	}
	if strings.TrimSpace(value) == "" {
		delete(out.Options, key)
	} else {
		out.Options[key] = value
	}
	return out
}

// Artifact is one rendered source file. Content is empty for skipped artifacts.
type Artifact struct {
	Kind          ArtifactKind `json:"kind" yaml:"kind"`
	Class         string       `json:"class" yaml:"class"`
	Namespace     string       `json:"namespace" yaml:"namespace"`
	FullNamespace string       `json:"full_namespace" yaml:"full_namespace"`
	Path          string       `json:"path" yaml:"path"`
	Stub          string       `json:"stub" yaml:"stub"`
	Content       string       `json:"content,omitempty" yaml:"content,omitempty"`
	Exists        bool         `json:"exists" yaml:"exists"`
}

// Dependency is an additional artifact a plan needs. The orchestrator decides whether
// to build it.
type Dependency struct {
	Request Request `json:"request" yaml:"request"`
	Reason  string  `json:"reason" yaml:"reason"`
}

// External reports whether the dependency must be produced by the host framework.
func (d Dependency) External() bool {
	return d.Request.Kind.External()
}

// Plan is the output of a single generator run.
type Plan struct {
	Request      Request      `json:"request" yaml:"request"`
	Artifact     Artifact     `json:"artifact" yaml:"artifact"`
	Skipped      bool         `json:"skipped" yaml:"skipped"`
	Dependencies []Dependency `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// Resolution bundles every derived string for a raw name and kind.
type Resolution struct {
	Raw           string `json:"raw" yaml:"raw"`
	Kind          string `json:"kind" yaml:"kind"`
	Normalized    string `json:"normalized" yaml:"normalized"`
	First         string `json:"first" yaml:"first"`
	Last          string `json:"last" yaml:"last"`
	HasSub        bool   `json:"has_sub" yaml:"has_sub"`
	SubLevel      int    `json:"sub_level" yaml:"sub_level"`
	Namespace     string `json:"namespace" yaml:"namespace"`
	FullNamespace string `json:"full_namespace" yaml:"full_namespace"`
	Class         string `json:"class" yaml:"class"`
	Variable      string `json:"variable" yaml:"variable"`
	Path          string `json:"path" yaml:"path"`
}

// StubRef is a lightweight reference to an available stub.
type StubRef struct {
	Name       string `json:"name" yaml:"name"`
	Overridden bool   `json:"overridden" yaml:"overridden"`
	Path       string `json:"path,omitempty" yaml:"path,omitempty"`

	// Placeholders are the variables the stub references, sorted.
	Placeholders []string `json:"placeholders,omitempty" yaml:"placeholders,omitempty"`
}
