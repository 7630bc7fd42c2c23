package stubfs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/domgen/internal/domain"
)

var embeddedStubs = []string{
	"controller",
	"controller.api",
	"controller.base",
	"controller.invokable",
	"controller.model",
	"controller.model.api",
	"controller.nested",
	"controller.nested.api",
	"controller.plain",
	"factory",
	"model",
	"model.pivot",
	"service",
	"service.model",
}

func TestLoadStub_Embedded(t *testing.T) {
	l := NewLoader(t.TempDir())

	for _, name := range embeddedStubs {
		s, err := l.LoadStub(name)
		if err != nil {
			t.Fatalf("LoadStub(%q): %v", name, err)
		}
		if !strings.Contains(s, "{{ namespace }}") || !strings.Contains(s, "{{ class }}") {
			t.Errorf("stub %q is missing namespace/class placeholders", name)
		}
	}
}

func TestLoadStub_OverrideWins(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "stubs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "model.stub"), []byte("custom {{ class }}"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(root)
	s, err := l.LoadStub("model")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "custom {{ class }}" {
		t.Fatalf("expected override content, got %q", s)
	}

	// Other stubs still come from the binary.
	if _, err := l.LoadStub("service"); err != nil {
		t.Fatalf("expected embedded fallback, got %v", err)
	}
}

func TestLoadStub_CustomDirAndDisabled(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "resources", "stubs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "service.stub"), []byte("mine"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := NewLoader(root, WithStubsDir("resources/stubs")).LoadStub("service")
	if err != nil || s != "mine" {
		t.Fatalf("expected override from custom dir, got %q, %v", s, err)
	}

	s, err = NewLoader(root, WithStubsDir("")).LoadStub("service")
	if err != nil || s == "mine" {
		t.Fatalf("expected embedded stub when overrides are disabled, got %q, %v", s, err)
	}
}

func TestLoadStub_NotFound(t *testing.T) {
	_, err := NewLoader(t.TempDir()).LoadStub("policy")
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestLoadStub_RejectsPaths(t *testing.T) {
	for _, name := range []string{"", "../model", "sub/model", `sub\model`} {
		_, err := NewLoader(t.TempDir()).LoadStub(name)
		if !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Errorf("LoadStub(%q): expected KindInvalidConfig, got %v", name, err)
		}
	}
}

func TestListStubs(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "stubs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{"model.stub", "policy.stub", "README.md"} {
		if err := os.WriteFile(filepath.Join(dir, f), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	refs, err := NewLoader(root).ListStubs()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != len(embeddedStubs)+1 {
		t.Fatalf("expected %d stubs, got %d: %+v", len(embeddedStubs)+1, len(refs), refs)
	}

	byName := map[string]domain.StubRef{}
	for i, r := range refs {
		if i > 0 && refs[i-1].Name >= r.Name {
			t.Fatalf("expected sorted output, got %q before %q", refs[i-1].Name, r.Name)
		}
		byName[r.Name] = r
	}
	if !byName["model"].Overridden || byName["model"].Path == "" {
		t.Errorf("expected model to be overridden: %+v", byName["model"])
	}
	if !byName["policy"].Overridden {
		t.Errorf("expected custom policy stub to be listed")
	}
	if byName["service"].Overridden {
		t.Errorf("expected service to be embedded")
	}
	if got := byName["service.model"].Placeholders; strings.Join(got, ",") != "class,model,modelVariable,namespace,namespacedModel" {
		t.Errorf("unexpected service.model placeholders: %v", got)
	}
	if len(byName["model"].Placeholders) != 0 {
		t.Errorf("override without tokens should list none: %v", byName["model"].Placeholders)
	}
}

func TestListStubs_NoOverrideDir(t *testing.T) {
	refs, err := NewLoader(t.TempDir()).ListStubs()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != len(embeddedStubs) {
		t.Fatalf("expected %d stubs, got %d", len(embeddedStubs), len(refs))
	}
}
