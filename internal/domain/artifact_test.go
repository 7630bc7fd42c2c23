package domain

import "testing"

func TestParseArtifactKind(t *testing.T) {
	cases := []struct {
		in   string
		want ArtifactKind
		ok   bool
	}{
		{"model", ArtifactModel, true},
		{"Controller", ArtifactController, true},
		{" SERVICE ", ArtifactService, true},
		{"factory", ArtifactFactory, true},
		{"seeder", ArtifactSeeder, true},
		{"policy", "", false},
	}
	for _, c := range cases {
		got, ok := ParseArtifactKind(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseArtifactKind(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestArtifactKindExternal(t *testing.T) {
	if !ArtifactMigration.External() || !ArtifactSeeder.External() {
		t.Fatalf("expected migration and seeder to be external")
	}
	if ArtifactModel.External() {
		t.Fatalf("expected model to be internal")
	}
	dep := Dependency{Request: Request{Kind: ArtifactSeeder}}
	if !dep.External() {
		t.Fatalf("expected seeder dependency to be external")
	}
}

func TestRequestCopyOnWrite(t *testing.T) {
	base := Request{Kind: ArtifactModel, Name: "Invoice"}

	withAPI := base.WithFlag(FlagAPI, true)
	if base.Has(FlagAPI) {
		t.Fatalf("expected base request to remain unchanged")
	}
	if !withAPI.Has(FlagAPI) {
		t.Fatalf("expected api flag on copy")
	}
	if withAPI.WithFlag(FlagAPI, false).Has(FlagAPI) {
		t.Fatalf("expected flag to be cleared")
	}

	withModel := base.WithOption(OptModel, " Billing/Invoice ")
	if base.Option(OptModel) != "" {
		t.Fatalf("expected base options to remain unchanged")
	}
	if withModel.Option(OptModel) != "Billing/Invoice" {
		t.Fatalf("expected trimmed option, got %q", withModel.Option(OptModel))
	}
	if _, ok := withModel.WithOption(OptModel, "  ").Options[OptModel]; ok {
		t.Fatalf("expected blank option to be dropped")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Naming.RootNamespace != "Domains." {
		t.Fatalf("expected root namespace Domains., got %q", cfg.Naming.RootNamespace)
	}
	if cfg.Naming.Separator != "." || cfg.Naming.Extension != "php" {
		t.Fatalf("unexpected naming defaults: %+v", cfg.Naming)
	}
	if len(cfg.Naming.ReservedWords) != 24 || cfg.Naming.ReservedWords[len(cfg.Naming.ReservedWords)-1] != "Factory" {
		t.Fatalf("unexpected reserved words: %v", cfg.Naming.ReservedWords)
	}

	// Copies are independent.
	words := DefaultReservedWords()
	words[0] = "Changed"
	if DefaultReservedWords()[0] != "Console" {
		t.Fatalf("expected fresh copy of reserved words")
	}
	if cfg.Paths.StubsDir != "stubs" || cfg.Paths.FactoriesDir != "database/factories" {
		t.Fatalf("unexpected path defaults: %+v", cfg.Paths)
	}
}
