package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/domgen/internal/domain"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

// --- resolve ---

func TestResolve_JSON(t *testing.T) {
	ws := t.TempDir()

	out, err := runCLI(t, "-w", ws, "resolve", "Billing/Invoice", "--kind", "controller", "--format", "json")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	var res domain.Resolution
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if res.FullNamespace != "Domains.Billing.Controllers.InvoiceController" {
		t.Fatalf("unexpected FQN %q", res.FullNamespace)
	}
	if res.Path != "domains/Billing/Controllers/InvoiceController.php" {
		t.Fatalf("unexpected path %q", res.Path)
	}
}

func TestResolve_Field(t *testing.T) {
	ws := t.TempDir()

	out, err := runCLI(t, "-w", ws, "resolve", "Billing/Invoice", "--field", "$.path", "--field", "$.class")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if out != "domains/Billing/Models/Invoice.php\nInvoice\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestResolve_ProjectConfigAndFlags(t *testing.T) {
	ws := t.TempDir()
	writeFile(t, filepath.Join(ws, "domgen.yaml"), `domgen:
  naming:
    root_namespace: "Src."
    extension: inc
`)

	out, err := runCLI(t, "-w", ws, "resolve", "Billing/Invoice", "--field", "$.path")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if strings.TrimSpace(out) != "src/Billing/Models/Invoice.inc" {
		t.Fatalf("unexpected path %q", out)
	}

	out, err = runCLI(t, "-w", ws, "--root-namespace", "App", "--ext", ".php", "resolve", "Billing/Invoice", "--field", "$.full_namespace", "--field", "$.path")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if out != "App.Billing.Models.Invoice\napp/Billing/Models/Invoice.php\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestResolve_Pretty(t *testing.T) {
	out, err := runCLI(t, "-w", t.TempDir(), "resolve", "Invoice", "--kind", "Service")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	for _, want := range []string{"Service Invoice", "Domains.Invoice.Services.InvoiceService", "invoiceService"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestResolve_Errors(t *testing.T) {
	ws := t.TempDir()

	_, err := runCLI(t, "-w", ws, "resolve", "Bad-Name")
	if !errors.Is(err, domain.ErrInvalidName) {
		t.Fatalf("expected invalid name, got %v", err)
	}

	_, err = runCLI(t, "-w", ws, "resolve", "Controller", "--kind", "Controller")
	if !errors.Is(err, domain.ErrEmptyIdentifier) {
		t.Fatalf("expected empty identifier, got %v", err)
	}

	if _, err := runCLI(t, "-w", ws, "resolve", "Invoice", "--format", "xml"); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}

// --- make ---

func TestMakeModel_FollowJSON(t *testing.T) {
	ws := t.TempDir()

	out, err := runCLI(t, "-w", ws, "make", "model", "Billing/Invoice", "--all", "--follow", "--format", "json")
	if err != nil {
		t.Fatalf("make model: %v", err)
	}

	var plans []domain.Plan
	if err := json.Unmarshal([]byte(out), &plans); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(plans) != 4 {
		t.Fatalf("expected 4 plans, got %d", len(plans))
	}
	if plans[1].Artifact.Path != "database/factories/InvoiceFactory.php" {
		t.Fatalf("unexpected factory path %q", plans[1].Artifact.Path)
	}
}

func TestMakeModel_PrettyListsExternal(t *testing.T) {
	out, err := runCLI(t, "-w", t.TempDir(), "make", "model", "Invoice", "-m", "-s")
	if err != nil {
		t.Fatalf("make model: %v", err)
	}
	for _, want := range []string{
		"[create]",
		"Domains.Invoice.Models.Invoice",
		"Migration create_invoices_table",
		"Seeder InvoiceSeeder",
		"Run the host framework generators for:",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMakeController_ShowContent(t *testing.T) {
	out, err := runCLI(t, "-w", t.TempDir(), "make", "controller", "Billing/InvoiceController", "--model", "Billing/Invoice", "--show")
	if err != nil {
		t.Fatalf("make controller: %v", err)
	}
	for _, want := range []string{
		"controller.model",
		"class InvoiceController extends Controller",
		`use Domains\Billing\Models\Invoice;`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMakeService_ExistingIsSkipped(t *testing.T) {
	ws := t.TempDir()
	writeFile(t, filepath.Join(ws, "domains", "Billing", "Services", "InvoiceService.php"), "<?php\n")

	out, err := runCLI(t, "-w", ws, "make", "service", "Billing/Invoice")
	if err != nil {
		t.Fatalf("make service: %v", err)
	}
	if !strings.Contains(out, "[skip]") {
		t.Fatalf("expected skip marker:\n%s", out)
	}

	out, err = runCLI(t, "-w", ws, "make", "service", "Billing/Invoice", "--force")
	if err != nil {
		t.Fatalf("make service --force: %v", err)
	}
	if !strings.Contains(out, "[overwrite]") {
		t.Fatalf("expected overwrite marker:\n%s", out)
	}
}

func TestMakeFactory_FieldQuery(t *testing.T) {
	ws := t.TempDir()
	writeFile(t, filepath.Join(ws, "domgen.yaml"), "domgen:\n  paths:\n    factories_dir: db/factories\n")

	out, err := runCLI(t, "-w", ws, "make", "factory", "InvoiceFactory", "--field", "$[0].artifact.path")
	if err != nil {
		t.Fatalf("make factory: %v", err)
	}
	if strings.TrimSpace(out) != "db/factories/InvoiceFactory.php" {
		t.Fatalf("unexpected output %q", out)
	}
}

// --- stubs ---

func TestStubsList_ReportsOverrides(t *testing.T) {
	ws := t.TempDir()
	writeFile(t, filepath.Join(ws, "stubs", "model.stub"), "namespace {{ namespace }}; class {{ class }} {}\n")

	out, err := runCLI(t, "-w", ws, "stubs", "list", "--format", "json")
	if err != nil {
		t.Fatalf("stubs list: %v", err)
	}

	var refs []domain.StubRef
	if err := json.Unmarshal([]byte(out), &refs); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(refs) != 14 {
		t.Fatalf("expected 14 stubs, got %d", len(refs))
	}
	for _, r := range refs {
		if (r.Name == "model") != r.Overridden {
			t.Fatalf("unexpected override state: %+v", r)
		}
	}
}

func TestStubsList_YAML(t *testing.T) {
	out, err := runCLI(t, "-w", t.TempDir(), "stubs", "list", "--format", "yaml")
	if err != nil {
		t.Fatalf("stubs list: %v", err)
	}
	if !strings.Contains(out, "- name: controller.api") {
		t.Fatalf("unexpected yaml:\n%s", out)
	}
}

// --- version / helpers ---

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "domgen ") {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestApplyFlags(t *testing.T) {
	cfg := domain.DefaultConfig()

	got := applyFlags(cfg, &globalFlags{ext: " .inc "})
	if got.Naming.Extension != "inc" || got.Naming.RootNamespace != "Domains." {
		t.Fatalf("unexpected naming: %+v", got.Naming)
	}

	got = applyFlags(cfg, &globalFlags{rootNamespaceSet: true})
	if got.Naming.RootNamespace != "" {
		t.Fatalf("expected root cleared, got %q", got.Naming.RootNamespace)
	}
}

func TestRequestFlag(t *testing.T) {
	if requestFlag("with-service") != domain.FlagService {
		t.Fatalf("with-service should map to the service flag")
	}
	if requestFlag(domain.FlagAPI) != domain.FlagAPI {
		t.Fatalf("other flags map to themselves")
	}
}

func TestResolveWorkspaceRoot_Explicit(t *testing.T) {
	ws := t.TempDir()

	root, found, err := resolveWorkspaceRoot(ws)
	if err != nil || found || root != ws {
		t.Fatalf("got root=%q found=%v err=%v", root, found, err)
	}

	writeFile(t, filepath.Join(ws, "domgen.yaml"), "domgen: {}\n")
	_, found, err = resolveWorkspaceRoot(ws)
	if err != nil || !found {
		t.Fatalf("expected found project, got found=%v err=%v", found, err)
	}
}
