package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesJSONLinesUnderProject(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}

	want := filepath.Join(root, ".domgen", "logs", "domgen.log")
	if Path() != want {
		t.Fatalf("expected path %q, got %q", want, Path())
	}
	if err := IsReady(); err != nil {
		t.Fatalf("expected ready logger: %v", err)
	}

	L().Info("make.done", "kind", "model")
	L().Debug("hidden")

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if IsReady() == nil {
		t.Fatalf("expected logger reset after cleanup")
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines (init + info), got %d: %s", len(lines), b)
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("line is not JSON: %v", err)
	}
	if rec["msg"] != "make.done" || rec["kind"] != "model" {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestSetup_EmptyRootDiscards(t *testing.T) {
	cleanup, err := Setup(Config{})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer func() { _ = cleanup() }()

	if IsReady() == nil {
		t.Fatalf("expected discard logger for empty root")
	}
	L().Info("nothing")
}

func TestNew_DebugLevel(t *testing.T) {
	var buf bytes.Buffer

	New(&buf, false).Debug("quiet")
	if buf.Len() != 0 {
		t.Fatalf("expected debug suppressed, got %s", buf.String())
	}

	New(&buf, true).Debug("loud")
	if !strings.Contains(buf.String(), `"msg":"loud"`) || !strings.Contains(buf.String(), `"source"`) {
		t.Fatalf("expected debug record with source, got %s", buf.String())
	}
}
