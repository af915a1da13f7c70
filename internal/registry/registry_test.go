package registry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/compbench/internal/appconfig"
)

func TestDefaultCases(t *testing.T) {
	cases := Default()
	if len(cases) != 4 {
		t.Fatalf("expected 4 built-in cases, got %d", len(cases))
	}

	seen := make(map[string]bool)
	for _, tc := range cases {
		if strings.TrimSpace(tc.Name) == "" {
			t.Fatal("case with empty name")
		}
		if strings.TrimSpace(tc.Source) == "" {
			t.Fatalf("case %q has empty source", tc.Name)
		}
		if seen[tc.Name] {
			t.Fatalf("duplicate case name %q", tc.Name)
		}
		seen[tc.Name] = true
	}

	if cases[0].Name != "Basic Switch (3 cases)" {
		t.Fatalf("unexpected first case: %q", cases[0].Name)
	}
}

func TestDefaultOrderIsStable(t *testing.T) {
	first := Default()
	second := Default()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("case %d differs between calls", i)
		}
	}
}

func TestManyCasesSourceContainsEveryCase(t *testing.T) {
	src := manyCasesSource(20)
	if !strings.Contains(src, "case 1: result = 10; break;") {
		t.Fatalf("missing first case: %s", src)
	}
	if !strings.Contains(src, "case 20: result = 200; break;") {
		t.Fatalf("missing last case: %s", src)
	}
	if strings.Contains(src, "case 21:") {
		t.Fatal("generated more cases than requested")
	}
}

func TestFromConfigFallsBackToBuiltins(t *testing.T) {
	cases, err := FromConfig(&appconfig.Config{})
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if len(cases) != len(Default()) {
		t.Fatalf("expected built-in registry, got %d cases", len(cases))
	}
}

func TestFromConfigReadsFiles(t *testing.T) {
	srcPath := filepath.Join(t.TempDir(), "input.js")
	if err := os.WriteFile(srcPath, []byte("function f() { return 1; }"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	cfg := &appconfig.Config{Cases: []appconfig.CaseConfig{
		{Name: "inline", Source: "function g() {}"},
		{Name: "from-file", File: srcPath},
	}}

	cases, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(cases))
	}
	if cases[1].Source != "function f() { return 1; }" {
		t.Fatalf("file-backed source: %q", cases[1].Source)
	}
}

func TestFromConfigRejectsEmptySource(t *testing.T) {
	cfg := &appconfig.Config{Cases: []appconfig.CaseConfig{
		{Name: "blank", Source: "   \n"},
	}}
	if _, err := FromConfig(cfg); err == nil {
		t.Fatal("expected error for empty source text")
	}

	cfg.Cases = []appconfig.CaseConfig{{Name: "missing", File: filepath.Join(t.TempDir(), "nope.js")}}
	if _, err := FromConfig(cfg); err == nil {
		t.Fatal("expected error for unreadable source file")
	}
}
