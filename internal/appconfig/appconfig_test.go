package appconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeTempConfig(t, `{"compilerPath": "reactc"}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CompilerPath != "reactc" {
		t.Fatalf("compiler path: %q", cfg.CompilerPath)
	}
	if cfg.IterationCount() != 50 {
		t.Fatalf("default iterations: %d", cfg.IterationCount())
	}
	if cfg.InvocationTimeout() != 30*time.Second {
		t.Fatalf("default timeout: %s", cfg.InvocationTimeout())
	}
	if cfg.ConfigPath != path {
		t.Fatalf("config path not recorded: %q", cfg.ConfigPath)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "no configuration file found") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsBadIterations(t *testing.T) {
	cfg := Config{CompilerPath: "reactc", Iterations: -5, TimeoutSeconds: 30}
	if err := Validate(&cfg); err == nil {
		t.Fatal("expected schema violation for negative iterations")
	}
}

func TestValidateRejectsAmbiguousCase(t *testing.T) {
	cfg := Config{
		CompilerPath:   "reactc",
		Iterations:     10,
		TimeoutSeconds: 30,
		Cases: []CaseConfig{
			{Name: "both", Source: "function f() {}", File: "f.js"},
		},
	}
	if err := Validate(&cfg); err == nil {
		t.Fatal("expected error when a case sets both source and file")
	}

	cfg.Cases = []CaseConfig{{Name: "neither"}}
	if err := Validate(&cfg); err == nil {
		t.Fatal("expected error when a case sets neither source nor file")
	}
}

func TestValidateRejectsUnnamedCase(t *testing.T) {
	cfg := Config{
		CompilerPath:   "reactc",
		Iterations:     10,
		TimeoutSeconds: 30,
		Cases:          []CaseConfig{{Name: "", Source: "function f() {}"}},
	}
	if err := Validate(&cfg); err == nil {
		t.Fatal("expected schema violation for empty case name")
	}
}
