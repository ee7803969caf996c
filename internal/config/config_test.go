package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kjetrecon.yaml")
	content := `human_export: exports/humans.json
payload_base_url: https://reports.example.org/gemini
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.HumanExport != "exports/humans.json" {
		t.Errorf("human export = %q", p.HumanExport)
	}
	if p.PayloadBaseURL != "https://reports.example.org/gemini" {
		t.Errorf("base url = %q", p.PayloadBaseURL)
	}
	// Fields absent from the file keep their defaults.
	if p.OutDir != "out" || p.SchemaDir != "schemas/v1" {
		t.Errorf("defaults lost: out=%q schema=%q", p.OutDir, p.SchemaDir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kjetrecon.yaml")
	if err := os.WriteFile(path, []byte("human_export: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
