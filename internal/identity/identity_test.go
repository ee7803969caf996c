package identity

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeCounty(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Baringo", "baringo"},
		{"  Trans   Nzoia ", "trans nzoia"},
		{"Murang’a", "murang'a"},
		{"MURANG`A", "murang'a"},
		{"Murang‘a", "murang'a"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeCounty(c.in); got != c.want {
			t.Errorf("NormalizeCounty(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeCountyIdempotent(t *testing.T) {
	inputs := []string{"Murang’a", "  TAITA  TAVETA ", "Uasin Gishu", "nyeri"}
	for _, in := range inputs {
		once := NormalizeCounty(in)
		if twice := NormalizeCounty(once); twice != once {
			t.Errorf("NormalizeCounty not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestNumericSuffix(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Applicant_158", "158"},
		{"Baringo_158", "158"},
		{"applicant 302", "302"},
		{"app12cluster", "12"},
		{"no-digits-here", "no-digits-here"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NumericSuffix(c.in); got != c.want {
			t.Errorf("NumericSuffix(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNumericSuffixSharedInvariant(t *testing.T) {
	a, b := NumericSuffix("Applicant_158"), NumericSuffix("Baringo_158")
	if a != "158" || b != "158" {
		t.Fatalf("suffixes = %q, %q, want both 158", a, b)
	}
}

func TestTailAlnum(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Applicant_A9X4", "a9x4"},
		{"ab", "ab"},
		{"--- ", ""},
		{"Bundle-2024-X7K9", "x7k9"},
	}
	for _, c := range cases {
		if got := TailAlnum(c.in, 4); got != c.want {
			t.Errorf("TailAlnum(%q, 4) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPayloadFileName(t *testing.T) {
	if got := PayloadFileName("Murang’a"); got != "muranga.json" {
		t.Errorf("PayloadFileName = %q, want muranga.json", got)
	}
	if got := PayloadFileName("Trans Nzoia"); got != "trans nzoia.json" {
		t.Errorf("PayloadFileName = %q, want %q", got, "trans nzoia.json")
	}
}

func TestDefaultAliases(t *testing.T) {
	a := DefaultAliases()
	if got := a.Canonical("Elgeyo-Marakwet"); got != "elgeiyo marakwet" {
		t.Errorf("Canonical = %q", got)
	}
	if got := a.Canonical("Baringo"); got != "baringo" {
		t.Errorf("Canonical fallthrough = %q", got)
	}
}

func TestLoadAliasesMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aliases.yaml")
	content := "aliases:\n  \"Nrb\": Nairobi\n  Mgori: Homa Bay\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	a, err := LoadAliases(path)
	if err != nil {
		t.Fatalf("LoadAliases: %v", err)
	}
	if got := a.Canonical("NRB"); got != "nairobi" {
		t.Errorf("file alias = %q", got)
	}
	if got := a.Canonical("Mgori"); got != "homa bay" {
		t.Errorf("file alias should win over default, got %q", got)
	}
	if got := a.Canonical("Elgeyo Marakwet"); got != "elgeiyo marakwet" {
		t.Errorf("default alias lost after merge, got %q", got)
	}
}

func TestLoadAliasesFileNotFound(t *testing.T) {
	if _, err := LoadAliases("/nonexistent/aliases.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCanonicalNilReceiver(t *testing.T) {
	var a *Aliases
	if got := a.Canonical("  Baringo "); got != "baringo" {
		t.Errorf("nil receiver Canonical = %q", got)
	}
}
