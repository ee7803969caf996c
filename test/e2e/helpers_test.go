//go:build e2e

package e2e

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func repoRoot(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("cannot resolve test file path")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
}

func schemaPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(repoRoot(t), "schemas", "v1", "county-report.schema.json")
}

const humanExport = `[
  {
    "Application ID": "Applicant_101",
    "Applicant Name": "Baringo Growers SACCO",
    "E2. County Mapping": "Baringo",
    "Overall Result (Pass/Fail)": "Pass",
    "Sum of weighted scores - Penalty(if any)": 72,
    "A3.1: Registration & Track Record (5%) Score": 4,
    "A3.1: Registration & Track Record (5%) Reason": "certificate on file"
  },
  {
    "Application ID": "Applicant_102",
    "E2. County Mapping": "Baringo",
    "Overall Result (Pass/Fail)": "Fail",
    "Fraud/Misrepresentation Penalty": "inflated membership numbers"
  },
  {
    "Application ID": "Applicant_103",
    "E2. County Mapping": "Baringo",
    "Overall Result (Pass/Fail)": "Pass",
    "Sum of weighted scores - Penalty(if any)": 60
  },
  {
    "Application ID": "Applicant_201",
    "E2. County Mapping": "Elgeyo-Marakwet",
    "Overall Result (Pass/Fail)": "Pass",
    "Sum of weighted scores - Penalty(if any)": 55
  }
]`

const baringoPayload = `{
  "report_title": "Baringo County Evaluation",
  "applications": [
    {
      "application_id": "Baringo_101",
      "eligibility_status": "ELIGIBLE",
      "rank": 1,
      "composite_score": 4.6,
      "score_breakdown": {
        "S1_Registration_Track_Record_5%": {"score": 4.5, "reason": "registry confirmed"}
      }
    },
    {
      "application_id": "Baringo_103",
      "eligibility_status": "ELIGIBLE",
      "rank": 2,
      "composite_score": 3.0
    }
  ]
}`

// writeDataset lays out a project directory the way the CLI expects it: the
// human export next to a per-county payload directory with a manifest.
func writeDataset(t *testing.T) (humanPath, payloadDir string) {
	t.Helper()
	dir := t.TempDir()
	humanPath = filepath.Join(dir, "kjet-human-final.json")
	if err := os.WriteFile(humanPath, []byte(humanExport), 0o644); err != nil {
		t.Fatal(err)
	}
	payloadDir = filepath.Join(dir, "gemini")
	if err := os.MkdirAll(payloadDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(payloadDir, "baringo.json"), []byte(baringoPayload), 0o644); err != nil {
		t.Fatal(err)
	}
	manifest := `{"counties": ["Baringo", "Elgeiyo Marakwet"]}`
	if err := os.WriteFile(filepath.Join(payloadDir, "counties.json"), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	return humanPath, payloadDir
}
