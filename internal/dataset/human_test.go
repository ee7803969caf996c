package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

const humanExportFixture = `[
  {
    "Application ID": "Applicant_158",
    "Applicant Name": "Baringo Growers SACCO",
    "E2. County Mapping": "Baringo",
    "Overall Result (Pass/Fail)": "Pass",
    "Sum of weighted scores - Penalty(if any)": 72.5,
    "Ranking from composite score": 1,
    "Evaluator's Name": "J. Mwangi",
    "A3.1: Registration & Track Record (5%) Score": 4,
    "A3.1: Registration & Track Record (5%) Reason": "certificate on file",
    "A3.4: Business Proposal / Growth Viability (25%) Score ": "3.5",
    "A3.4: Business Proposal / Growth Viability (25%) Reason": "credible projections"
  },
  {
    "Application ID": "",
    "Link to application bundle": "https://drive.example.com/bundle_204",
    "E2. County Mapping": "Nandi",
    "Overall Result (Pass/Fail)": "Fail",
    "Sum of weighted scores - Penalty(if any)": "not scored"
  },
  {
    "E2. County Mapping": "Kisumu",
    "Overall Result (Pass/Fail)": "Pass"
  }
]`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "human.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadHumanRecords(t *testing.T) {
	records, digest, err := LoadHumanRecords(writeFixture(t, humanExportFixture))
	if err != nil {
		t.Fatal(err)
	}
	// The third row has no identifier at all and is dropped.
	if len(records) != 2 {
		t.Fatalf("len = %d, want 2", len(records))
	}

	first := records[0]
	if first.ApplicationID != "Applicant_158" {
		t.Errorf("id = %q", first.ApplicationID)
	}
	if first.ApplicantName != "Baringo Growers SACCO" {
		t.Errorf("name = %q", first.ApplicantName)
	}
	if first.County != "Baringo" || first.PassFail != "Pass" {
		t.Errorf("county/status = %q/%q", first.County, first.PassFail)
	}
	if first.CompositeScore == nil || *first.CompositeScore != 72.5 {
		t.Errorf("composite = %v, want 72.5", first.CompositeScore)
	}
	if first.ExplicitRank == nil || *first.ExplicitRank != 1 {
		t.Errorf("rank = %v, want 1", first.ExplicitRank)
	}
	reg := first.Criteria["Registration & Track Record"]
	if reg.Score != "4" || reg.Reason != "certificate on file" {
		t.Errorf("registration cell = %+v", reg)
	}
	// The A3.4 score column header carries a trailing space in the export.
	biz := first.Criteria["Business Proposal/Growth Viability"]
	if biz.Score != "3.5" || biz.Reason != "credible projections" {
		t.Errorf("business proposal cell = %+v", biz)
	}

	second := records[1]
	if second.ApplicationID != "https://drive.example.com/bundle_204" {
		t.Errorf("bundle-link fallback id = %q", second.ApplicationID)
	}
	if second.CompositeScore != nil {
		t.Errorf("non-numeric composite = %v, want nil", second.CompositeScore)
	}

	if digest.Name != "human_export" || digest.SHA256 == "" {
		t.Errorf("digest = %+v", digest)
	}
}

func TestLoadHumanRecordsMissingFile(t *testing.T) {
	if _, _, err := LoadHumanRecords(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing export")
	}
}

func TestLoadHumanRecordsMalformed(t *testing.T) {
	if _, _, err := LoadHumanRecords(writeFixture(t, `{"not":"an array"}`)); err == nil {
		t.Fatal("expected error for non-array export")
	}
}

func TestCellString(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"  Pass ", "Pass"},
		{float64(4), "4"},
		{3.5, "3.5"},
		{true, "true"},
	}
	for _, c := range cases {
		if got := cellString(c.in); got != c.want {
			t.Errorf("cellString(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCellFloat(t *testing.T) {
	if got := cellFloat(" 72.5 "); got == nil || *got != 72.5 {
		t.Errorf("string cell = %v, want 72.5", got)
	}
	if got := cellFloat("N/A"); got != nil {
		t.Errorf("text cell = %v, want nil", got)
	}
	if got := cellFloat(nil); got != nil {
		t.Errorf("nil cell = %v, want nil", got)
	}
}
