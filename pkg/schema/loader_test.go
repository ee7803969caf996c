package schema

import (
	"path/filepath"
	"testing"
)

func countySchemaPath(t *testing.T) string {
	t.Helper()
	p, err := filepath.Abs(filepath.Join("..", "..", "schemas", "v1", "county-report.schema.json"))
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestValidateConformingPayload(t *testing.T) {
	doc := map[string]any{
		"applications": []any{
			map[string]any{
				"application_id":     "Baringo_101",
				"eligibility_status": "ELIGIBLE",
				"rank":               1,
				"composite_score":    4.6,
			},
		},
	}
	violations, err := Validate(countySchemaPath(t), doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(violations) != 0 {
		t.Errorf("violations = %v, want none", violations)
	}
}

func TestValidateViolations(t *testing.T) {
	doc := map[string]any{
		"applications": []any{
			map[string]any{
				"eligibility_status": "MAYBE",
				"composite_score":    9.5,
			},
		},
	}
	violations, err := Validate(countySchemaPath(t), doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(violations) == 0 {
		t.Fatal("expected violations for a bad status enum and out-of-range score")
	}
}

func TestValidateMissingApplications(t *testing.T) {
	violations, err := Validate(countySchemaPath(t), map[string]any{"report_title": "empty"})
	if err != nil {
		t.Fatal(err)
	}
	if len(violations) == 0 {
		t.Fatal("expected a violation for the missing applications array")
	}
}

func TestValidateRaw(t *testing.T) {
	violations, err := ValidateRaw(countySchemaPath(t), []byte(`{"applications": []}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(violations) != 0 {
		t.Errorf("violations = %v", violations)
	}
	if _, err := ValidateRaw(countySchemaPath(t), []byte(`{`)); err == nil {
		t.Fatal("expected error for unparseable bytes")
	}
}
