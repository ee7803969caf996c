package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kjet-tools/kjet-recon/internal/hash"
	"github.com/kjet-tools/kjet-recon/pkg/types"
)

// LoadHumanRecords reads the human evaluator export and projects each row
// onto the explicit schema through the field-name constant table. Rows
// without an identifier in either the Application ID or bundle-link column
// are dropped, matching the upstream conversion. Returns the records plus a
// digest of the export file.
func LoadHumanRecords(path string) ([]types.HumanRecord, types.InputDigest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, types.InputDigest{}, fmt.Errorf("read human export %s: %w", path, err)
	}
	var rows []map[string]any
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, types.InputDigest{}, fmt.Errorf("parse human export %s: %w", path, err)
	}

	records := make([]types.HumanRecord, 0, len(rows))
	for _, row := range rows {
		rec := projectHumanRow(row)
		if rec.ApplicationID == "" {
			continue
		}
		records = append(records, rec)
	}

	digest := types.InputDigest{
		Name:   "human_export",
		URI:    path,
		SHA256: hash.DigestBytes(raw),
	}
	return records, digest, nil
}

func projectHumanRow(row map[string]any) types.HumanRecord {
	id := cellString(row[types.FieldApplicationID])
	if id == "" {
		id = cellString(row[types.FieldBundleLink])
	}
	rec := types.HumanRecord{
		ApplicationID:   id,
		ApplicantName:   cellString(row[types.FieldApplicantName]),
		County:          cellString(row[types.FieldCountyMapping]),
		PassFail:        cellString(row[types.FieldPassFail]),
		CompositeScore:  cellFloat(row[types.FieldCompositeScore]),
		ExplicitRank:    cellInt(row[types.FieldExplicitRank]),
		PenaltyFlag:     cellString(row[types.FieldPenalty]),
		EvaluatorName:   cellString(row[types.FieldEvaluatorName]),
		EvaluatorReason: cellString(row[types.FieldEvaluatorNotes]),
		Criteria:        make(map[string]types.CriterionCell, len(types.CriterionMappings)),
	}
	for _, m := range types.CriterionMappings {
		rec.Criteria[m.Name] = types.CriterionCell{
			Score:  cellString(row[m.HumanScoreField]),
			Reason: cellString(row[m.HumanReasonField]),
		}
	}
	return rec
}

func cellString(v any) string {
	switch vv := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(vv)
	case float64:
		return strconv.FormatFloat(vv, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(vv)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", vv))
	}
}

func cellFloat(v any) *float64 {
	switch vv := v.(type) {
	case float64:
		f := vv
		return &f
	case string:
		s := strings.TrimSpace(vv)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

func cellInt(v any) *int {
	f := cellFloat(v)
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}
