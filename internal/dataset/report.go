package dataset

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kjet-tools/kjet-recon/pkg/types"
)

// rawReport accepts both payload shapes: the unified applications array and
// the legacy split ranked/ineligible arrays.
type rawReport struct {
	ReportTitle  string              `json:"report_title"`
	Weights      map[string]float64  `json:"selection_criteria_weights"`
	Applications []types.Application `json:"applications"`
	Ranked       []types.Application `json:"ranked_applicants"`
	Ineligible   []types.Application `json:"ineligible_applicants"`
}

// DecodeCountyReport parses one county payload and folds any legacy shape
// into the unified shape the engine consumes. Eligibility status casing is
// normalized on the way in.
func DecodeCountyReport(raw []byte) (*types.CountyReport, error) {
	var r rawReport
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("parse county payload: %w", err)
	}

	apps := r.Applications
	if apps == nil {
		if r.Ranked == nil && r.Ineligible == nil {
			return nil, fmt.Errorf("county payload has no applications")
		}
		apps = make([]types.Application, 0, len(r.Ranked)+len(r.Ineligible))
		for _, a := range r.Ranked {
			if a.EligibilityStatus == "" {
				a.EligibilityStatus = types.EligibilityEligible
			}
			apps = append(apps, a)
		}
		for _, a := range r.Ineligible {
			if a.EligibilityStatus == "" {
				a.EligibilityStatus = types.EligibilityIneligible
			}
			apps = append(apps, a)
		}
	}
	for i := range apps {
		apps[i].EligibilityStatus = strings.ToUpper(strings.TrimSpace(apps[i].EligibilityStatus))
	}

	return &types.CountyReport{
		ReportTitle:  r.ReportTitle,
		Weights:      r.Weights,
		Applications: apps,
	}, nil
}
