package types

// Eligibility status values in county payloads. Payloads upper-case these on
// export; decoding normalizes case before comparison.
const (
	EligibilityEligible   = "ELIGIBLE"
	EligibilityIneligible = "INELIGIBLE"
)

// Breakdown keys used by the automated scoring export. These are the exact
// map keys under score_breakdown.
const (
	BreakdownS1 = "S1_Registration_Track_Record_5%"
	BreakdownS2 = "S2_Financial_Position_20%"
	BreakdownS3 = "S3_Market_Demand_Competitiveness_20%"
	BreakdownS4 = "S4_Business_Proposal_Viability_25%"
	BreakdownS5 = "S5_Value_Chain_Alignment_10%"
	BreakdownS6 = "S6_Inclusivity_Sustainability_20%"
)

// CriterionScore is one score_breakdown entry.
type CriterionScore struct {
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// Application is one entry of a county payload in the unified shape. Rank,
// CompositeScore, and ScoreBreakdown are present only for eligible
// applicants; IneligibilityCriterion and Reason only for ineligible ones.
type Application struct {
	ApplicationID          string                    `json:"application_id"`
	ApplicantName          string                    `json:"applicant_name"`
	EligibilityStatus      string                    `json:"eligibility_status"`
	Rank                   *int                      `json:"rank,omitempty"`
	CompositeScore         *float64                  `json:"composite_score,omitempty"`
	ScoreBreakdown         map[string]CriterionScore `json:"score_breakdown,omitempty"`
	IneligibilityCriterion string                    `json:"ineligibility_criterion_failed,omitempty"`
	Reason                 string                    `json:"reason,omitempty"`
}

// Eligible reports whether the applicant was ranked by the automated pass.
func (a Application) Eligible() bool {
	return a.EligibilityStatus == EligibilityEligible
}

// CountyReport is the automated evaluation payload for one county, after the
// dataset boundary has folded any legacy split-array payload into the
// unified shape.
type CountyReport struct {
	ReportTitle  string             `json:"report_title,omitempty"`
	Weights      map[string]float64 `json:"selection_criteria_weights,omitempty"`
	Applications []Application      `json:"applications"`
}
