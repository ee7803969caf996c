package types

import "strings"

// Column headers from the human evaluator spreadsheet export. The export is
// consumed exactly as the review team published it, so keys must match byte
// for byte, trailing whitespace included. Every field lookup in the codebase
// goes through these constants; do not inline the strings elsewhere.
const (
	FieldApplicationID  = "Application ID"
	FieldBundleLink     = "Link to application bundle"
	FieldApplicantName  = "Applicant Name"
	FieldCountyMapping  = "E2. County Mapping"
	FieldPassFail       = "Overall Result (Pass/Fail)"
	FieldCompositeScore = "Sum of weighted scores - Penalty(if any)"
	FieldExplicitRank   = "Ranking from composite score"
	FieldPenalty        = "Fraud/Misrepresentation Penalty"
	FieldEvaluatorName  = "Evaluator's Name"
	FieldEvaluatorNotes = "Evaluator's Comments"
)

// Per-criterion headers. The A3.4 score header carries a trailing space in
// the export and is preserved verbatim here.
const (
	FieldS1Score = "A3.1: Registration & Track Record (5%) Score"
	FieldS1Notes = "A3.1: Registration & Track Record (5%) Reason"
	FieldS2Score = "A3.2: Financial Position (20%) Score"
	FieldS2Notes = "A3.2: Financial Position (20%) Reason"
	FieldS3Score = "A3.3: Market Demand & Competitiveness (20%) Score"
	FieldS3Notes = "A3.3: Market Demand & Competitiveness (20%) Reason"
	FieldS4Score = "A3.4: Business Proposal / Growth Viability (25%) Score "
	FieldS4Notes = "A3.4: Business Proposal / Growth Viability (25%) Reason"
	FieldS5Score = "A3.5: Value Chain Alignment & Role (10%) Score"
	FieldS5Notes = "A3.5: Value Chain Alignment & Role (10%) Reason"
	FieldS6Score = "A3.6: Inclusivity & Sustainability (20%) Score"
	FieldS6Notes = "A3.6: Inclusivity & Sustainability (20%) Reason"
)

// CriterionCell is one human score/reason pair, score kept as the raw cell
// text. Non-numeric cells degrade to a null score at comparison time rather
// than failing the row.
type CriterionCell struct {
	Score  string `json:"score"`
	Reason string `json:"reason"`
}

// HumanRecord is one row of the human evaluator export, projected onto an
// explicit schema. Criteria is keyed by CriterionMapping.Name.
type HumanRecord struct {
	ApplicationID   string                   `json:"application_id"`
	ApplicantName   string                   `json:"applicant_name"`
	County          string                   `json:"county"`
	PassFail        string                   `json:"pass_fail_status"`
	CompositeScore  *float64                 `json:"composite_score"`
	ExplicitRank    *int                     `json:"explicit_rank"`
	Criteria        map[string]CriterionCell `json:"criteria"`
	PenaltyFlag     string                   `json:"penalty_flag"`
	EvaluatorName   string                   `json:"evaluator_name"`
	EvaluatorReason string                   `json:"evaluator_reason"`
}

// HasPenalty reports whether the fraud/misrepresentation field is non-blank
// after trimming. Evaluated independently of pass/fail status and of LLM
// matching.
func (h HumanRecord) HasPenalty() bool {
	return strings.TrimSpace(h.PenaltyFlag) != ""
}
