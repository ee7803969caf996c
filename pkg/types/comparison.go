package types

// Verdict classifies how closely the two evaluations concur, both per
// criterion and per row.
type Verdict string

const (
	VerdictFull         Verdict = "full"
	VerdictPartial      Verdict = "partial"
	VerdictDisagreement Verdict = "disagreement"
	VerdictUnknown      Verdict = "unknown"
)

// LLMStatus is the automated-side status of a comparison row. The two
// "not found" values are sentinels, not errors: a human record without a
// counterpart still produces a usable row.
type LLMStatus string

const (
	StatusRanked         LLMStatus = "Ranked"
	StatusIneligible     LLMStatus = "Ineligible"
	StatusCountyNotFound LLMStatus = "County Not Found"
	StatusNotFoundInLLM  LLMStatus = "Not Found in LLM"
)

// Matched reports whether the row has an automated counterpart.
func (s LLMStatus) Matched() bool {
	return s == StatusRanked || s == StatusIneligible
}

// CriterionMapping pairs one human export column set with one breakdown key
// of the automated payload.
type CriterionMapping struct {
	Name             string
	HumanScoreField  string
	HumanReasonField string
	BreakdownKey     string
}

// CriterionMappings is the fixed six-entry rubric mapping. Order is the
// rubric order and is stable across reports.
var CriterionMappings = [6]CriterionMapping{
	{Name: "Registration & Track Record", HumanScoreField: FieldS1Score, HumanReasonField: FieldS1Notes, BreakdownKey: BreakdownS1},
	{Name: "Financial Position", HumanScoreField: FieldS2Score, HumanReasonField: FieldS2Notes, BreakdownKey: BreakdownS2},
	{Name: "Market Demand & Competitiveness", HumanScoreField: FieldS3Score, HumanReasonField: FieldS3Notes, BreakdownKey: BreakdownS3},
	{Name: "Business Proposal/Growth Viability", HumanScoreField: FieldS4Score, HumanReasonField: FieldS4Notes, BreakdownKey: BreakdownS4},
	{Name: "Value Chain Alignment & Role", HumanScoreField: FieldS5Score, HumanReasonField: FieldS5Notes, BreakdownKey: BreakdownS5},
	{Name: "Inclusivity & Sustainability", HumanScoreField: FieldS6Score, HumanReasonField: FieldS6Notes, BreakdownKey: BreakdownS6},
}

// CriterionComparison is one of six fixed entries per application.
// Delta is automated minus human, nil when either side is missing.
type CriterionComparison struct {
	Criterion   string   `json:"criterion"`
	HumanScore  *float64 `json:"human_score"`
	LLMScore    *float64 `json:"llm_score"`
	HumanReason string   `json:"human_reason,omitempty"`
	LLMReason   string   `json:"llm_reason,omitempty"`
	Delta       *float64 `json:"score_delta"`
	Verdict     Verdict  `json:"verdict"`
}

// ComparisonRow is the reconciled view of one application. Immutable once
// produced; discarded at the end of each reconciliation request.
type ComparisonRow struct {
	ApplicationID    string                `json:"application_id"`
	LLMApplicationID string                `json:"llm_application_id,omitempty"`
	ApplicantName    string                `json:"applicant_name,omitempty"`
	County           string                `json:"county"`
	HumanStatus      string                `json:"human_status"`
	HumanRank        *int                  `json:"human_rank"`
	HumanScore       *float64              `json:"human_score"`
	LLMStatus        LLMStatus             `json:"llm_status"`
	LLMRank          *int                  `json:"llm_rank"`
	LLMScore         *float64              `json:"llm_score"`
	RankDelta        *int                  `json:"rank_delta"`
	ScoreDelta       *float64              `json:"score_delta"`
	Criteria         []CriterionComparison `json:"criteria,omitempty"`
	Verdict          Verdict               `json:"verdict"`
	HasPenalty       bool                  `json:"has_penalty"`
	PenaltyReason    string                `json:"penalty_reason,omitempty"`
	IneligibleReason string                `json:"ineligibility_reason,omitempty"`
	MatchMethod      string                `json:"match_method,omitempty"`
	AmbiguousWith    []string              `json:"ambiguous_with,omitempty"`
}

// InputDigest records one input file a result was computed from.
type InputDigest struct {
	Name   string `json:"name"`
	URI    string `json:"uri,omitempty"`
	SHA256 string `json:"sha256"`
}

// CountyComparisonResult aggregates one county. Recomputed fully on every
// request; never cached or persisted by the engine.
type CountyComparisonResult struct {
	RunID             string          `json:"run_id"`
	County            string          `json:"county"`
	GeneratedAt       string          `json:"generated_at"`
	TotalApplications int             `json:"total_applications"`
	MatchedCount      int             `json:"matched_count"`
	FullCount         int             `json:"full_count"`
	PartialCount      int             `json:"partial_count"`
	DisagreementCount int             `json:"disagreement_count"`
	AvgRankDelta      float64         `json:"avg_rank_delta"`
	AvgScoreDelta     float64         `json:"avg_score_delta"`
	Matched           []ComparisonRow `json:"matched"`
	Unmatched         []ComparisonRow `json:"unmatched"`
	Inputs            []InputDigest   `json:"inputs,omitempty"`
	Warnings          []string        `json:"warnings,omitempty"`
}
