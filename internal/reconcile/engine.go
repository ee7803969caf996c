package reconcile

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kjet-tools/kjet-recon/internal/identity"
	"github.com/kjet-tools/kjet-recon/pkg/types"
)

// Inputs is one reconciliation request. Humans is the full human dataset;
// the engine selects the county's records itself so callers never pre-filter
// with a different county-canonicalization than the engine uses. Report is
// nil when no payload exists for the county, which is a valid outcome, not
// an error.
type Inputs struct {
	County  string
	Humans  []types.HumanRecord
	Report  *types.CountyReport
	Aliases *identity.Aliases
	Digests []types.InputDigest
}

// Run reconciles one county. Deterministic over its inputs apart from the
// run ID and timestamp stamped on the result; holds no state across calls.
func Run(in Inputs) types.CountyComparisonResult {
	canon := in.Aliases.Canonical(in.County)

	countyHumans := make([]types.HumanRecord, 0)
	for _, h := range in.Humans {
		if in.Aliases.Canonical(h.County) == canon {
			countyHumans = append(countyHumans, h)
		}
	}

	var apps []types.Application
	if in.Report != nil {
		apps = in.Report.Applications
	}

	matched := make([]types.ComparisonRow, 0, len(countyHumans))
	unmatched := make([]types.ComparisonRow, 0)
	warnings := make([]string, 0)
	for _, h := range countyHumans {
		m := MatchApplication(h, apps, in.Report != nil)
		row := buildRow(h, m, countyHumans)
		if len(m.AmbiguousWith) > 0 {
			warnings = append(warnings, fmt.Sprintf(
				"ambiguous %s match for %s: chose %s, also matched %s",
				m.Method, h.ApplicationID, row.LLMApplicationID, strings.Join(m.AmbiguousWith, ", ")))
		}
		if m.Status.Matched() {
			matched = append(matched, row)
		} else {
			unmatched = append(unmatched, row)
		}
	}

	res := Aggregate(in.County, matched, unmatched)
	res.RunID = uuid.NewString()
	res.GeneratedAt = time.Now().UTC().Format(time.RFC3339)
	res.Inputs = in.Digests
	res.Warnings = warnings
	return res
}

func buildRow(h types.HumanRecord, m Match, countyHumans []types.HumanRecord) types.ComparisonRow {
	row := types.ComparisonRow{
		ApplicationID: h.ApplicationID,
		ApplicantName: h.ApplicantName,
		County:        h.County,
		HumanStatus:   strings.TrimSpace(h.PassFail),
		HumanRank:     HumanRank(h, countyHumans),
		HumanScore:    h.CompositeScore,
		LLMStatus:     m.Status,
		HasPenalty:    h.HasPenalty(),
		PenaltyReason: strings.TrimSpace(h.PenaltyFlag),
		MatchMethod:   m.Method,
		AmbiguousWith: m.AmbiguousWith,
	}

	if m.Record != nil {
		row.LLMApplicationID = m.Record.ApplicationID
		row.LLMRank = m.Record.Rank
		row.LLMScore = m.Record.CompositeScore
		row.IneligibleReason = m.Record.Reason
		if row.ApplicantName == "" {
			row.ApplicantName = m.Record.ApplicantName
		}
	}

	if row.HumanRank != nil && row.LLMRank != nil {
		d := *row.LLMRank - *row.HumanRank
		row.RankDelta = &d
	}
	row.ScoreDelta = NormalizedScoreDelta(row.HumanScore, row.LLMScore)
	row.Criteria = CompareCriteria(h, m.Record)
	row.Verdict = Classify(h.PassFail, m.Status, row.RankDelta, row.ScoreDelta)
	return row
}
