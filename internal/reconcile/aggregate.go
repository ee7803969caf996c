package reconcile

import (
	"math"

	"github.com/kjet-tools/kjet-recon/pkg/types"
)

// Aggregate folds all rows for one county into the summary result. Average
// deltas are means of absolute values over rows where the delta is non-nil,
// and 0 when no such row exists.
func Aggregate(county string, matched, unmatched []types.ComparisonRow) types.CountyComparisonResult {
	res := types.CountyComparisonResult{
		County:            county,
		TotalApplications: len(matched) + len(unmatched),
		MatchedCount:      len(matched),
		Matched:           matched,
		Unmatched:         unmatched,
	}

	var rankSum float64
	var rankN int
	var scoreSum float64
	var scoreN int
	for _, row := range matched {
		switch row.Verdict {
		case types.VerdictFull:
			res.FullCount++
		case types.VerdictPartial:
			res.PartialCount++
		case types.VerdictDisagreement:
			res.DisagreementCount++
		}
		if row.RankDelta != nil {
			rankSum += math.Abs(float64(*row.RankDelta))
			rankN++
		}
		if row.ScoreDelta != nil {
			scoreSum += math.Abs(*row.ScoreDelta)
			scoreN++
		}
	}
	if rankN > 0 {
		res.AvgRankDelta = rankSum / float64(rankN)
	}
	if scoreN > 0 {
		res.AvgScoreDelta = scoreSum / float64(scoreN)
	}
	return res
}
