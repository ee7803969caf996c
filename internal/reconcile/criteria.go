package reconcile

import (
	"math"
	"strconv"
	"strings"

	"github.com/kjet-tools/kjet-recon/pkg/types"
)

// Acceptance tolerances for per-criterion deltas on the shared 0-5 scale.
// Fixed policy constants.
const (
	criterionFullTol    = 0.5
	criterionPartialTol = 1.5
)

// CompareCriteria produces the six fixed criterion comparisons for one
// application. app may be nil (unmatched row) and an eligible match may still
// lack a breakdown entry; either way the missing side stays nil and the
// verdict is unknown.
func CompareCriteria(human types.HumanRecord, app *types.Application) []types.CriterionComparison {
	out := make([]types.CriterionComparison, 0, len(types.CriterionMappings))
	for _, m := range types.CriterionMappings {
		cell := human.Criteria[m.Name]
		cc := types.CriterionComparison{
			Criterion:   m.Name,
			HumanScore:  parseScore(cell.Score),
			HumanReason: cell.Reason,
		}
		if app != nil && app.ScoreBreakdown != nil {
			if entry, ok := app.ScoreBreakdown[m.BreakdownKey]; ok {
				score := entry.Score
				cc.LLMScore = &score
				cc.LLMReason = entry.Reason
			}
		}
		cc.Verdict = criterionVerdict(cc.HumanScore, cc.LLMScore)
		if cc.HumanScore != nil && cc.LLMScore != nil {
			d := *cc.LLMScore - *cc.HumanScore
			cc.Delta = &d
		}
		out = append(out, cc)
	}
	return out
}

func criterionVerdict(human, llm *float64) types.Verdict {
	if human == nil || llm == nil {
		return types.VerdictUnknown
	}
	switch d := math.Abs(*llm - *human); {
	case d <= criterionFullTol:
		return types.VerdictFull
	case d <= criterionPartialTol:
		return types.VerdictPartial
	default:
		return types.VerdictDisagreement
	}
}

// Blank or non-numeric cells degrade to nil rather than failing the row.
func parseScore(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
