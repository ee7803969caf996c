package reconcile

import (
	"math"

	"github.com/kjet-tools/kjet-recon/pkg/types"
)

// Row-level tolerances. The human composite is on a ~0-100 scale and is
// divided by humanScaleFactor before differencing against the 0-5 automated
// composite. Fixed policy constants.
const (
	rankFullTol      = 2
	rankPartialTol   = 5
	rowScoreTol      = 0.5
	humanScaleFactor = 20.0
)

// Classify combines both outcomes into the coarse row verdict. A split
// outcome (one source passes, the other fails) is always a disagreement,
// irrespective of deltas; that is the highest-priority case to surface. A
// missing rank or score delta on a both-pass row counts as outside its band.
func Classify(humanStatus string, llmStatus types.LLMStatus, rankDelta *int, scoreDelta *float64) types.Verdict {
	if !llmStatus.Matched() {
		return types.VerdictUnknown
	}
	humanPass, humanFail := isPass(humanStatus), isFail(humanStatus)
	if !humanPass && !humanFail {
		return types.VerdictUnknown
	}
	llmPass := llmStatus == types.StatusRanked

	switch {
	case humanPass && llmPass:
		rankOK := rankDelta != nil && abs(*rankDelta) <= rankFullTol
		scoreOK := scoreDelta != nil && math.Abs(*scoreDelta) <= rowScoreTol
		if rankOK && scoreOK {
			return types.VerdictFull
		}
		if rankDelta != nil && abs(*rankDelta) <= rankPartialTol {
			return types.VerdictPartial
		}
		return types.VerdictDisagreement
	case humanFail && !llmPass:
		// Agreement that the application should fail.
		return types.VerdictFull
	default:
		return types.VerdictDisagreement
	}
}

// NormalizedScoreDelta is the row-level score delta: automated composite
// minus human composite brought onto the 0-5 scale. Nil when either side is
// missing.
func NormalizedScoreDelta(human, llm *float64) *float64 {
	if human == nil || llm == nil {
		return nil
	}
	d := *llm - *human/humanScaleFactor
	return &d
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
