package reconcile

import (
	"sort"
	"strings"

	"github.com/kjet-tools/kjet-recon/pkg/types"
)

// HumanRank computes target's 1-based rank among the county's human records.
// An explicit pre-assigned rank is returned unchanged. Otherwise the passing
// records are ordered by composite score descending with a lexicographic
// identifier tie-break, which guarantees a total order independent of input
// order. Nil when target itself is not in the passing set.
func HumanRank(target types.HumanRecord, county []types.HumanRecord) *int {
	if target.ExplicitRank != nil {
		r := *target.ExplicitRank
		return &r
	}

	passing := make([]types.HumanRecord, 0, len(county))
	for _, h := range county {
		if isPass(h.PassFail) {
			passing = append(passing, h)
		}
	}
	sort.SliceStable(passing, func(i, j int) bool {
		si, sj := compositeOrZero(passing[i]), compositeOrZero(passing[j])
		if si != sj {
			return si > sj
		}
		return passing[i].ApplicationID < passing[j].ApplicationID
	})
	for i, h := range passing {
		if h.ApplicationID == target.ApplicationID {
			r := i + 1
			return &r
		}
	}
	return nil
}

func isPass(status string) bool {
	return strings.EqualFold(strings.TrimSpace(status), "pass")
}

func isFail(status string) bool {
	return strings.EqualFold(strings.TrimSpace(status), "fail")
}

func compositeOrZero(h types.HumanRecord) float64 {
	if h.CompositeScore == nil {
		return 0
	}
	return *h.CompositeScore
}
