package reconcile

import (
	"strings"

	"github.com/kjet-tools/kjet-recon/internal/identity"
	"github.com/kjet-tools/kjet-recon/pkg/types"
)

// Match methods, recorded on the row so reviewers can tell a clean numeric
// match from a tail fallback.
const (
	MethodNumericSuffix = "numeric_suffix"
	MethodTail          = "alnum_tail"
)

// Match is the outcome of resolving one human record against the county
// payload. Record is nil when Status is a not-found sentinel. AmbiguousWith
// lists further candidates that shared the winning key; first match wins,
// but the ambiguity is surfaced rather than silently trusted.
type Match struct {
	Record        *types.Application
	Status        types.LLMStatus
	Method        string
	AmbiguousWith []string
}

// MatchApplication resolves a human record to zero-or-one payload entry.
// Pure function of its inputs. payloadPresent distinguishes "the county has
// no payload at all" from "the payload exists but lacks this applicant".
func MatchApplication(human types.HumanRecord, apps []types.Application, payloadPresent bool) Match {
	if !payloadPresent {
		return Match{Status: types.StatusCountyNotFound}
	}

	suffix := identity.NumericSuffix(human.ApplicationID)
	if m := scan(apps, func(a types.Application) bool {
		return identity.NumericSuffix(a.ApplicationID) == suffix
	}); m.Record != nil {
		m.Method = MethodNumericSuffix
		return m
	}

	if tail := identity.TailAlnum(human.ApplicationID, 4); tail != "" {
		if m := scan(apps, func(a types.Application) bool {
			return hasDelimitedTail(a.ApplicationID, tail)
		}); m.Record != nil {
			m.Method = MethodTail
			return m
		}
	}

	return Match{Status: types.StatusNotFoundInLLM}
}

func scan(apps []types.Application, pred func(types.Application) bool) Match {
	var out Match
	for i := range apps {
		if !pred(apps[i]) {
			continue
		}
		if out.Record == nil {
			out.Record = &apps[i]
			out.Status = statusOf(apps[i])
			continue
		}
		out.AmbiguousWith = append(out.AmbiguousWith, apps[i].ApplicationID)
	}
	return out
}

func hasDelimitedTail(id, tail string) bool {
	lid := strings.ToLower(id)
	if strings.HasSuffix(lid, tail) {
		return true
	}
	for _, sep := range []string{"-", "_", " "} {
		if strings.Contains(lid, sep+tail) {
			return true
		}
	}
	return false
}

func statusOf(a types.Application) types.LLMStatus {
	if a.Eligible() {
		return types.StatusRanked
	}
	return types.StatusIneligible
}
