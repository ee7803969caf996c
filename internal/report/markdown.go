package report

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kjet-tools/kjet-recon/pkg/types"
)

func BuildMarkdown(r types.CountyComparisonResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("# %s: Human vs Automated Evaluation\n\n", r.County))
	b.WriteString(fmt.Sprintf("- Run: `%s`\n", r.RunID))
	b.WriteString(fmt.Sprintf("- Generated: %s\n", r.GeneratedAt))
	b.WriteString(fmt.Sprintf("- Applications: `%d` (matched `%d`)\n", r.TotalApplications, r.MatchedCount))
	b.WriteString(fmt.Sprintf("- Verdicts: full `%d` / partial `%d` / disagreement `%d`\n", r.FullCount, r.PartialCount, r.DisagreementCount))
	b.WriteString(fmt.Sprintf("- Avg |rank delta|: `%.2f`, avg |score delta|: `%.2f`\n\n", r.AvgRankDelta, r.AvgScoreDelta))

	if len(r.Matched) > 0 {
		b.WriteString("## Matched\n\n")
		b.WriteString("| Application | Human | Rank H/L | Score H/L | Verdict |\n")
		b.WriteString("|---|---|---|---|---|\n")
		for _, row := range r.Matched {
			b.WriteString(fmt.Sprintf("| %s | %s | %s/%s | %s/%s | %s |\n",
				escape(row.ApplicationID), escape(row.HumanStatus),
				intCell(row.HumanRank), intCell(row.LLMRank),
				floatCell(row.HumanScore), floatCell(row.LLMScore),
				row.Verdict))
		}
		b.WriteString("\n")
	}

	if len(r.Unmatched) > 0 {
		b.WriteString("## Unmatched\n\n")
		b.WriteString("| Application | Human | Reason | Penalty |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, row := range r.Unmatched {
			penalty := "-"
			if row.HasPenalty {
				penalty = escape(row.PenaltyReason)
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
				escape(row.ApplicationID), escape(row.HumanStatus), row.LLMStatus, penalty))
		}
		b.WriteString("\n")
	}

	if len(r.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, w := range r.Warnings {
			b.WriteString("- " + escape(w) + "\n")
		}
		b.WriteString("\n")
	}

	if len(r.Inputs) > 0 {
		b.WriteString("## Inputs\n\n")
		for _, in := range r.Inputs {
			b.WriteString(fmt.Sprintf("- %s: `%s` (%s)\n", in.Name, in.SHA256, escape(in.URI)))
		}
	}

	return b.String()
}

func WriteMarkdown(path string, r types.CountyComparisonResult) error {
	return os.WriteFile(path, []byte(BuildMarkdown(r)), 0o644)
}

func intCell(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func floatCell(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
