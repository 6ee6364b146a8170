package analytics

import (
	"sort"
	"strings"

	"jobboard/internal/domain/metrics"
)

// NormalizeCategoryLabel strips surrounding whitespace and wrapping brackets
// ("[Software Development]" -> "Software Development"). Applying it twice
// gives the same result as applying it once.
func NormalizeCategoryLabel(raw string) string {
	s := strings.TrimSpace(raw)
	for {
		trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(s, "["), "]"))
		if trimmed == s {
			return s
		}
		s = trimmed
	}
}

type CategoryShare struct {
	Label             string  `json:"label"`
	TotalApplications int     `json:"total_applications"`
	Share             float64 `json:"share"`
}

// CategoryBreakdown merges categories whose labels normalize to the same
// text and reports each one's share of all applications. Blank labels are
// grouped under "Uncategorized".
func CategoryBreakdown(cats []metrics.CategoryMetrics) []CategoryShare {
	totals := make(map[string]int, len(cats))
	order := make([]string, 0, len(cats))
	grand := 0
	for _, c := range cats {
		label := NormalizeCategoryLabel(c.Label)
		if label == "" {
			label = "Uncategorized"
		}
		n := c.TotalApplications
		if n < 0 {
			n = 0
		}
		if _, ok := totals[label]; !ok {
			order = append(order, label)
		}
		totals[label] += n
		grand += n
	}

	out := make([]CategoryShare, 0, len(order))
	for _, label := range order {
		out = append(out, CategoryShare{
			Label:             label,
			TotalApplications: totals[label],
			Share:             percent(totals[label], grand),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalApplications != out[j].TotalApplications {
			return out[i].TotalApplications > out[j].TotalApplications
		}
		return out[i].Label < out[j].Label
	})
	return out
}
