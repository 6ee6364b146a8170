// Package analytics derives the recruitment figures shown on the company
// dashboard from raw counters. Everything here is pure and recomputed on
// every call; nothing derived is ever persisted.
package analytics

import (
	"fmt"

	"jobboard/internal/domain/metrics"
)

type DerivedRates struct {
	ConversionRate float64 `json:"conversion_rate"`
	ShortlistRate  float64 `json:"shortlist_rate"`
	RejectionRate  float64 `json:"rejection_rate"`
}

// ComputeConversionMetrics returns count/total*100 for hired, shortlisted and
// rejected. A non-positive total yields zero rates.
func ComputeConversionMetrics(totalApplications, shortlisted, rejected, hired int) DerivedRates {
	return DerivedRates{
		ConversionRate: percent(hired, totalApplications),
		ShortlistRate:  percent(shortlisted, totalApplications),
		RejectionRate:  percent(rejected, totalApplications),
	}
}

func DeriveRates(m metrics.JobMetrics) DerivedRates {
	return ComputeConversionMetrics(m.TotalApplications, m.Shortlisted, m.Rejected, m.Hired)
}

func percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// FormatRate renders a rate with one decimal place. Rounding happens only here.
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate)
}
