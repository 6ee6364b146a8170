package analytics

import (
	"time"

	"jobboard/internal/domain/metrics"

	"github.com/google/uuid"
)

type Summary struct {
	Jobs              int          `json:"jobs"`
	TotalApplications int          `json:"total_applications"`
	Shortlisted       int          `json:"shortlisted"`
	Rejected          int          `json:"rejected"`
	Hired             int          `json:"hired"`
	Rates             DerivedRates `json:"rates"`
}

// Summarize totals the counters of every job and derives the overall rates
// from the summed counters, not by averaging per-job rates.
func Summarize(jobs []metrics.JobMetrics) Summary {
	s := Summary{Jobs: len(jobs)}
	for _, j := range jobs {
		s.TotalApplications += nonNegative(j.TotalApplications)
		s.Shortlisted += nonNegative(j.Shortlisted)
		s.Rejected += nonNegative(j.Rejected)
		s.Hired += nonNegative(j.Hired)
	}
	s.Rates = ComputeConversionMetrics(s.TotalApplications, s.Shortlisted, s.Rejected, s.Hired)
	return s
}

type FunnelStage struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

func Funnel(m metrics.JobMetrics) []FunnelStage {
	total := nonNegative(m.TotalApplications)
	return []FunnelStage{
		{Name: "Applied", Count: total, Percent: percent(total, total)},
		{Name: "Shortlisted", Count: nonNegative(m.Shortlisted), Percent: percent(nonNegative(m.Shortlisted), total)},
		{Name: "Hired", Count: nonNegative(m.Hired), Percent: percent(nonNegative(m.Hired), total)},
	}
}

// JobAnalytics is one row of the per-job analytics card.
type JobAnalytics struct {
	JobID             uuid.UUID     `json:"job_id"`
	Title             string        `json:"title"`
	Category          string        `json:"category"`
	TotalApplications int           `json:"total_applications"`
	Shortlisted       int           `json:"shortlisted"`
	Rejected          int           `json:"rejected"`
	Hired             int           `json:"hired"`
	Rates             DerivedRates  `json:"rates"`
	RawDeadline       string        `json:"deadline"`
	Deadline          Deadline      `json:"-"`
	Funnel            []FunnelStage `json:"funnel"`
}

func JobReport(m metrics.JobMetrics, now time.Time) JobAnalytics {
	return JobAnalytics{
		JobID:             m.JobID,
		Title:             m.Title,
		Category:          NormalizeCategoryLabel(m.Category),
		TotalApplications: m.TotalApplications,
		Shortlisted:       m.Shortlisted,
		Rejected:          m.Rejected,
		Hired:             m.Hired,
		Rates:             DeriveRates(m),
		RawDeadline:       m.Deadline,
		Deadline:          EvaluateDeadline(m.Deadline, now),
		Funnel:            Funnel(m),
	}
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
