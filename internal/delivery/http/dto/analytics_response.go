package dto

import (
	"jobboard/internal/analytics"

	"github.com/google/uuid"
)

// RatesResponse carries both the numeric rates and their one-decimal
// percentage rendering.
type RatesResponse struct {
	ConversionRate      float64 `json:"conversion_rate"`
	ShortlistRate       float64 `json:"shortlist_rate"`
	RejectionRate       float64 `json:"rejection_rate"`
	ConversionRateLabel string  `json:"conversion_rate_label"`
	ShortlistRateLabel  string  `json:"shortlist_rate_label"`
	RejectionRateLabel  string  `json:"rejection_rate_label"`
}

type DeadlineResponse struct {
	Raw           string `json:"raw"`
	State         string `json:"state"`
	DaysRemaining *int   `json:"days_remaining"`
	Label         string `json:"label"`
}

type FunnelStageResponse struct {
	Name         string  `json:"name"`
	Count        int     `json:"count"`
	Percent      float64 `json:"percent"`
	PercentLabel string  `json:"percent_label"`
}

type JobAnalyticsResponse struct {
	JobID             uuid.UUID             `json:"job_id"`
	Title             string                `json:"title"`
	Category          string                `json:"category"`
	TotalApplications int                   `json:"total_applications"`
	Shortlisted       int                   `json:"shortlisted"`
	Rejected          int                   `json:"rejected"`
	Hired             int                   `json:"hired"`
	Rates             RatesResponse         `json:"rates"`
	Deadline          DeadlineResponse      `json:"deadline"`
	Funnel            []FunnelStageResponse `json:"funnel"`
}

type CategoryShareResponse struct {
	Label             string  `json:"label"`
	TotalApplications int     `json:"total_applications"`
	Share             float64 `json:"share"`
	ShareLabel        string  `json:"share_label"`
}

type SummaryResponse struct {
	Jobs              int           `json:"jobs"`
	TotalApplications int           `json:"total_applications"`
	Shortlisted       int           `json:"shortlisted"`
	Rejected          int           `json:"rejected"`
	Hired             int           `json:"hired"`
	Rates             RatesResponse `json:"rates"`
}

func NewRatesResponse(r analytics.DerivedRates) RatesResponse {
	return RatesResponse{
		ConversionRate:      r.ConversionRate,
		ShortlistRate:       r.ShortlistRate,
		RejectionRate:       r.RejectionRate,
		ConversionRateLabel: analytics.FormatRate(r.ConversionRate),
		ShortlistRateLabel:  analytics.FormatRate(r.ShortlistRate),
		RejectionRateLabel:  analytics.FormatRate(r.RejectionRate),
	}
}

func NewJobAnalyticsResponse(a analytics.JobAnalytics) JobAnalyticsResponse {
	dl := DeadlineResponse{
		Raw:   a.RawDeadline,
		State: a.Deadline.State.String(),
		Label: a.Deadline.Label(),
	}
	if a.Deadline.State == analytics.DeadlineActive {
		days := a.Deadline.Days
		dl.DaysRemaining = &days
	}

	funnel := make([]FunnelStageResponse, 0, len(a.Funnel))
	for _, st := range a.Funnel {
		funnel = append(funnel, FunnelStageResponse{
			Name:         st.Name,
			Count:        st.Count,
			Percent:      st.Percent,
			PercentLabel: analytics.FormatRate(st.Percent),
		})
	}

	return JobAnalyticsResponse{
		JobID:             a.JobID,
		Title:             a.Title,
		Category:          a.Category,
		TotalApplications: a.TotalApplications,
		Shortlisted:       a.Shortlisted,
		Rejected:          a.Rejected,
		Hired:             a.Hired,
		Rates:             NewRatesResponse(a.Rates),
		Deadline:          dl,
		Funnel:            funnel,
	}
}

func NewCategoryShareResponse(s analytics.CategoryShare) CategoryShareResponse {
	return CategoryShareResponse{
		Label:             s.Label,
		TotalApplications: s.TotalApplications,
		Share:             s.Share,
		ShareLabel:        analytics.FormatRate(s.Share),
	}
}

func NewSummaryResponse(s analytics.Summary) SummaryResponse {
	return SummaryResponse{
		Jobs:              s.Jobs,
		TotalApplications: s.TotalApplications,
		Shortlisted:       s.Shortlisted,
		Rejected:          s.Rejected,
		Hired:             s.Hired,
		Rates:             NewRatesResponse(s.Rates),
	}
}
