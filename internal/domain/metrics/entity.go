package metrics

import "github.com/google/uuid"

// JobMetrics holds the raw per-job counters. Rates are always derived from
// these and never stored.
type JobMetrics struct {
	JobID             uuid.UUID `json:"job_id"`
	Title             string    `json:"title"`
	Category          string    `json:"category"`
	TotalApplications int       `json:"total_applications"`
	Shortlisted       int       `json:"shortlisted"`
	Rejected          int       `json:"rejected"`
	Hired             int       `json:"hired"`
	Deadline          string    `json:"deadline"`
}

// CategoryMetrics is the application count for one raw category label.
// Labels may arrive bracket-wrapped, e.g. "[Software Development]".
type CategoryMetrics struct {
	Label             string `json:"label"`
	TotalApplications int    `json:"total_applications"`
}
