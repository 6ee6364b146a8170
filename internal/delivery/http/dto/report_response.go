package dto

import (
	"jobboard/internal/domain/report"

	"github.com/google/uuid"
)

type ReportResponse struct {
	ID          uuid.UUID `json:"id"`
	ReporterID  uuid.UUID `json:"reporter_id"`
	TargetID    string    `json:"target_id"`
	TargetType  string    `json:"target_type"`
	Reason      string    `json:"reason"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   string    `json:"created_at"`
}

func NewReportResponse(r report.Report) ReportResponse {
	return ReportResponse{
		ID:          r.ID,
		ReporterID:  r.ReporterID,
		TargetID:    r.TargetID,
		TargetType:  r.TargetType,
		Reason:      r.Reason,
		Description: r.Description,
		Status:      r.Status,
		CreatedAt:   formatTime(r.CreatedAt),
	}
}

type SnapshotRefreshResponse struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
	Error string `json:"error,omitempty"`
}
