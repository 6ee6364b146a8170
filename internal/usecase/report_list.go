package usecase

import (
	"context"
	"log"

	"jobboard/internal/domain/report"
	"jobboard/internal/search"
)

type ReportListParams struct {
	Query    string
	Statuses []string
}

type ReportListUsecase interface {
	ListReports(ctx context.Context, params ReportListParams) ([]report.Report, error)
}

type ReportList struct {
	reports SnapshotSource[report.Report]
	logger  *log.Logger
}

func NewReportList(reports SnapshotSource[report.Report], logger *log.Logger) *ReportList {
	return &ReportList{reports: reports, logger: logger}
}

// ListReports returns matching reports, newest first.
func (u *ReportList) ListReports(ctx context.Context, params ReportListParams) ([]report.Report, error) {
	p, err := buildPredicate(SearchParams{Query: params.Query, Categories: params.Statuses}, search.MatchPhrase)
	if err != nil {
		return nil, err
	}
	items, err := loadSnapshot(ctx, u.reports, u.logger, SnapshotReports)
	if err != nil {
		return nil, err
	}
	return search.FilterNewestFirst(items, p), nil
}
