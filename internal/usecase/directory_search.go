package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"jobboard/internal/domain/company"
	"jobboard/internal/domain/jobpost"
	"jobboard/internal/domain/jobseeker"
	"jobboard/internal/search"
)

type SearchParams struct {
	Query      string
	Categories []string
	Location   string
	YearMin    *int
	YearMax    *int
}

type DirectorySearchUsecase interface {
	SearchCompanies(ctx context.Context, params SearchParams) ([]company.Company, error)
	SearchJobSeekers(ctx context.Context, params SearchParams) ([]jobseeker.JobSeeker, error)
	SearchJobPosts(ctx context.Context, params SearchParams) ([]jobpost.JobPost, error)
}

type DirectorySearch struct {
	companies  SnapshotSource[company.Company]
	jobSeekers SnapshotSource[jobseeker.JobSeeker]
	jobPosts   SnapshotSource[jobpost.JobPost]
	logger     *log.Logger
}

func NewDirectorySearch(
	companies SnapshotSource[company.Company],
	jobSeekers SnapshotSource[jobseeker.JobSeeker],
	jobPosts SnapshotSource[jobpost.JobPost],
	logger *log.Logger,
) *DirectorySearch {
	return &DirectorySearch{companies: companies, jobSeekers: jobSeekers, jobPosts: jobPosts, logger: logger}
}

// SearchCompanies filters by name, location, description and industry. The
// result keeps snapshot order.
func (u *DirectorySearch) SearchCompanies(ctx context.Context, params SearchParams) ([]company.Company, error) {
	p, err := buildPredicate(params, search.MatchPhrase)
	if err != nil {
		return nil, err
	}
	items, err := loadSnapshot(ctx, u.companies, u.logger, SnapshotCompanies)
	if err != nil {
		return nil, err
	}
	return search.Filter(items, p), nil
}

// SearchJobSeekers matches any whitespace-separated keyword of the query
// against name, email, profession and bio.
func (u *DirectorySearch) SearchJobSeekers(ctx context.Context, params SearchParams) ([]jobseeker.JobSeeker, error) {
	p, err := buildPredicate(params, search.MatchAnyKeyword)
	if err != nil {
		return nil, err
	}
	items, err := loadSnapshot(ctx, u.jobSeekers, u.logger, SnapshotJobSeekers)
	if err != nil {
		return nil, err
	}
	return search.Filter(items, p), nil
}

func (u *DirectorySearch) SearchJobPosts(ctx context.Context, params SearchParams) ([]jobpost.JobPost, error) {
	p, err := buildPredicate(params, search.MatchPhrase)
	if err != nil {
		return nil, err
	}
	items, err := loadSnapshot(ctx, u.jobPosts, u.logger, SnapshotJobPosts)
	if err != nil {
		return nil, err
	}
	return search.Filter(items, p), nil
}

func buildPredicate(params SearchParams, mode search.MatchMode) (search.Predicate, error) {
	if params.YearMin != nil && *params.YearMin < 0 {
		return search.Predicate{}, ErrInvalidInput
	}
	if params.YearMax != nil && *params.YearMax < 0 {
		return search.Predicate{}, ErrInvalidInput
	}
	if params.YearMin != nil && params.YearMax != nil && *params.YearMin > *params.YearMax {
		return search.Predicate{}, ErrInvalidInput
	}

	cats := make([]string, 0, len(params.Categories))
	for _, c := range params.Categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		cats = append(cats, c)
	}

	return search.Predicate{
		Query:      params.Query,
		Categories: cats,
		Location:   params.Location,
		YearMin:    params.YearMin,
		YearMax:    params.YearMax,
		Mode:       mode,
	}, nil
}

func loadSnapshot[T any](ctx context.Context, src SnapshotSource[T], logger *log.Logger, kind string) ([]T, error) {
	if src == nil {
		return nil, ErrUnavailable
	}
	items, err := src.Snapshot(ctx)
	if err != nil {
		if logger != nil {
			logger.Printf("[Search] Snapshot unavailable kind=%s err=%v", kind, err)
		}
		if errors.Is(err, ErrUnavailable) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrUnavailable
		}
		return nil, ErrInternal
	}
	return items, nil
}
