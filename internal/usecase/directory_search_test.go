package usecase

import (
	"context"
	"errors"
	"testing"

	"jobboard/internal/domain/company"
	"jobboard/internal/domain/jobpost"
	"jobboard/internal/domain/jobseeker"
)

func intPtr(v int) *int { return &v }

func newTestDirectory() *DirectorySearch {
	companies := &countingSource[company.Company]{items: []company.Company{
		{Name: "Acme Corp", Location: "Kathmandu", Industry: "IT", FoundedYear: "2010"},
		{Name: "Beta Ltd", Location: "Pokhara", Industry: "Finance", FoundedYear: "1998"},
	}}
	seekers := &countingSource[jobseeker.JobSeeker]{items: []jobseeker.JobSeeker{
		{Name: "Sita Sharma", Profession: "Go Developer", Bio: "Backend"},
		{Name: "Ram Thapa", Profession: "Accountant", Bio: "Audits"},
	}}
	posts := &countingSource[jobpost.JobPost]{items: []jobpost.JobPost{
		{Title: "Backend Engineer", Category: "[IT]", Location: "Kathmandu"},
		{Title: "Accountant", Category: "Finance", Location: "Pokhara"},
	}}
	return NewDirectorySearch(companies, seekers, posts, nil)
}

func TestDirectorySearch_SearchCompanies(t *testing.T) {
	uc := newTestDirectory()
	got, err := uc.SearchCompanies(context.Background(), SearchParams{Location: "kathmandu"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Acme Corp" {
		t.Fatalf("unexpected result: %+v", got)
	}

	got, err = uc.SearchCompanies(context.Background(), SearchParams{YearMax: intPtr(2000)})
	if err != nil || len(got) != 1 || got[0].Name != "Beta Ltd" {
		t.Fatalf("unexpected year result: %+v err=%v", got, err)
	}
}

func TestDirectorySearch_InvalidYearRange(t *testing.T) {
	uc := newTestDirectory()
	cases := []SearchParams{
		{YearMin: intPtr(2020), YearMax: intPtr(2000)},
		{YearMin: intPtr(-1)},
		{YearMax: intPtr(-5)},
	}
	for _, p := range cases {
		if _, err := uc.SearchCompanies(context.Background(), p); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", p, err)
		}
	}
}

func TestDirectorySearch_SearchJobSeekersUsesKeywords(t *testing.T) {
	uc := newTestDirectory()
	got, err := uc.SearchJobSeekers(context.Background(), SearchParams{Query: "accountant backend"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected both seekers, got %+v", got)
	}
}

func TestDirectorySearch_SearchJobPosts(t *testing.T) {
	uc := newTestDirectory()
	got, err := uc.SearchJobPosts(context.Background(), SearchParams{Categories: []string{" ", "it"}})
	if err != nil || len(got) != 1 || got[0].Title != "Backend Engineer" {
		t.Fatalf("unexpected result: %+v err=%v", got, err)
	}
}

func TestDirectorySearch_SourceFailure(t *testing.T) {
	uc := NewDirectorySearch(
		&countingSource[company.Company]{err: errors.New("db down")},
		nil,
		&countingSource[jobpost.JobPost]{err: ErrUnavailable},
		nil,
	)
	if _, err := uc.SearchCompanies(context.Background(), SearchParams{}); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if _, err := uc.SearchJobSeekers(context.Background(), SearchParams{}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable for missing source, got %v", err)
	}
	if _, err := uc.SearchJobPosts(context.Background(), SearchParams{}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
