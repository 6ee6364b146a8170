package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobboard/internal/domain/company"
)

func TestCachedSnapshot_MissThenHit(t *testing.T) {
	cache := newMemoryCache()
	src := &countingSource[company.Company]{items: []company.Company{{Name: "Acme Corp"}, {Name: "Beta Ltd"}}}
	s := NewCachedSnapshot[company.Company](SnapshotCompanies, src, cache, nil)

	first, err := s.Snapshot(context.Background())
	if err != nil || len(first) != 2 {
		t.Fatalf("unexpected first result: %+v err=%v", first, err)
	}
	second, err := s.Snapshot(context.Background())
	if err != nil || len(second) != 2 || second[1].Name != "Beta Ltd" {
		t.Fatalf("unexpected cached result: %+v err=%v", second, err)
	}
	if src.calls != 1 {
		t.Fatalf("expected source to be read once, got %d", src.calls)
	}
	if cache.locks[SnapshotLockKey(SnapshotCompanies)] {
		t.Fatalf("lock not released")
	}
}

func TestCachedSnapshot_RefreshReplacesWholesale(t *testing.T) {
	cache := newMemoryCache()
	src := &countingSource[company.Company]{items: []company.Company{{Name: "Acme Corp"}}}
	s := NewCachedSnapshot[company.Company](SnapshotCompanies, src, cache, nil)

	if _, err := s.Snapshot(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	src.items = []company.Company{{Name: "Gamma Labs"}, {Name: "Delta Foods"}, {Name: "Beta Ltd"}}
	n, err := s.Refresh(context.Background())
	if err != nil || n != 3 {
		t.Fatalf("unexpected refresh: n=%d err=%v", n, err)
	}
	got, _ := s.Snapshot(context.Background())
	if len(got) != 3 || got[0].Name != "Gamma Labs" {
		t.Fatalf("snapshot not replaced: %+v", got)
	}
}

func TestCachedSnapshot_SourceError(t *testing.T) {
	cache := newMemoryCache()
	src := &countingSource[company.Company]{err: errors.New("connection refused")}
	s := NewCachedSnapshot[company.Company](SnapshotCompanies, src, cache, nil)

	_, err := s.Snapshot(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if cache.locks[SnapshotLockKey(SnapshotCompanies)] {
		t.Fatalf("lock not released after failure")
	}
	if _, ok := cache.data[SnapshotCacheKey(SnapshotCompanies)]; ok {
		t.Fatalf("failed load must not be cached")
	}
}

func TestCachedSnapshot_LockHeldFallsBackToSource(t *testing.T) {
	cache := newMemoryCache()
	cache.locks[SnapshotLockKey(SnapshotCompanies)] = true
	src := &countingSource[company.Company]{items: []company.Company{{Name: "Acme Corp"}}}
	s := NewCachedSnapshot[company.Company](SnapshotCompanies, src, cache, nil)
	s.lockWait = time.Millisecond

	got, err := s.Snapshot(context.Background())
	if err != nil || len(got) != 1 {
		t.Fatalf("unexpected result: %+v err=%v", got, err)
	}
	if !cache.locks[SnapshotLockKey(SnapshotCompanies)] {
		t.Fatalf("foreign lock must not be released")
	}
}

func TestCachedSnapshot_NoCache(t *testing.T) {
	src := &countingSource[company.Company]{}
	s := NewCachedSnapshot[company.Company](SnapshotCompanies, src, nil, nil)

	got, err := s.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil snapshot, got %#v", got)
	}
}
