package usecase

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeTarget struct {
	kind  string
	count int
	err   error
	calls int
}

func (f *fakeTarget) Kind() string { return f.kind }

func (f *fakeTarget) Refresh(context.Context) (int, error) {
	f.calls++
	return f.count, f.err
}

type recordingNotifier struct {
	kinds []string
}

func (n *recordingNotifier) NotifySnapshotRefreshed(kind string, _ int) {
	n.kinds = append(n.kinds, kind)
}

type recordingObserver struct {
	failed []string
}

func (o *recordingObserver) ObserveRefresh(kind string, _ int, _ time.Duration, err error) {
	if err != nil {
		o.failed = append(o.failed, kind)
	}
}

func TestSnapshotRefresher_RefreshAll(t *testing.T) {
	boom := errors.New("boom")
	a := &fakeTarget{kind: SnapshotCompanies, count: 3}
	b := &fakeTarget{kind: SnapshotJobSeekers, err: boom}
	c := &fakeTarget{kind: SnapshotJobPosts, count: 7}
	n := &recordingNotifier{}
	r := NewSnapshotRefresher(n, nil, a, b, c)
	obs := &recordingObserver{}
	r.SetObserver(obs)

	results, err := r.RefreshAll(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected joined boom, got %v", err)
	}
	if len(results) != 3 || results[2].Count != 7 || results[1].Err == nil {
		t.Fatalf("unexpected results: %+v", results)
	}
	if len(n.kinds) != 2 || n.kinds[0] != SnapshotCompanies || n.kinds[1] != SnapshotJobPosts {
		t.Fatalf("unexpected notifications: %v", n.kinds)
	}
	if len(obs.failed) != 1 || obs.failed[0] != SnapshotJobSeekers {
		t.Fatalf("unexpected observed failures: %v", obs.failed)
	}
}

func TestSnapshotRefresher_RefreshKind(t *testing.T) {
	a := &fakeTarget{kind: SnapshotCompanies, count: 3}
	b := &fakeTarget{kind: SnapshotReports, count: 1}
	r := NewSnapshotRefresher(nil, nil, a, b)

	res, err := r.RefreshKind(context.Background(), SnapshotReports)
	if err != nil || res.Count != 1 || a.calls != 0 || b.calls != 1 {
		t.Fatalf("unexpected: res=%+v err=%v a=%d b=%d", res, err, a.calls, b.calls)
	}

	if _, err := r.RefreshKind(context.Background(), "unknown"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	kinds := r.Kinds()
	if len(kinds) != 2 || kinds[0] != SnapshotCompanies {
		t.Fatalf("unexpected kinds: %v", kinds)
	}
}
