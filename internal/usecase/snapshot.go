package usecase

import (
	"context"
	"fmt"
	"log"
	"time"
)

// SnapshotSource delivers a complete, immutable list of entities, or an
// error when none is available.
type SnapshotSource[T any] interface {
	Snapshot(ctx context.Context) ([]T, error)
}

type SnapshotFunc[T any] func(ctx context.Context) ([]T, error)

func (f SnapshotFunc[T]) Snapshot(ctx context.Context) ([]T, error) { return f(ctx) }

type SnapshotCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}

const (
	SnapshotCompanies  = "companies"
	SnapshotJobSeekers = "job_seekers"
	SnapshotJobPosts   = "job_posts"
	SnapshotReports    = "reports"
)

func SnapshotCacheKey(kind string) string { return "snapshot:" + kind }

func SnapshotLockKey(kind string) string { return "snapshot:lock:" + kind }

// CachedSnapshot serves a snapshot from the cache and falls back to the
// source on a miss. A refresh replaces the cached list wholesale.
type CachedSnapshot[T any] struct {
	kind   string
	source SnapshotSource[T]
	cache  SnapshotCache
	logger *log.Logger

	lockWait time.Duration
}

func NewCachedSnapshot[T any](kind string, source SnapshotSource[T], cache SnapshotCache, logger *log.Logger) *CachedSnapshot[T] {
	return &CachedSnapshot[T]{kind: kind, source: source, cache: cache, logger: logger, lockWait: 300 * time.Millisecond}
}

func (s *CachedSnapshot[T]) Kind() string { return s.kind }

func (s *CachedSnapshot[T]) Snapshot(ctx context.Context) ([]T, error) {
	key := SnapshotCacheKey(s.kind)
	if items, ok := s.fromCache(ctx, key); ok {
		return items, nil
	}

	lockKey := SnapshotLockKey(s.kind)
	lockAcquired := false
	if s.cache != nil {
		ok, err := s.cache.SetIfNotExists(ctx, lockKey, "1", 30*time.Second)
		switch {
		case err == nil && ok:
			lockAcquired = true
		case err == nil && !ok:
			// another replica is loading; give it a moment before hitting the database too
			jitter := time.Duration(time.Now().UnixNano()%201) * time.Millisecond
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.lockWait + jitter):
			}
			if items, ok := s.fromCache(ctx, key); ok {
				return items, nil
			}
			s.logf("[Snapshot] Lock wait fallback: %s", lockKey)
		}
	}

	items, err := s.load(ctx)
	if err != nil {
		if lockAcquired {
			_ = s.cache.Delete(ctx, lockKey)
		}
		return nil, err
	}
	s.store(ctx, key, items)
	if lockAcquired {
		_ = s.cache.Delete(ctx, lockKey)
	}
	return items, nil
}

// Refresh reloads the snapshot from the source and replaces the cached copy.
// It returns the number of entities in the new snapshot.
func (s *CachedSnapshot[T]) Refresh(ctx context.Context) (int, error) {
	items, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	s.store(ctx, SnapshotCacheKey(s.kind), items)
	return len(items), nil
}

func (s *CachedSnapshot[T]) fromCache(ctx context.Context, key string) ([]T, bool) {
	if s.cache == nil {
		return nil, false
	}
	var cached []T
	hit, err := s.cache.GetJSON(ctx, key, &cached)
	if err != nil || !hit {
		s.logf("[Snapshot] Cache MISS: %s", key)
		return nil, false
	}
	s.logf("[Snapshot] Cache HIT: %s", key)
	return cached, true
}

func (s *CachedSnapshot[T]) load(ctx context.Context) ([]T, error) {
	if s.source == nil {
		return nil, ErrUnavailable
	}
	items, err := s.source.Snapshot(ctx)
	if err != nil {
		s.logf("[Snapshot] Load error kind=%s err=%v", s.kind, err)
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, s.kind, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (s *CachedSnapshot[T]) store(ctx context.Context, key string, items []T) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, items, 0); err != nil {
		s.logf("[Snapshot] Cache SET error: %s err=%v", key, err)
		return
	}
	s.logf("[Snapshot] Cache SET: %s count=%d", key, len(items))
}

func (s *CachedSnapshot[T]) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
