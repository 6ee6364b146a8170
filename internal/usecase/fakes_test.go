package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type memoryCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	locks   map[string]bool
	sets    int
	deletes []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}, locks: map[string]bool{}}
}

func (c *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	c.sets++
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	delete(c.locks, key)
	c.deletes = append(c.deletes, key)
	return nil
}

func (c *memoryCache) SetIfNotExists(_ context.Context, key string, _ string, _ time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.locks[key] {
		return false, nil
	}
	c.locks[key] = true
	return true, nil
}

type countingSource[T any] struct {
	items []T
	err   error
	calls int
}

func (s *countingSource[T]) Snapshot(context.Context) ([]T, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}
