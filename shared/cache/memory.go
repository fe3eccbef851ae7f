package cache

import (
	"context"
	"sync"
	"time"
)

const cleanupInterval = time.Minute

type memoryItem struct {
	value     string
	expiresAt time.Time
	hasExpiry bool
}

func (i memoryItem) expired(now time.Time) bool {
	return i.hasExpiry && now.After(i.expiresAt)
}

// memoryStore is an in-process Store used when Redis is unavailable.
// Expired entries are dropped lazily on read and by a background sweep.
type memoryStore struct {
	mu    sync.Mutex
	items map[string]memoryItem
	tags  map[string]map[string]struct{}

	ticker *time.Ticker
	done   chan struct{}
}

// NewMemoryStore creates an in-memory Store. Call Close to stop its
// cleanup goroutine.
func NewMemoryStore() *memoryStore {
	s := &memoryStore{
		items:  make(map[string]memoryItem),
		tags:   make(map[string]map[string]struct{}),
		ticker: time.NewTicker(cleanupInterval),
		done:   make(chan struct{}),
	}
	go s.sweep()
	return s
}

func (s *memoryStore) sweep() {
	for {
		select {
		case <-s.ticker.C:
			now := time.Now()
			s.mu.Lock()
			for key, item := range s.items {
				if item.expired(now) {
					delete(s.items, key)
				}
			}
			s.mu.Unlock()
		case <-s.done:
			return
		}
	}
}

// Close stops the background sweep.
func (s *memoryStore) Close() {
	s.ticker.Stop()
	close(s.done)
}

func (s *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[key]
	if !ok {
		return "", false, nil
	}
	if item.expired(time.Now()) {
		delete(s.items, key)
		return "", false, nil
	}
	return item.value, true, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string, ttl time.Duration, tags ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := memoryItem{value: value}
	if ttl > 0 {
		item.expiresAt = time.Now().Add(ttl)
		item.hasExpiry = true
	}
	s.items[key] = item

	for _, tag := range tags {
		members, ok := s.tags[tag]
		if !ok {
			members = make(map[string]struct{})
			s.tags[tag] = members
		}
		members[key] = struct{}{}
	}
	return nil
}

func (s *memoryStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.items, key)
	}
	return nil
}

func (s *memoryStore) DeleteByTag(_ context.Context, tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.tags[tag] {
		delete(s.items, key)
	}
	delete(s.tags, tag)
	return nil
}
