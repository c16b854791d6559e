package storage

import (
	"context"
	"slices"
	"sync"

	"github.com/rl1809/cash-register/internal/core/domain"
)

// MemoryCache is an in-process CacheRepository for single-process use.
type MemoryCache struct {
	mu       sync.Mutex
	claimed  map[string]struct{}
	sequence int64
	snapshot domain.Snapshot
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{claimed: make(map[string]struct{})}
}

func (m *MemoryCache) SetIdempotency(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.claimed[key]; ok {
		return false, nil
	}
	m.claimed[key] = struct{}{}
	return true, nil
}

func (m *MemoryCache) ReleaseIdempotency(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.claimed, key)
	return nil
}

func (m *MemoryCache) SetSnapshot(ctx context.Context, sequence int64, snapshot domain.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sequence <= m.sequence {
		return nil
	}
	m.sequence = sequence
	m.snapshot = domain.Snapshot{
		Denominations: slices.Clone(snapshot.Denominations),
		Counts:        slices.Clone(snapshot.Counts),
		Total:         snapshot.Total,
	}
	return nil
}

func (m *MemoryCache) GetSnapshot(ctx context.Context) (domain.Snapshot, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sequence == 0 {
		return domain.Snapshot{}, 0, ErrSnapshotNotFound
	}
	return m.snapshot, m.sequence, nil
}
