package port

import (
	"context"
	"errors"

	"github.com/rl1809/cash-register/internal/core/domain"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

type CacheRepository interface {
	// SetIdempotency claims a request key, returns false if already claimed
	SetIdempotency(ctx context.Context, key string) (bool, error)

	// ReleaseIdempotency frees a claimed key so the request can be retried
	ReleaseIdempotency(ctx context.Context, key string) error

	// SetSnapshot publishes register contents; older sequences are ignored
	SetSnapshot(ctx context.Context, sequence int64, snapshot domain.Snapshot) error

	// GetSnapshot returns the published snapshot and its sequence, or
	// ErrSnapshotNotFound if none was published
	GetSnapshot(ctx context.Context) (domain.Snapshot, int64, error)
}
