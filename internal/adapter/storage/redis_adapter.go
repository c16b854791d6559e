package storage

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rl1809/cash-register/internal/core/domain"
	"github.com/rl1809/cash-register/internal/port"
)

const (
	snapshotKey       = "register:snapshot"
	idempotencyKeyTTL = 24 * time.Hour
)

var ErrSnapshotNotFound = port.ErrSnapshotNotFound

var setSnapshotScript = redis.NewScript(`
local key = KEYS[1]
local sequence = tonumber(ARGV[1])

local current = tonumber(redis.call('HGET', key, 'sequence') or '0')
if current >= sequence then
	return 0
end

redis.call('HSET', key, 'sequence', ARGV[1], 'total', ARGV[2], 'denominations', ARGV[3], 'counts', ARGV[4])
return 1
`)

type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (r *RedisAdapter) SetIdempotency(ctx context.Context, key string) (bool, error) {
	ok, err := r.client.SetNX(ctx, key, 1, idempotencyKeyTTL).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

func (r *RedisAdapter) ReleaseIdempotency(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// SetSnapshot stores the snapshot unless a newer sequence is already stored.
func (r *RedisAdapter) SetSnapshot(ctx context.Context, sequence int64, snapshot domain.Snapshot) error {
	return setSnapshotScript.Run(ctx, r.client, []string{snapshotKey},
		sequence,
		snapshot.Total,
		domain.FormatAmounts(snapshot.Denominations),
		domain.FormatAmounts(snapshot.Counts),
	).Err()
}

func (r *RedisAdapter) GetSnapshot(ctx context.Context) (domain.Snapshot, int64, error) {
	fields, err := r.client.HGetAll(ctx, snapshotKey).Result()
	if err != nil {
		return domain.Snapshot{}, 0, err
	}
	if len(fields) == 0 {
		return domain.Snapshot{}, 0, ErrSnapshotNotFound
	}

	sequence, err := strconv.ParseInt(fields["sequence"], 10, 64)
	if err != nil {
		return domain.Snapshot{}, 0, fmt.Errorf("parse sequence: %w", err)
	}
	total, err := strconv.Atoi(fields["total"])
	if err != nil {
		return domain.Snapshot{}, 0, fmt.Errorf("parse total: %w", err)
	}
	denominations, err := parseAmounts(fields["denominations"])
	if err != nil {
		return domain.Snapshot{}, 0, fmt.Errorf("parse denominations: %w", err)
	}
	counts, err := parseAmounts(fields["counts"])
	if err != nil {
		return domain.Snapshot{}, 0, fmt.Errorf("parse counts: %w", err)
	}

	return domain.Snapshot{Denominations: denominations, Counts: counts, Total: total}, sequence, nil
}

func parseAmounts(s string) ([]int, error) {
	fields := strings.Fields(s)
	amounts := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		amounts[i] = n
	}
	return amounts, nil
}
