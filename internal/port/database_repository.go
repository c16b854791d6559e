package port

import (
	"context"

	"github.com/rl1809/cash-register/internal/core/domain"
)

type DatabaseRepository interface {
	// SaveTransaction appends to the journal and stores the counts it left behind
	SaveTransaction(ctx context.Context, tx domain.Transaction) error

	// LoadCounts returns persisted counts keyed by denomination and the latest sequence
	LoadCounts(ctx context.Context) (map[int]int, int64, error)
}
