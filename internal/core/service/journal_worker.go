package service

import (
	"context"
	"time"

	"github.com/rl1809/cash-register/internal/core/domain"
	"github.com/rl1809/cash-register/internal/pkg/logging"
	"github.com/rl1809/cash-register/internal/port"
)

const journalTimeout = 5 * time.Second

// JournalWorker persists queued transactions and publishes the snapshot each
// one left behind. Run returns once the queue is closed and drained.
type JournalWorker struct {
	id     int
	db     port.DatabaseRepository
	cache  port.CacheRepository
	logger logging.Logger
}

func NewJournalWorker(id int, db port.DatabaseRepository, cache port.CacheRepository, logger logging.Logger) *JournalWorker {
	return &JournalWorker{id: id, db: db, cache: cache, logger: logger}
}

func (w *JournalWorker) Run(queue <-chan domain.Transaction) {
	for tx := range queue {
		w.handle(tx)
	}
}

func (w *JournalWorker) handle(tx domain.Transaction) {
	ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
	defer cancel()

	if err := w.db.SaveTransaction(ctx, tx); err != nil {
		w.logger.Error("failed to save transaction",
			"worker", w.id, "transaction", tx.ID, "sequence", tx.Sequence, "error", err)
		return
	}

	if err := w.cache.SetSnapshot(ctx, tx.Sequence, tx.Snapshot); err != nil {
		w.logger.Warn("failed to publish snapshot",
			"worker", w.id, "transaction", tx.ID, "sequence", tx.Sequence, "error", err)
		return
	}

	w.logger.Info("saved transaction",
		"worker", w.id, "transaction", tx.ID, "kind", tx.Kind, "sequence", tx.Sequence, "total", tx.Snapshot.Total)
}
