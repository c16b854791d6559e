package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rl1809/cash-register/internal/core/domain"
)

var ErrCountsMismatch = errors.New("snapshot counts do not match denominations")

type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func (m *MySQLAdapter) SaveTransaction(ctx context.Context, t domain.Transaction) error {
	if len(t.Snapshot.Counts) != len(t.Snapshot.Denominations) {
		return ErrCountsMismatch
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO register_transactions (id, request_id, kind, amounts, target, sequence, total, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.RequestID, t.Kind, domain.FormatAmounts(t.Amounts), t.Target,
		t.Sequence, t.Snapshot.Total, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	// Workers may commit out of order; a row only moves forward in sequence.
	for i, denomination := range t.Snapshot.Denominations {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO register_counts (denomination, count, sequence)
			VALUES (?, ?, ?)
			ON DUPLICATE KEY UPDATE
				count = IF(VALUES(sequence) > sequence, VALUES(count), count),
				sequence = GREATEST(sequence, VALUES(sequence))`,
			denomination, t.Snapshot.Counts[i], t.Sequence,
		)
		if err != nil {
			return fmt.Errorf("upsert count for %d: %w", denomination, err)
		}
	}

	return tx.Commit()
}

func (m *MySQLAdapter) LoadCounts(ctx context.Context) (map[int]int, int64, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT denomination, count, sequence FROM register_counts`)
	if err != nil {
		return nil, 0, fmt.Errorf("query counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[int]int)
	var latest int64
	for rows.Next() {
		var denomination, count int
		var sequence int64
		if err := rows.Scan(&denomination, &count, &sequence); err != nil {
			return nil, 0, fmt.Errorf("scan count: %w", err)
		}
		counts[denomination] = count
		latest = max(latest, sequence)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate counts: %w", err)
	}

	return counts, latest, nil
}

// CountTransactions returns the number of journal rows of the given kind.
func (m *MySQLAdapter) CountTransactions(ctx context.Context, kind domain.TransactionKind) (int, error) {
	var n int
	err := m.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM register_transactions WHERE kind = ?`, kind,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}
