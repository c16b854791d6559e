package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/cash-register/internal/core/domain"
	"github.com/rl1809/cash-register/internal/pkg/logging"
)

// Mock DatabaseRepository
type mockDatabaseRepo struct {
	saved    []domain.Transaction
	counts   map[int]int
	sequence int64
	failing  bool
	mu       sync.Mutex
}

func (m *mockDatabaseRepo) SaveTransaction(ctx context.Context, tx domain.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failing {
		return errors.New("database down")
	}
	m.saved = append(m.saved, tx)
	return nil
}

func (m *mockDatabaseRepo) LoadCounts(ctx context.Context) (map[int]int, int64, error) {
	if m.failing {
		return nil, 0, errors.New("database down")
	}
	return m.counts, m.sequence, nil
}

func TestJournalWorker_SavesAndPublishes(t *testing.T) {
	cache := newMockCacheRepo()
	db := &mockDatabaseRepo{}
	svc := NewRegisterService(domain.NewDefaultRegister(), cache, 10)

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			NewJournalWorker(id, db, cache, logging.NopLogger).Run(svc.GetTransactionQueue())
		}(i)
	}

	ctx := context.Background()
	_, err := svc.Deposit(ctx, "req-1", []int{1, 2, 3, 4, 5})
	require.NoError(t, err)
	_, err = svc.Withdraw(ctx, "req-2", []int{1, 0, 0, 0, 0})
	require.NoError(t, err)
	_, _, err = svc.MakeChange(ctx, "req-3", 10)
	require.NoError(t, err)

	svc.Close()
	wg.Wait()

	assert.Len(t, db.saved, 3)
	require.Contains(t, cache.snapshots, int64(3))
	assert.Equal(t, "$38 0 1 3 4 5", cache.snapshots[3].String())
}

func TestJournalWorker_SaveFailureSkipsSnapshot(t *testing.T) {
	cache := newMockCacheRepo()
	db := &mockDatabaseRepo{failing: true}
	svc := NewRegisterService(domain.NewDefaultRegister(), cache, 10)

	done := make(chan struct{})
	go func() {
		defer close(done)
		NewJournalWorker(0, db, cache, logging.NopLogger).Run(svc.GetTransactionQueue())
	}()

	_, err := svc.Deposit(context.Background(), "req-1", []int{1, 0, 0, 0, 0})
	require.NoError(t, err)

	svc.Close()
	<-done

	assert.Empty(t, db.saved)
	assert.Empty(t, cache.snapshots)
}

func TestRestoreFrom(t *testing.T) {
	tests := []struct {
		name        string
		db          *mockDatabaseRepo
		wantDisplay string
		wantErr     error
	}{
		{
			name:        "empty journal",
			db:          &mockDatabaseRepo{},
			wantDisplay: "$0 0 0 0 0 0",
		},
		{
			name: "matching denominations",
			db: &mockDatabaseRepo{
				counts:   map[int]int{20: 1, 10: 2, 5: 3, 2: 4, 1: 5},
				sequence: 9,
			},
			wantDisplay: "$68 1 2 3 4 5",
		},
		{
			name:        "other denominations",
			db:          &mockDatabaseRepo{counts: map[int]int{20: 1, 10: 2, 5: 3, 2: 4, 50: 5}},
			wantDisplay: "$0 0 0 0 0 0",
			wantErr:     ErrJournalMismatch,
		},
		{
			name:        "fewer denominations",
			db:          &mockDatabaseRepo{counts: map[int]int{20: 1}},
			wantDisplay: "$0 0 0 0 0 0",
			wantErr:     ErrJournalMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewRegisterService(domain.NewDefaultRegister(), newMockCacheRepo(), 1)
			defer svc.Close()

			err := svc.RestoreFrom(context.Background(), tt.db)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantDisplay, svc.Show().String())
		})
	}
}

func TestRestoreFrom_LoadFailure(t *testing.T) {
	svc := NewRegisterService(domain.NewDefaultRegister(), newMockCacheRepo(), 1)
	defer svc.Close()

	err := svc.RestoreFrom(context.Background(), &mockDatabaseRepo{failing: true})
	assert.ErrorContains(t, err, "load counts")
}
