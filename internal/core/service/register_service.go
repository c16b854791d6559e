package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rl1809/cash-register/internal/core/domain"
	"github.com/rl1809/cash-register/internal/port"
)

var (
	ErrDuplicateRequest = errors.New("duplicate request")
	ErrJournalMismatch  = errors.New("journal denominations do not match register")
)

const idempotencyKeyPrefix = "register:request:"

// RegisterService fronts a register with request idempotency and queues a
// journal entry for every successful mutation.
type RegisterService struct {
	register *domain.Register
	cache    port.CacheRepository
	txQueue  chan domain.Transaction

	// mu orders mutations so each one gets its own sequence and snapshot.
	mu       sync.Mutex
	sequence int64
}

func NewRegisterService(register *domain.Register, cache port.CacheRepository, queueSize int) *RegisterService {
	return &RegisterService{
		register: register,
		cache:    cache,
		txQueue:  make(chan domain.Transaction, queueSize),
	}
}

// Restore deposits previously persisted counts without journaling them.
func (s *RegisterService) Restore(counts []int, sequence int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.register.Deposit(counts); err != nil {
		return fmt.Errorf("restore counts: %w", err)
	}
	s.sequence = sequence
	return nil
}

// RestoreFrom loads the counts last persisted to db. An empty journal leaves
// the register untouched; a journal kept for other denominations is an error.
func (s *RegisterService) RestoreFrom(ctx context.Context, db port.DatabaseRepository) error {
	persisted, sequence, err := db.LoadCounts(ctx)
	if err != nil {
		return fmt.Errorf("load counts: %w", err)
	}
	if len(persisted) == 0 {
		return nil
	}

	denominations := s.register.Denominations()
	if len(persisted) != len(denominations) {
		return ErrJournalMismatch
	}

	counts := make([]int, len(denominations))
	for i, d := range denominations {
		count, ok := persisted[d]
		if !ok {
			return ErrJournalMismatch
		}
		counts[i] = count
	}

	return s.Restore(counts, sequence)
}

// SyncSnapshot republishes the current contents when the cached snapshot is
// missing or older than the restored sequence. It reports whether it wrote.
func (s *RegisterService) SyncSnapshot(ctx context.Context) (bool, error) {
	s.mu.Lock()
	sequence := s.sequence
	snapshot := s.register.Snapshot()
	s.mu.Unlock()

	if sequence == 0 {
		return false, nil
	}

	_, cached, err := s.cache.GetSnapshot(ctx)
	if err != nil && !errors.Is(err, port.ErrSnapshotNotFound) {
		return false, fmt.Errorf("get snapshot: %w", err)
	}
	if cached >= sequence {
		return false, nil
	}

	if err := s.cache.SetSnapshot(ctx, sequence, snapshot); err != nil {
		return false, fmt.Errorf("set snapshot: %w", err)
	}
	return true, nil
}

func (s *RegisterService) Show() domain.Snapshot {
	return s.register.Snapshot()
}

func (s *RegisterService) Deposit(ctx context.Context, requestID string, amounts []int) (domain.Snapshot, error) {
	tx, err := s.apply(ctx, requestID, domain.Transaction{Kind: domain.TransactionKindDeposit, Amounts: amounts},
		func() ([]int, error) {
			return amounts, s.register.Deposit(amounts)
		})
	return tx.Snapshot, err
}

func (s *RegisterService) Withdraw(ctx context.Context, requestID string, amounts []int) (domain.Snapshot, error) {
	tx, err := s.apply(ctx, requestID, domain.Transaction{Kind: domain.TransactionKindWithdraw, Amounts: amounts},
		func() ([]int, error) {
			return amounts, s.register.Withdraw(amounts)
		})
	return tx.Snapshot, err
}

// MakeChange takes exact change for target and returns the breakdown.
func (s *RegisterService) MakeChange(ctx context.Context, requestID string, target int) ([]int, domain.Snapshot, error) {
	tx, err := s.apply(ctx, requestID, domain.Transaction{Kind: domain.TransactionKindChange, Target: target},
		func() ([]int, error) {
			return s.register.MakeChange(target)
		})
	if err != nil {
		return nil, domain.Snapshot{}, err
	}
	return tx.Amounts, tx.Snapshot, nil
}

func (s *RegisterService) GetTransactionQueue() <-chan domain.Transaction {
	return s.txQueue
}

func (s *RegisterService) Close() {
	close(s.txQueue)
}

func (s *RegisterService) apply(ctx context.Context, requestID string, tx domain.Transaction, mutate func() ([]int, error)) (domain.Transaction, error) {
	idempotencyKey := idempotencyKeyPrefix + requestID

	if requestID != "" {
		ok, err := s.cache.SetIdempotency(ctx, idempotencyKey)
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("idempotency check failed: %w", err)
		}
		if !ok {
			return domain.Transaction{}, ErrDuplicateRequest
		}
	}

	s.mu.Lock()
	amounts, err := mutate()
	if err != nil {
		s.mu.Unlock()
		if requestID != "" {
			if releaseErr := s.cache.ReleaseIdempotency(ctx, idempotencyKey); releaseErr != nil {
				return domain.Transaction{}, errors.Join(err, fmt.Errorf("release idempotency: %w", releaseErr))
			}
		}
		return domain.Transaction{}, err
	}
	s.sequence++
	tx.Sequence = s.sequence
	tx.Snapshot = s.register.Snapshot()
	s.mu.Unlock()

	tx.ID = uuid.NewString()
	tx.RequestID = requestID
	tx.Amounts = append([]int(nil), amounts...)
	tx.CreatedAt = time.Now()

	s.txQueue <- tx

	return tx, nil
}
