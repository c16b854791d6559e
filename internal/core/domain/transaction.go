package domain

import "time"

type TransactionKind string

const (
	TransactionKindDeposit  TransactionKind = "deposit"
	TransactionKindWithdraw TransactionKind = "withdraw"
	TransactionKindChange   TransactionKind = "change"
)

// Transaction records one successful mutation of the register.
type Transaction struct {
	ID        string
	RequestID string
	Kind      TransactionKind
	Amounts   []int
	Target    int // change requests only
	Sequence  int64
	Snapshot  Snapshot // register contents after the mutation
	CreatedAt time.Time
}
