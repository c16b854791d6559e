package domain

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"sync"
)

// DefaultDenominations is used when no denominations are configured.
var DefaultDenominations = []int{20, 10, 5, 2, 1}

// Register holds cash as counts of a fixed, descending set of denominations.
// All exported methods are safe for concurrent use; each one holds the
// register lock for its whole duration.
type Register struct {
	mu            sync.Mutex
	denominations []int
	counts        []int
}

// NewDefaultRegister returns an empty register with DefaultDenominations.
func NewDefaultRegister() *Register {
	r, _ := NewRegister(DefaultDenominations)
	return r
}

// NewRegister returns an empty register. Denominations may be given in any
// order; they must be positive and unique.
func NewRegister(denominations []int) (*Register, error) {
	if len(denominations) == 0 {
		return nil, fmt.Errorf("denominations required: %w", ErrInvalidConfiguration)
	}

	sorted := slices.Clone(denominations)
	slices.SortFunc(sorted, func(a, b int) int { return cmp.Compare(b, a) })

	for i, d := range sorted {
		if d <= 0 {
			return nil, fmt.Errorf("denominations must be > 0, got %d: %w", d, ErrInvalidConfiguration)
		}
		if i > 0 && sorted[i-1] == d {
			return nil, fmt.Errorf("denominations must be unique, %d repeated: %w", d, ErrInvalidConfiguration)
		}
	}

	return &Register{
		denominations: sorted,
		counts:        make([]int, len(sorted)),
	}, nil
}

// Denominations returns the configured denominations, largest first.
func (r *Register) Denominations() []int {
	return slices.Clone(r.denominations)
}

func (r *Register) Counts() []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.counts)
}

func (r *Register) Total() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.total()
}

// Display returns the contents as "$<total> <count_1> ... <count_n>".
func (r *Register) Display() string {
	return r.Snapshot().String()
}

func (r *Register) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.snapshot()
}

// Deposit adds amounts, one entry per denomination, to the register. A
// deposit that would push a count or the total past math.MaxInt is rejected.
func (r *Register) Deposit(amounts []int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := validateAmounts(amounts, len(r.denominations)); err != nil {
		return err
	}

	headroom := math.MaxInt - r.total()
	for i, amount := range amounts {
		d := r.denominations[i]
		if amount > math.MaxInt-r.counts[i] || amount > headroom/d {
			return fmt.Errorf("deposit of %d %d's exceeds register capacity: %w", amount, d, ErrInvalidArgument)
		}
		headroom -= amount * d
	}

	for i, amount := range amounts {
		r.counts[i] += amount
	}
	return nil
}

// Withdraw removes amounts from the register. Either every amount is taken
// or, on error, nothing is.
func (r *Register) Withdraw(amounts []int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.withdraw(amounts)
}

// MakeChange takes exactly target out of the register and returns the
// breakdown, one entry per denomination. The register is unchanged on error.
func (r *Register) MakeChange(target int) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if target < 0 {
		return nil, fmt.Errorf("change must be >= 0, got %d: %w", target, ErrInvalidArgument)
	}
	if target > r.total() {
		return nil, fmt.Errorf("not enough money in register: %w", ErrInsufficientFunds)
	}

	plan, ok := SolveChange(target, r.denominations, r.counts, 0)
	if !ok {
		return nil, fmt.Errorf("cannot make exact change with available denominations: %w", ErrInsufficientFunds)
	}

	change := make([]int, len(r.denominations))
	copy(change, plan)

	if err := r.withdraw(change); err != nil {
		return nil, err
	}
	return change, nil
}

func (r *Register) withdraw(amounts []int) error {
	if err := validateAmounts(amounts, len(r.denominations)); err != nil {
		return err
	}

	for i, amount := range amounts {
		if amount > r.counts[i] {
			return fmt.Errorf("not enough %d's: %w", r.denominations[i], ErrInsufficientFunds)
		}
	}

	for i, amount := range amounts {
		r.counts[i] -= amount
	}
	return nil
}

func (r *Register) total() int {
	total := 0
	for i, d := range r.denominations {
		total += d * r.counts[i]
	}
	return total
}

func (r *Register) snapshot() Snapshot {
	return Snapshot{
		Denominations: slices.Clone(r.denominations),
		Counts:        slices.Clone(r.counts),
		Total:         r.total(),
	}
}
