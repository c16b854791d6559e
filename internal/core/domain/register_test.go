package domain

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func altRegister(t *testing.T) *Register {
	t.Helper()

	r, err := NewRegister([]int{20, 5, 2})
	require.NoError(t, err)
	return r
}

func TestNewRegister_InvalidDenominations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		denominations []int
	}{
		{name: "empty", denominations: []int{}},
		{name: "nil", denominations: nil},
		{name: "duplicate", denominations: []int{20, 5, 20}},
		{name: "negative", denominations: []int{20, 5, -1}},
		{name: "zero", denominations: []int{20, 0, 1}},
		{name: "extremes", denominations: []int{math.MaxInt, math.MinInt, math.MaxInt}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := NewRegister(tt.denominations)
			assert.Nil(t, r)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestNewRegister_SortsDescending(t *testing.T) {
	r, err := NewRegister([]int{1, 20, 5})
	require.NoError(t, err)

	assert.Equal(t, []int{20, 5, 1}, r.Denominations())
	assert.Equal(t, "$0 0 0 0", r.Display())

	r, err = NewRegister([]int{1, math.MaxInt, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{math.MaxInt, 2, 1}, r.Denominations())
}

func TestRegister_Empty(t *testing.T) {
	r := NewDefaultRegister()
	assert.Equal(t, 0, r.Total())
	assert.Equal(t, "$0 0 0 0 0 0", r.Display())

	r = altRegister(t)
	assert.Equal(t, 0, r.Total())
	assert.Equal(t, "$0 0 0 0", r.Display())
}

func TestRegister_Deposit(t *testing.T) {
	r := NewDefaultRegister()
	require.NoError(t, r.Deposit([]int{1, 2, 3, 4, 5}))
	assert.Equal(t, 68, r.Total())
	assert.Equal(t, "$68 1 2 3 4 5", r.Display())

	require.NoError(t, r.Deposit([]int{0, 0, 0, 0, 2}))
	assert.Equal(t, 70, r.Total())
	assert.Equal(t, []int{1, 2, 3, 4, 7}, r.Counts())

	r = altRegister(t)
	require.NoError(t, r.Deposit([]int{1, 2, 3}))
	assert.Equal(t, 36, r.Total())
	assert.Equal(t, "$36 1 2 3", r.Display())
}

func TestRegister_InvalidAmounts(t *testing.T) {
	tests := []struct {
		name    string
		amounts []int
	}{
		{name: "too few", amounts: []int{1, 2, 3}},
		{name: "too many", amounts: []int{1, 2, 3, 4, 5, 6}},
		{name: "nil", amounts: nil},
		{name: "negative", amounts: []int{1, 2, 3, 4, -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewDefaultRegister()
			require.NoError(t, r.Deposit([]int{5, 5, 5, 5, 5}))

			assert.ErrorIs(t, r.Deposit(tt.amounts), ErrInvalidArgument)
			assert.ErrorIs(t, r.Withdraw(tt.amounts), ErrInvalidArgument)
			assert.Equal(t, "$190 5 5 5 5 5", r.Display())
		})
	}
}

func TestRegister_DepositOverflow(t *testing.T) {
	tests := []struct {
		name    string
		seed    []int
		amounts []int
	}{
		{name: "count past max", seed: []int{0, 0, 0, 0, math.MaxInt}, amounts: []int{0, 0, 0, 0, 2}},
		{name: "total past max", seed: []int{0, 0, 0, 0, 0}, amounts: []int{math.MaxInt / 10, 0, 0, 0, 0}},
		{name: "entries together past max", seed: []int{0, 0, 0, 0, 0}, amounts: []int{math.MaxInt / 20, 0, 0, 0, 20}},
		{name: "on top of other counts", seed: []int{1, 0, 0, 0, 0}, amounts: []int{0, 0, 0, 0, math.MaxInt - 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewDefaultRegister()
			require.NoError(t, r.Deposit(tt.seed))
			before := r.Snapshot()

			err := r.Deposit(tt.amounts)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Equal(t, before, r.Snapshot())
			for _, c := range r.Counts() {
				assert.GreaterOrEqual(t, c, 0)
			}
		})
	}
}

func TestRegister_DepositUpToMax(t *testing.T) {
	r := NewDefaultRegister()
	require.NoError(t, r.Deposit([]int{0, 0, 0, 0, math.MaxInt}))
	assert.Equal(t, math.MaxInt, r.Total())

	change, err := r.MakeChange(20)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 20}, change)
	assert.Equal(t, math.MaxInt-20, r.Total())
}

func TestRegister_Withdraw(t *testing.T) {
	r := NewDefaultRegister()
	require.NoError(t, r.Deposit([]int{1, 2, 3, 4, 5}))
	require.NoError(t, r.Withdraw([]int{1, 2, 3, 4, 5}))
	assert.Equal(t, 0, r.Total())
	assert.Equal(t, "$0 0 0 0 0 0", r.Display())

	r = altRegister(t)
	require.NoError(t, r.Deposit([]int{1, 2, 3}))
	require.NoError(t, r.Withdraw([]int{0, 1, 2}))
	assert.Equal(t, 27, r.Total())
	assert.Equal(t, "$27 1 1 1", r.Display())
}

func TestRegister_WithdrawNotEnough(t *testing.T) {
	r := NewDefaultRegister()
	err := r.Withdraw([]int{1, 0, 0, 0, 0})
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.EqualError(t, err, "not enough 20's: insufficient funds")

	// Only the last denomination is short; nothing may be taken.
	require.NoError(t, r.Deposit([]int{2, 2, 2, 2, 0}))
	err = r.Withdraw([]int{1, 1, 1, 1, 1})
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, "$74 2 2 2 2 0", r.Display())
}

func TestRegister_DepositWithdrawRoundTrip(t *testing.T) {
	vectors := [][]int{
		{0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0},
		{3, 1, 4, 1, 5},
		{100, 0, 7, 0, 250},
	}

	for _, v := range vectors {
		r := NewDefaultRegister()
		require.NoError(t, r.Deposit([]int{1, 1, 1, 1, 1}))
		before := r.Snapshot()

		require.NoError(t, r.Deposit(v))
		require.NoError(t, r.Withdraw(v))

		assert.Equal(t, before, r.Snapshot())
	}
}

func TestRegister_MakeChange(t *testing.T) {
	r := NewDefaultRegister()
	require.NoError(t, r.Deposit([]int{1, 2, 3, 4, 5}))

	change, err := r.MakeChange(38)
	require.NoError(t, err)
	assert.Equal(t, "1 1 1 1 1", FormatAmounts(change))
	assert.Equal(t, 30, r.Total())
	assert.Equal(t, "$30 0 1 2 3 4", r.Display())

	r = altRegister(t)
	require.NoError(t, r.Deposit([]int{1, 2, 3}))

	change, err = r.MakeChange(27)
	require.NoError(t, err)
	assert.Equal(t, "1 1 1", FormatAmounts(change))
	assert.Equal(t, 9, r.Total())
	assert.Equal(t, "$9 0 1 2", r.Display())
}

func TestRegister_MakeChangeBacktracks(t *testing.T) {
	r := NewDefaultRegister()
	require.NoError(t, r.Deposit([]int{0, 0, 5, 5, 0}))

	change, err := r.MakeChange(11)
	require.NoError(t, err)
	assert.Equal(t, "0 0 1 3 0", FormatAmounts(change))
	assert.Equal(t, "$24 0 0 4 2 0", r.Display())
}

func TestRegister_MakeChangePadsTrailingDenominations(t *testing.T) {
	r := NewDefaultRegister()
	require.NoError(t, r.Deposit([]int{2, 0, 0, 0, 3}))

	change, err := r.MakeChange(40)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 0, 0, 0}, change)
	assert.Equal(t, "$3 0 0 0 0 3", r.Display())
}

func TestRegister_MakeChangeZero(t *testing.T) {
	r := NewDefaultRegister()

	change, err := r.MakeChange(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, change)
}

func TestRegister_MakeChangeFailures(t *testing.T) {
	tests := []struct {
		name    string
		deposit []int
		target  int
		wantErr error
		wantMsg string
	}{
		{
			name:    "empty register",
			deposit: []int{0, 0, 0, 0, 0},
			target:  42,
			wantErr: ErrInsufficientFunds,
			wantMsg: "not enough money in register: insufficient funds",
		},
		{
			name:    "target above total",
			deposit: []int{1, 2, 3, 4, 5},
			target:  100,
			wantErr: ErrInsufficientFunds,
			wantMsg: "not enough money in register: insufficient funds",
		},
		{
			name:    "wrong bills",
			deposit: []int{1, 1, 1, 1, 0},
			target:  11,
			wantErr: ErrInsufficientFunds,
			wantMsg: "cannot make exact change with available denominations: insufficient funds",
		},
		{
			name:    "negative target",
			deposit: []int{1, 1, 1, 1, 1},
			target:  -1,
			wantErr: ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewDefaultRegister()
			require.NoError(t, r.Deposit(tt.deposit))
			before := r.Snapshot()

			change, err := r.MakeChange(tt.target)
			assert.Nil(t, change)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.EqualError(t, err, tt.wantMsg)
			}
			assert.Equal(t, before, r.Snapshot())
		})
	}
}

func TestRegister_SnapshotIsCopy(t *testing.T) {
	r := NewDefaultRegister()
	require.NoError(t, r.Deposit([]int{1, 1, 1, 1, 1}))

	snap := r.Snapshot()
	snap.Counts[0] = 99
	snap.Denominations[0] = 99

	assert.Equal(t, []int{1, 1, 1, 1, 1}, r.Counts())
	assert.Equal(t, DefaultDenominations, r.Denominations())
}

func TestRegister_Concurrent(t *testing.T) {
	r := NewDefaultRegister()
	require.NoError(t, r.Deposit([]int{0, 0, 0, 0, 100}))

	var wg sync.WaitGroup
	var mu sync.Mutex
	paidOut := 0

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, r.Deposit([]int{0, 0, 1, 0, 0}))
		}()
		go func() {
			defer wg.Done()
			change, err := r.MakeChange(3)
			if err != nil {
				return
			}
			mu.Lock()
			for j, d := range DefaultDenominations {
				paidOut += d * change[j]
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 100+50*5-paidOut, r.Total())
	for _, c := range r.Counts() {
		assert.GreaterOrEqual(t, c, 0)
	}
}
