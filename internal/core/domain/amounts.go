package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatAmounts renders an amount vector as space-separated counts.
func FormatAmounts(amounts []int) string {
	parts := make([]string, len(amounts))
	for i, amount := range amounts {
		parts[i] = strconv.Itoa(amount)
	}
	return strings.Join(parts, " ")
}

func validateAmounts(amounts []int, size int) error {
	if len(amounts) != size {
		return fmt.Errorf("number of denominations must match register (want %d, got %d): %w",
			size, len(amounts), ErrInvalidArgument)
	}
	for _, amount := range amounts {
		if amount < 0 {
			return fmt.Errorf("amount must be >= 0, got %d: %w", amount, ErrInvalidArgument)
		}
	}
	return nil
}
