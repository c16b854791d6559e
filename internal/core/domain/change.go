package domain

// SolveChange searches for counts of denominations[start:] that sum exactly
// to target without exceeding counts. Candidates are tried largest first at
// every level and the first exact match wins, so the result is not
// necessarily the one with the fewest pieces.
//
// The returned vector is aligned to denominations[start:] and ends at the
// last denomination the search reached; callers pad it to full length.
// Mismatched denominations and counts never match.
//
// The search is exponential in the number of denominations in the worst
// case. Registers hold a handful of denominations, which keeps it cheap.
func SolveChange(target int, denominations, counts []int, start int) ([]int, bool) {
	if len(counts) != len(denominations) || start < 0 || start >= len(denominations) || target < 0 {
		return nil, false
	}

	denomination := denominations[start]
	upper := min(counts[start], target/denomination)

	for c := upper; c >= 0; c-- {
		remaining := target - c*denomination
		if remaining == 0 {
			return []int{c}, true
		}

		// Fewer pieces here only grows the remainder, so the last
		// denomination cannot succeed with any smaller c either.
		if start+1 == len(denominations) {
			return nil, false
		}

		if rest, ok := SolveChange(remaining, denominations, counts, start+1); ok {
			return append([]int{c}, rest...), true
		}
	}

	return nil, false
}
