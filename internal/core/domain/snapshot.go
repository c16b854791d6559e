package domain

import "fmt"

// Snapshot is a point-in-time copy of a register's contents.
type Snapshot struct {
	Denominations []int
	Counts        []int
	Total         int
}

// String renders the snapshot as "$<total> <count_1> ... <count_n>".
func (s Snapshot) String() string {
	if len(s.Counts) == 0 {
		return fmt.Sprintf("$%d", s.Total)
	}
	return fmt.Sprintf("$%d %s", s.Total, FormatAmounts(s.Counts))
}
