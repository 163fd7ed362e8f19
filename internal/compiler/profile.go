package compiler

import "fmt"

// DeriveRowProfile computes a per-row seat-count profile for sections that
// do not ship an explicit one.  Front rows are seated lighter than back
// rows: every row starts with one seat, and the remaining capacity is split
// proportionally to row index + 1 using largest-remainder rounding, with any
// leftover seats granted one each to the rearmost rows.  The result always
// sums exactly to capacity and every entry is at least 1.
func DeriveRowProfile(rows, capacity int) ([]int, error) {
	if rows < 1 {
		return nil, fmt.Errorf("rows must be >= 1, got %d", rows)
	}
	if capacity < rows {
		return nil, fmt.Errorf("capacity %d cannot seat %d rows at one seat minimum", capacity, rows)
	}

	counts := make([]int, rows)
	for i := range counts {
		counts[i] = 1
	}
	remaining := capacity - rows
	if remaining == 0 {
		return counts, nil
	}

	// Integer weight share per row, back rows weighted heavier.
	totalWeight := rows * (rows + 1) / 2
	assigned := 0
	for r := 0; r < rows; r++ {
		extra := remaining * (r + 1) / totalWeight
		counts[r] += extra
		assigned += extra
	}

	// Flooring leaves at most rows-1 seats unassigned; hand them to the
	// rearmost rows so re-running the derivation is reproducible.
	left := remaining - assigned
	for i := 0; i < left; i++ {
		counts[rows-1-i]++
	}
	return counts, nil
}
