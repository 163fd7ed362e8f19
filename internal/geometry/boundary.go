package geometry

import (
	"fmt"

	"github.com/IsakPar/stagemap/internal/model"
)

// ComputeBoundary returns the axis-aligned min/max rectangle of all seat
// coordinates, expanded by buffer on every side.  The buffer is what keeps
// two visually adjacent sections from rendering seats on top of each other.
func ComputeBoundary(seats []model.SeatPosition, buffer float64) (model.Rect, error) {
	if len(seats) == 0 {
		return model.Rect{}, fmt.Errorf("cannot compute boundary of zero seats")
	}
	r := model.Rect{MinX: seats[0].X, MinY: seats[0].Y, MaxX: seats[0].X, MaxY: seats[0].Y}
	for _, s := range seats[1:] {
		if s.X < r.MinX {
			r.MinX = s.X
		}
		if s.X > r.MaxX {
			r.MaxX = s.X
		}
		if s.Y < r.MinY {
			r.MinY = s.Y
		}
		if s.Y > r.MaxY {
			r.MaxY = s.Y
		}
	}
	r.MinX -= buffer
	r.MinY -= buffer
	r.MaxX += buffer
	r.MaxY += buffer
	return r, nil
}

// Overlaps reports whether two rectangles intersect.  Two rectangles are
// disjoint only when one lies entirely to the left, right, above, or below
// the other; touching edges count as an overlap.
func Overlaps(a, b model.Rect) bool {
	if a.MaxX < b.MinX || b.MaxX < a.MinX {
		return false
	}
	if a.MaxY < b.MinY || b.MaxY < a.MinY {
		return false
	}
	return true
}

// OverlapPair names two conflicting rectangles by their slice indices.
type OverlapPair struct {
	I int
	J int
}

// ValidateNoOverlap runs the pairwise intersection scan over all section
// boundaries and returns every conflicting (i, j) pair with i < j.
func ValidateNoOverlap(rects []model.Rect) []OverlapPair {
	var conflicts []OverlapPair
	for i := 0; i < len(rects); i++ {
		for j := i + 1; j < len(rects); j++ {
			if Overlaps(rects[i], rects[j]) {
				conflicts = append(conflicts, OverlapPair{I: i, J: j})
			}
		}
	}
	return conflicts
}
