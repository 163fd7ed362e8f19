// Package view computes renderer-facing view frames from layout snapshots.
// Everything here is stateless: a frame is a pure function of a snapshot
// and a viewport request, so any number of render requests can run
// concurrently against the same snapshot.
package view

import (
	"fmt"

	"github.com/IsakPar/stagemap/internal/model"
)

// Minimum usable container size.  A fit below this is bumped up even if it
// distorts the aspect ratio; a seat map smaller than this is unclickable.
const (
	MinContainerWidth  = 320.0
	MinContainerHeight = 240.0
)

// Stage placement as fractions of the container, independent of the seat
// bounding box: bottom-center, 60% of the container width.
const (
	stageWidthFrac  = 0.60
	stageHeightFrac = 0.08
	stageTopFrac    = 0.85
)

// Frame projects a snapshot onto a viewport.  The raw bounding box over all
// seat coordinates is expanded by padding, the container is fitted inside
// (maxWidth, maxHeight) preserving aspect ratio (width-first, falling back
// to height when the width-fit overflows), and every seat gets normalized
// plus container-scaled coordinates.  Identical input yields an identical
// frame.
func Frame(snap *model.LayoutSnapshot, maxWidth, maxHeight, padding float64) (model.ViewFrame, error) {
	if snap == nil || len(snap.Seats) == 0 {
		return model.ViewFrame{}, fmt.Errorf("cannot frame a snapshot with no seats")
	}
	if maxWidth <= 0 || maxHeight <= 0 {
		return model.ViewFrame{}, fmt.Errorf("viewport %gx%g is not positive", maxWidth, maxHeight)
	}
	if padding < 0 {
		return model.ViewFrame{}, fmt.Errorf("padding must not be negative, got %g", padding)
	}

	bounds := seatBounds(snap.Seats)
	bounds.MinX -= padding
	bounds.MinY -= padding
	bounds.MaxX += padding
	bounds.MaxY += padding
	if bounds.Width() <= 0 || bounds.Height() <= 0 {
		return model.ViewFrame{}, fmt.Errorf("degenerate seat bounding box %+v", bounds)
	}

	aspect := bounds.Width() / bounds.Height()
	cw := maxWidth
	ch := cw / aspect
	if ch > maxHeight {
		ch = maxHeight
		cw = ch * aspect
	}
	if cw < MinContainerWidth {
		cw = MinContainerWidth
	}
	if ch < MinContainerHeight {
		ch = MinContainerHeight
	}

	frame := model.ViewFrame{
		Bounds:          bounds,
		ContainerWidth:  cw,
		ContainerHeight: ch,
		Seats:           make([]model.PlacedSeat, len(snap.Seats)),
		Stage:           StageRect(cw, ch),
	}
	for i, seat := range snap.Seats {
		nx, ny := Normalize(bounds, seat.X, seat.Y)
		px, py := ToContainer(nx, ny, cw, ch)
		frame.Seats[i] = model.PlacedSeat{ID: seat.ID, NX: nx, NY: ny, PX: px, PY: py}
	}
	return frame, nil
}

// Normalize maps a venue-unit point into [0,1]² relative to the bounding
// box, clamping points that fall outside it.
func Normalize(bounds model.Rect, x, y float64) (nx, ny float64) {
	nx = clamp01((x - bounds.MinX) / bounds.Width())
	ny = clamp01((y - bounds.MinY) / bounds.Height())
	return nx, ny
}

// ToContainer scales normalized coordinates to container pixels.
func ToContainer(nx, ny, containerWidth, containerHeight float64) (px, py float64) {
	return nx * containerWidth, ny * containerHeight
}

// StageRect places the stage at its fixed proportional position in
// container space regardless of where the seats sit in venue units.
func StageRect(containerWidth, containerHeight float64) model.Rect {
	w := containerWidth * stageWidthFrac
	h := containerHeight * stageHeightFrac
	x := (containerWidth - w) / 2
	y := containerHeight * stageTopFrac
	return model.Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

func seatBounds(seats []model.Seat) model.Rect {
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
	return r
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
