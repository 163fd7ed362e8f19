package geometry

import (
	"fmt"
	"math"

	"github.com/IsakPar/stagemap/internal/model"
)

// CoordPrecision is the number of decimal places every generated coordinate
// is rounded to.  Stable identifiers only stay meaningful across recompiles
// if generation is bit-for-bit reproducible, so all callers share one rule.
const CoordPrecision = 2

// balconyDepthFactor widens the constant per-row increment for balcony
// sections so lower rows do not block sightlines.
const balconyDepthFactor = 1.5

// amphitheaterGrowth is the per-row fraction by which the amphitheater
// increment grows, producing the wrap-around effect of progressively
// deeper back rows.
const amphitheaterGrowth = 0.15

// Round rounds a coordinate half away from zero to CoordPrecision decimals.
func Round(v float64) float64 {
	const shift = 100 // 10^CoordPrecision
	return math.Round(v*shift) / shift
}

// rowRadius returns the radius of row r (zero-based) under the section's
// radius-growth policy.  Orchestra grows by a constant RowDepth, balcony by
// a larger constant, amphitheater by an increment that itself grows with
// the row index.
func rowRadius(shape model.Shape, curve model.CurveParams, r int) float64 {
	switch shape {
	case model.ShapeBalcony:
		return curve.InnerRadius + float64(r)*curve.RowDepth*balconyDepthFactor
	case model.ShapeAmphitheater:
		radius := curve.InnerRadius
		for k := 0; k < r; k++ {
			radius += curve.RowDepth * (1 + amphitheaterGrowth*float64(k))
		}
		return radius
	default: // model.ShapeOrchestra
		return curve.InnerRadius + float64(r)*curve.RowDepth
	}
}

// GenerateCurvedSeats places every seat of a section along its curve and
// returns the positions in row order, seats numbered 1-based in angular
// generation order.  rowSeatCounts must have exactly cfg.Rows entries, each
// at least 1.  The function is pure: identical input yields identical output
// under the fixed rounding rule, and invalid input fails before any
// coordinate is computed.
func GenerateCurvedSeats(cfg model.SectionConfig, rowSeatCounts []int) ([]model.SeatPosition, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(rowSeatCounts) != cfg.Rows {
		return nil, fmt.Errorf("row seat counts has %d entries for %d rows", len(rowSeatCounts), cfg.Rows)
	}
	total := 0
	for i, n := range rowSeatCounts {
		if n < 1 {
			return nil, fmt.Errorf("row %d seat count must be >= 1, got %d", i, n)
		}
		total += n
	}

	startRad := cfg.Curve.StartAngleDeg * math.Pi / 180
	endRad := cfg.Curve.EndAngleDeg * math.Pi / 180
	totalAngle := endRad - startRad

	seats := make([]model.SeatPosition, 0, total)
	for r := 0; r < cfg.Rows; r++ {
		radius := rowRadius(cfg.Shape, cfg.Curve, r)
		label := RowLabel(r)
		inRow := rowSeatCounts[r]
		for n := 0; n < inRow; n++ {
			var angle float64
			if inRow == 1 {
				// A lone seat sits at the row's midpoint angle.
				angle = startRad + totalAngle/2
			} else {
				// First and last seats land exactly on the angular bounds.
				angle = startRad + totalAngle*float64(n)/float64(inRow-1)
			}
			seats = append(seats, model.SeatPosition{
				RowIndex:   r,
				RowLabel:   label,
				SeatNumber: n + 1,
				X:          Round(cfg.Curve.CenterX + radius*math.Cos(angle)),
				Y:          Round(cfg.Curve.CenterY + radius*math.Sin(angle)),
			})
		}
	}
	return seats, nil
}
