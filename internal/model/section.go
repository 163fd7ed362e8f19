package model

import (
	"fmt"
	"strings"
)

// Shape identifies the radius-growth policy of a curved section.  The set of
// shapes is closed: configuration payloads carrying any other value are
// rejected during validation instead of being interpreted at runtime.
type Shape string

const (
	ShapeOrchestra    Shape = "orchestra-curve"    // constant per-row radius increment
	ShapeBalcony      Shape = "balcony-curve"      // larger constant increment for sightline clearance
	ShapeAmphitheater Shape = "amphitheater-curve" // progressively increasing increment (wrap-around)
)

// ParseShape validates a raw shape tag from an authoring payload.
func ParseShape(raw string) (Shape, error) {
	switch Shape(strings.TrimSpace(raw)) {
	case ShapeOrchestra:
		return ShapeOrchestra, nil
	case ShapeBalcony:
		return ShapeBalcony, nil
	case ShapeAmphitheater:
		return ShapeAmphitheater, nil
	}
	return "", fmt.Errorf("unknown shape %q", raw)
}

// CurveParams describes the polar-coordinate frame a section's rows are laid
// out in.  Angles are degrees; radii and the center point are venue-local units.
//
// Fields:
//  CenterX, CenterY – center of the arc.
//  StartAngleDeg    – angular bound where seat 1 of every row is placed.
//  EndAngleDeg      – angular bound where the last seat of every row is placed.
//  InnerRadius      – radius of the first row.
//  OuterRadius      – declared outermost radius; must exceed InnerRadius.
//  RowDepth         – base per-row radius increment before shape policy.
type CurveParams struct {
	CenterX       float64 `json:"center_x"`
	CenterY       float64 `json:"center_y"`
	StartAngleDeg float64 `json:"start_angle_deg"`
	EndAngleDeg   float64 `json:"end_angle_deg"`
	InnerRadius   float64 `json:"inner_radius"`
	OuterRadius   float64 `json:"outer_radius"`
	RowDepth      float64 `json:"row_depth"`
}

// SectionConfig is the declarative description of one seating section as
// authored by the external venue-management surface.  The engine only
// validates and consumes it; it never mutates or persists it.
//
// Fields:
//  ID         – section identifier, unique within a venue.
//  Name       – display name shown by the presentation layer.
//  Shape      – radius-growth policy tag.
//  Curve      – polar frame of the section.
//  Rows       – number of rows (≥ 1).
//  Capacity   – declared seat count; per-row counts must sum to it exactly.
//  RowProfile – optional explicit per-row seat counts; when empty the
//               compiler derives a profile (lighter front rows).
//  Buffer     – padding added on every side of the section's bounding box
//               before overlap checking.
//  AccessibleRows – row labels whose seats are flagged wheelchair-accessible.
//  ColorTag   – presentation hint, opaque to the engine.
type SectionConfig struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Shape          Shape       `json:"shape"`
	Curve          CurveParams `json:"curve"`
	Rows           int         `json:"rows"`
	Capacity       int         `json:"capacity"`
	RowProfile     []int       `json:"row_profile,omitempty"`
	Buffer         float64     `json:"buffer"`
	AccessibleRows []string    `json:"accessible_rows,omitempty"`
	ColorTag       string      `json:"color_tag,omitempty"`
}

// Validate checks the structural invariants of a section configuration.  It
// returns the first violation found; geometric generation must never be
// attempted for a config that fails here.
func (s SectionConfig) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("section id is empty")
	}
	if _, err := ParseShape(string(s.Shape)); err != nil {
		return err
	}
	if s.Rows < 1 {
		return fmt.Errorf("rows must be >= 1, got %d", s.Rows)
	}
	if s.Capacity < s.Rows {
		return fmt.Errorf("capacity %d cannot seat %d rows at one seat minimum", s.Capacity, s.Rows)
	}
	if s.Curve.StartAngleDeg == s.Curve.EndAngleDeg {
		return fmt.Errorf("start angle equals end angle (%g)", s.Curve.StartAngleDeg)
	}
	if s.Curve.OuterRadius <= s.Curve.InnerRadius {
		return fmt.Errorf("outer radius %g must exceed inner radius %g", s.Curve.OuterRadius, s.Curve.InnerRadius)
	}
	if s.Curve.InnerRadius <= 0 {
		return fmt.Errorf("inner radius must be positive, got %g", s.Curve.InnerRadius)
	}
	if s.Curve.RowDepth <= 0 {
		return fmt.Errorf("row depth must be positive, got %g", s.Curve.RowDepth)
	}
	if s.Buffer < 0 {
		return fmt.Errorf("buffer must not be negative, got %g", s.Buffer)
	}
	if len(s.RowProfile) > 0 {
		if len(s.RowProfile) != s.Rows {
			return fmt.Errorf("row profile has %d entries for %d rows", len(s.RowProfile), s.Rows)
		}
		sum := 0
		for i, n := range s.RowProfile {
			if n < 1 {
				return fmt.Errorf("row profile entry %d must be >= 1, got %d", i, n)
			}
			sum += n
		}
		if sum != s.Capacity {
			return fmt.Errorf("row profile sums to %d, declared capacity is %d", sum, s.Capacity)
		}
	}
	return nil
}
