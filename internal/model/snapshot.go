package model

import "time"

// Rect is an axis-aligned rectangle in venue-local units.
type Rect struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Contains reports whether the point lies inside or on the rectangle's edge.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// SectionLayout is one compiled section: the authored config's identity
// plus the computed padded boundary used for overlap checking.
//
// Fields:
//  ID       – section identifier from the authored config.
//  Name     – display name.
//  Shape    – radius-growth policy tag.
//  ColorTag – presentation hint.
//  Bounds   – padded axis-aligned boundary of the section's seats.
//  SeatIDs  – stable ids of the section's seats in generation order.
type SectionLayout struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Shape    Shape    `json:"shape"`
	ColorTag string   `json:"color_tag,omitempty"`
	Bounds   Rect     `json:"bounds"`
	SeatIDs  []string `json:"seat_ids"`
}

// LayoutSnapshot is one fully validated, immutable compiled layout for a
// (venue, show) pair.  A recompile produces a new snapshot with a higher
// version; an existing snapshot is never edited in place.  Readers may hold
// a snapshot indefinitely without synchronization.
type LayoutSnapshot struct {
	VenueID    string          `json:"venue_id"`
	ShowID     string          `json:"show_id"`
	Sections   []SectionLayout `json:"sections"`
	Seats      []Seat          `json:"seats"`
	Stage      Rect            `json:"stage"`
	Bounds     Rect            `json:"bounds"`
	Version    uint64          `json:"version"`
	CompiledAt time.Time       `json:"compiled_at"`
}

// SeatByID scans the flattened seat list for a stable id.  Returns false
// for ids the snapshot does not contain.
func (s *LayoutSnapshot) SeatByID(id string) (Seat, bool) {
	for _, seat := range s.Seats {
		if seat.ID == id {
			return seat, true
		}
	}
	return Seat{}, false
}
