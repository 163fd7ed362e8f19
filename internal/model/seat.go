package model

import "fmt"

// SeatID builds the stable composite identifier for one seat.  The id is
// venueID-sectionID-rowLabel-seatNumber and stays identical across layout
// recompiles as long as the same (section, row, seat number) triple is
// generated again, which is what lets external pricing and availability
// records survive cosmetic layout changes.
func SeatID(venueID, sectionID, rowLabel string, seatNumber int) string {
	return fmt.Sprintf("%s-%s-%s-%d", venueID, sectionID, rowLabel, seatNumber)
}

// SeatPosition is the raw geometric output of curve generation, before a
// stable identifier is attached.
//
// Fields:
//  RowIndex   – zero-based row index within the section.
//  RowLabel   – alphabetic label derived from RowIndex (A, B, ... AA).
//  SeatNumber – 1-based position in angular generation order.
//  X, Y       – venue-local coordinates, rounded to the fixed precision.
type SeatPosition struct {
	RowIndex   int     `json:"row_index"`
	RowLabel   string  `json:"row_label"`
	SeatNumber int     `json:"seat_number"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
}

// Seat is one compiled seat inside a layout snapshot.  Identity never
// encodes price or availability; those belong to the external booking
// collaborator and join on ID.
type Seat struct {
	ID         string  `json:"id"`
	SectionID  string  `json:"section_id"`
	RowLabel   string  `json:"row_label"`
	SeatNumber int     `json:"seat_number"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Accessible bool    `json:"accessible,omitempty"`
}

// Position projects the seat back onto its generation-time coordinates.
func (s Seat) Position() SeatPosition {
	return SeatPosition{
		RowLabel:   s.RowLabel,
		SeatNumber: s.SeatNumber,
		X:          s.X,
		Y:          s.Y,
	}
}
