package model

// PlacedSeat carries one seat's render coordinates inside a ViewFrame:
// normalized to [0,1] relative to the frame's source bounding box, and
// scaled to container pixels.
type PlacedSeat struct {
	ID string  `json:"id"`
	NX float64 `json:"nx"`
	NY float64 `json:"ny"`
	PX float64 `json:"px"`
	PY float64 `json:"py"`
}

// ViewFrame is the per-request projection of a snapshot onto one viewport.
// It is derived on demand and never persisted; two requests with the same
// snapshot and viewport produce identical frames.
//
// Fields:
//  Bounds          – padded source-unit bounding box the frame was fitted to.
//  ContainerWidth  – fitted container width in pixels.
//  ContainerHeight – fitted container height in pixels.
//  Seats           – per-seat normalized and container-scaled coordinates.
//  Stage           – stage rectangle in container space.
type ViewFrame struct {
	Bounds          Rect         `json:"bounds"`
	ContainerWidth  float64      `json:"container_width"`
	ContainerHeight float64      `json:"container_height"`
	Seats           []PlacedSeat `json:"seats"`
	Stage           Rect         `json:"stage"`
}
