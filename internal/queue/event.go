// Package queue defines message payloads exchanged over the message broker.
package queue

// LayoutPublishedEvent is published when a compile succeeds and a new
// snapshot version becomes current.  It carries enough information for the
// external booking collaborator to refresh its stable-id joins, and for
// audit consumers to log the publish, without querying the engine.
type LayoutPublishedEvent struct {
	VenueID      string `json:"venue_id"`
	ShowID       string `json:"show_id"`
	Version      uint64 `json:"version"`
	SectionCount int    `json:"section_count"`
	SeatCount    int    `json:"seat_count"`
	CompiledAt   string `json:"compiled_at"`
}
