// Package selection serializes seat-toggle mutations for in-progress seat
// selections.  One session owns exactly one Coordinator, and every toggle
// for that session funnels through the coordinator's mutex, so two racing
// click events can never double-apply a mutation. This is the structural fix for
// duplicate-selection bugs, with request-level debouncing kept only as a
// secondary defense.
package selection

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/IsakPar/stagemap/internal/model"
)

// ErrUnknownSeat is returned when a toggled id does not resolve in the
// compiled layout for the session's show.
var ErrUnknownSeat = errors.New("unknown seat")

// ErrSelectionLimit is returned when selecting one more seat would exceed
// the session's configured maximum.  The selection is left unchanged.
var ErrSelectionLimit = errors.New("selection limit exceeded")

// Outcome describes what a toggle did.
type Outcome string

const (
	OutcomeSelected   Outcome = "selected"
	OutcomeDeselected Outcome = "deselected"
	// OutcomeDebounced means the toggle arrived within the debounce window
	// of the previous action on the same seat and was ignored without any
	// state change.  It is not an error.
	OutcomeDebounced Outcome = "debounced"
)

// Resolver answers whether a stable seat id exists in the current layout.
// *cache.LayoutCache satisfies it.
type Resolver interface {
	Resolve(ctx context.Context, venueID, showID, seatID string) (*model.SeatPosition, bool)
}

// Config bounds a session's selection behavior.
type Config struct {
	MaxSelectable int           // hard cap on concurrently selected seats
	MinInterval   time.Duration // debounce window per seat
}

// Coordinator is the only mutation entry point for one session's selected
// set.  All methods serialize on an internal mutex.
type Coordinator struct {
	venueID    string
	showID     string
	resolver   Resolver
	cfg        Config
	mu         sync.Mutex
	selected   map[string]struct{}
	lastAction map[string]time.Time
}

// NewCoordinator builds a coordinator for one session's (venue, show).
func NewCoordinator(venueID, showID string, resolver Resolver, cfg Config) *Coordinator {
	return &Coordinator{
		venueID:    venueID,
		showID:     showID,
		resolver:   resolver,
		cfg:        cfg,
		selected:   make(map[string]struct{}),
		lastAction: make(map[string]time.Time),
	}
}

// Toggle selects an unselected seat or deselects a selected one.  Toggles
// within the debounce window of the seat's previous action are ignored
// silently.  Unknown seats and selections beyond the cap are rejected with
// no state change.  Every accepted transition updates the seat's
// last-action timestamp.
func (s *Coordinator) Toggle(ctx context.Context, seatID string, now time.Time) (Outcome, error) {
	if _, ok := s.resolver.Resolve(ctx, s.venueID, s.showID, seatID); !ok {
		return "", ErrUnknownSeat
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if last, ok := s.lastAction[seatID]; ok && now.Sub(last) < s.cfg.MinInterval {
		return OutcomeDebounced, nil
	}

	if _, ok := s.selected[seatID]; ok {
		delete(s.selected, seatID)
		s.lastAction[seatID] = now
		return OutcomeDeselected, nil
	}

	if len(s.selected) >= s.cfg.MaxSelectable {
		return "", ErrSelectionLimit
	}
	s.selected[seatID] = struct{}{}
	s.lastAction[seatID] = now
	return OutcomeSelected, nil
}

// Selected returns the currently selected seat ids in sorted order.
func (s *Coordinator) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.selected))
	for id := range s.selected {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Count returns the number of selected seats.
func (s *Coordinator) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.selected)
}
