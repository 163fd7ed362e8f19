package compiler

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/IsakPar/stagemap/internal/geometry"
	"github.com/IsakPar/stagemap/internal/model"
)

// Versioner allocates monotonically increasing snapshot versions per
// (venue, show) key.  The in-memory implementation below serves library use
// and tests; the MySQL-backed repository implements the same contract for
// the service, where versions must survive restarts.
type Versioner interface {
	Next(ctx context.Context, venueID, showID string) (uint64, error)
}

// MemoryVersioner counts versions in process memory.
type MemoryVersioner struct {
	mu   sync.Mutex
	next map[string]uint64
}

// NewMemoryVersioner returns an empty in-memory version counter.
func NewMemoryVersioner() *MemoryVersioner {
	return &MemoryVersioner{next: make(map[string]uint64)}
}

// Next returns 1 for an unseen (venue, show) key and increments from there.
func (v *MemoryVersioner) Next(_ context.Context, venueID, showID string) (uint64, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	key := venueID + "\x00" + showID
	v.next[key]++
	return v.next[key], nil
}

// Compiler orchestrates geometry generation, boundary validation, stable-id
// assignment and snapshot assembly.  The struct holds no layout state; it is
// safe to share one Compiler across concurrent compiles.
type Compiler struct {
	versions Versioner
	now      func() time.Time
}

// New builds a Compiler.  A nil versioner falls back to an in-memory counter.
func New(versions Versioner) *Compiler {
	if versions == nil {
		versions = NewMemoryVersioner()
	}
	return &Compiler{versions: versions, now: time.Now}
}

// Compile derives every section's seats, validates boundaries across the
// whole venue, and assembles an immutable snapshot.  On any failure it
// returns a typed error and no snapshot: a failed compile never yields
// partial output.  The context only gates version allocation; geometry
// itself is cheap and synchronous.
func (c *Compiler) Compile(ctx context.Context, venueID, showID string, sections []model.SectionConfig, stage model.Rect) (*model.LayoutSnapshot, error) {
	type compiled struct {
		cfg    model.SectionConfig
		seats  []model.SeatPosition
		bounds model.Rect
	}

	built := make([]compiled, 0, len(sections))
	for _, cfg := range sections {
		if err := cfg.Validate(); err != nil {
			return nil, &InvalidSectionConfigError{SectionID: cfg.ID, Reason: err.Error()}
		}

		profile := cfg.RowProfile
		if len(profile) == 0 {
			derived, err := DeriveRowProfile(cfg.Rows, cfg.Capacity)
			if err != nil {
				return nil, &InvalidSectionConfigError{SectionID: cfg.ID, Reason: err.Error()}
			}
			profile = derived
		}

		seats, err := geometry.GenerateCurvedSeats(cfg, profile)
		if err != nil {
			return nil, &InvalidSectionConfigError{SectionID: cfg.ID, Reason: err.Error()}
		}
		if len(seats) != cfg.Capacity {
			return nil, &CapacityMismatchError{SectionID: cfg.ID, Expected: cfg.Capacity, Generated: len(seats)}
		}

		bounds, err := geometry.ComputeBoundary(seats, cfg.Buffer)
		if err != nil {
			return nil, &InvalidSectionConfigError{SectionID: cfg.ID, Reason: err.Error()}
		}
		built = append(built, compiled{cfg: cfg, seats: seats, bounds: bounds})
	}

	// The overlap scan is the single gate between geometry and output.
	rects := make([]model.Rect, len(built))
	for i, b := range built {
		rects[i] = b.bounds
	}
	if conflicts := geometry.ValidateNoOverlap(rects); len(conflicts) > 0 {
		pairs := make([]OverlapPair, len(conflicts))
		for i, cf := range conflicts {
			pairs[i] = OverlapPair{A: built[cf.I].cfg.ID, B: built[cf.J].cfg.ID}
		}
		return nil, &SectionOverlapError{Pairs: pairs}
	}

	snap := &model.LayoutSnapshot{
		VenueID:    venueID,
		ShowID:     showID,
		Sections:   make([]model.SectionLayout, 0, len(built)),
		Stage:      stage,
		CompiledAt: c.now().UTC(),
	}
	for _, b := range built {
		accessible := make(map[string]bool, len(b.cfg.AccessibleRows))
		for _, label := range b.cfg.AccessibleRows {
			accessible[strings.ToUpper(strings.TrimSpace(label))] = true
		}

		layout := model.SectionLayout{
			ID:       b.cfg.ID,
			Name:     b.cfg.Name,
			Shape:    b.cfg.Shape,
			ColorTag: b.cfg.ColorTag,
			Bounds:   b.bounds,
			SeatIDs:  make([]string, 0, len(b.seats)),
		}
		for _, pos := range b.seats {
			seat := model.Seat{
				ID:         model.SeatID(venueID, b.cfg.ID, pos.RowLabel, pos.SeatNumber),
				SectionID:  b.cfg.ID,
				RowLabel:   pos.RowLabel,
				SeatNumber: pos.SeatNumber,
				X:          pos.X,
				Y:          pos.Y,
				Accessible: accessible[pos.RowLabel],
			}
			layout.SeatIDs = append(layout.SeatIDs, seat.ID)
			snap.Seats = append(snap.Seats, seat)
		}
		snap.Sections = append(snap.Sections, layout)
	}
	snap.Bounds = overallBounds(rects, stage)

	version, err := c.versions.Next(ctx, venueID, showID)
	if err != nil {
		return nil, err
	}
	snap.Version = version
	return snap, nil
}

// overallBounds unions the padded section boundaries with the stage
// rectangle so the presentation layer gets one box covering everything.
func overallBounds(rects []model.Rect, stage model.Rect) model.Rect {
	out := stage
	for _, r := range rects {
		if r.MinX < out.MinX {
			out.MinX = r.MinX
		}
		if r.MinY < out.MinY {
			out.MinY = r.MinY
		}
		if r.MaxX > out.MaxX {
			out.MaxX = r.MaxX
		}
		if r.MaxY > out.MaxY {
			out.MaxY = r.MaxY
		}
	}
	return out
}
