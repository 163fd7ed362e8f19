// Package cache holds compiled layout snapshots for fast reads and
// translates stable seat identifiers into geometric metadata.  It never
// stores price or availability; those live with the external booking
// collaborator and join on the same stable ids.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/IsakPar/stagemap/internal/model"
)

// TranslatedSeat is one entry of a batch translation.  Position is nil for
// ids the snapshot does not contain, so a caller can render the seats it
// recognizes and skip the rest instead of failing the whole batch.
type TranslatedSeat struct {
	ID       string              `json:"id"`
	Position *model.SeatPosition `json:"position"`
}

// entry pairs a snapshot with a seat index built once at insertion, so
// translation is a map lookup rather than a scan per id.
type entry struct {
	snap *model.LayoutSnapshot
	byID map[string]model.Seat
}

// LayoutCache serves immutable snapshots under single-writer /
// multiple-reader discipline per (venue, show) key.  A new compile replaces
// the whole entry under the write lock, so concurrent readers observe
// either the fully old or fully new snapshot, never a mixture.  When a
// redis client is configured, writes go through to redis so other
// instances can warm their memory tier from it.
type LayoutCache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	rdb     *redis.Client // nil disables the shared tier
}

// New creates a cache.  rdb may be nil; the cache then runs memory-only.
func New(rdb *redis.Client) *LayoutCache {
	return &LayoutCache{entries: make(map[string]*entry), rdb: rdb}
}

func cacheKey(venueID, showID string) string {
	return fmt.Sprintf("layout:%s:%s", venueID, showID)
}

func newEntry(snap *model.LayoutSnapshot) *entry {
	byID := make(map[string]model.Seat, len(snap.Seats))
	for _, s := range snap.Seats {
		byID[s.ID] = s
	}
	return &entry{snap: snap, byID: byID}
}

// Put swaps in a freshly compiled snapshot.  Snapshots with a version at or
// below the cached one are ignored, which keeps a slow concurrent compile
// from clobbering a newer layout.  Redis write failures are logged and
// swallowed: the memory tier stays authoritative for this instance and
// durability belongs to the repository.
func (c *LayoutCache) Put(ctx context.Context, snap *model.LayoutSnapshot) {
	key := cacheKey(snap.VenueID, snap.ShowID)

	c.mu.Lock()
	if cur, ok := c.entries[key]; ok && cur.snap.Version >= snap.Version {
		c.mu.Unlock()
		return
	}
	c.entries[key] = newEntry(snap)
	c.mu.Unlock()

	if c.rdb != nil {
		body, err := json.Marshal(snap)
		if err == nil {
			err = c.rdb.Set(ctx, key, body, 0).Err()
		}
		if err != nil {
			log.Printf("layout-cache: redis write for %s failed: %v", key, err)
		}
	}
}

// Get returns the cached snapshot for a (venue, show) key.  On a memory
// miss it consults redis, warming the memory tier on success.
func (c *LayoutCache) Get(ctx context.Context, venueID, showID string) (*model.LayoutSnapshot, bool) {
	key := cacheKey(venueID, showID)

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return e.snap, true
	}

	if c.rdb == nil {
		return nil, false
	}
	body, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("layout-cache: redis read for %s failed: %v", key, err)
		}
		return nil, false
	}
	var snap model.LayoutSnapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		log.Printf("layout-cache: corrupt redis entry for %s: %v", key, err)
		return nil, false
	}
	c.Put(ctx, &snap)
	return &snap, true
}

// Translate resolves stable ids against the cached snapshot one by one.
// Unknown ids yield a nil position rather than failing the batch.  The
// second return value is false when no snapshot is cached for the key at
// all, which callers should treat differently from an unknown id.
func (c *LayoutCache) Translate(ctx context.Context, venueID, showID string, ids []string) ([]TranslatedSeat, bool) {
	if _, ok := c.Get(ctx, venueID, showID); !ok {
		return nil, false
	}

	c.mu.RLock()
	e := c.entries[cacheKey(venueID, showID)]
	c.mu.RUnlock()

	out := make([]TranslatedSeat, len(ids))
	for i, id := range ids {
		out[i] = TranslatedSeat{ID: id}
		if seat, ok := e.byID[id]; ok {
			pos := seat.Position()
			out[i].Position = &pos
		}
	}
	return out, true
}

// Resolve is the single-id form of Translate, used by the selection
// coordinator to reject toggles for seats the layout does not know.
func (c *LayoutCache) Resolve(ctx context.Context, venueID, showID, seatID string) (*model.SeatPosition, bool) {
	translated, ok := c.Translate(ctx, venueID, showID, []string{seatID})
	if !ok || translated[0].Position == nil {
		return nil, false
	}
	return translated[0].Position, true
}
