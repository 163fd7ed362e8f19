package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsakPar/stagemap/internal/model"
)

func snapshotFixture(version uint64) *model.LayoutSnapshot {
	return &model.LayoutSnapshot{
		VenueID: "v1",
		ShowID:  "s1",
		Seats: []model.Seat{
			{ID: "v1-orch-A-1", SectionID: "orch", RowLabel: "A", SeatNumber: 1, X: 120.5, Y: 340.25},
			{ID: "v1-orch-A-2", SectionID: "orch", RowLabel: "A", SeatNumber: 2, X: 140.75, Y: 338},
		},
		Version:    version,
		CompiledAt: time.Now().UTC(),
	}
}

func TestGetMissingKey(t *testing.T) {
	c := New(nil)
	_, ok := c.Get(context.Background(), "v1", "nope")
	assert.False(t, ok)
}

func TestPutThenGet(t *testing.T) {
	c := New(nil)
	ctx := context.Background()

	snap := snapshotFixture(1)
	c.Put(ctx, snap)

	got, ok := c.Get(ctx, "v1", "s1")
	require.True(t, ok)
	assert.Same(t, snap, got)
}

func TestPutIgnoresStaleVersion(t *testing.T) {
	c := New(nil)
	ctx := context.Background()

	newer := snapshotFixture(3)
	c.Put(ctx, newer)
	c.Put(ctx, snapshotFixture(2))

	got, ok := c.Get(ctx, "v1", "s1")
	require.True(t, ok)
	assert.Same(t, newer, got)
}

func TestReplacementIsAtomicForHeldReaders(t *testing.T) {
	c := New(nil)
	ctx := context.Background()

	old := snapshotFixture(1)
	c.Put(ctx, old)
	held, ok := c.Get(ctx, "v1", "s1")
	require.True(t, ok)

	c.Put(ctx, snapshotFixture(2))

	// The reader that grabbed the old snapshot keeps a consistent view.
	assert.Equal(t, uint64(1), held.Version)
	latest, _ := c.Get(ctx, "v1", "s1")
	assert.Equal(t, uint64(2), latest.Version)
}

func TestTranslatePartialSuccess(t *testing.T) {
	c := New(nil)
	ctx := context.Background()
	c.Put(ctx, snapshotFixture(1))

	out, ok := c.Translate(ctx, "v1", "s1", []string{"v1-orch-A-2", "v1-orch-ZZ-99", "v1-orch-A-1"})
	require.True(t, ok)
	require.Len(t, out, 3)

	require.NotNil(t, out[0].Position)
	assert.Equal(t, 140.75, out[0].Position.X)
	assert.Nil(t, out[1].Position, "unknown id resolves to nil, not an error")
	require.NotNil(t, out[2].Position)
	assert.Equal(t, "A", out[2].Position.RowLabel)
}

func TestTranslateUncachedShow(t *testing.T) {
	c := New(nil)
	_, ok := c.Translate(context.Background(), "v1", "other", []string{"v1-orch-A-1"})
	assert.False(t, ok)
}

func TestResolve(t *testing.T) {
	c := New(nil)
	ctx := context.Background()
	c.Put(ctx, snapshotFixture(1))

	pos, ok := c.Resolve(ctx, "v1", "s1", "v1-orch-A-1")
	require.True(t, ok)
	assert.Equal(t, 120.5, pos.X)

	_, ok = c.Resolve(ctx, "v1", "s1", "bogus")
	assert.False(t, ok)
}
