package selection

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsakPar/stagemap/internal/model"
)

// stubResolver recognizes a fixed id set; position content is irrelevant here.
type stubResolver struct {
	known map[string]bool
}

func (s *stubResolver) Resolve(_ context.Context, _, _, seatID string) (*model.SeatPosition, bool) {
	if !s.known[seatID] {
		return nil, false
	}
	return &model.SeatPosition{}, true
}

func newTestCoordinator(maxSelectable int, seats ...string) *Coordinator {
	known := make(map[string]bool, len(seats))
	for _, s := range seats {
		known[s] = true
	}
	return NewCoordinator("v1", "s1", &stubResolver{known: known},
		Config{MaxSelectable: maxSelectable, MinInterval: 300 * time.Millisecond})
}

func TestToggleSelectsAndDeselects(t *testing.T) {
	c := newTestCoordinator(4, "a", "b")
	ctx := context.Background()
	t0 := time.Now()

	out, err := c.Toggle(ctx, "a", t0)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSelected, out)
	assert.Equal(t, []string{"a"}, c.Selected())

	out, err = c.Toggle(ctx, "a", t0.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, OutcomeDeselected, out)
	assert.Empty(t, c.Selected())
}

func TestToggleDebounceWindow(t *testing.T) {
	c := newTestCoordinator(4, "a")
	ctx := context.Background()
	t0 := time.Now()

	_, err := c.Toggle(ctx, "a", t0)
	require.NoError(t, err)

	// A duplicate click 100ms later is swallowed: state changed exactly once.
	out, err := c.Toggle(ctx, "a", t0.Add(100*time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, OutcomeDebounced, out)
	assert.Equal(t, []string{"a"}, c.Selected())

	// Past the window the toggle goes through again.
	out, err = c.Toggle(ctx, "a", t0.Add(400*time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, OutcomeDeselected, out)
	assert.Empty(t, c.Selected())
}

func TestToggleUnknownSeat(t *testing.T) {
	c := newTestCoordinator(4, "a")

	_, err := c.Toggle(context.Background(), "ghost", time.Now())
	assert.ErrorIs(t, err, ErrUnknownSeat)
	assert.Empty(t, c.Selected())
}

func TestToggleSelectionLimit(t *testing.T) {
	c := newTestCoordinator(2, "a", "b", "c")
	ctx := context.Background()
	t0 := time.Now()

	_, err := c.Toggle(ctx, "a", t0)
	require.NoError(t, err)
	_, err = c.Toggle(ctx, "b", t0)
	require.NoError(t, err)

	_, err = c.Toggle(ctx, "c", t0)
	assert.ErrorIs(t, err, ErrSelectionLimit)
	assert.Equal(t, []string{"a", "b"}, c.Selected(), "rejection leaves the set unchanged")

	// Rejection recorded no action, so the excess seat is selectable
	// immediately once room frees up.
	_, err = c.Toggle(ctx, "a", t0.Add(time.Second))
	require.NoError(t, err)
	out, err := c.Toggle(ctx, "c", t0.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, OutcomeSelected, out)
}

func TestToggleOrderIndependentForDistinctSeats(t *testing.T) {
	ctx := context.Background()
	t0 := time.Now()

	a := newTestCoordinator(8, "a", "b", "c")
	for _, id := range []string{"a", "b", "c"} {
		_, err := a.Toggle(ctx, id, t0)
		require.NoError(t, err)
	}

	b := newTestCoordinator(8, "a", "b", "c")
	for _, id := range []string{"c", "a", "b"} {
		_, err := b.Toggle(ctx, id, t0)
		require.NoError(t, err)
	}

	assert.Equal(t, a.Selected(), b.Selected())
}

func TestConcurrentTogglesNeverDoubleApply(t *testing.T) {
	c := newTestCoordinator(1, "a")
	ctx := context.Background()

	// 32 goroutines replay the same click with distinct timestamps outside
	// the debounce window.  Serialization means the net effect is exactly
	// one toggle per accepted transition: an even count of accepted
	// transitions leaves the seat deselected, an odd count selected, and
	// the set can never hold a duplicate or exceed the cap.
	var wg sync.WaitGroup
	accepted := make([]Outcome, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := c.Toggle(ctx, "a", time.Now().Add(time.Duration(i)*time.Second))
			if err == nil {
				accepted[i] = out
			}
		}(i)
	}
	wg.Wait()

	flips := 0
	for _, out := range accepted {
		if out == OutcomeSelected || out == OutcomeDeselected {
			flips++
		}
	}
	if flips%2 == 0 {
		assert.Equal(t, 0, c.Count())
	} else {
		assert.Equal(t, 1, c.Count())
	}
}

func TestRegistryOneCoordinatorPerSession(t *testing.T) {
	r := NewRegistry(&stubResolver{known: map[string]bool{"a": true}},
		Config{MaxSelectable: 4, MinInterval: time.Millisecond})

	c1 := r.Coordinator("sess-1", "v1", "s1")
	c2 := r.Coordinator("sess-1", "v1", "s1")
	other := r.Coordinator("sess-2", "v1", "s1")

	assert.Same(t, c1, c2)
	assert.NotSame(t, c1, other)

	r.Drop("sess-1")
	assert.NotSame(t, c1, r.Coordinator("sess-1", "v1", "s1"), "drop discards selection state")
}
