package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsakPar/stagemap/internal/model"
)

func wideSnapshot() *model.LayoutSnapshot {
	// 400 units wide, 100 tall: aspect 4.
	return &model.LayoutSnapshot{
		VenueID: "v1",
		ShowID:  "s1",
		Seats: []model.Seat{
			{ID: "a", X: 100, Y: 100},
			{ID: "b", X: 500, Y: 150},
			{ID: "c", X: 300, Y: 200},
		},
		Version: 1,
	}
}

func TestFrameFitsWidthFirst(t *testing.T) {
	frame, err := Frame(wideSnapshot(), 800, 600, 0)
	require.NoError(t, err)

	// Width-fit gives 800x200, which fits within maxHeight.
	assert.InDelta(t, 800, frame.ContainerWidth, 1e-9)
	assert.InDelta(t, 240, frame.ContainerHeight, 1e-9, "height is bumped to the usability minimum")
}

func TestFrameRescalesByHeight(t *testing.T) {
	// Tall layout: 100 wide, 400 tall.
	snap := &model.LayoutSnapshot{Seats: []model.Seat{
		{ID: "a", X: 0, Y: 0},
		{ID: "b", X: 100, Y: 400},
	}}

	frame, err := Frame(snap, 800, 600, 0)
	require.NoError(t, err)

	// Width-first fit would be 800x3200; the height pass wins.
	assert.InDelta(t, 600, frame.ContainerHeight, 1e-9)
	assert.InDelta(t, 320, frame.ContainerWidth, 1e-9, "width is bumped to the usability minimum")
}

func TestFrameIdempotent(t *testing.T) {
	snap := wideSnapshot()
	a, err := Frame(snap, 1024, 768, 20)
	require.NoError(t, err)
	b, err := Frame(snap, 1024, 768, 20)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestFrameNormalizedCoordinatesInRange(t *testing.T) {
	frame, err := Frame(wideSnapshot(), 640, 480, 10)
	require.NoError(t, err)

	for _, s := range frame.Seats {
		assert.GreaterOrEqual(t, s.NX, 0.0)
		assert.LessOrEqual(t, s.NX, 1.0)
		assert.GreaterOrEqual(t, s.NY, 0.0)
		assert.LessOrEqual(t, s.NY, 1.0)
		assert.InDelta(t, s.NX*frame.ContainerWidth, s.PX, 1e-9)
		assert.InDelta(t, s.NY*frame.ContainerHeight, s.PY, 1e-9)
	}
}

func TestNormalizeClampsOutsidePoints(t *testing.T) {
	bounds := model.Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}

	nx, ny := Normalize(bounds, -50, 250)
	assert.Equal(t, 0.0, nx)
	assert.Equal(t, 1.0, ny)

	nx, ny = Normalize(bounds, 25, 75)
	assert.InDelta(t, 0.25, nx, 1e-9)
	assert.InDelta(t, 0.75, ny, 1e-9)
}

func TestStageRectProportions(t *testing.T) {
	stage := StageRect(1000, 500)

	assert.InDelta(t, 600, stage.Width(), 1e-9, "stage spans 60% of container width")
	assert.InDelta(t, 200, stage.MinX, 1e-9, "stage is horizontally centered")
	assert.InDelta(t, 425, stage.MinY, 1e-9)
	assert.InDelta(t, 40, stage.Height(), 1e-9)
}

func TestFrameRejectsBadInput(t *testing.T) {
	_, err := Frame(nil, 800, 600, 0)
	assert.Error(t, err)

	_, err = Frame(&model.LayoutSnapshot{}, 800, 600, 0)
	assert.Error(t, err)

	_, err = Frame(wideSnapshot(), 0, 600, 0)
	assert.Error(t, err)

	_, err = Frame(wideSnapshot(), 800, 600, -1)
	assert.Error(t, err)
}
