package compiler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsakPar/stagemap/internal/model"
)

func curveSection(id string, startDeg, endDeg float64) model.SectionConfig {
	return model.SectionConfig{
		ID:         id,
		Name:       "Section " + id,
		Shape:      model.ShapeOrchestra,
		Rows:       5,
		Capacity:   70,
		RowProfile: []int{10, 12, 14, 16, 18},
		Buffer:     5,
		Curve: model.CurveParams{
			CenterX:       500,
			CenterY:       500,
			StartAngleDeg: startDeg,
			EndAngleDeg:   endDeg,
			InnerRadius:   150,
			OuterRadius:   400,
			RowDepth:      20,
		},
	}
}

var testStage = model.Rect{MinX: 400, MinY: 880, MaxX: 600, MaxY: 920}

func TestCompileTwoSections(t *testing.T) {
	c := New(nil)

	sections := []model.SectionConfig{
		curveSection("sectionA", 150, 180),
		curveSection("sectionB", 0, 30),
	}
	snap, err := c.Compile(context.Background(), "venue1", "show1", sections, testStage)
	require.NoError(t, err)
	require.NotNil(t, snap)

	assert.Equal(t, "venue1", snap.VenueID)
	assert.Equal(t, uint64(1), snap.Version)
	assert.Len(t, snap.Sections, 2)
	assert.Len(t, snap.Seats, 140)
	assert.False(t, snap.CompiledAt.IsZero())

	// Stable id of the first seat of section A lands inside A's boundary.
	seat, ok := snap.SeatByID(model.SeatID("venue1", "sectionA", "A", 1))
	require.True(t, ok)
	assert.True(t, snap.Sections[0].Bounds.Contains(seat.X, seat.Y))

	// Overall bounds cover every section and the stage.
	for _, sec := range snap.Sections {
		assert.True(t, snap.Bounds.Contains(sec.Bounds.MinX, sec.Bounds.MinY))
		assert.True(t, snap.Bounds.Contains(sec.Bounds.MaxX, sec.Bounds.MaxY))
	}
	assert.True(t, snap.Bounds.Contains(testStage.MinX, testStage.MinY))
}

func TestCompileVersionIncrementsPerKey(t *testing.T) {
	c := New(nil)
	sections := []model.SectionConfig{curveSection("orch", 150, 180)}

	first, err := c.Compile(context.Background(), "v1", "s1", sections, testStage)
	require.NoError(t, err)
	second, err := c.Compile(context.Background(), "v1", "s1", sections, testStage)
	require.NoError(t, err)
	other, err := c.Compile(context.Background(), "v1", "s2", sections, testStage)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), first.Version)
	assert.Equal(t, uint64(2), second.Version)
	assert.Equal(t, uint64(1), other.Version, "version counter is per (venue, show)")
}

func TestCompileStableIDsSurviveRecompile(t *testing.T) {
	c := New(nil)
	sections := []model.SectionConfig{curveSection("orch", 150, 180)}

	a, err := c.Compile(context.Background(), "v1", "s1", sections, testStage)
	require.NoError(t, err)
	b, err := c.Compile(context.Background(), "v1", "s1", sections, testStage)
	require.NoError(t, err)

	require.Equal(t, len(a.Seats), len(b.Seats))
	for i := range a.Seats {
		assert.Equal(t, a.Seats[i].ID, b.Seats[i].ID)
		assert.Equal(t, a.Seats[i].X, b.Seats[i].X)
		assert.Equal(t, a.Seats[i].Y, b.Seats[i].Y)
	}
}

func TestCompileSectionOverlap(t *testing.T) {
	c := New(nil)

	// Identical angle ranges around the same center occupy the same space.
	sections := []model.SectionConfig{
		curveSection("sectionA", 60, 120),
		curveSection("sectionB", 60, 120),
	}
	snap, err := c.Compile(context.Background(), "v1", "s1", sections, testStage)
	assert.Nil(t, snap, "overlap must never yield a snapshot")

	var overlap *SectionOverlapError
	require.ErrorAs(t, err, &overlap)
	require.Len(t, overlap.Pairs, 1)
	assert.Equal(t, OverlapPair{A: "sectionA", B: "sectionB"}, overlap.Pairs[0])
}

func TestCompileInvalidSection(t *testing.T) {
	c := New(nil)

	bad := curveSection("broken", 150, 180)
	bad.Curve.OuterRadius = bad.Curve.InnerRadius

	snap, err := c.Compile(context.Background(), "v1", "s1", []model.SectionConfig{bad}, testStage)
	assert.Nil(t, snap)

	var invalid *InvalidSectionConfigError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "broken", invalid.SectionID)
}

func TestCompileDerivedProfile(t *testing.T) {
	c := New(nil)

	sec := curveSection("orch", 150, 180)
	sec.RowProfile = nil // force derivation

	snap, err := c.Compile(context.Background(), "v1", "s1", []model.SectionConfig{sec}, testStage)
	require.NoError(t, err)
	assert.Len(t, snap.Seats, sec.Capacity)
}

func TestCompileAccessibleRows(t *testing.T) {
	c := New(nil)

	sec := curveSection("orch", 150, 180)
	sec.AccessibleRows = []string{"a"}

	snap, err := c.Compile(context.Background(), "v1", "s1", []model.SectionConfig{sec}, testStage)
	require.NoError(t, err)

	for _, seat := range snap.Seats {
		assert.Equal(t, seat.RowLabel == "A", seat.Accessible)
	}
}
