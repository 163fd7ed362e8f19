package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsakPar/stagemap/internal/model"
)

func sectionFixture(shape model.Shape, rows, capacity int) model.SectionConfig {
	return model.SectionConfig{
		ID:       "orch",
		Name:     "Orchestra",
		Shape:    shape,
		Rows:     rows,
		Capacity: capacity,
		Curve: model.CurveParams{
			CenterX:       400,
			CenterY:       300,
			StartAngleDeg: 150,
			EndAngleDeg:   30,
			InnerRadius:   120,
			OuterRadius:   320,
			RowDepth:      18,
		},
	}
}

func TestGenerateCurvedSeatsCounts(t *testing.T) {
	counts := []int{10, 12, 14, 16, 18}
	cfg := sectionFixture(model.ShapeOrchestra, 5, 70)

	seats, err := GenerateCurvedSeats(cfg, counts)
	require.NoError(t, err)
	require.Len(t, seats, 70)

	// Every (row, seatNumber) pair is unique.
	seen := map[[2]int]bool{}
	for _, s := range seats {
		key := [2]int{s.RowIndex, s.SeatNumber}
		assert.False(t, seen[key], "duplicate seat %s-%d", s.RowLabel, s.SeatNumber)
		seen[key] = true
	}
}

func TestGenerateCurvedSeatsDeterministic(t *testing.T) {
	counts := []int{3, 5, 7}
	cfg := sectionFixture(model.ShapeAmphitheater, 3, 15)

	a, err := GenerateCurvedSeats(cfg, counts)
	require.NoError(t, err)
	b, err := GenerateCurvedSeats(cfg, counts)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateCurvedSeatsAngularBounds(t *testing.T) {
	cfg := sectionFixture(model.ShapeOrchestra, 1, 5)

	seats, err := GenerateCurvedSeats(cfg, []int{5})
	require.NoError(t, err)

	start := cfg.Curve.StartAngleDeg * math.Pi / 180
	end := cfg.Curve.EndAngleDeg * math.Pi / 180
	r := cfg.Curve.InnerRadius

	first := seats[0]
	assert.InDelta(t, cfg.Curve.CenterX+r*math.Cos(start), first.X, 0.01)
	assert.InDelta(t, cfg.Curve.CenterY+r*math.Sin(start), first.Y, 0.01)

	last := seats[4]
	assert.InDelta(t, cfg.Curve.CenterX+r*math.Cos(end), last.X, 0.01)
	assert.InDelta(t, cfg.Curve.CenterY+r*math.Sin(end), last.Y, 0.01)
}

func TestGenerateCurvedSeatsSingleSeatMidpoint(t *testing.T) {
	cfg := sectionFixture(model.ShapeOrchestra, 1, 1)

	seats, err := GenerateCurvedSeats(cfg, []int{1})
	require.NoError(t, err)
	require.Len(t, seats, 1)

	mid := (cfg.Curve.StartAngleDeg + cfg.Curve.EndAngleDeg) / 2 * math.Pi / 180
	assert.InDelta(t, cfg.Curve.CenterX+cfg.Curve.InnerRadius*math.Cos(mid), seats[0].X, 0.01)
	assert.InDelta(t, cfg.Curve.CenterY+cfg.Curve.InnerRadius*math.Sin(mid), seats[0].Y, 0.01)
}

func TestRadiusGrowthPolicies(t *testing.T) {
	curve := model.CurveParams{InnerRadius: 100, RowDepth: 10}

	tests := []struct {
		name  string
		shape model.Shape
		row   int
		want  float64
	}{
		{"OrchestraConstant", model.ShapeOrchestra, 3, 130},
		{"BalconyWiderConstant", model.ShapeBalcony, 3, 145},
		{"AmphitheaterRowZero", model.ShapeAmphitheater, 0, 100},
		// increments 10, 11.5, 13 for rows 0..2
		{"AmphitheaterProgressive", model.ShapeAmphitheater, 3, 134.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, rowRadius(tt.shape, curve, tt.row), 1e-9)
		})
	}
}

func TestGenerateCurvedSeatsRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.SectionConfig)
		counts []int
	}{
		{"ZeroRows", func(c *model.SectionConfig) { c.Rows = 0; c.Capacity = 0 }, nil},
		{"OuterNotBeyondInner", func(c *model.SectionConfig) { c.Curve.OuterRadius = c.Curve.InnerRadius }, []int{2, 2}},
		{"EqualAngles", func(c *model.SectionConfig) { c.Curve.EndAngleDeg = c.Curve.StartAngleDeg }, []int{2, 2}},
		{"ProfileLengthMismatch", func(c *model.SectionConfig) {}, []int{4}},
		{"ZeroSeatRow", func(c *model.SectionConfig) {}, []int{4, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := sectionFixture(model.ShapeOrchestra, 2, 4)
			tt.mutate(&cfg)
			seats, err := GenerateCurvedSeats(cfg, tt.counts)
			require.Error(t, err)
			assert.Nil(t, seats, "no partial output on invalid input")
		})
	}
}

func TestRowLabelRoundTrip(t *testing.T) {
	tests := []struct {
		idx   int
		label string
	}{
		{0, "A"}, {1, "B"}, {25, "Z"}, {26, "AA"}, {27, "AB"}, {51, "AZ"}, {52, "BA"}, {701, "ZZ"}, {702, "AAA"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.label, RowLabel(tt.idx))
		got, ok := RowIndex(tt.label)
		require.True(t, ok)
		assert.Equal(t, tt.idx, got)
	}

	_, ok := RowIndex("")
	assert.False(t, ok)
	_, ok = RowIndex("A1")
	assert.False(t, ok)
}
