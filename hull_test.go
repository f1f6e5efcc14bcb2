package grahamscan

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are tested in the advanced package.
func TestConvexHull(t *testing.T) {
	points := []Point{
		{X: 1, Y: -1},
		{X: 0, Y: 0},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
	}

	hull, err := ConvexHull(points)
	assert.NoError(t, err)
	assert.Equal(t, []Point{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}}, hull)
}

func TestConvexHull_Nil(t *testing.T) {
	hull, err := ConvexHull(nil)
	assert.Nil(t, hull)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestConvexHull_Empty(t *testing.T) {
	hull, err := ConvexHull([]Point{})
	assert.NoError(t, err)
	assert.Empty(t, hull)
}

func TestTraceConvexHull(t *testing.T) {
	var buf bytes.Buffer
	hull, err := TraceConvexHull([]Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 0, Y: 2}}, &buf)
	assert.NoError(t, err)
	assert.Len(t, hull, 4)
	assert.NotEmpty(t, buf.String())

	_, err = TraceConvexHull(nil, &buf)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestLoadFixture_Clockwise(t *testing.T) {
	f := loadFixture("clockwise_hexagon")
	assert.Equal(t, []Point{{X: 2, Y: 0}, {X: 4, Y: 1}, {X: 4, Y: 3}, {X: 2, Y: 4}, {X: 0, Y: 3}, {X: 0, Y: 1}}, f.hull)
	assert.True(t, Polygon{Points: f.hull}.IsCCW())
}

func TestConvexHull_Fixtures(t *testing.T) {
	for _, name := range []string{"scattered", "collinear_edge", "grid", "diamond", "clockwise_hexagon"} {
		name := name
		t.Run(name, func(t *testing.T) {
			f := loadFixture(name)
			hull, err := ConvexHull(f.points)
			require.NoError(t, err)
			assert.Equal(t, f.hull, hull)

			polygon := Polygon{Points: hull}
			assert.True(t, polygon.IsConvex())
			for _, p := range f.points {
				assert.True(t, polygon.Encloses(p), "point %v is outside the hull", p)
			}
		})
	}
}
