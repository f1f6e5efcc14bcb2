package advanced

// This contains no actual tests. It is just a helper for checking that a hull
// is valid. The rules are:
// 1. Every hull vertex is one of the input points.
// 2. The hull starts at the lowest input point.
// 3. Every input point is inside or on the hull.
// 4. With three or more vertices, every turn of the hull, wrapping around, is
//    a left turn. In particular no vertex sits in the middle of an edge.
// 5. Degenerate hulls (all input points collinear or coincident) have one or
//    two distinct vertices.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertValidHull(t *testing.T, points []Point, hull []Point) {
	t.Helper()
	require.NotEmpty(t, hull, "hull of %d points is empty", len(points))

	inputSet := NewPointSet(points)
	for _, p := range hull {
		require.True(t, inputSet.Contains(p), "hull vertex %v is not an input point", p)
	}

	require.Equal(t, LowestPoint(points), hull[0], "hull must start at the lowest point")

	polygon := Polygon{Points: hull}
	for _, p := range points {
		assert.True(t, polygon.Encloses(p), "point %v is outside the hull %v", p, hull)
	}

	switch len(hull) {
	case 1:
		for _, p := range points {
			assert.Equal(t, hull[0], p, "one vertex hull with distinct points")
		}
	case 2:
		assert.NotEqual(t, hull[0], hull[1], "two vertex hull with a repeated vertex")
		for _, p := range points {
			assert.Equal(t, Collinear, GetDirection(hull[0], hull[1], p), "two vertex hull with non collinear point %v", p)
		}
	default:
		assert.True(t, polygon.IsConvex(), "hull is not strictly convex: %v", hull)
		assert.True(t, polygon.IsCCW(), "hull is not counterclockwise: %v", hull)
	}
}
