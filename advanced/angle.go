package advanced

import (
	"math"
	"sort"
)

// The angle, in (-π, π], that the vector from origin to point makes with the
// positive X axis. A point equal to the origin has angle 0.
func Angle(origin, point Point) float64 {
	dx := point.X - origin.X
	dy := point.Y - origin.Y
	// -0 == 0, but Atan2 tells them apart, and would put a copy of the origin
	// with a -0 coordinate at π.
	if dx == 0 {
		dx = 0
	}
	if dy == 0 {
		dy = 0
	}
	return math.Atan2(dy, dx)
}

// Order two points by their angle around the pivot. Points at the same angle
// are ordered by ascending Y. The only angle where that can't decide is 0,
// where every point is level with the pivot, and there we fall back to
// ascending X. Both tie breaks put the point nearer the pivot first.
//
// Returns a negative number if a sorts first, positive if b sorts first, and
// zero if they are the same point.
func ComparePointsByAngle(a, b, pivot Point) int {
	angleA := Angle(pivot, a)
	angleB := Angle(pivot, b)
	switch {
	case angleA < angleB:
		return -1
	case angleA > angleB:
		return 1
	}
	switch {
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	}
	return 0
}

// Sort points in place by ComparePointsByAngle around the pivot.
func SortByAngle(points []Point, pivot Point) {
	sort.SliceStable(points, func(i, j int) bool {
		return ComparePointsByAngle(points[i], points[j], pivot) < 0
	})
}
