package advanced

import "io"

// Compute the convex hull of a set of points with a Graham scan.
//
// The result starts at the lowest point (see LowestPoint) and winds
// counterclockwise. Points which lie on an edge of the hull without being a
// corner are dropped, so every consecutive triple of the result, wrapping
// around, is a left turn. The caller is responsible for closing the polygon;
// the first point is not repeated at the end.
//
// Three or fewer points are returned as they are, in their original order.
// An empty slice gives an empty hull. A nil slice is an invalid argument.
//
// The input is never modified, and the result is always a fresh slice.
func ConvexHull(points []Point) []Point {
	return TraceConvexHull(points, nil)
}

// Same as ConvexHull, but writes a description of every step of the scan to w.
// A nil writer disables tracing.
func TraceConvexHull(points []Point, w io.Writer) []Point {
	if points == nil {
		invalidArgumentf("points must not be nil")
	}
	tr := newTracer(w)

	if len(points) <= 3 {
		result := make([]Point, len(points))
		copy(result, points)
		tr.trivial(result)
		return result
	}

	pivot := LowestPoint(points)
	tr.pivot(pivot)

	// Sort everything except the pivot itself. Only one copy of the pivot is
	// held back, so any duplicates of it sort directly after it and get removed
	// by the scan like any other collinear point.
	sorted := make([]Point, 0, len(points)-1)
	heldBack := false
	for _, p := range points {
		if !heldBack && p == pivot {
			heldBack = true
			continue
		}
		sorted = append(sorted, p)
	}
	SortByAngle(sorted, pivot)
	tr.sorted(sorted)

	stack := make(PointStack, 0, len(points))
	stack.Push(pivot)
	for _, c := range sorted {
		// The top of the stack is only kept if moving on to c is a left turn.
		// Otherwise it is inside the hull or on one of its edges. Removing it
		// exposes a new top, which must be tested again against c.
		for stack.Len() >= 2 {
			b, _ := stack.Peek()
			a, _ := stack.PeekN(1)
			direction := GetDirection(a, b, c)
			if direction == Left {
				break
			}
			stack.Pop()
			tr.pop(a, b, c, direction)
		}
		stack.Push(c)
		tr.push(c)
	}

	hull := []Point(stack)

	// Check the closing edge back to the pivot.
	if n := len(hull); n >= 3 {
		direction := GetDirection(hull[n-2], hull[n-1], hull[0])
		tr.closing(hull[n-2], hull[n-1], hull[0], direction)
		if direction == Right {
			hull = hull[:n-1]
		}
	}

	// Every point was a copy of the pivot.
	if len(hull) == 2 && hull[0] == hull[1] {
		hull = hull[:1]
	}

	tr.done(hull)
	return hull
}
