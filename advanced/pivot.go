package advanced

// Find the lowest point, breaking ties on Y by taking the smallest X. This
// point is always a vertex of the hull. The slice must not be empty.
func LowestPoint(points []Point) Point {
	if len(points) == 0 {
		invalidArgumentf("cannot find the lowest of zero points")
	}
	candidate := points[0]
	for _, point := range points[1:] {
		if point.Below(candidate) {
			candidate = point
		}
	}
	return candidate
}
