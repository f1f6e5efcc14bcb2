package advanced

// Twice the signed area would do for the sign checks, but the real area is
// more useful to callers. Positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += vertex.X*nextVertex.Y - nextVertex.X*vertex.Y
	}
	return sum / 2
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly Polygon) IsCW() bool {
	return poly.SignedArea() < 0
}

// Strict convexity: every consecutive triple of vertices, wrapping around, is
// a left turn. Collinear or repeated vertices fail the check, as does a
// polygon with fewer than three vertices.
func (poly Polygon) IsConvex() bool {
	n := len(poly.Points)
	if n < 3 {
		return false
	}
	for i := range poly.Points {
		a := poly.Points[i]
		b := poly.Points[CircularIndex(i+1, n)]
		c := poly.Points[CircularIndex(i+2, n)]
		if GetDirection(a, b, c) != Left {
			return false
		}
	}
	return true
}

// Check if a point is inside or on the boundary of a convex, counterclockwise
// polygon, such as one returned by ConvexHull. Degenerate hulls of one or two
// points contain only the points on them.
func (poly Polygon) Encloses(p Point) bool {
	switch n := len(poly.Points); n {
	case 0:
		return false
	case 1:
		return poly.Points[0] == p
	case 2:
		return onSegment(poly.Points[0], poly.Points[1], p)
	default:
		for i, vertex := range poly.Points {
			nextVertex := poly.Points[CircularIndex(i+1, n)]
			if GetDirection(vertex, nextVertex, p) == Right {
				return false
			}
		}
		return true
	}
}

func onSegment(a, b, p Point) bool {
	if GetDirection(a, b, p) != Collinear {
		return false
	}
	return between(a.X, b.X, p.X) && between(a.Y, b.Y, p.Y)
}

func between(a, b, v float64) bool {
	if a > b {
		a, b = b, a
	}
	return a <= v && v <= b
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}
