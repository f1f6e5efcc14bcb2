package advanced

// Points are plain values. Two points are the same point iff their coordinates
// are equal, so duplicates in the input are just repeated values, and a point
// can be used directly as a map key.
type Point struct {
	X float64
	Y float64
}

// The turn made when travelling from A to B and then on to C.
type Direction int

const (
	Right Direction = iota - 1
	Collinear
	Left
)

// An ordered boundary. The edge from the last point back to the first is
// implied, and never stored.
type Polygon struct {
	Points []Point
}

type PointStack []Point

type PointSet map[Point]struct{}
