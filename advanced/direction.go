package advanced

import "fmt"

// Classify the turn from A→B to B→C by the sign of the cross product. Coincident
// points give a zero cross product, so they are Collinear as well.
func GetDirection(a, b, c Point) Direction {
	crossProduct := (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
	switch {
	case crossProduct > 0:
		return Left
	case crossProduct < 0:
		return Right
	default:
		return Collinear
	}
}

var directionLabels = [3]string{"Right", "Collinear", "Left"}

func (d Direction) String() string {
	if d < Right || d > Left {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionLabels[int(d+1)]
}
