package advanced

import "fmt"

// If two points have the same Y value, the one with the smaller X value is
// "lower". The pivot of the scan is the lowest point by this ordering. Unlike
// a tolerance based comparison, this must be exact, or the pivot can end up
// being a point that isn't on the hull.
func (p Point) Below(otherPoint Point) bool {
	if p.Y == otherPoint.Y {
		return p.X < otherPoint.X
	}
	return p.Y < otherPoint.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *PointStack) Push(p Point) {
	*s = append(*s, p)
}

// Pop the top point. The second return value is false if the stack was empty.
func (s *PointStack) Pop() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p, true
}

func (s *PointStack) Peek() (Point, bool) {
	return s.PeekN(0)
}

// Look n places below the top of the stack, so that PeekN(0) is the top.
func (s *PointStack) PeekN(n int) (Point, bool) {
	i := len(*s) - 1 - n
	if n < 0 || i < 0 {
		return Point{}, false
	}
	return (*s)[i], true
}

func (s *PointStack) Len() int {
	return len(*s)
}

func (set PointSet) Add(p Point) {
	set[p] = struct{}{}
}

func (set PointSet) Contains(p Point) bool {
	_, ok := set[p]
	return ok
}

func NewPointSet(points []Point) PointSet {
	set := make(PointSet, len(points))
	for _, p := range points {
		set.Add(p)
	}
	return set
}
