// A Graham scan convex hull package for Go.
//
// Given a set of points in the plane, which may contain duplicates and
// collinear runs, this package finds the smallest convex polygon containing
// all of them, as an ordered list of its corners.
package grahamscan

import (
	"io"

	"github.com/osuushi/grahamscan/advanced"
)

type Point = advanced.Point
type Polygon = advanced.Polygon
type Direction = advanced.Direction

const (
	Right     = advanced.Right
	Collinear = advanced.Collinear
	Left      = advanced.Left
)

// Returned, wrapped, when the input is nil.
var ErrInvalidArgument = advanced.ErrInvalidArgument

// Find the convex hull of a set of points.
//
// The hull starts at the lowest point and winds counterclockwise, with no
// collinear points along its edges. Up to three points are returned unchanged.
// See advanced.ConvexHull for the details.
func ConvexHull(points []Point) ([]Point, error) {
	return TraceConvexHull(points, nil)
}

// Same as ConvexHull, but writes each step of the scan to w, for debugging.
func TraceConvexHull(points []Point, w io.Writer) (result []Point, err error) {
	defer func() {
		recoveredErr := advanced.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.TraceConvexHull(points, w), nil
}
