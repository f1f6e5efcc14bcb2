// Package render draws a point set and its convex hull to an image.
package render

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/grahamscan/advanced"
)

const (
	DefaultSize = 500

	pointRadius = 4
	padding     = 20

	backgroundColor  = "#030712"
	insidePointColor = "#d1d5db"
	hullPointColor   = "#67e8f9"
	pivotPointColor  = "#22c55e"
	lineColor        = "#64748b"
)

// Draw all points, then the hull on top of them as a closed polygon with its
// vertices highlighted. The first hull vertex is the pivot of the scan, and
// gets its own colour. The origin is at the bottom left, and the drawing is
// scaled to fit a size×size square.
func Draw(points, hull []advanced.Point, size int) *gg.Context {
	if size <= 0 {
		size = DefaultSize
	}
	c := gg.NewContext(size, size)
	c.SetHexColor(backgroundColor)
	c.Clear()

	project := projection(append(append([]advanced.Point{}, points...), hull...), size)

	c.SetHexColor(insidePointColor)
	for _, p := range points {
		x, y := project(p)
		c.DrawCircle(x, y, pointRadius)
		c.Fill()
	}

	if len(hull) == 0 {
		return c
	}

	c.SetHexColor(lineColor)
	c.SetLineWidth(1)
	for i, p := range hull {
		next := hull[advanced.CircularIndex(i+1, len(hull))]
		x1, y1 := project(p)
		x2, y2 := project(next)
		c.DrawLine(x1, y1, x2, y2)
		c.Stroke()
	}

	c.SetHexColor(hullPointColor)
	for _, p := range hull[1:] {
		x, y := project(p)
		c.DrawCircle(x, y, pointRadius)
		c.Fill()
	}

	c.SetHexColor(pivotPointColor)
	x, y := project(hull[0])
	c.DrawCircle(x, y, pointRadius)
	c.Fill()

	return c
}

// Map plane coordinates to canvas coordinates, preserving the aspect ratio and
// flipping the Y axis.
func projection(points []advanced.Point, size int) func(advanced.Point) (float64, float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	inner := float64(size) - 2*padding
	span := math.Max(maxX-minX, maxY-minY)
	scale := 1.0
	if span > 0 && !math.IsInf(span, 0) {
		scale = inner / span
	}

	return func(p advanced.Point) (float64, float64) {
		x := padding + (p.X-minX)*scale
		y := padding + (p.Y-minY)*scale
		return x, float64(size) - y
	}
}

// Draw and save as a PNG file.
func SavePNG(path string, points, hull []advanced.Point, size int) error {
	return Draw(points, hull, size).SavePNG(path)
}

// Print a PNG file to the terminal. This only works in terminals supporting
// inline images, such as iTerm.
func Imgcat(path string, w io.Writer) error {
	return imgcat.CatFile(path, w)
}
