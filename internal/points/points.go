// Package points reads and generates the point sets fed to the hull.
package points

import (
	"bufio"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/grahamscan/advanced"
	"github.com/pkg/errors"
)

type Point = advanced.Point

// Read points in the form "x y", one per line. Blank lines and lines starting
// with "#" are skipped.
func ReadText(in io.Reader) ([]Point, error) {
	points := []Point{}
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(line string) (Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return Point{X: x, Y: y}, nil
}

// Write points in the form read by ReadText.
func WriteText(out io.Writer, points []Point) error {
	w := bufio.NewWriter(out)
	for _, p := range points {
		w.WriteString(strconv.FormatFloat(p.X, 'g', -1, 64))
		w.WriteByte(' ')
		w.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
		w.WriteByte('\n')
	}
	return errors.Wrap(w.Flush(), "writing points")
}

// Read the centers of every <circle> in an SVG document, in document order.
// Nothing else in the document is interpreted.
func ReadSVG(in io.Reader) ([]Point, error) {
	root, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	circles := root.FindAll("circle")
	points := make([]Point, 0, len(circles))
	for i, circle := range circles {
		x, err := parseAttribute(circle, "cx")
		if err != nil {
			return nil, errors.Wrapf(err, "circle %d", i)
		}
		y, err := parseAttribute(circle, "cy")
		if err != nil {
			return nil, errors.Wrapf(err, "circle %d", i)
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points, nil
}

func parseAttribute(el *svgparser.Element, name string) (float64, error) {
	value, ok := el.Attributes[name]
	if !ok {
		return 0, errors.Errorf("missing %s attribute", name)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s value %q", name, value)
	}
	return v, nil
}

// Generate n points with integer coordinates in [min, max] on both axes. The
// same seed always gives the same points.
func Random(n int, seed int64, min, max int) []Point {
	if max < min {
		min, max = max, min
	}
	if n < 0 {
		n = 0
	}
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			X: float64(min + rng.Intn(max-min+1)),
			Y: float64(min + rng.Intn(max-min+1)),
		}
	}
	return points
}
