package grahamscan

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/grahamscan/internal/points"
)

// This file loads the svg fixtures. Every <circle> center is an input point,
// and the single <polygon> is the expected hull. A clockwise polygon is
// reversed, so it must otherwise list its points in the order the scan should
// produce them. If anything goes wrong, it exits.
//
// Fixtures are available by name in the testdata/fixtures/ directory, sans
// extension.

//go:embed testdata/fixtures
var fixtures embed.FS

type fixture struct {
	points []Point
	hull   []Point
}

func loadFixture(name string) fixture {
	path := "testdata/fixtures/" + name + ".svg"
	data, err := fixtures.ReadFile(path)
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	input, err := points.ReadSVG(strings.NewReader(string(data)))
	if err != nil {
		log.Fatalf("Failed to read points from fixture %q: %v", name, err)
	}

	rootEl, err := svgparser.Parse(strings.NewReader(string(data)), false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointStrings := strings.Fields(polygons[0].Attributes["points"])
	hull := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		hull = append(hull, Point{X: x, Y: y})
	}

	// Ensure that the expected hull is CCW
	expected := Polygon{Points: hull}
	if expected.IsCW() {
		expected = expected.Reverse()
	}
	return fixture{points: input, hull: expected.Points}
}
