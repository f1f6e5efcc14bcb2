package main

import (
	"io"
	"log"
	"os"

	"github.com/osuushi/grahamscan"
	"github.com/osuushi/grahamscan/internal/points"
	"github.com/osuushi/grahamscan/render"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	inputPath = kingpin.Flag("input", "File of \"x y\" lines to read points from, - for stdin.").Short('i').Default("-").String()
	svgPath   = kingpin.Flag("svg", "Read points from the circles of an SVG file.").ExistingFile()
	random    = kingpin.Flag("random", "Generate this many random points instead of reading them.").Short('n').Int()
	seed      = kingpin.Flag("seed", "Seed for --random.").Default("1").Envar("HULL_SEED").Int64()
	minCoord  = kingpin.Flag("min", "Smallest coordinate for --random.").Default("20").Int()
	maxCoord  = kingpin.Flag("max", "Largest coordinate for --random.").Default("480").Int()
	pngPath   = kingpin.Flag("png", "Draw the points and hull to this PNG file.").Envar("HULL_PNG").String()
	size      = kingpin.Flag("size", "Width and height of the PNG.").Default("500").Int()
	showImage = kingpin.Flag("imgcat", "Print the PNG to the terminal (iTerm only).").Bool()
	trace     = kingpin.Flag("trace", "Trace the steps of the scan to stderr.").Bool()
	clockwise = kingpin.Flag("clockwise", "Print the hull in clockwise order, ending at the lowest point.").Bool()
)

// Compute the convex hull of a set of points and print its vertices, one "x y"
// per line, in hull order.
//
// Points are read from stdin (or --input) as newline separated "x y" pairs,
// from the circles of an SVG file with --svg, or generated at random with
// --random. The result can also be drawn to a PNG with --png.
func main() {
	log.SetFlags(0)
	log.SetPrefix("hull: ")
	kingpin.Parse()
	if err := checkFlags(*random, *showImage, *pngPath); err != nil {
		kingpin.Fatalf("%v", err)
	}

	input, err := readPoints()
	if err != nil {
		log.Fatalf("%v", err)
	}

	var traceWriter io.Writer
	if *trace {
		traceWriter = os.Stderr
	}
	hull, err := computeHull(input, traceWriter)
	if err != nil {
		log.Fatalf("%v", err)
	}

	output := hull
	if *clockwise {
		output = grahamscan.Polygon{Points: hull}.Reverse().Points
	}
	if err := points.WriteText(os.Stdout, output); err != nil {
		log.Fatalf("%v", err)
	}

	if *pngPath != "" {
		if err := render.SavePNG(*pngPath, input, hull, *size); err != nil {
			log.Fatalf("Could not save %q: %v", *pngPath, err)
		}
		if *showImage {
			if err := render.Imgcat(*pngPath, os.Stdout); err != nil {
				log.Fatalf("Could not print %q: %v", *pngPath, err)
			}
		}
	}
}

// Reject flag combinations that kingpin can't express.
func checkFlags(random int, showImage bool, pngPath string) error {
	if showImage && pngPath == "" {
		return errors.New("--imgcat requires --png")
	}
	if random < 0 {
		return errors.Errorf("--random must not be negative, got %d", random)
	}
	return nil
}

func readPoints() ([]points.Point, error) {
	switch {
	case *random > 0:
		return points.Random(*random, *seed, *minCoord, *maxCoord), nil
	case *svgPath != "":
		f, err := os.Open(*svgPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return points.ReadSVG(f)
	case *inputPath == "-":
		return points.ReadText(os.Stdin)
	default:
		f, err := os.Open(*inputPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		result, err := points.ReadText(f)
		return result, errors.Wrapf(err, "reading %q", *inputPath)
	}
}

func computeHull(input []points.Point, traceWriter io.Writer) ([]points.Point, error) {
	if len(input) == 0 {
		return nil, errors.New("no points to take the hull of")
	}
	return grahamscan.TraceConvexHull(input, traceWriter)
}
