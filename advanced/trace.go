package advanced

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/grahamscan/dbg"
)

// Writes the steps of a scan as readable lines. Points are labelled with
// readable names so that the same point is easy to follow through the trace.
// All methods are no-ops on a nil tracer.
type tracer struct {
	w io.Writer
}

func newTracer(w io.Writer) *tracer {
	if w == nil {
		return nil
	}
	return &tracer{w: w}
}

func (t *tracer) printf(format string, args ...interface{}) {
	if t == nil {
		return
	}
	fmt.Fprintf(t.w, format+"\n", args...)
}

func (t *tracer) list(points []Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = pointDbgName(p)
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}

func pointDbgName(p Point) string {
	return fmt.Sprintf("%s%s", dbg.Name(p), p)
}

func (t *tracer) trivial(points []Point) {
	if t == nil {
		return
	}
	t.printf("%d points is already a hull: %s", len(points), t.list(points))
}

func (t *tracer) pivot(p Point) {
	if t == nil {
		return
	}
	t.printf("pivot %s", aurora.Cyan(pointDbgName(p)))
}

func (t *tracer) sorted(points []Point) {
	if t == nil {
		return
	}
	t.printf("sorted %s", t.list(points))
}

func (t *tracer) push(p Point) {
	if t == nil {
		return
	}
	t.printf("push %s", aurora.Green(pointDbgName(p)))
}

func (t *tracer) pop(a, b, c Point, direction Direction) {
	if t == nil {
		return
	}
	t.printf("pop %s: %s → %s → %s is %s",
		aurora.Red(pointDbgName(b)),
		dbg.Name(a),
		dbg.Name(b),
		dbg.Name(c),
		direction,
	)
}

func (t *tracer) closing(a, b, c Point, direction Direction) {
	if t == nil {
		return
	}
	verdict := "keep"
	if direction == Right {
		verdict = aurora.Red("drop").String()
	}
	t.printf("closing %s → %s → %s is %s, %s %s",
		dbg.Name(a),
		dbg.Name(b),
		dbg.Name(c),
		direction,
		verdict,
		dbg.Name(b),
	)
}

func (t *tracer) done(hull []Point) {
	if t == nil {
		return
	}
	t.printf("hull %s", t.list(hull))
}
