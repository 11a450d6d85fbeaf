package svgpath

import (
	"errors"
	"strconv"
	"strings"
)

// ErrTooFewPoints is returned when a stroke is requested with
// less than two points.
var ErrTooFewPoints = errors.New("svgpath: need at least 2 points for a path")

// Point is a position in canvas pixel space.
type Point struct{ X, Y float64 }

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Polyline is an open sequence of straight segments.
// A valid polyline has at least two points; use NewPolyline
// to enforce it.
type Polyline []Point

// NewPolyline copies the given points, failing with ErrTooFewPoints
// when less than two are given.
func NewPolyline(points ...Point) (Polyline, error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}
	return append(Polyline(nil), points...), nil
}

// Closed reports whether the last point repeats the first one.
func (pl Polyline) Closed() bool {
	return len(pl) > 2 && pl[0] == pl[len(pl)-1]
}

// D returns the SVG path data "M x y L x y ...", with three decimals.
func (pl Polyline) D() (string, error) {
	if len(pl) < 2 {
		return "", ErrTooFewPoints
	}
	var b strings.Builder
	for i, p := range pl {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(formatCoord(p.X))
		b.WriteByte(' ')
		b.WriteString(formatCoord(p.Y))
	}
	return b.String(), nil
}

// Path converts the polyline to fixed point operations.
func (pl Polyline) Path() Path {
	out := make(Path, 0, len(pl))
	for i, p := range pl {
		if i == 0 {
			out.Start(ToFixedP(p.X, p.Y))
			continue
		}
		out.Line(ToFixedP(p.X, p.Y))
	}
	return out
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
