// Implements an abstract representation of
// stroke paths, which can then be consumed
// by painting drivers or serialized as SVG path data.
package svgpath

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/fixed"
)

type pathCommand uint8

// Human readable path constants
const (
	pathMoveTo pathCommand = iota
	pathLineTo
	pathClose
)

// Operation groups the different path commands.
// Curves are not part of the model: every shape is built from
// straight segments.
type Operation interface {
	command() pathCommand
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

type Close struct{}

func (MoveTo) command() pathCommand { return pathMoveTo }
func (LineTo) command() pathCommand { return pathLineTo }
func (Close) command() pathCommand  { return pathClose }

// Path describes a sequence of basic operations, which should not be nil.
// Higher-level shapes are reduced to a path.
type Path []Operation

// ToSVGPath returns a string representation of the path
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M %.3f %.3f", fixedToF(op.X), fixedToF(op.Y))
		case LineTo:
			chunks[i] = fmt.Sprintf("L %.3f %.3f", fixedToF(op.X), fixedToF(op.Y))
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new curve at the given point.
func (p *Path) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo{a.X, a.Y})
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo{b.X, b.Y})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// ToFixedP converts two floats to a fixed point.
func ToFixedP(x, y float64) (q fixed.Point26_6) {
	q.X = fixed.Int26_6(x * 64)
	q.Y = fixed.Int26_6(y * 64)
	return
}

func fixedToF(v fixed.Int26_6) float64 { return float64(v) / 64 }
