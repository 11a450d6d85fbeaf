package svgicon

import (
	"math"

	"github.com/benoitkugler/fenglogo/svgpath"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// replay sends the operations of `p` to `d`, after applying
// the transform `m`. An open subpath is terminated
// with Stop(false) before a new one starts.
func replay(d Drawer, p svgpath.Path, m rasterx.Matrix2D) {
	inPath := false
	for _, op := range p {
		switch op := op.(type) {
		case svgpath.MoveTo:
			if inPath {
				d.Stop(false) // implicit close if currently in path.
			}
			d.Start(m.TFixed(fixed.Point26_6(op)))
			inPath = true
		case svgpath.LineTo:
			d.Line(m.TFixed(fixed.Point26_6(op)))
		case svgpath.Close:
			d.Stop(true)
			inPath = false
		}
	}
	if inPath {
		d.Stop(false)
	}
}

// scaleOf returns the uniform scale factor of `m`,
// used to scale line widths.
func scaleOf(m rasterx.Matrix2D) float64 {
	return math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
}
