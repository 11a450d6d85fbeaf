package svgicon

import (
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Given a parsed SVG document, implements how to
// draw it on a painting backend.
// This requires a driver implementing the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.

// Drawer knows how to do the actual draw operations
// but doesn't need any SVG kwowledge
// In particular, tranformations matrix are already applied to the points
// before sending them to the Drawer.
type Drawer interface {
	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line Adds a line for the current point to `b`
	Line(b fixed.Point26_6)

	// Closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)

	// SetColor set the color for the current path
	SetColor(color Pattern, opacity float64)

	// Draw fills or strokes the accumulated path using the current settings
	// depending on the filling mode
	Draw()
}

type Filler interface {
	Drawer

	// Decide to use or not the NonZeroWinding rule for the current path
	SetWinding(useNonZeroWinding bool)
}

type Stroker interface {
	Drawer

	// Parametrize the stroking style for the current path
	SetStrokeOptions(options StrokeOptions)
}

type Driver interface {
	// SetupDrawers returns the backend painters, and
	// will be called at the begining of every path.
	// If the `willXXX` boolean is false, the returned drawer should be nil
	// to avoid useless operations.
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)
}

// JoinMode type to specify how segments join.
type JoinMode uint8

// JoinMode constants determine how stroke segments bridge the gap at a join
const (
	Round JoinMode = iota
	Bevel
	Miter
)

func (s JoinMode) String() string {
	switch s {
	case Round:
		return "round"
	case Bevel:
		return "bevel"
	case Miter:
		return "miter"
	default:
		return "<unknown JoinMode>"
	}
}

// ParseJoinMode maps the SVG stroke-linejoin keyword to a JoinMode.
func ParseJoinMode(s string) (JoinMode, bool) {
	switch s {
	case "round":
		return Round, true
	case "bevel":
		return Bevel, true
	case "miter":
		return Miter, true
	}
	return 0, false
}

// CapMode defines how to draw caps on the ends of lines
type CapMode uint8

const (
	NilCap CapMode = iota // default value
	ButtCap
	SquareCap
	RoundCap
)

func (c CapMode) String() string {
	switch c {
	case NilCap:
		return "nil"
	case ButtCap:
		return "butt"
	case SquareCap:
		return "square"
	case RoundCap:
		return "round"
	default:
		return "<unknown CapMode>"
	}
}

// ParseCapMode maps the SVG stroke-linecap keyword to a CapMode.
func ParseCapMode(s string) (CapMode, bool) {
	switch s {
	case "butt":
		return ButtCap, true
	case "square":
		return SquareCap, true
	case "round":
		return RoundCap, true
	}
	return NilCap, false
}

type JoinOptions struct {
	MiterLimit fixed.Int26_6 // the miter cutoff value for miter joins
	LineJoin   JoinMode
	LineCap    CapMode // used at both ends of open paths
}

type StrokeOptions struct {
	LineWidth fixed.Int26_6 // width of the line
	Join      JoinOptions
}

// Draw the compiled SVG icon into the driver `d`,
// applying the icon transform.
func (s *SvgIcon) Draw(d Driver, opacity float64) {
	for i := range s.SVGPaths {
		s.SVGPaths[i].drawTransformed(d, opacity, s.Transform)
	}
}

// drawTransformed draws the compiled SvgPath into the driver while applying transform t.
func (svgp *SvgPath) drawTransformed(d Driver, opacity float64, t rasterx.Matrix2D) {
	m := t.Mult(svgp.Style.transform)

	filler, stroker := d.SetupDrawers(svgp.Style.FillerColor != nil, svgp.Style.LinerColor != nil)
	if filler != nil { // nil color disable filling
		filler.Clear()
		filler.SetWinding(svgp.Style.UseNonZeroWinding)
		replay(filler, svgp.Path, m)
		filler.SetColor(svgp.Style.FillerColor, svgp.Style.FillOpacity*opacity)
		filler.Draw()
		filler.SetWinding(true) // default is true
	}

	if stroker != nil { // nil color disable lining
		stroker.Clear()
		lineCap := svgp.Style.Join.LineCap
		if lineCap == NilCap {
			lineCap = DefaultStyle.Join.LineCap
		}
		stroker.SetStrokeOptions(StrokeOptions{
			LineWidth: fixed.Int26_6(svgp.Style.LineWidth * scaleOf(m) * 64),
			Join: JoinOptions{
				MiterLimit: svgp.Style.Join.MiterLimit,
				LineJoin:   svgp.Style.Join.LineJoin,
				LineCap:    lineCap,
			},
		})
		replay(stroker, svgp.Path, m)
		stroker.SetColor(svgp.Style.LinerColor, svgp.Style.LineOpacity*opacity)
		stroker.Draw()
	}
}
