// Implements a PDF backend to render SVG images,
// by wrapping github.com/jung-kurt/gofpdf.
package svgpdf

import (
	"io"
	"os"

	"github.com/benoitkugler/fenglogo/svgicon"
	"github.com/benoitkugler/fenglogo/svgpath"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ svgicon.Driver  = (*Renderer)(nil)
	_ svgicon.Filler  = (*filler)(nil)
	_ svgicon.Stroker = (*stroker)(nil)
)

// Renderer paints on the current page of a PDF document.
// It also records the extent of everything painted.
type Renderer struct {
	pdf *gofpdf.Fpdf

	extent  fixed.Rectangle26_6
	painted bool

	filler  filler
	stroker stroker
}

// NewRenderer return a renderer which will
// write to the given `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) *Renderer {
	r := &Renderer{pdf: pdf}
	r.filler.r = r
	r.stroker.r = r
	return r
}

// SetupDrawers implements svgicon.Driver.
func (r *Renderer) SetupDrawers(willFill, willStroke bool) (f svgicon.Filler, s svgicon.Stroker) {
	if willFill {
		f = &r.filler
	}
	if willStroke {
		s = &r.stroker
	}
	return f, s
}

// Extent returns the bounding box of the painted paths,
// including the stroke widths, in page units.
// ok is false if nothing has been painted.
func (r *Renderer) Extent() (b svgicon.Bounds, ok bool) {
	if !r.painted {
		return b, false
	}
	x0, y0 := fixedTof(r.extent.Min)
	x1, y1 := fixedTof(r.extent.Max)
	return svgicon.Bounds{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, true
}

func (r *Renderer) record(box fixed.Rectangle26_6) {
	if !r.painted {
		r.extent, r.painted = box, true
		return
	}
	r.extent = r.extent.Union(box)
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

// implements the common path commands,
// shared by the filler and the stroker.
// Operations are buffered until Draw, since PDF
// forbids changing the graphic state inside a path.
type pather struct {
	r       *Renderer
	path    svgpath.Path
	color   svgicon.PlainColor
	opacity float64
}

func (p *pather) Clear() {
	p.path.Clear()
	p.opacity = 1
}

func (p *pather) Start(a fixed.Point26_6) { p.path.Start(a) }

func (p *pather) Line(b fixed.Point26_6) { p.path.Line(b) }

func (p *pather) Stop(closeLoop bool) { p.path.Stop(closeLoop) }

// only plain colors are supported
func (p *pather) SetColor(color svgicon.Pattern, opacity float64) {
	p.opacity = opacity
	if c, ok := color.(svgicon.PlainColor); ok {
		p.color = c
		p.opacity *= float64(c.A) / 255.
	}
}

// emit writes the buffered path and returns its bounding box.
func (p *pather) emit() fixed.Rectangle26_6 {
	var box fixed.Rectangle26_6
	for i, op := range p.path {
		switch op := op.(type) {
		case svgpath.MoveTo:
			p.r.pdf.MoveTo(fixedTof(fixed.Point26_6(op)))
			box = extend(box, fixed.Point26_6(op), i == 0)
		case svgpath.LineTo:
			p.r.pdf.LineTo(fixedTof(fixed.Point26_6(op)))
			box = extend(box, fixed.Point26_6(op), i == 0)
		case svgpath.Close:
			p.r.pdf.ClosePath()
		}
	}
	return box
}

func extend(box fixed.Rectangle26_6, a fixed.Point26_6, first bool) fixed.Rectangle26_6 {
	if first {
		return fixed.Rectangle26_6{Min: a, Max: a}
	}
	if a.X < box.Min.X {
		box.Min.X = a.X
	}
	if a.Y < box.Min.Y {
		box.Min.Y = a.Y
	}
	if a.X > box.Max.X {
		box.Max.X = a.X
	}
	if a.Y > box.Max.Y {
		box.Max.Y = a.Y
	}
	return box
}

// implements the filling operation
type filler struct {
	pather
	useNonZeroWinding bool
}

func (f *filler) SetWinding(useNonZeroWinding bool) {
	f.useNonZeroWinding = useNonZeroWinding
}

func (f *filler) Draw() {
	if len(f.path) == 0 {
		return
	}
	pdf := f.r.pdf
	pdf.SetFillColor(int(f.color.R), int(f.color.G), int(f.color.B))
	pdf.SetAlpha(f.opacity, "Normal")
	box := f.emit()
	styleStr := "f*"
	if f.useNonZeroWinding {
		styleStr = "f"
	}
	pdf.DrawPath(styleStr)
	f.r.record(box)
}

// implements the stroking operation
type stroker struct {
	pather
	options svgicon.StrokeOptions
}

func (s *stroker) SetStrokeOptions(options svgicon.StrokeOptions) {
	s.options = options
}

func (s *stroker) Draw() {
	if len(s.path) == 0 {
		return
	}
	pdf := s.r.pdf
	pdf.SetDrawColor(int(s.color.R), int(s.color.G), int(s.color.B))
	pdf.SetAlpha(s.opacity, "Normal")
	pdf.SetLineWidth(float64(s.options.LineWidth) / 64)
	pdf.SetLineCapStyle(capStyle(s.options.Join.LineCap))
	pdf.SetLineJoinStyle(s.options.Join.LineJoin.String())
	box := s.emit()
	pdf.DrawPath("D")

	// conservative: half the width on every side
	hw := s.options.LineWidth / 2
	box.Min = box.Min.Sub(fixed.Point26_6{X: hw, Y: hw})
	box.Max = box.Max.Add(fixed.Point26_6{X: hw, Y: hw})
	s.r.record(box)
}

func capStyle(c svgicon.CapMode) string {
	switch c {
	case svgicon.RoundCap, svgicon.SquareCap:
		return c.String()
	default:
		return "butt"
	}
}

// NewDocument returns a one page document whose page has the size of the
// icon viewBox, one SVG user unit being mapped to one point.
// The icon is set up to be drawn on the page.
func NewDocument(icon *svgicon.SvgIcon) *gofpdf.Fpdf {
	size := gofpdf.SizeType{Wd: icon.ViewBox.W, Ht: icon.ViewBox.H}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{UnitStr: "pt", Size: size})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	if len(icon.Titles) != 0 {
		pdf.SetTitle(icon.Titles[0], true)
	}
	pdf.AddPageFormat("P", size)
	icon.SetTarget(0, 0, icon.ViewBox.W, icon.ViewBox.H)
	return pdf
}

// RenderIcon draws the icon on a new document and writes it to `w`.
// It returns the extent of the drawing, which is empty
// if nothing was painted.
func RenderIcon(icon *svgicon.SvgIcon, w io.Writer) (svgicon.Bounds, error) {
	pdf := NewDocument(icon)
	r := NewRenderer(pdf)
	icon.Draw(r, 1)
	extent, _ := r.Extent()
	return extent, pdf.Output(w)
}

// RenderSVGIconToPDF reads the icon from `icon` and writes
// a PDF file at `outFile`. See RenderIcon for the returned extent.
func RenderSVGIconToPDF(icon io.Reader, outFile string) (svgicon.Bounds, error) {
	parsedIcon, err := svgicon.ReadIconStream(icon, svgicon.WarnErrorMode)
	if err != nil {
		return svgicon.Bounds{}, err
	}
	f, err := os.Create(outFile)
	if err != nil {
		return svgicon.Bounds{}, err
	}
	extent, err := RenderIcon(parsedIcon, f)
	if err != nil {
		f.Close()
		return extent, err
	}
	return extent, f.Close()
}
