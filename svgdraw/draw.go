// Writes stroke drawings as SVG documents.
// Every stroke is an unfilled path, so that the same
// document can be read back by svgicon and painted by
// the svgraster and svgpdf drivers.
package svgdraw

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/benoitkugler/fenglogo/svgicon"
	"github.com/benoitkugler/fenglogo/svgpath"
)

// Style holds the stroke attributes shared by every path.
type Style struct {
	Color string
	Width float64
	Cap   svgicon.CapMode
	Join  svgicon.JoinMode
}

func (st Style) attrs() []string {
	return []string{
		`fill="none"`,
		fmt.Sprintf(`stroke="%s"`, escapeAttr(st.Color)),
		fmt.Sprintf(`stroke-width="%s"`, formatNumber(st.Width)),
		fmt.Sprintf(`stroke-linecap="%s"`, st.Cap),
		fmt.Sprintf(`stroke-linejoin="%s"`, st.Join),
	}
}

func escapeAttr(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s)) // a strings.Builder never fails
	return b.String()
}

// errWriter keeps the first write error, since the
// svgo canvas does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// Document accumulates strokes into an SVG document
// whose viewport is fixed at creation.
type Document struct {
	out    *errWriter
	canvas *svg.SVG

	inGroup bool
}

// New starts a document of the given size, with an explicit
// viewBox. The header is written immediately.
func New(w io.Writer, width, height float64, title string) *Document {
	ew := &errWriter{w: w}
	d := &Document{out: ew, canvas: svg.New(ew)}
	d.canvas.Startraw(
		fmt.Sprintf(` width="%s"`, formatNumber(width)),
		fmt.Sprintf(` height="%s"`, formatNumber(height)),
		fmt.Sprintf(` viewBox="0 0 %s %s"`, formatNumber(width), formatNumber(height)),
	)
	if title != "" {
		d.canvas.Title(title)
	}
	return d
}

// Group closes the current group, if any, and opens a new one
// with the given id.
func (d *Document) Group(id string) {
	if d.inGroup {
		d.canvas.Gend()
	}
	d.canvas.Gid(id)
	d.inGroup = true
}

// AddStroke appends one open polyline. Nothing is written
// and svgpath.ErrTooFewPoints is returned for less than two points.
func (d *Document) AddStroke(points svgpath.Polyline, st Style) error {
	path, err := points.D()
	if err != nil {
		return err
	}
	d.canvas.Path(path, st.attrs()...)
	return nil
}

// AddRectStroke appends the outline of a rectangle, as a closed
// loop of five points so that joins apply at each corner.
func (d *Document) AddRectStroke(x, y, w, h float64, st Style) error {
	return d.AddStroke(svgpath.Rect(x, y, w, h), st)
}

// End closes the document and returns the first write error, if any.
func (d *Document) End() error {
	if d.inGroup {
		d.canvas.Gend()
		d.inGroup = false
	}
	d.canvas.End()
	return d.out.err
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
