package logo

import (
	"fmt"

	"github.com/benoitkugler/fenglogo/svgpath"
)

// Glyph identifies one of the four letters of the logo.
type Glyph uint8

const (
	F Glyph = iota
	E
	N
	G
)

// Glyphs lists the letters in drawing order.
var Glyphs = [...]Glyph{F, E, N, G}

func (g Glyph) String() string {
	switch g {
	case F:
		return "F"
	case E:
		return "E"
	case N:
		return "N"
	case G:
		return "G"
	default:
		return fmt.Sprintf("Glyph(%d)", uint8(g))
	}
}

// GlyphFunc computes the strokes of a letter whose box has its
// top-left corner at `origin`, and size (w, h).
type GlyphFunc func(origin svgpath.Point, w, h float64, p Params) ([]svgpath.Polyline, error)

// Func returns the geometry function of the glyph.
func (g Glyph) Func() GlyphFunc {
	switch g {
	case F:
		return LetterF
	case E:
		return LetterE
	case N:
		return LetterNArch
	case G:
		return LetterGFlat
	default:
		return nil
	}
}

// strokeList accumulates polylines, keeping the first error.
type strokeList struct {
	out []svgpath.Polyline
	err error
}

func (s *strokeList) add(points ...svgpath.Point) {
	if s.err != nil {
		return
	}
	pl, err := svgpath.NewPolyline(points...)
	if err != nil {
		s.err = err
		return
	}
	s.out = append(s.out, pl)
}

func (s *strokeList) result() ([]svgpath.Polyline, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.out, nil
}

// bars returns the y coordinates of the top, middle and bottom bars.
func bars(oy, h float64, p Params) (y1, y2, y3 float64) {
	return oy + p.YTop*h, oy + p.YMid*h, oy + p.YBot*h
}

// LetterF draws three left aligned bars.
func LetterF(origin svgpath.Point, w, h float64, p Params) ([]svgpath.Polyline, error) {
	ox, oy := origin.X, origin.Y
	y1, y2, y3 := bars(oy, h, p)

	var s strokeList
	s.add(svgpath.HLine(ox, y1, p.FTop*w)...)
	s.add(svgpath.HLine(ox, y2, p.FMid*w)...)
	s.add(svgpath.HLine(ox, y3, p.FBot*w)...)
	return s.result()
}

// LetterE draws a vertical spine joining the top and bottom bars,
// then the three bars: short, full width, short.
func LetterE(origin svgpath.Point, w, h float64, p Params) ([]svgpath.Polyline, error) {
	ox, oy := origin.X, origin.Y
	y1, y2, y3 := bars(oy, h, p)

	var s strokeList
	s.add(svgpath.Pt(ox, y1), svgpath.Pt(ox, y3))
	s.add(svgpath.HLine(ox, y1, p.EShort*w)...)
	s.add(svgpath.HLine(ox, y2, p.EMid*w)...)
	s.add(svgpath.HLine(ox, y3, p.EShort*w)...)
	return s.result()
}

// LetterNArch draws the N as a square arch: left vertical,
// top bar and right vertical, with the bottom left open.
func LetterNArch(origin svgpath.Point, w, h float64, p Params) ([]svgpath.Polyline, error) {
	ox, oy := origin.X, origin.Y
	yTop, _, yBot := bars(oy, h, p)

	var s strokeList
	s.add(svgpath.Pt(ox, yBot), svgpath.Pt(ox, yTop))
	s.add(svgpath.Pt(ox, yTop), svgpath.Pt(ox+w, yTop))
	s.add(svgpath.Pt(ox+w, yTop), svgpath.Pt(ox+w, yBot))
	return s.result()
}

const (
	gHookDrop     = 0.42 // how far the right side drops before the hook, relative to the usable height
	gCounterShift = 0.10 // counter offset from the top, relative to the usable height
)

// LetterGFlat draws a lying G made of two strokes:
// an outer squared hook and an inner square counter
// placed against the right edge.
func LetterGFlat(origin svgpath.Point, w, h float64, p Params) ([]svgpath.Polyline, error) {
	ox, oy := origin.X, origin.Y
	yT, _, yB := bars(oy, h, p)

	inset := p.GInset * w
	xL := ox + inset
	xR := ox + w - inset

	usableH := yB - yT
	hookY := yT + gHookDrop*usableH
	hookLen := p.GHook * (xR - xL)

	var s strokeList
	s.add(
		svgpath.Pt(xL, yT),
		svgpath.Pt(xR, yT),
		svgpath.Pt(xR, hookY),
		svgpath.Pt(xR-hookLen, hookY),
		svgpath.Pt(xR-hookLen, yB),
		svgpath.Pt(xR, yB),
	)

	counter := p.GCounter * usableH
	s.add(svgpath.Square(xR-counter, yT+gCounterShift*usableH, counter)...)
	return s.result()
}
