package logo

import (
	"fmt"

	"github.com/benoitkugler/fenglogo/svgpath"
)

// Placement is the box of one letter on the canvas.
type Placement struct {
	Glyph  Glyph
	Origin svgpath.Point // top-left corner of the box
	Width  float64
	Height float64
}

// Canvas is the computed drawing area and the position of each letter.
type Canvas struct {
	Width, Height float64
	Gap           float64
	Placements    [len(Glyphs)]Placement
}

// Stroke is one polyline of a letter, in canvas coordinates.
type Stroke struct {
	Glyph  Glyph
	Points svgpath.Polyline
}

// GlyphWidth returns the box width of the letter.
func (p Params) GlyphWidth(g Glyph) float64 {
	if g == N {
		return p.LetterWidth * p.NRatio
	}
	return p.LetterWidth
}

// Layout places the letters left to right, in the order F, E, N, G,
// separated by the gap and surrounded by the margin.
func Layout(p Params) Canvas {
	c := Canvas{Height: p.Height, Gap: p.Gap()}
	boxH := p.BoxHeight()

	x, y := p.Margin, p.Margin
	for i, g := range Glyphs {
		w := p.GlyphWidth(g)
		c.Placements[i] = Placement{Glyph: g, Origin: svgpath.Pt(x, y), Width: w, Height: boxH}
		x += w
		if i < len(Glyphs)-1 {
			x += c.Gap
		}
	}
	c.Width = x + p.Margin
	return c
}

// Compose lays out the letters and computes all the strokes,
// in drawing order.
func Compose(p Params) (Canvas, []Stroke, error) {
	c := Layout(p)
	var out []Stroke
	for _, pl := range c.Placements {
		lines, err := pl.Glyph.Func()(pl.Origin, pl.Width, pl.Height, p)
		if err != nil {
			return c, nil, fmt.Errorf("letter %s: %w", pl.Glyph, err)
		}
		for _, line := range lines {
			out = append(out, Stroke{Glyph: pl.Glyph, Points: line})
		}
	}
	return c, out, nil
}
