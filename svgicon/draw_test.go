package svgicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

// recorder stores the calls made by Draw
type recorder struct {
	ops     []string
	starts  []fixed.Point26_6
	options []StrokeOptions
	colors  []Pattern
	fills   int
}

func (r *recorder) Clear()                  {}
func (r *recorder) Start(a fixed.Point26_6) { r.ops = append(r.ops, "M"); r.starts = append(r.starts, a) }
func (r *recorder) Line(b fixed.Point26_6)  { r.ops = append(r.ops, "L") }
func (r *recorder) Stop(closeLoop bool) {
	if closeLoop {
		r.ops = append(r.ops, "Z")
	} else {
		r.ops = append(r.ops, "|")
	}
}
func (r *recorder) SetColor(color Pattern, opacity float64) { r.colors = append(r.colors, color) }
func (r *recorder) Draw()                                   {}
func (r *recorder) SetStrokeOptions(options StrokeOptions)  { r.options = append(r.options, options) }
func (r *recorder) SetWinding(bool)                         { r.fills++ }

func (r *recorder) SetupDrawers(willFill, willStroke bool) (Filler, Stroker) {
	var (
		f Filler
		s Stroker
	)
	if willFill {
		f = r
	}
	if willStroke {
		s = r
	}
	return f, s
}

func TestDrawScaled(t *testing.T) {
	icon := parseIcon(t, "testdata/strokes.svg")
	require.NotNil(t, icon)
	icon.SetTarget(0, 0, 2*icon.ViewBox.W, 2*icon.ViewBox.H)

	var rec recorder
	icon.Draw(&rec, 1)

	assert.Zero(t, rec.fills, "fill=none paths must not be filled")
	require.Len(t, rec.options, 3)
	for _, opt := range rec.options {
		assert.Equal(t, fixed.Int26_6(16*64), opt.LineWidth)
	}
	assert.Equal(t, RoundCap, rec.options[0].Join.LineCap)
	assert.Equal(t, Bevel, rec.options[2].Join.LineJoin)

	assert.Equal(t, fixed.Point26_6{X: 20 * 64, Y: 40 * 64}, rec.starts[0])
	assert.Equal(t, []string{
		"M", "L", "|",
		"M", "L", "|",
		"M", "L", "L", "L", "L", "|",
	}, rec.ops)
}

func TestDrawDefaultCap(t *testing.T) {
	icon := parseIcon(t, "testdata/shapes.svg")
	require.NotNil(t, icon)

	var rec recorder
	icon.Draw(&rec, 1)
	require.Len(t, rec.options, 5)
	// butt is the SVG default
	assert.Equal(t, ButtCap, rec.options[0].Join.LineCap)
	assert.Equal(t, SquareCap, rec.options[4].Join.LineCap)
}
