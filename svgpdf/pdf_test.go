package svgpdf

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benoitkugler/fenglogo/svgicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readTestIcon(t *testing.T, name string) *svgicon.SvgIcon {
	icon, err := svgicon.ReadIcon(filepath.Join("..", "svgicon", "testdata", name), svgicon.StrictErrorMode)
	require.NoError(t, err)
	return icon
}

func TestRenderIcon(t *testing.T) {
	var buf bytes.Buffer
	extent, err := RenderIcon(readTestIcon(t, "strokes.svg"), &buf)
	require.NoError(t, err)
	assert.InDelta(t, 188, extent.W, 0.05)
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-1."))
	assert.Contains(t, buf.String(), "%%EOF")
}

func TestStrokeOperators(t *testing.T) {
	icon := readTestIcon(t, "strokes.svg")
	pdf := NewDocument(icon)
	pdf.SetCompression(false)
	r := NewRenderer(pdf)
	icon.Draw(r, 1)

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	out := buf.String()

	// page height is 100pt, with y going up
	assert.Contains(t, out, "10.00 80.00 m")
	assert.Contains(t, out, "190.00 80.00 l")
	assert.Contains(t, out, "1 J") // round cap
	assert.Contains(t, out, "2 j") // bevel join
	assert.Contains(t, out, "/MediaBox [0 0 200.00 100.00]")

	ext, ok := r.Extent()
	require.True(t, ok)
	assert.InDelta(t, 6, ext.X, 0.05)
	assert.InDelta(t, 16, ext.Y, 0.05)
	assert.InDelta(t, 194, ext.X+ext.W, 0.05)
	assert.InDelta(t, 94, ext.Y+ext.H, 0.05)
}

func TestFill(t *testing.T) {
	src := `<svg width="20" height="10"><rect x="2" y="2" width="6" height="4" fill="#ff0000" /></svg>`
	icon, err := svgicon.ReadIconStream(strings.NewReader(src), svgicon.StrictErrorMode)
	require.NoError(t, err)
	pdf := NewDocument(icon)
	pdf.SetCompression(false)
	r := NewRenderer(pdf)
	icon.Draw(r, 1)

	ext, ok := r.Extent()
	require.True(t, ok)
	assert.Equal(t, svgicon.Bounds{X: 2, Y: 2, W: 6, H: 4}, ext)

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	assert.Contains(t, buf.String(), "1.000 0.000 0.000 rg")
}

func TestEmptyExtent(t *testing.T) {
	icon := readTestIcon(t, "strokes.svg")
	r := NewRenderer(NewDocument(icon))
	_, ok := r.Extent()
	assert.False(t, ok)
}

func TestRenderSVGIconToPDF(t *testing.T) {
	f, err := os.Open(filepath.Join("..", "svgicon", "testdata", "shapes.svg"))
	require.NoError(t, err)
	defer f.Close()

	out := filepath.Join(t.TempDir(), "shapes.pdf")
	extent, err := RenderSVGIconToPDF(f, out)
	require.NoError(t, err)
	assert.NotZero(t, extent.W)
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())

	_, err = RenderSVGIconToPDF(strings.NewReader(""), filepath.Join(t.TempDir(), "empty.pdf"))
	assert.Error(t, err)
}
