package svgicon

import (
	"errors"
	"strings"
	"testing"

	"github.com/benoitkugler/fenglogo/svgpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseIcon(t *testing.T, iconPath string) *SvgIcon {
	icon, errSvg := ReadIcon(iconPath, WarnErrorMode)
	if errSvg != nil {
		t.Error(errSvg)
	}
	return icon
}

func TestStrokeIcons(t *testing.T) {
	for _, p := range []string{
		"strokes.svg",
		"shapes.svg",
		"unsupported.svg",
	} {
		parseIcon(t, "testdata/"+p)
	}
}

func TestReadStrokes(t *testing.T) {
	icon := parseIcon(t, "testdata/strokes.svg")
	require.NotNil(t, icon)

	assert.Equal(t, Bounds{0, 0, 200, 100}, icon.ViewBox)
	assert.Equal(t, 200.0, icon.Width)
	assert.Equal(t, 100.0, icon.Height)
	assert.Equal(t, []string{"strokes"}, icon.Titles)
	assert.Equal(t, []string{"open and closed stroke paths"}, icon.Descriptions)
	assert.Equal(t, []string{"bars", "box"}, icon.Groups)
	require.Len(t, icon.SVGPaths, 3)

	black := NewPlainColor(0, 0, 0, 0xff)
	for _, p := range icon.SVGPaths {
		assert.Nil(t, p.Style.FillerColor, "stroke only paths must not be filled")
		assert.Equal(t, black, p.Style.LinerColor)
		assert.Equal(t, 8.0, p.Style.LineWidth)
	}
	first := icon.SVGPaths[0].Style.Join
	assert.Equal(t, RoundCap, first.LineCap)
	assert.Equal(t, Round, first.LineJoin)

	box := icon.SVGPaths[2]
	assert.Equal(t, ButtCap, box.Style.Join.LineCap)
	assert.Equal(t, Bevel, box.Style.Join.LineJoin)
	assert.Len(t, box.Path, 5)
	assert.Equal(t, svgpath.MoveTo(svgpath.ToFixedP(120, 60)), box.Path[0])
}

func TestReadShapes(t *testing.T) {
	icon := parseIcon(t, "testdata/shapes.svg")
	require.NotNil(t, icon)

	// no viewBox: the size attributes are used
	assert.Equal(t, Bounds{0, 0, 120, 80}, icon.ViewBox)
	assert.Empty(t, icon.Groups)
	require.Len(t, icon.SVGPaths, 5)

	lens := make([]int, len(icon.SVGPaths))
	for i, p := range icon.SVGPaths {
		lens[i] = len(p.Path)
	}
	assert.Equal(t, []int{2, 5, 3, 4, 5}, lens)

	red := NewPlainColor(0xff, 0, 0, 0xff)
	assert.Equal(t, red, icon.SVGPaths[0].Style.LinerColor)
	assert.Equal(t, 4.0, icon.SVGPaths[0].Style.LineWidth)

	last := icon.SVGPaths[4]
	assert.Equal(t, NewPlainColor(0, 0, 0xff, 0xff), last.Style.LinerColor)
	assert.Equal(t, SquareCap, last.Style.Join.LineCap)
	assert.Nil(t, last.Style.FillerColor)
	assert.Equal(t, 5.0, last.Style.transform.E)
	assert.Equal(t, 5.0, last.Style.transform.F)
	assert.Equal(t, svgpath.Close{}, last.Path[4])
}

func TestClosedPolygon(t *testing.T) {
	src := `<svg width="10" height="10"><polygon points="1,1 5,1 5,5 1,1" stroke="black"/></svg>`
	icon, err := ReadIconStream(strings.NewReader(src), StrictErrorMode)
	require.NoError(t, err)
	require.Len(t, icon.SVGPaths, 1)

	p := icon.SVGPaths[0].Path
	require.Len(t, p, 4, "the repeated point is dropped")
	assert.Equal(t, svgpath.LineTo(svgpath.ToFixedP(5, 5)), p[2])
	assert.Equal(t, svgpath.Close{}, p[3])
}

func TestErrorModes(t *testing.T) {
	icon, err := ReadIcon("testdata/unsupported.svg", IgnoreErrorMode)
	require.NoError(t, err)
	assert.Len(t, icon.SVGPaths, 1)

	_, err = ReadIcon("testdata/unsupported.svg", StrictErrorMode)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circle")
}

func TestCurvesRejected(t *testing.T) {
	_, err := ReadIcon("testdata/curves.svg", IgnoreErrorMode)
	require.Error(t, err)
	assert.True(t, errors.Is(err, svgpath.ErrUnsupportedCommand))
}

func TestEmptyStream(t *testing.T) {
	_, err := ReadIconStream(strings.NewReader(""), IgnoreErrorMode)
	assert.Equal(t, errInvalidIcon, err)
}

func TestParseColor(t *testing.T) {
	for _, test := range []struct {
		in       string
		expected Pattern
	}{
		{"#000000", NewPlainColor(0, 0, 0, 0xff)},
		{"#1a2B3c", NewPlainColor(0x1a, 0x2b, 0x3c, 0xff)},
		{"#f00", NewPlainColor(0xff, 0, 0, 0xff)},
		{"rgb(0, 128, 255)", NewPlainColor(0, 128, 255, 0xff)},
		{"rgb(100%,0%,0%)", NewPlainColor(0xff, 0, 0, 0xff)},
		{"White", NewPlainColor(0xff, 0xff, 0xff, 0xff)},
		{"none", nil},
	} {
		got, err := ParseColor(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.expected, got, test.in)
	}

	for _, bad := range []string{"#12", "#gggggg", "rgb(1,2)", "teal"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestPlainColorHex(t *testing.T) {
	assert.Equal(t, "#0a0b0c", NewPlainColor(10, 11, 12, 0xff).Hex())
}
