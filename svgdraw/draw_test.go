package svgdraw

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/benoitkugler/fenglogo/svgicon"
	"github.com/benoitkugler/fenglogo/svgpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStyle = Style{Color: "#000000", Width: 20, Cap: svgicon.RoundCap, Join: svgicon.Round}

func TestDocumentHeader(t *testing.T) {
	var buf bytes.Buffer
	doc := New(&buf, 1144, 200, "FENG")
	require.NoError(t, doc.End())

	out := buf.String()
	assert.Contains(t, out, `width="1144"`)
	assert.Contains(t, out, `height="200"`)
	assert.Contains(t, out, `viewBox="0 0 1144 200"`)
	assert.Contains(t, out, "<title>FENG</title>")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))

	icon, err := svgicon.ReadIconStream(&buf, svgicon.StrictErrorMode)
	require.NoError(t, err)
	assert.Equal(t, svgicon.Bounds{W: 1144, H: 200}, icon.ViewBox)
	assert.Equal(t, []string{"FENG"}, icon.Titles)
	assert.Empty(t, icon.SVGPaths)
}

func TestAddStroke(t *testing.T) {
	var buf bytes.Buffer
	doc := New(&buf, 100, 50, "")
	doc.Group("bars")
	require.NoError(t, doc.AddStroke(svgpath.HLine(10, 20, 90), testStyle))
	require.NoError(t, doc.AddRectStroke(5, 5, 10, 10, testStyle))
	doc.Group("empty")
	require.NoError(t, doc.End())

	out := buf.String()
	assert.Contains(t, out, `d="M 10.000 20.000 L 100.000 20.000"`)
	assert.Contains(t, out, `fill="none"`)
	assert.Contains(t, out, `stroke-linecap="round"`)
	assert.Contains(t, out, `stroke-linejoin="round"`)
	assert.Equal(t, 2, strings.Count(out, "</g>"))
	assert.NotContains(t, out, "<title>")

	icon, err := svgicon.ReadIconStream(&buf, svgicon.StrictErrorMode)
	require.NoError(t, err)
	assert.Equal(t, []string{"bars", "empty"}, icon.Groups)
	require.Len(t, icon.SVGPaths, 2)
	for _, p := range icon.SVGPaths {
		assert.Nil(t, p.Style.FillerColor)
		assert.Equal(t, 20., p.Style.LineWidth)
		assert.Equal(t, svgicon.RoundCap, p.Style.Join.LineCap)
		assert.Equal(t, svgicon.Round, p.Style.Join.LineJoin)
		assert.Equal(t, svgicon.NewPlainColor(0, 0, 0, 0xff), p.Style.LinerColor)
	}
	assert.Equal(t, svgpath.HLine(10, 20, 90).Path(), icon.SVGPaths[0].Path)
	assert.Equal(t, svgpath.Rect(5, 5, 10, 10).Path(), icon.SVGPaths[1].Path)
}

func TestAddStrokeTooShort(t *testing.T) {
	var buf bytes.Buffer
	doc := New(&buf, 10, 10, "")
	before := buf.Len()
	err := doc.AddStroke(svgpath.Polyline{{X: 1, Y: 1}}, testStyle)
	assert.True(t, errors.Is(err, svgpath.ErrTooFewPoints))
	assert.Equal(t, before, buf.Len(), "nothing is written")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEndReportsWriteError(t *testing.T) {
	doc := New(failingWriter{}, 10, 10, "x")
	_ = doc.AddStroke(svgpath.HLine(0, 0, 1), testStyle)
	assert.EqualError(t, doc.End(), "disk full")
}

func TestColorIsEscaped(t *testing.T) {
	var buf bytes.Buffer
	doc := New(&buf, 10, 10, "")
	st := testStyle
	st.Color = `#000" fill="red`
	require.NoError(t, doc.AddStroke(svgpath.HLine(0, 5, 10), st))
	require.NoError(t, doc.End())

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "fill="), "no attribute is injected")
	assert.Contains(t, out, `stroke="#000&#34; fill=&#34;red"`)

	// the value stays a single, invalid, color
	_, err := svgicon.ReadIconStream(&buf, svgicon.StrictErrorMode)
	assert.Error(t, err)
}
