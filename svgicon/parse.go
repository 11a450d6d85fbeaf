package svgicon

import (
	"encoding/xml"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/benoitkugler/fenglogo/svgpath"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var errParamMismatch = errors.New("svgicon: param mismatch")

// iconCursor is used while parsing SVG files
type iconCursor struct {
	icon                    *SvgIcon
	styleStack              []PathStyle
	path                    svgpath.Path
	inTitleText, inDescText bool
	depth                   int // nesting level of the current element, 1 for the root
	errorMode               ErrorMode
}

func fToFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(f * 64)
}

// parseBasicFloat parse a number, ignoring a "px" suffix
func parseBasicFloat(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	return strconv.ParseFloat(s, 64)
}

func (c *iconCursor) handleError(errStr string) error {
	switch c.errorMode {
	case StrictErrorMode:
		return errors.New(errStr)
	case WarnErrorMode:
		Logger().Warn(errStr)
	}
	return nil
}

func readTransformAttr(m1 rasterx.Matrix2D, k string, points []float64) (rasterx.Matrix2D, error) {
	ln := len(points)
	switch k {
	case "rotate":
		if ln == 1 {
			m1 = m1.Rotate(points[0] * math.Pi / 180)
		} else if ln == 3 {
			m1 = m1.Translate(points[1], points[2]).
				Rotate(points[0]*math.Pi/180).
				Translate(-points[1], -points[2])
		} else {
			return m1, errParamMismatch
		}
	case "translate":
		if ln == 1 {
			m1 = m1.Translate(points[0], 0)
		} else if ln == 2 {
			m1 = m1.Translate(points[0], points[1])
		} else {
			return m1, errParamMismatch
		}
	case "scale":
		if ln == 1 {
			m1 = m1.Scale(points[0], points[0])
		} else if ln == 2 {
			m1 = m1.Scale(points[0], points[1])
		} else {
			return m1, errParamMismatch
		}
	case "matrix":
		if ln == 6 {
			m1 = m1.Mult(rasterx.Matrix2D{
				A: points[0],
				B: points[1],
				C: points[2],
				D: points[3],
				E: points[4],
				F: points[5]})
		} else {
			return m1, errParamMismatch
		}
	default:
		return m1, errParamMismatch
	}
	return m1, nil
}

func (c *iconCursor) parseTransform(v string) (rasterx.Matrix2D, error) {
	ts := strings.Split(v, ")")
	m1 := c.styleStack[len(c.styleStack)-1].transform
	for _, t := range ts {
		t = strings.TrimSpace(t)
		if len(t) == 0 {
			continue
		}
		d := strings.Split(t, "(")
		if len(d) != 2 || len(d[1]) < 1 {
			return m1, errParamMismatch // badly formed transformation
		}
		points, err := svgpath.ParseFloats(d[1])
		if err != nil {
			return m1, err
		}
		m1, err = readTransformAttr(m1, strings.ToLower(strings.TrimSpace(d[0])), points)
		if err != nil {
			return m1, err
		}
	}
	return m1, nil
}

func (c *iconCursor) readStyleAttr(curStyle *PathStyle, k, v string) error {
	switch k {
	case "fill":
		col, err := parseSVGColor(v)
		if err != nil {
			return err
		}
		curStyle.FillerColor = col
	case "stroke":
		col, err := parseSVGColor(v)
		if err != nil {
			return err
		}
		curStyle.LinerColor = col
	case "stroke-linecap":
		if lc, ok := ParseCapMode(v); ok {
			curStyle.Join.LineCap = lc
		}
	case "stroke-linejoin":
		if lj, ok := ParseJoinMode(v); ok {
			curStyle.Join.LineJoin = lj
		}
	case "stroke-miterlimit":
		mLimit, err := parseBasicFloat(v)
		if err != nil {
			return err
		}
		curStyle.Join.MiterLimit = fToFixed(mLimit)
	case "stroke-width":
		width, err := parseBasicFloat(v)
		if err != nil {
			return err
		}
		curStyle.LineWidth = width
	case "opacity", "stroke-opacity", "fill-opacity":
		op, err := parseBasicFloat(v)
		if err != nil {
			return err
		}
		if k != "stroke-opacity" {
			curStyle.FillOpacity *= op
		}
		if k != "fill-opacity" {
			curStyle.LineOpacity *= op
		}
	case "transform":
		m, err := c.parseTransform(v)
		if err != nil {
			return err
		}
		curStyle.transform = m
	}
	return nil
}

// pushStyle parses the style element, and push it on the style stack. Only color and opacity are supported
// for fill. Note that this parses both the contents of a style attribute plus
// direct fill and opacity attributes.
func (c *iconCursor) pushStyle(attrs []xml.Attr) error {
	var pairs []string
	for _, attr := range attrs {
		switch strings.ToLower(attr.Name.Local) {
		case "style":
			pairs = append(pairs, strings.Split(attr.Value, ";")...)
		default:
			pairs = append(pairs, attr.Name.Local+":"+attr.Value)
		}
	}
	// Make a copy of the top style
	curStyle := c.styleStack[len(c.styleStack)-1]
	for _, pair := range pairs {
		kv := strings.SplitN(pair, ":", 2)
		if len(kv) == 2 {
			k := strings.TrimSpace(strings.ToLower(kv[0]))
			v := strings.TrimSpace(kv[1])
			if err := c.readStyleAttr(&curStyle, k, v); err != nil {
				return err
			}
		}
	}
	c.styleStack = append(c.styleStack, curStyle) // Push style onto stack
	return nil
}

func (c *iconCursor) readStartElement(se xml.StartElement) error {
	df, ok := drawFuncs[se.Name.Local]
	if !ok {
		return c.handleError("Cannot process svg element " + se.Name.Local)
	}
	if err := df(c, se.Attr); err != nil {
		return fmt.Errorf("svgicon: element <%s>: %w", se.Name.Local, err)
	}

	if len(c.path) > 0 {
		// The cursor parsed a path from the xml element
		pathCopy := append(svgpath.Path{}, c.path...)
		c.icon.SVGPaths = append(c.icon.SVGPaths,
			SvgPath{Path: pathCopy, Style: c.styleStack[len(c.styleStack)-1]})
		c.path = c.path[:0]
	}
	return nil
}

type svgFunc func(c *iconCursor, attrs []xml.Attr) error

var drawFuncs = map[string]svgFunc{
	"svg":      svgF,
	"g":        gF,
	"line":     lineF,
	"rect":     rectF,
	"polyline": polylineF,
	"polygon":  polygonF,
	"path":     pathF,
	"desc":     descF,
	"title":    titleF,
}

func svgF(c *iconCursor, attrs []xml.Attr) error {
	c.icon.ViewBox = Bounds{}
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			var points []float64
			points, err = svgpath.ParseFloats(attr.Value)
			if err == nil && len(points) != 4 {
				return errParamMismatch
			}
			if err == nil {
				c.icon.ViewBox = Bounds{points[0], points[1], points[2], points[3]}
			}
		case "width":
			c.icon.Width, err = parseBasicFloat(attr.Value)
		case "height":
			c.icon.Height, err = parseBasicFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if c.icon.ViewBox.W == 0 {
		c.icon.ViewBox.W = c.icon.Width
	}
	if c.icon.ViewBox.H == 0 {
		c.icon.ViewBox.H = c.icon.Height
	}
	return nil
}

// g does nothing but push the style, and records top level ids
func gF(c *iconCursor, attrs []xml.Attr) error {
	if c.depth != 2 {
		return nil
	}
	for _, attr := range attrs {
		if attr.Name.Local == "id" {
			c.icon.Groups = append(c.icon.Groups, attr.Value)
		}
	}
	return nil
}

func rectF(c *iconCursor, attrs []xml.Attr) error {
	var x, y, w, h float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x":
			x, err = parseBasicFloat(attr.Value)
		case "y":
			y, err = parseBasicFloat(attr.Value)
		case "width":
			w, err = parseBasicFloat(attr.Value)
		case "height":
			h, err = parseBasicFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if w == 0 || h == 0 {
		return nil
	}
	c.path = append(c.path, svgpath.Rect(x, y, w, h)[:4].Path()...)
	c.path.Stop(true)
	return nil
}

func lineF(c *iconCursor, attrs []xml.Attr) error {
	var x1, x2, y1, y2 float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x1":
			x1, err = parseBasicFloat(attr.Value)
		case "x2":
			x2, err = parseBasicFloat(attr.Value)
		case "y1":
			y1, err = parseBasicFloat(attr.Value)
		case "y2":
			y2, err = parseBasicFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	c.path.Start(svgpath.ToFixedP(x1, y1))
	c.path.Line(svgpath.ToFixedP(x2, y2))
	return nil
}

func readPolyline(c *iconCursor, attrs []xml.Attr) (svgpath.Polyline, error) {
	var pl svgpath.Polyline
	for _, attr := range attrs {
		if attr.Name.Local != "points" {
			continue
		}
		points, err := svgpath.ParseFloats(attr.Value)
		if err != nil {
			return nil, err
		}
		if len(points)%2 != 0 {
			return nil, errors.New("polygon has odd number of points")
		}
		for i := 0; i < len(points); i += 2 {
			pl = append(pl, svgpath.Pt(points[i], points[i+1]))
		}
	}
	return pl, nil
}

func polylineF(c *iconCursor, attrs []xml.Attr) error {
	pl, err := readPolyline(c, attrs)
	if err != nil || len(pl) < 2 {
		return err
	}
	c.path = append(c.path, pl.Path()...)
	return nil
}

func polygonF(c *iconCursor, attrs []xml.Attr) error {
	pl, err := readPolyline(c, attrs)
	if err != nil || len(pl) < 2 {
		return err
	}
	if pl.Closed() { // the close command adds the last segment
		pl = pl[:len(pl)-1]
	}
	c.path = append(c.path, pl.Path()...)
	c.path.Stop(true)
	return nil
}

func pathF(c *iconCursor, attrs []xml.Attr) error {
	for _, attr := range attrs {
		if attr.Name.Local == "d" {
			p, err := svgpath.ParsePath(attr.Value)
			if err != nil {
				return err
			}
			c.path = append(c.path, p...)
		}
	}
	return nil
}

func descF(c *iconCursor, attrs []xml.Attr) error {
	c.inDescText = true
	c.icon.Descriptions = append(c.icon.Descriptions, "")
	return nil
}

func titleF(c *iconCursor, attrs []xml.Attr) error {
	c.inTitleText = true
	c.icon.Titles = append(c.icon.Titles, "")
	return nil
}
