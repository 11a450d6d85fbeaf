package svgicon

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Pattern groups the paints a path may use.
// Only plain colors are supported.
type Pattern interface {
	isPattern()
}

// PlainColor is a non premultiplied color.
type PlainColor color.NRGBA

func (PlainColor) isPattern() {}

// RGBA implements color.Color
func (c PlainColor) RGBA() (r, g, b, a uint32) {
	return color.NRGBA(c).RGBA()
}

// NewPlainColor returns a Pattern painting with the given color.
func NewPlainColor(r, g, b, a uint8) PlainColor {
	return PlainColor{R: r, G: g, B: b, A: a}
}

// Hex returns the #rrggbb notation of the color, ignoring alpha.
func (c PlainColor) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var namedColors = map[string]PlainColor{
	"black":        NewPlainColor(0, 0, 0, 0xff),
	"white":        NewPlainColor(0xff, 0xff, 0xff, 0xff),
	"red":          NewPlainColor(0xff, 0, 0, 0xff),
	"green":        NewPlainColor(0, 0x80, 0, 0xff),
	"blue":         NewPlainColor(0, 0, 0xff, 0xff),
	"gray":         NewPlainColor(0x80, 0x80, 0x80, 0xff),
	"grey":         NewPlainColor(0x80, 0x80, 0x80, 0xff),
	"currentcolor": NewPlainColor(0, 0, 0, 0xff),
}

// ParseColor parses an SVG paint value. It returns a nil Pattern
// for "none".
func ParseColor(v string) (Pattern, error) { return parseSVGColor(v) }

func parseSVGColor(v string) (Pattern, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "none" || v == "" {
		return nil, nil
	}
	if c, ok := namedColors[v]; ok {
		return c, nil
	}
	switch {
	case strings.HasPrefix(v, "#"):
		return parseHexColor(v[1:])
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		parts := strings.Split(v[4:len(v)-1], ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("svgicon: invalid color %q", v)
		}
		var cs [3]uint8
		for i, p := range parts {
			p = strings.TrimSpace(p)
			var (
				f   float64
				err error
			)
			if strings.HasSuffix(p, "%") {
				f, err = strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
				f = f * 255 / 100
			} else {
				f, err = strconv.ParseFloat(p, 64)
			}
			if err != nil {
				return nil, fmt.Errorf("svgicon: invalid color %q: %w", v, err)
			}
			cs[i] = clamp8(f)
		}
		return NewPlainColor(cs[0], cs[1], cs[2], 0xff), nil
	}
	return nil, fmt.Errorf("svgicon: unsupported color %q", v)
}

func parseHexColor(h string) (Pattern, error) {
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	default:
		return nil, fmt.Errorf("svgicon: invalid hex color %q", h)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("svgicon: invalid hex color %q: %w", h, err)
	}
	return NewPlainColor(uint8(v>>16), uint8(v>>8), uint8(v), 0xff), nil
}

func clamp8(f float64) uint8 {
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(f + 0.5)
}
