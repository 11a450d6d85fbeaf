package svgpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var (
	// ErrUnsupportedCommand is returned for path commands outside of
	// the straight segment subset (M, L, H, V, Z).
	ErrUnsupportedCommand = errors.New("svgpath: unsupported path command")

	errParamMismatch = errors.New("svgpath: param mismatch")
	errNoMoveTo      = errors.New("svgpath: path data must start with a move command")
)

// pathCursor keeps the state needed while compiling
// path data into a Path
type pathCursor struct {
	path         Path
	points       []float64
	placeX       float64 // current point
	placeY       float64
	startX       float64 // start of the current subpath
	startY       float64
	hasMovedOnce bool
}

// ParsePath compiles SVG path data made of M, L, H, V and Z commands
// (absolute or relative) into a Path.
func ParsePath(d string) (Path, error) {
	var c pathCursor
	if err := c.compilePath(d); err != nil {
		return nil, err
	}
	return c.path, nil
}

// ParseFloats splits a list of numbers separated by spaces and/or
// commas, as found in viewBox or points attributes.
func ParseFloats(s string) ([]float64, error) {
	var c pathCursor
	if err := c.getPoints(s); err != nil {
		return nil, err
	}
	return c.points, nil
}

// getPoints reads a set of floating point values from the SVG format number string,
// and add them to the cursor's points slice.
func (c *pathCursor) getPoints(dataPoints string) error {
	c.points = c.points[:0]
	fields := strings.FieldsFunc(dataPoints, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	for _, f := range fields {
		if err := c.readFloats(f); err != nil {
			return err
		}
	}
	return nil
}

// readFloats handles numbers glued together such as "10-5" or "1.5.5".
func (c *pathCursor) readFloats(s string) error {
	for len(s) > 0 {
		end := numberEnd(s)
		if end == 0 {
			return fmt.Errorf("svgpath: invalid number %q", s)
		}
		v, err := strconv.ParseFloat(s[:end], 64)
		if err != nil {
			return err
		}
		c.points = append(c.points, v)
		s = s[end:]
	}
	return nil
}

// numberEnd returns the length of the number prefix of s
func numberEnd(s string) int {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	seenDot, seenDigit := false, false
	for i < len(s) {
		switch ch := s[i]; {
		case ch >= '0' && ch <= '9':
			seenDigit = true
		case ch == '.' && !seenDot:
			seenDot = true
		case (ch == 'e' || ch == 'E') && seenDigit:
			j := i + 1
			if j < len(s) && (s[j] == '-' || s[j] == '+') {
				j++
			}
			if j < len(s) && s[j] >= '0' && s[j] <= '9' {
				i = j
				continue
			}
			return i
		default:
			if !seenDigit {
				return 0
			}
			return i
		}
		i++
	}
	if !seenDigit {
		return 0
	}
	return i
}

func (c *pathCursor) moveTo(x, y float64) {
	c.path.Stop(false)
	c.path.Start(ToFixedP(x, y))
	c.placeX, c.placeY = x, y
	c.startX, c.startY = x, y
	c.hasMovedOnce = true
}

func (c *pathCursor) lineTo(x, y float64) {
	c.path.Line(ToFixedP(x, y))
	c.placeX, c.placeY = x, y
}

// addSeg decodes one command with its arguments
func (c *pathCursor) addSeg(segString string) error {
	key := segString[0]
	if err := c.getPoints(segString[1:]); err != nil {
		return err
	}
	l := len(c.points)
	rel := key >= 'a' && key <= 'z'
	up := key &^ 0x20 // upper case

	if !c.hasMovedOnce && up != 'M' {
		return errNoMoveTo
	}

	switch up {
	case 'Z':
		if l != 0 {
			return errParamMismatch
		}
		c.path.Stop(true)
		c.placeX, c.placeY = c.startX, c.startY
	case 'M':
		if l < 2 || l%2 != 0 {
			return errParamMismatch
		}
		x, y := c.points[0], c.points[1]
		if rel {
			x, y = x+c.placeX, y+c.placeY
		}
		c.moveTo(x, y)
		// subsequent pairs are implicit line commands
		for i := 2; i < l; i += 2 {
			x, y = c.points[i], c.points[i+1]
			if rel {
				x, y = x+c.placeX, y+c.placeY
			}
			c.lineTo(x, y)
		}
	case 'L':
		if l == 0 || l%2 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 2 {
			x, y := c.points[i], c.points[i+1]
			if rel {
				x, y = x+c.placeX, y+c.placeY
			}
			c.lineTo(x, y)
		}
	case 'H':
		if l == 0 {
			return errParamMismatch
		}
		for _, x := range c.points {
			if rel {
				x += c.placeX
			}
			c.lineTo(x, c.placeY)
		}
	case 'V':
		if l == 0 {
			return errParamMismatch
		}
		for _, y := range c.points {
			if rel {
				y += c.placeY
			}
			c.lineTo(c.placeX, y)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedCommand, key)
	}
	return nil
}

// compilePath translates the svgPath description string into a path.
func (c *pathCursor) compilePath(svgPath string) error {
	c.path.Clear()
	c.hasMovedOnce = false
	lastIndex := -1
	for i, v := range svgPath {
		if unicode.IsLetter(v) && v != 'e' && v != 'E' {
			if lastIndex != -1 {
				if err := c.addSeg(svgPath[lastIndex:i]); err != nil {
					return err
				}
			}
			lastIndex = i
		}
	}
	if lastIndex == -1 {
		if strings.TrimSpace(svgPath) == "" {
			return nil
		}
		return errNoMoveTo
	}
	return c.addSeg(svgPath[lastIndex:])
}
