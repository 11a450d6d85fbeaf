package svgpath

// This file implements the transformation from
// high level shapes to their polyline equivalent

// Rect returns the closed loop of the rectangle with top-left corner
// (x, y) and size (w, h): the four corners followed by the starting
// corner again, so that the join style applies to every corner
// when the loop is stroked.
func Rect(x, y, w, h float64) Polyline {
	return Polyline{
		{x, y},
		{x + w, y},
		{x + w, y + h},
		{x, y + h},
		{x, y},
	}
}

// Square is Rect with equal sides.
func Square(x, y, side float64) Polyline { return Rect(x, y, side, side) }

// HLine returns the horizontal segment from (x, y) of length l.
func HLine(x, y, l float64) Polyline {
	return Polyline{{x, y}, {x + l, y}}
}
