package hatch

// OutCode is the 4-bit region code of a point relative to a rectangle,
// as used by the Cohen-Sutherland algorithm.
type OutCode uint8

const (
	// Inside means no boundary is violated.
	Inside OutCode = 0
	// Left is set when the point lies left of the rectangle.
	Left OutCode = 1
	// Right is set when the point lies right of the rectangle.
	Right OutCode = 2
	// Bottom is set when the point lies below the rectangle.
	Bottom OutCode = 4
	// Top is set when the point lies above the rectangle.
	Top OutCode = 8
)

// outCode computes the region code of p relative to r. The horizontal and
// the vertical checks are each an exclusive pair, so at most one X bit and
// one Y bit is ever set.
func outCode(p Point, r Rect) OutCode {
	code := Inside

	if p.X < r.Min.X {
		code |= Left
	} else if p.X > r.Max.X {
		code |= Right
	}
	if p.Y < r.Min.Y {
		code |= Bottom
	} else if p.Y > r.Max.Y {
		code |= Top
	}
	return code
}

// Clip trims s against r using the Cohen-Sutherland algorithm. It returns
// the clipped segment and true when any part of s lies inside the closed
// rectangle, or the zero segment and false when s is entirely outside.
// The input segment is never modified; a segment that is already fully
// inside is returned unchanged.
//
// Violated boundaries are resolved in the fixed order Top, Bottom, Right,
// Left. An axis-aligned segment can only be outside along its own axis,
// so the interpolation below never divides by zero for such input; adding
// guards here would change which boundary is chosen on ties.
func Clip(s Segment, r Rect) (Segment, bool) {
	x0, y0 := s.Start.X, s.Start.Y
	x1, y1 := s.End.X, s.End.Y

	code0 := outCode(Point{x0, y0}, r)
	code1 := outCode(Point{x1, y1}, r)

	for {
		if code0|code1 == Inside {
			// Both endpoints are inside.
			return Segment{Point{x0, y0}, Point{x1, y1}}, true
		}
		if code0&code1 != Inside {
			// Both endpoints share an outside half-plane.
			return Segment{}, false
		}

		// Resolve one outside endpoint, preferring the first.
		out := code0
		if out == Inside {
			out = code1
		}

		var x, y float64
		switch {
		case out&Top != 0:
			x = x0 + (x1-x0)*(r.Max.Y-y0)/(y1-y0)
			y = r.Max.Y
		case out&Bottom != 0:
			x = x0 + (x1-x0)*(r.Min.Y-y0)/(y1-y0)
			y = r.Min.Y
		case out&Right != 0:
			y = y0 + (y1-y0)*(r.Max.X-x0)/(x1-x0)
			x = r.Max.X
		default: // Left
			y = y0 + (y1-y0)*(r.Min.X-x0)/(x1-x0)
			x = r.Min.X
		}

		if out == code0 {
			x0, y0 = x, y
			code0 = outCode(Point{x0, y0}, r)
		} else {
			x1, y1 = x, y
			code1 = outCode(Point{x1, y1}, r)
		}
	}
}
