package hatch

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidStep is returned when the hatch spacing is zero or negative.
var ErrInvalidStep = errors.New("hatch step must be greater than zero")

// Generate produces the hatch lines covering r at the given angle, spaced
// step apart along the perpendicular of the hatch direction. The angle may
// be any value in degrees, including negative or above 360; it is reduced
// to [0, 360) first. The returned segments are already clipped to r and
// appear in generation order.
//
// An inverted rectangle (corners out of order) yields an empty result.
// The loop bounds below compare floating accumulators inclusively, so a
// span of n steps emits n+1 lines; this matches the historical behavior
// and is relied upon by the output stage.
func Generate(r Rect, angleDegrees, step float64) ([]Segment, error) {
	if step <= 0 {
		return nil, errors.Wrapf(ErrInvalidStep, "step %v", step)
	}
	if !r.Valid() {
		return nil, nil
	}

	var lines []Segment

	switch angle := NormalizeAngle(angleDegrees); {
	case angle == 0 || angle == 360:
		// Horizontal lines, bottom up.
		for y := r.Min.Y; y <= r.Max.Y; y += step {
			lines = append(lines, Segment{Point{r.Min.X, y}, Point{r.Max.X, y}})
		}
	case angle == 180:
		// The same line set as 0 degrees, enumerated top down. The
		// reversed order is historical and not part of the contract.
		for y := r.Max.Y; y >= r.Min.Y; y -= step {
			lines = append(lines, Segment{Point{r.Min.X, y}, Point{r.Max.X, y}})
		}
	case angle == 90 || angle == 270:
		// Vertical lines, left to right.
		for x := r.Min.X; x <= r.Max.X; x += step {
			lines = append(lines, Segment{Point{x, r.Min.Y}, Point{x, r.Max.Y}})
		}
	default:
		theta := degToRad(angle)
		dir := Point{math.Cos(theta), math.Sin(theta)}
		perp := Point{-dir.Y, dir.X}

		center := r.Center()
		half := r.Diagonal() / 2

		// Each candidate is centered on a perpendicular offset from the
		// rectangle center and spans the full diagonal in both directions,
		// so clipping alone decides the visible portion.
		for offset := -half; offset <= half; offset += step {
			cx := center.X + perp.X*offset
			cy := center.Y + perp.Y*offset

			candidate := Segment{
				Start: Point{cx - dir.X*half, cy - dir.Y*half},
				End:   Point{cx + dir.X*half, cy + dir.Y*half},
			}
			if clipped, ok := Clip(candidate, r); ok {
				lines = append(lines, clipped)
			}
		}
	}
	return lines, nil
}
