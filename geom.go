package hatch

import "math"

// Point is a location in the 2D plane.
type Point struct {
	X, Y float64
}

// Segment is a straight line between two points. The start/end order is
// kept only for bookkeeping; clipping treats both endpoints symmetrically.
type Segment struct {
	Start, End Point
}

// Rect is an axis-aligned rectangle spanned by two opposite corners.
// Min holds the smallest and Max the largest coordinates on both axes.
type Rect struct {
	Min, Max Point
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the point halfway between the two corners.
func (r Rect) Center() Point {
	return Point{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// Diagonal returns the corner-to-corner distance. Candidate hatch lines
// are sized against it so that they span the rectangle at any angle.
func (r Rect) Diagonal() float64 {
	return math.Hypot(r.Width(), r.Height())
}

// Valid reports whether the two corners are properly ordered.
func (r Rect) Valid() bool {
	return r.Min.X <= r.Max.X && r.Min.Y <= r.Max.Y
}

// Contains reports whether p lies inside the closed rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Edges returns the four boundary edges in counter-clockwise order,
// starting with the bottom edge at Min.
func (r Rect) Edges() [4]Segment {
	bl := r.Min
	br := Point{r.Max.X, r.Min.Y}
	tr := r.Max
	tl := Point{r.Min.X, r.Max.Y}

	return [4]Segment{{bl, br}, {br, tr}, {tr, tl}, {tl, bl}}
}

// NormalizeAngle reduces an angle expressed in degrees to [0, 360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// degToRad converts an angle from degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
