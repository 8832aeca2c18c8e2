package hatch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var clipRect = Rect{Min: Point{0, 0}, Max: Point{20, 10}}

func TestClip_OutCodeRegions(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		p    Point
		code OutCode
	}{
		{Point{10, 5}, Inside},
		{Point{-1, 5}, Left},
		{Point{21, 5}, Right},
		{Point{10, -1}, Bottom},
		{Point{10, 11}, Top},
		{Point{-1, -1}, Left | Bottom},
		{Point{-1, 11}, Left | Top},
		{Point{21, -1}, Right | Bottom},
		{Point{21, 11}, Right | Top},
		// Boundary points count as inside.
		{Point{0, 0}, Inside},
		{Point{20, 10}, Inside},
	}
	for _, c := range cases {
		assert.Equal(c.code, outCode(c.p, clipRect), "point %v", c.p)
	}
}

func TestClip_InsideSegmentIsUnchanged(t *testing.T) {
	assert := assert.New(t)

	s := Segment{Point{2, 3}, Point{15, 8}}
	clipped, ok := Clip(s, clipRect)

	assert.True(ok)
	assert.Equal(s, clipped)
}

func TestClip_FullyOutsideIsRejected(t *testing.T) {
	assert := assert.New(t)

	cases := []Segment{
		{Point{-5, -5}, Point{-1, -1}},      // left of the rectangle
		{Point{25, 0}, Point{30, 10}},       // right
		{Point{0, 12}, Point{20, 15}},       // above
		{Point{5, -3}, Point{18, -1}},       // below
		{Point{-10, 20}, Point{-1, 30}},     // corner region
		{Point{-5, -10}, Point{-5, 100}},    // vertical, left of the rectangle
		{Point{-100, -1}, Point{100, -0.5}}, // horizontal, below the rectangle
	}
	for _, s := range cases {
		_, ok := Clip(s, clipRect)
		assert.False(ok, "segment %v", s)
	}
}

func TestClip_CrossingSegmentIsTrimmed(t *testing.T) {
	assert := assert.New(t)

	// A horizontal line overshooting both vertical boundaries.
	clipped, ok := Clip(Segment{Point{-10, 5}, Point{30, 5}}, clipRect)
	assert.True(ok)
	assert.Equal(Segment{Point{0, 5}, Point{20, 5}}, clipped)

	// A vertical line overshooting both horizontal boundaries.
	clipped, ok = Clip(Segment{Point{7, -4}, Point{7, 40}}, clipRect)
	assert.True(ok)
	assert.Equal(Segment{Point{7, 0}, Point{7, 10}}, clipped)

	// One endpoint inside, one outside.
	clipped, ok = Clip(Segment{Point{10, 5}, Point{10, 30}}, clipRect)
	assert.True(ok)
	assert.Equal(Segment{Point{10, 5}, Point{10, 10}}, clipped)
}

func TestClip_DiagonalThroughCorners(t *testing.T) {
	assert := assert.New(t)

	// The main diagonal, extended beyond both corners.
	clipped, ok := Clip(Segment{Point{-20, -10}, Point{40, 20}}, clipRect)
	assert.True(ok)
	assert.InDelta(0, clipped.Start.X, 1e-9)
	assert.InDelta(0, clipped.Start.Y, 1e-9)
	assert.InDelta(20, clipped.End.X, 1e-9)
	assert.InDelta(10, clipped.End.Y, 1e-9)
}

func TestClip_ResultStaysInsideRect(t *testing.T) {
	assert := assert.New(t)

	// A fan of segments rotating around a point outside the rectangle.
	pivot := Point{-3, 17}
	for deg := 0; deg < 360; deg += 7 {
		theta := degToRad(float64(deg))
		far := Point{pivot.X + 100*math.Cos(theta), pivot.Y + 100*math.Sin(theta)}

		clipped, ok := Clip(Segment{pivot, far}, clipRect)
		if !ok {
			continue
		}
		assertPointInRect(t, clipped.Start, clipRect)
		assertPointInRect(t, clipped.End, clipRect)
	}

	// At least some of the fan hits the rectangle.
	_, ok := Clip(Segment{pivot, Point{10, 5}}, clipRect)
	assert.True(ok)
}

func TestClip_IsIdempotent(t *testing.T) {
	assert := assert.New(t)

	s := Segment{Point{-10, 3}, Point{50, 9}}
	once, ok := Clip(s, clipRect)
	assert.True(ok)

	twice, ok := Clip(once, clipRect)
	assert.True(ok)
	assert.Equal(once, twice)
}

// assertPointInRect checks containment with a small floating point tolerance.
func assertPointInRect(t *testing.T, p Point, r Rect) {
	t.Helper()

	const eps = 1e-9
	assert.GreaterOrEqual(t, p.X, r.Min.X-eps)
	assert.LessOrEqual(t, p.X, r.Max.X+eps)
	assert.GreaterOrEqual(t, p.Y, r.Min.Y-eps)
	assert.LessOrEqual(t, p.Y, r.Max.Y+eps)
}
