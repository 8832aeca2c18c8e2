package hatch

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"
)

var (
	rasterBackground = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	rasterHatch      = color.NRGBA{A: 0xff}
	rasterOutline    = color.NRGBA{R: 0xff, A: 0xff}
)

// Rasterize renders the hatch drawing onto a white canvas of the given
// pixel size, applying the same linear scale factor the SVG output uses.
func Rasterize(lines []Segment, rect Rect, width, height int, scale float64) *image.NRGBA {
	img := imaging.New(width, height, rasterBackground)

	for _, ln := range lines {
		strokeSegment(img, ln, scale, hatchStrokeWidth, rasterHatch)
	}
	for _, edge := range rect.Edges() {
		strokeSegment(img, edge, scale, outlineStrokeWidth, rasterOutline)
	}
	return img
}

// EncodePNG rasterizes the drawing and writes it as PNG into w.
func EncodePNG(w io.Writer, lines []Segment, rect Rect, width, height int, scale float64) error {
	return imaging.Encode(w, Rasterize(lines, rect, width, height, scale), imaging.PNG)
}

// strokeSegment rasterizes one scaled segment as a filled quad of the
// given stroke width.
func strokeSegment(dst *image.NRGBA, ln Segment, scale, width float64, c color.NRGBA) {
	x0, y0 := ln.Start.X*scale, ln.Start.Y*scale
	x1, y1 := ln.End.X*scale, ln.End.Y*scale

	length := math.Hypot(x1-x0, y1-y0)
	if length == 0 {
		return
	}

	// Half-width offset perpendicular to the segment direction.
	ox := -(y1 - y0) / length * width / 2
	oy := (x1 - x0) / length * width / 2

	r := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
	r.DrawOp = draw.Over
	r.MoveTo(float32(x0+ox), float32(y0+oy))
	r.LineTo(float32(x1+ox), float32(y1+oy))
	r.LineTo(float32(x1-ox), float32(y1-oy))
	r.LineTo(float32(x0-ox), float32(y0-oy))
	r.ClosePath()
	r.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}
