package hatch

import (
	"bufio"
	"fmt"
	"io"
)

// Stroke colors and widths of the generated drawing.
const (
	hatchStroke        = "black"
	hatchStrokeWidth   = 0.5
	outlineStroke      = "red"
	outlineStrokeWidth = 1.0
)

// SVG encodes a hatch drawing into a minimal SVG document: one line
// element per hatch segment followed by the four rectangle edges, every
// coordinate multiplied by a fixed linear scale factor.
type SVG struct {
	Width  int
	Height int
	Scale  float64
}

// Encode writes the SVG document for the given hatch lines and clip
// rectangle into w.
func (s *SVG) Encode(w io.Writer, lines []Segment, rect Rect) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "<svg xmlns='http://www.w3.org/2000/svg' width='%d' height='%d'>\n",
		s.Width, s.Height)

	for _, ln := range lines {
		s.writeLine(bw, ln, hatchStroke, hatchStrokeWidth)
	}
	for _, edge := range rect.Edges() {
		s.writeLine(bw, edge, outlineStroke, outlineStrokeWidth)
	}

	bw.WriteString("</svg>")
	return bw.Flush()
}

func (s *SVG) writeLine(w io.Writer, ln Segment, stroke string, width float64) {
	fmt.Fprintf(w, "<line x1='%g' y1='%g' x2='%g' y2='%g' stroke='%s' stroke-width='%g'/>\n",
		ln.Start.X*s.Scale, ln.Start.Y*s.Scale,
		ln.End.X*s.Scale, ln.End.Y*s.Scale,
		stroke, width)
}
