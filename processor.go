package hatch

import (
	"io"

	"github.com/pkg/errors"
)

// Presentation defaults of the generated drawing.
const (
	DefaultScale        = 10.0
	DefaultCanvasWidth  = 300
	DefaultCanvasHeight = 200
)

// Processor options
type Processor struct {
	// Angle is the hatch direction in degrees. Any real value is
	// accepted; it is normalized to [0, 360) before generation.
	Angle float64
	// Step is the spacing between neighboring hatch lines, measured
	// perpendicular to the hatch direction. It must be positive.
	Step float64
	// Rect is the clip rectangle the hatch pattern is confined to.
	Rect Rect

	// Scale, CanvasWidth and CanvasHeight control the output stage only.
	// Zero values fall back to the package defaults.
	Scale        float64
	CanvasWidth  int
	CanvasHeight int

	// Preview opens a window rendering the drawing after encoding.
	Preview bool
}

// Hatch validates the options and returns the clipped hatch segments.
func (p *Processor) Hatch() ([]Segment, error) {
	lines, err := Generate(p.Rect, p.Angle, p.Step)
	if err != nil {
		return nil, errors.Wrap(err, "generating hatch lines")
	}
	return lines, nil
}

// Process generates the hatch drawing and encodes it as an SVG document
// into w. When the Preview option is set, a window rendering the same
// drawing is opened and Process returns once it is closed.
func (p *Processor) Process(w io.Writer) error {
	lines, err := p.Hatch()
	if err != nil {
		return err
	}

	enc := &SVG{
		Width:  p.canvasWidth(),
		Height: p.canvasHeight(),
		Scale:  p.scale(),
	}
	if err := enc.Encode(w, lines, p.Rect); err != nil {
		return errors.Wrap(err, "encoding svg")
	}
	return p.showPreview(lines)
}

// ProcessPNG generates the hatch drawing, rasterizes it and encodes the
// result as PNG into w. The Preview option behaves as with Process.
func (p *Processor) ProcessPNG(w io.Writer) error {
	lines, err := p.Hatch()
	if err != nil {
		return err
	}

	if err := EncodePNG(w, lines, p.Rect, p.canvasWidth(), p.canvasHeight(), p.scale()); err != nil {
		return errors.Wrap(err, "encoding png")
	}
	return p.showPreview(lines)
}

// showPreview blocks until the preview window is closed.
func (p *Processor) showPreview(lines []Segment) error {
	if !p.Preview {
		return nil
	}
	gui := NewGUI(p.canvasWidth(), p.canvasHeight())
	return gui.Show(lines, p.Rect, p.scale())
}

func (p *Processor) scale() float64 {
	if p.Scale > 0 {
		return p.Scale
	}
	return DefaultScale
}

func (p *Processor) canvasWidth() int {
	if p.CanvasWidth > 0 {
		return p.CanvasWidth
	}
	return DefaultCanvasWidth
}

func (p *Processor) canvasHeight() int {
	if p.CanvasHeight > 0 {
		return p.CanvasHeight
	}
	return DefaultCanvasHeight
}
