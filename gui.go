package hatch

import (
	"image/color"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/esimov/hatch/utils"
)

const (
	maxScreenX = 1366
	maxScreenY = 768
)

var (
	previewBackground = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	previewHatch      = color.NRGBA{A: 0xff}
	previewOutline    = color.NRGBA{R: 0xff, A: 0xff}
)

// Gui renders the generated drawing in a Gio window.
type Gui struct {
	width  int
	height int
	scale  float32

	lines []Segment
	rect  Rect
}

// NewGUI initializes the Gio interface with the given window size,
// clamped to the predefined maximum screen dimensions.
func NewGUI(w, h int) *Gui {
	return &Gui{
		width:  utils.Min(w, maxScreenX),
		height: utils.Min(h, maxScreenY),
	}
}

// Show opens the preview window and blocks until it is closed.
// Pressing ESC closes the window.
func (g *Gui) Show(lines []Segment, rect Rect, scale float64) error {
	g.lines, g.rect, g.scale = lines, rect, float32(scale)

	w := app.NewWindow(
		app.Title("Hatch preview"),
		app.Size(unit.Px(float32(g.width)), unit.Px(float32(g.height))),
	)

	var ops op.Ops
	for {
		switch e := (<-w.Events()).(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			g.draw(gtx)
			e.Frame(gtx.Ops)
		case key.Event:
			if e.Name == key.NameEscape {
				w.Close()
			}
		case system.DestroyEvent:
			return e.Err
		}
	}
}

// draw paints the background, the hatch lines and the rectangle outline.
func (g *Gui) draw(gtx layout.Context) {
	paint.Fill(gtx.Ops, previewBackground)

	for _, ln := range g.lines {
		g.stroke(gtx.Ops, ln, previewHatch, hatchStrokeWidth)
	}
	for _, edge := range g.rect.Edges() {
		g.stroke(gtx.Ops, edge, previewOutline, outlineStrokeWidth)
	}
}

// stroke adds a single scaled line segment to the operation list.
func (g *Gui) stroke(ops *op.Ops, ln Segment, c color.NRGBA, width float64) {
	var p clip.Path
	p.Begin(ops)
	p.MoveTo(f32.Pt(float32(ln.Start.X)*g.scale, float32(ln.Start.Y)*g.scale))
	p.LineTo(f32.Pt(float32(ln.End.X)*g.scale, float32(ln.End.Y)*g.scale))

	paint.FillShape(ops, c, clip.Stroke{
		Path:  p.End(),
		Width: float32(width),
	}.Op())
}
