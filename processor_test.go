package hatch

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var pt *Processor

func init() {
	pt = &Processor{
		Angle: 45,
		Step:  1,
		Rect:  Rect{Min: Point{0, 0}, Max: Point{20, 10}},
	}
}

func TestProcessor_HatchMatchesGenerate(t *testing.T) {
	assert := assert.New(t)

	lines, err := pt.Hatch()
	assert.NoError(err)

	expected, err := Generate(pt.Rect, pt.Angle, pt.Step)
	assert.NoError(err)
	assert.Equal(expected, lines)
}

func TestProcessor_HatchRejectsInvalidStep(t *testing.T) {
	assert := assert.New(t)

	bad := &Processor{Angle: 45, Step: 0, Rect: pt.Rect}
	lines, err := bad.Hatch()

	assert.Nil(lines)
	assert.ErrorIs(err, ErrInvalidStep)
}

func TestProcessor_ProcessWritesSVGDocument(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	assert.NoError(pt.Process(&buf))

	out := buf.String()
	assert.True(strings.HasPrefix(out, "<svg xmlns='http://www.w3.org/2000/svg' width='300' height='200'>\n"))
	assert.True(strings.HasSuffix(out, "</svg>"))

	lines, err := pt.Hatch()
	assert.NoError(err)
	assert.Equal(len(lines), strings.Count(out, "stroke='black'"))
	assert.Equal(4, strings.Count(out, "stroke='red'"))
}

func TestProcessor_CanvasOverrides(t *testing.T) {
	assert := assert.New(t)

	proc := &Processor{
		Angle:        0,
		Step:         1,
		Rect:         pt.Rect,
		Scale:        2,
		CanvasWidth:  64,
		CanvasHeight: 32,
	}

	var buf bytes.Buffer
	assert.NoError(proc.Process(&buf))

	out := buf.String()
	assert.Contains(out, "width='64' height='32'")
	assert.Contains(out, "<line x1='0' y1='20' x2='40' y2='20' stroke='black'")
}

func TestProcessor_ProcessPNG(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	assert.NoError(pt.ProcessPNG(&buf))

	img, format, err := image.Decode(&buf)
	assert.NoError(err)
	assert.Equal("png", format)
	assert.Equal(image.Rect(0, 0, DefaultCanvasWidth, DefaultCanvasHeight), img.Bounds())
}
