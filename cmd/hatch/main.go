package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/esimov/hatch"
	"github.com/esimov/hatch/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┬ ┬┌─┐┌┬┐┌─┐┬ ┬
├─┤├─┤ │ │  ├─┤
┴ ┴┴ ┴ ┴ └─┘┴ ┴

Hatch line generator with Cohen-Sutherland clipping.
    Version: %s

`

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	angle       = flag.Float64("angle", 45, "Hatch angle in degrees")
	step        = flag.Float64("step", 1, "Distance between hatch lines")
	destination = flag.String("out", "hatch.svg", "Destination")
	rect        = flag.String("rect", "0,0,20,10", "Clip rectangle as minx,miny,maxx,maxy")
	preview     = flag.Bool("preview", false, "Show the result in a preview window")
	quiet       = flag.Bool("quiet", false, "Do not print the generated segments")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, fmt.Sprintf(HelpBanner, Version))
		flag.PrintDefaults()
	}
	flag.Parse()

	if *step <= 0 {
		log.Fatalf(utils.DecorateText("Error: step must be greater than zero\n", utils.ErrorMessage))
	}

	r, err := parseRect(*rect)
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Invalid clip rectangle: %v\n", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	proc := &hatch.Processor{
		Angle:   *angle,
		Step:    *step,
		Rect:    r,
		Preview: *preview,
	}

	now := time.Now()

	lines, err := proc.Hatch()
	if err != nil {
		printStatus(*destination, err)
	}

	// The segment log shares stdout with the piped document, so it is
	// printed only when the drawing goes to a file.
	if !*quiet && *destination != pipeName {
		printLines(lines)
	}

	err = writeDrawing(proc, *destination)
	printStatus(*destination, err)

	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// parseRect converts the rectangle flag into the two corner points.
func parseRect(s string) (hatch.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return hatch.Rect{}, errors.New("expected four comma separated numbers")
	}

	coords := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return hatch.Rect{}, fmt.Errorf("invalid coordinate %q", part)
		}
		coords[i] = v
	}

	r := hatch.Rect{
		Min: hatch.Point{X: coords[0], Y: coords[1]},
		Max: hatch.Point{X: coords[2], Y: coords[3]},
	}
	if !r.Valid() {
		return hatch.Rect{}, errors.New("corners are not ordered as min,max")
	}
	return r, nil
}

// printLines prints each accepted segment to the console.
func printLines(lines []hatch.Segment) {
	for i, ln := range lines {
		fmt.Printf("Line %d: (%g,%g) -> (%g,%g)\n", i+1,
			ln.Start.X, ln.Start.Y, ln.End.X, ln.End.Y)
	}
}

// writeDrawing encodes the drawing into the destination, choosing the
// output format by the file extension.
func writeDrawing(proc *hatch.Processor, out string) error {
	if out == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		return proc.Process(os.Stdout)
	}

	dst, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %v", err)
	}
	defer dst.Close()

	var w io.Writer = dst

	switch ext := filepath.Ext(out); ext {
	case ".svg":
		return proc.Process(w)
	case ".png":
		return proc.ProcessPNG(w)
	default:
		return fmt.Errorf("%v file type not supported", ext)
	}
}

// printStatus displays the relevant information about the hatch generation.
func printStatus(fname string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr,
			utils.DecorateText("\nError generating the hatch drawing: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
		os.Exit(1)
	}
	if fname != pipeName {
		fmt.Fprintf(os.Stderr, "\nThe hatch drawing has been saved as: %s %s\n",
			utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
			utils.DefaultColor,
		)
	}
}
