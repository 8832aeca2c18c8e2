/*
Package hatch generates parallel hatch lines covering a rectangular region
at a configurable angle and spacing, clipping every line to the rectangle
boundary with the Cohen-Sutherland algorithm and rendering the result as a
simple vector drawing.

The package provides a command line interface supporting a few flags for
controlling the hatch pattern and the output format. To check the supported
commands type:

	$ hatch --help

In case you wish to integrate the API in a self constructed environment here
is a simple example:

	package main

	import (
		"fmt"
		"os"

		"github.com/esimov/hatch"
	)

	func main() {
		p := &hatch.Processor{
			Angle: 45,
			Step:  1,
			Rect:  hatch.Rect{Max: hatch.Point{X: 20, Y: 10}},
		}

		if err := p.Process(os.Stdout); err != nil {
			fmt.Printf("Error generating the hatch drawing: %s", err.Error())
		}
	}
*/
package hatch
