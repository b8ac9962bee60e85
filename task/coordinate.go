package task

import (
	"fmt"

	"ParallelMandelbrot/mandelbrot"
)

// Coordinate is a (column, row) pixel position. Column may equal the image width and Row the image height
// when the coordinate names the far corner of a band.
type Coordinate struct {
	Column int
	Row    int
}

func (c *Coordinate) String() string {
	output := "{Coordinate "
	output += fmt.Sprintf("Column: %d ", c.Column)
	output += fmt.Sprintf("Row: %d}", c.Row)
	return output
}

// Point returns the complex point this coordinate maps to.
func (c *Coordinate) Point(resolution mandelbrot.Resolution, viewport mandelbrot.Viewport) complex128 {
	return mandelbrot.PixelToPoint(resolution, c.Column, c.Row, viewport)
}
