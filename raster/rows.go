package raster

import (
	"fmt"

	"ParallelMandelbrot/mandelbrot"
)

// Rows is an exclusive, writable view of the consecutive rows [Top, Top+Height) of a Buffer. Views returned by
// a single Split never overlap.
type Rows[P mandelbrot.Pixel] struct {
	height int
	pix    []P
	top    int
	width  int
}

func (r Rows[P]) String() string {
	return fmt.Sprintf("{Rows Top: %d Height: %d Width: %d}", r.top, r.height, r.width)
}

func (r Rows[P]) Top() int {
	return r.top
}

func (r Rows[P]) Height() int {
	return r.height
}

func (r Rows[P]) Width() int {
	return r.width
}

// Row returns the pixels of row i, addressed by its row index in the whole buffer. Rows outside the view
// panic.
func (r Rows[P]) Row(i int) []P {
	if i < r.top || i >= r.top+r.height {
		panic(fmt.Sprintf("raster: row %d outside view [%d, %d)", i, r.top, r.top+r.height))
	}
	start := (i - r.top) * r.width
	end := start + r.width
	return r.pix[start:end:end]
}
