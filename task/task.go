package task

import (
	"fmt"

	"ParallelMandelbrot/mandelbrot"
)

// Band is the unit of work handed to one worker: the rows [Top, Top+Height) of the image and the part of the
// viewport those rows cover.
type Band struct {
	Height   int
	ID       int
	Top      int
	Viewport mandelbrot.Viewport
}

func (b *Band) String() string {
	output := "{Band "
	output += fmt.Sprintf("ID: %d ", b.ID)
	output += fmt.Sprintf("Top: %d ", b.Top)
	output += fmt.Sprintf("Height: %d ", b.Height)
	output += fmt.Sprintf("Viewport: %s}", b.Viewport)
	return output
}

// Bottom is the first row past the band.
func (b *Band) Bottom() int {
	return b.Top + b.Height
}

// Corners returns the upper left pixel of the band and the lower right corner of its last pixel.
func (b *Band) Corners(width int) (Coordinate, Coordinate) {
	return Coordinate{Column: 0, Row: b.Top}, Coordinate{Column: width, Row: b.Bottom()}
}

// RowsPerBand is the number of rows each band gets when height rows are shared by count bands; the last band
// may be shorter.
func RowsPerBand(height int, count int) int {
	if count <= 0 {
		panic(fmt.Sprintf("task: band count must be positive, got %d", count))
	}
	return (height + count - 1) / count
}

// Partition splits the rows of an image into at most count consecutive bands of RowsPerBand rows each.
// The bands cover every row exactly once. An empty resolution yields no bands.
func Partition(resolution mandelbrot.Resolution, viewport mandelbrot.Viewport, count int) []Band {
	if resolution.Empty() {
		return nil
	}
	rows := RowsPerBand(resolution.Height, count)

	bands := make([]Band, 0, min(count, resolution.Height))
	for top := 0; top < resolution.Height; top += rows {
		band := Band{
			Height: min(rows, resolution.Height-top),
			ID:     len(bands),
			Top:    top,
		}
		upperLeft, lowerRight := band.Corners(resolution.Width)
		band.Viewport = mandelbrot.Viewport{
			UpperLeft:  upperLeft.Point(resolution, viewport),
			LowerRight: lowerRight.Point(resolution, viewport),
		}
		bands = append(bands, band)
	}
	return bands
}

// Heights lists the height of every band, in order.
func Heights(bands []Band) []int {
	heights := make([]int, len(bands))
	for i := range bands {
		heights[i] = bands[i].Height
	}
	return heights
}
