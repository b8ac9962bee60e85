// Package raster holds the single channel pixel buffer a render writes into and the disjoint row views that
// let several workers write into it at once without locking.
package raster

import (
	"fmt"
	"image"

	"ParallelMandelbrot/mandelbrot"
)

const maxInt = int(^uint(0) >> 1)

// Buffer is a row-major width*height array of intensities.
type Buffer[P mandelbrot.Pixel] struct {
	height int
	pix    []P
	width  int
}

// NewBuffer allocates a zeroed buffer. Negative dimensions or a pixel count that does not fit in an int are
// programming errors and panic.
func NewBuffer[P mandelbrot.Pixel](width int, height int) *Buffer[P] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("raster: negative buffer size %dx%d", width, height))
	}
	if width > 0 && height > maxInt/width {
		panic(fmt.Sprintf("raster: buffer size %dx%d overflows int", width, height))
	}
	return &Buffer[P]{
		height: height,
		pix:    make([]P, width*height),
		width:  width,
	}
}

func (b *Buffer[P]) String() string {
	return fmt.Sprintf("{Buffer Width: %d Height: %d}", b.width, b.height)
}

func (b *Buffer[P]) Width() int {
	return b.width
}

func (b *Buffer[P]) Height() int {
	return b.height
}

func (b *Buffer[P]) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Pix returns the backing row-major pixels. Callers must not write to it while a render is in progress.
func (b *Buffer[P]) Pix() []P {
	return b.pix
}

// Row returns the width pixels of row i.
func (b *Buffer[P]) Row(i int) []P {
	if i < 0 || i >= b.height {
		panic(fmt.Sprintf("raster: row %d out of range [0, %d)", i, b.height))
	}
	start, end := i*b.width, (i+1)*b.width
	return b.pix[start:end:end]
}

func (b *Buffer[P]) At(column int, row int) P {
	r := b.Row(row)
	if column < 0 || column >= b.width {
		panic(fmt.Sprintf("raster: column %d out of range [0, %d)", column, b.width))
	}
	return r[column]
}

// Split cuts the buffer into consecutive row views, one per entry of heights. The heights must be positive
// and add up to the buffer height so every row belongs to exactly one view.
func (b *Buffer[P]) Split(heights []int) []Rows[P] {
	total := 0
	for _, h := range heights {
		if h <= 0 {
			panic(fmt.Sprintf("raster: non-positive band height %d", h))
		}
		total += h
	}
	if total != b.height {
		panic(fmt.Sprintf("raster: band heights add up to %d rows, buffer has %d", total, b.height))
	}

	views := make([]Rows[P], len(heights))
	top := 0
	for i, h := range heights {
		start, end := top*b.width, (top+h)*b.width
		views[i] = Rows[P]{
			height: h,
			// Capacity is clipped so a view can never reach the next view's rows
			pix:   b.pix[start:end:end],
			top:   top,
			width: b.width,
		}
		top += h
	}
	return views
}
