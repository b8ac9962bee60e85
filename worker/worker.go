package worker

import (
	"fmt"
	"time"

	"github.com/BrugadaSyndrome/bslogger"

	"ParallelMandelbrot/mandelbrot"
	"ParallelMandelbrot/raster"
	"ParallelMandelbrot/task"
)

// Worker fills the pixels of the bands it is given. A worker only ever writes through the raster.Rows view of
// its band, so any number of workers can run against the same buffer at once.
type Worker[P mandelbrot.Pixel] struct {
	escapeLimit     uint
	logger          bslogger.Logger
	pixelsCompleted int
	resolution      mandelbrot.Resolution
	viewport        mandelbrot.Viewport

	ID int
}

func NewWorker[P mandelbrot.Pixel](id int, settings mandelbrot.Settings) *Worker[P] {
	return &Worker[P]{
		escapeLimit: settings.EscapeLimit,
		logger:      bslogger.NewLogger(fmt.Sprintf("Worker %d", id), bslogger.Normal, nil),
		resolution:  settings.Resolution,
		viewport:    settings.Viewport,
		ID:          id,
	}
}

func (w *Worker[P]) PixelsCompleted() int {
	return w.pixelsCompleted
}

// Process renders every pixel of band into rows, top to bottom and left to right. Pixels are mapped against the
// full image, not the band's viewport, so the result does not depend on how the image was cut into bands.
func (w *Worker[P]) Process(band task.Band, rows raster.Rows[P]) {
	if rows.Top() != band.Top || rows.Height() != band.Height {
		panic(fmt.Sprintf("worker: %s does not match %s", rows, &band))
	}
	w.logger.Debugf("Processing %s", &band)
	startTime := time.Now()

	for row := band.Top; row < band.Bottom(); row++ {
		pixels := rows.Row(row)
		for column := range pixels {
			point := mandelbrot.PixelToPoint(w.resolution, column, row, w.viewport)
			result := mandelbrot.EscapeTime(point, w.escapeLimit)
			pixels[column] = mandelbrot.ToIntensity[P](result, w.escapeLimit)
		}
		w.pixelsCompleted += len(pixels)
	}

	w.logger.Debugf("Processed band %d (%d rows) in %s", band.ID, band.Height, time.Since(startTime))
}
