package coordinator

import (
	"errors"
	"fmt"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
	"golang.org/x/sync/errgroup"

	"ParallelMandelbrot/mandelbrot"
	"ParallelMandelbrot/raster"
	"ParallelMandelbrot/task"
	"ParallelMandelbrot/worker"
)

var ErrInvalidWorkerCount = errors.New("invalid worker count")

// Coordinator renders one image: it cuts the buffer into one band per worker, runs every worker at once and
// returns when the last one is done. Each worker owns a disjoint raster.Rows view so nothing is locked.
type Coordinator[P mandelbrot.Pixel] struct {
	bands       []task.Band
	buffer      *raster.Buffer[P]
	logger      bslogger.Logger
	settings    mandelbrot.Settings
	state       State
	workerCount int
	workers     []*worker.Worker[P]
}

// NewCoordinator checks every precondition of a render up front so Render itself cannot fail halfway.
func NewCoordinator[P mandelbrot.Pixel](settings mandelbrot.Settings, workerCount int) (*Coordinator[P], error) {
	if workerCount <= 0 {
		return nil, fmt.Errorf("%w: %d, must be positive", ErrInvalidWorkerCount, workerCount)
	}
	if settings.EscapeLimit == 0 {
		return nil, fmt.Errorf("%w: must be positive", mandelbrot.ErrInvalidEscapeLimit)
	}
	if err := settings.Resolution.Verify(); err != nil {
		return nil, err
	}
	if err := settings.Viewport.Verify(); err != nil {
		return nil, err
	}

	return &Coordinator[P]{
		logger:      bslogger.NewLogger("Coordinator", bslogger.Normal, nil),
		settings:    settings,
		state:       Unrendered,
		workerCount: workerCount,
	}, nil
}

func (c *Coordinator[P]) State() State {
	return c.state
}

// Bands returns the bands of the last render; nil before partitioning.
func (c *Coordinator[P]) Bands() []task.Band {
	return c.bands
}

// Render fills a new buffer and returns it once every worker has finished. Calling Render again returns the
// same buffer without rendering twice.
func (c *Coordinator[P]) Render() *raster.Buffer[P] {
	if c.state == Complete {
		return c.buffer
	}
	startTime := time.Now()
	resolution := c.settings.Resolution

	c.buffer = raster.NewBuffer[P](resolution.Width, resolution.Height)
	c.bands = task.Partition(resolution, c.settings.Viewport, c.workerCount)
	var views []raster.Rows[P]
	if len(c.bands) > 0 {
		views = c.buffer.Split(task.Heights(c.bands))
	}
	c.transition(Partitioned)
	c.logger.Debugf("Partitioned %s into %d bands of up to %d rows", resolution, len(c.bands), task.RowsPerBand(resolution.Height, c.workerCount))

	c.transition(Rendering)
	var group errgroup.Group
	for i, band := range c.bands {
		band := band
		w := worker.NewWorker[P](band.ID, c.settings)
		c.workers = append(c.workers, w)
		rows := views[i]
		group.Go(func() error {
			w.Process(band, rows)
			return nil
		})
	}
	// Workers never fail; Wait is the join point that makes the buffer safe to read
	_ = group.Wait()
	c.transition(Complete)

	pixelsCompleted := 0
	for _, w := range c.workers {
		c.logger.Debugf("Worker %d completed %d pixels", w.ID, w.PixelsCompleted())
		pixelsCompleted += w.PixelsCompleted()
	}
	c.logger.Infof("Rendered %s (%d pixels) with %d workers in %s", resolution, pixelsCompleted, len(c.workers), time.Since(startTime))
	return c.buffer
}

// Render is a one shot helper around NewCoordinator and Coordinator.Render.
func Render[P mandelbrot.Pixel](settings mandelbrot.Settings, workerCount int) (*raster.Buffer[P], error) {
	c, err := NewCoordinator[P](settings, workerCount)
	if err != nil {
		return nil, err
	}
	return c.Render(), nil
}
