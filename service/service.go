// Package service exposes the renderer over rpc so one machine can render images for others.
package service

import (
	"fmt"
	"image"
	"sync"

	"github.com/BrugadaSyndrome/bslogger"

	"ParallelMandelbrot/coordinator"
	"ParallelMandelbrot/mandelbrot"
	"ParallelMandelbrot/misc"
)

// MaximumRequestPixels bounds the pixels a single request may render, counting super sampling, so one client
// can not exhaust the server's memory.
const MaximumRequestPixels = 1 << 26

type RenderRequest struct {
	MandelbrotSettings mandelbrot.Settings
	SuperSampling      int
}

// RenderReply carries an 8 bit grayscale image, row-major with no padding.
type RenderReply struct {
	Height int
	Pix    []byte
	Width  int
}

func (rr *RenderReply) String() string {
	return fmt.Sprintf("{RenderReply Width: %d Height: %d}", rr.Width, rr.Height)
}

// Image wraps the reply pixels in an *image.Gray without copying them.
func (rr *RenderReply) Image() *image.Gray {
	return &image.Gray{
		Pix:    rr.Pix,
		Stride: rr.Width,
		Rect:   image.Rect(0, 0, rr.Width, rr.Height),
	}
}

// RenderService is the rpc receiver. Renders are serialised: each one already uses every worker.
type RenderService struct {
	logger           bslogger.Logger
	mutex            sync.Mutex
	rendersCompleted int
	workerCount      int
}

func NewRenderService(workerCount int) *RenderService {
	return &RenderService{
		logger:      bslogger.NewLogger("RenderService", bslogger.Normal, nil),
		workerCount: workerCount,
	}
}

func (rs *RenderService) Render(request RenderRequest, reply *RenderReply) error {
	settings := request.MandelbrotSettings
	if err := verifyRequest(&settings, request.SuperSampling); err != nil {
		rs.logger.Warningf("Rejecting render request: %s", err)
		return err
	}

	rs.mutex.Lock()
	defer rs.mutex.Unlock()

	img, err := coordinator.RenderImage[uint8](settings, rs.workerCount, request.SuperSampling)
	if err != nil {
		return err
	}
	gray, ok := img.(*image.Gray)
	if !ok {
		return fmt.Errorf("unexpected image type %T", img)
	}

	width, height := gray.Bounds().Dx(), gray.Bounds().Dy()
	reply.Width = width
	reply.Height = height
	reply.Pix = make([]byte, width*height)
	for y := 0; y < height; y++ {
		copy(reply.Pix[y*width:(y+1)*width], gray.Pix[y*gray.Stride:y*gray.Stride+width])
	}

	rs.rendersCompleted++
	rs.logger.Infof("Rendered %s for a client [completed renders %d]", settings.Resolution, rs.rendersCompleted)
	return nil
}

func (rs *RenderService) RollCall(nothing misc.Nothing, present *bool) error {
	*present = true
	return nil
}

// verifyRequest fills in the defaults of settings and rejects requests the server will not render.
func verifyRequest(settings *mandelbrot.Settings, superSampling int) error {
	if err := settings.Verify(); err != nil {
		return err
	}
	if superSampling > coordinator.MaximumSuperSampling {
		return fmt.Errorf("%w: %d, must be at most %d", coordinator.ErrInvalidSuperSampling, superSampling, coordinator.MaximumSuperSampling)
	}
	samples := max(superSampling, 1) * max(superSampling, 1)
	pixels := settings.Resolution.Width * settings.Resolution.Height
	if pixels > MaximumRequestPixels/samples {
		return fmt.Errorf("%w: %s super sampled %d times is more than %d pixels", mandelbrot.ErrInvalidResolution, settings.Resolution, superSampling, MaximumRequestPixels)
	}
	return nil
}
