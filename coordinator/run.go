package coordinator

import (
	"fmt"
	"image"
	"math"
	"os"

	"github.com/BrugadaSyndrome/bslogger"

	"ParallelMandelbrot/export"
	"ParallelMandelbrot/mandelbrot"
)

// Run renders the image described by settings, writes it to the run directory together with a copy of the
// settings and returns the path of the image. An empty resolution renders nothing and writes no image.
func Run(settings Settings) (string, error) {
	logger := bslogger.NewLogger("Run", bslogger.Normal, nil)

	if err := os.MkdirAll(settings.RunDirectory(), os.ModePerm); err != nil {
		return "", fmt.Errorf("unable to create folder %s - %w", settings.RunDirectory(), err)
	}
	backup, err := settings.Backup()
	if err != nil {
		return "", err
	}
	logger.Debugf("Saved settings to %s", backup)

	var img image.Image
	switch settings.Depth {
	case 16:
		img, err = RenderImage[uint16](settings.MandelbrotSettings, settings.WorkerCount, settings.SuperSampling)
	default:
		img, err = RenderImage[uint8](settings.MandelbrotSettings, settings.WorkerCount, settings.SuperSampling)
	}
	if err != nil {
		return "", err
	}
	if img.Bounds().Empty() {
		logger.Warningf("Resolution %s is empty, no image written", settings.MandelbrotSettings.Resolution)
		return "", nil
	}

	path := settings.OutputPath()
	if err := export.WriteFile(path, img); err != nil {
		return "", err
	}
	logger.Infof("Saved image to %s", path)
	return path, nil
}

// RenderImage renders at superSampling times the requested resolution and shrinks the result back down, which
// smooths the edges of the set. A superSampling of 1 renders the requested resolution directly; more than
// MaximumSuperSampling is rejected.
func RenderImage[P mandelbrot.Pixel](settings mandelbrot.Settings, workerCount int, superSampling int) (image.Image, error) {
	resolution := settings.Resolution
	if superSampling < 1 {
		superSampling = 1
	}
	if superSampling > MaximumSuperSampling {
		return nil, fmt.Errorf("%w: %d, must be at most %d", ErrInvalidSuperSampling, superSampling, MaximumSuperSampling)
	}
	if (resolution.Width > 0 && superSampling > math.MaxInt/resolution.Width) ||
		(resolution.Height > 0 && superSampling > math.MaxInt/resolution.Height) {
		return nil, fmt.Errorf("%w: %s super sampled %d times overflows the pixel index range", mandelbrot.ErrInvalidResolution, resolution, superSampling)
	}
	settings.Resolution = mandelbrot.Resolution{
		Width:  resolution.Width * superSampling,
		Height: resolution.Height * superSampling,
	}

	buffer, err := Render[P](settings, workerCount)
	if err != nil {
		return nil, err
	}
	img := export.Gray(buffer)
	if superSampling == 1 || resolution.Empty() {
		return img, nil
	}
	return export.Downsample(img, resolution.Width, resolution.Height), nil
}
