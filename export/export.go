// Package export turns a finished raster.Buffer into a standard grayscale image and writes it out as PNG,
// binary PGM or zstd compressed PGM.
package export

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math/bits"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"

	"ParallelMandelbrot/mandelbrot"
	"ParallelMandelbrot/raster"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Format is the encoding an output file is written with.
type Format int

const (
	PNG Format = iota
	PGM
	PGMZstd
)

func (f Format) String() string {
	return []string{
		"PNG", "PGM", "PGMZstd",
	}[f]
}

// FormatOf picks the format from a file name: .png, .pgm or .pgm.zst.
func FormatOf(name string) (Format, error) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".pgm.zst"):
		return PGMZstd, nil
	case strings.HasSuffix(lower, ".pgm"):
		return PGM, nil
	case strings.HasSuffix(lower, ".png"):
		return PNG, nil
	}
	return 0, fmt.Errorf("%w: %q (expected .png, .pgm or .pgm.zst)", ErrUnknownFormat, filepath.Base(name))
}

// Gray converts a buffer into an *image.Gray when its pixels are 8 bits wide and an *image.Gray16 otherwise.
// Pixels wider than 16 bits keep their 16 most significant bits.
func Gray[P mandelbrot.Pixel](buffer *raster.Buffer[P]) image.Image {
	depth := bits.Len64(uint64(mandelbrot.MaxValue[P]()))
	pix := buffer.Pix()

	if depth == 8 {
		img := image.NewGray(buffer.Bounds())
		for i, v := range pix {
			img.Pix[i] = uint8(v)
		}
		return img
	}

	img := image.NewGray16(buffer.Bounds())
	shift := max(depth-16, 0)
	for i, v := range pix {
		binary.BigEndian.PutUint16(img.Pix[2*i:], uint16(uint64(v)>>shift))
	}
	return img
}

// Downsample shrinks a supersampled image to width x height with Lanczos resampling.
func Downsample(img image.Image, width int, height int) image.Image {
	if img.Bounds().Dx() == width && img.Bounds().Dy() == height {
		return img
	}
	return resize.Resize(uint(width), uint(height), img, resize.Lanczos3)
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case PNG:
		return WritePNG(w, img)
	case PGM:
		return WritePGM(w, img)
	case PGMZstd:
		return WritePGMZstd(w, img)
	}
	return fmt.Errorf("%w: %d", ErrUnknownFormat, format)
}

// WriteFile creates name and encodes img into it, choosing the format from the file extension.
func WriteFile(name string, img image.Image) error {
	format, err := FormatOf(name)
	if err != nil {
		return err
	}

	file, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("unable to create %s - %w", name, err)
	}
	if err := Encode(file, img, format); err != nil {
		file.Close()
		return fmt.Errorf("unable to encode %s - %w", name, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("unable to close %s - %w", name, err)
	}
	return nil
}

// toGray makes sure img is one of the two grayscale image types the encoders understand.
func toGray(img image.Image) image.Image {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return img
	}
	gray := image.NewGray(img.Bounds())
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			gray.Set(x, y, color.GrayModel.Convert(img.At(x, y)))
		}
	}
	return gray
}
