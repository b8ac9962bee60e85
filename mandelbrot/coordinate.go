package mandelbrot

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
)

var (
	ErrInvalidResolution  = errors.New("invalid resolution")
	ErrInvalidViewport    = errors.New("invalid viewport")
	ErrInvalidEscapeLimit = errors.New("invalid escape limit")
)

// Resolution is the size of the rendered image in pixels.
type Resolution struct {
	Width  int
	Height int
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Empty reports whether the resolution has no pixels at all.
func (r Resolution) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

// Verify rejects negative dimensions and products that overflow int. A zero dimension is allowed.
func (r Resolution) Verify() error {
	if r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("%w: %s has a negative dimension", ErrInvalidResolution, r)
	}
	if r.Width > 0 && r.Height > maxInt/r.Width {
		return fmt.Errorf("%w: %s overflows the pixel index range", ErrInvalidResolution, r)
	}
	return nil
}

const maxInt = int(^uint(0) >> 1)

// Viewport is the rectangle of the complex plane mapped onto the image. Row 0 of the image sits on the
// imaginary part of UpperLeft and the last row on the imaginary part of LowerRight.
type Viewport struct {
	UpperLeft  complex128
	LowerRight complex128
}

func (v Viewport) String() string {
	return fmt.Sprintf("{Viewport UpperLeft: %v LowerRight: %v}", v.UpperLeft, v.LowerRight)
}

// Verify rejects degenerate and inverted viewports, both of which would divide by zero or flip the image.
func (v Viewport) Verify() error {
	if !(real(v.UpperLeft) < real(v.LowerRight)) {
		return fmt.Errorf("%w: real part of upper left %g must be less than lower right %g", ErrInvalidViewport, real(v.UpperLeft), real(v.LowerRight))
	}
	if !(imag(v.UpperLeft) > imag(v.LowerRight)) {
		return fmt.Errorf("%w: imaginary part of upper left %g must be greater than lower right %g", ErrInvalidViewport, imag(v.UpperLeft), imag(v.LowerRight))
	}
	return nil
}

// viewportJSON is the settings file form of a viewport: each corner is a [real, imaginary] pair.
type viewportJSON struct {
	UpperLeft  [2]float64
	LowerRight [2]float64
}

func (v Viewport) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(viewportJSON{
		UpperLeft:  [2]float64{real(v.UpperLeft), imag(v.UpperLeft)},
		LowerRight: [2]float64{real(v.LowerRight), imag(v.LowerRight)},
	})
}

func (v *Viewport) UnmarshalJSON(data []byte) error {
	var corners viewportJSON
	if err := sonic.Unmarshal(data, &corners); err != nil {
		return fmt.Errorf("decoding viewport: %w", err)
	}
	v.UpperLeft = complex(corners.UpperLeft[0], corners.UpperLeft[1])
	v.LowerRight = complex(corners.LowerRight[0], corners.LowerRight[1])
	return nil
}

// PixelToPoint maps the (column, row) pixel of an image with the given resolution to its point in the
// viewport. column may equal the width and row may equal the height, which addresses the lower right
// corner of the last pixel.
func PixelToPoint(resolution Resolution, column int, row int, viewport Viewport) complex128 {
	width := real(viewport.LowerRight) - real(viewport.UpperLeft)
	height := imag(viewport.UpperLeft) - imag(viewport.LowerRight)
	return complex(
		real(viewport.UpperLeft)+float64(column)*width/float64(resolution.Width),
		imag(viewport.UpperLeft)-float64(row)*height/float64(resolution.Height),
	)
}
