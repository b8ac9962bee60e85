package mandelbrot

import (
	"fmt"

	"github.com/BrugadaSyndrome/bslogger"
)

const (
	DefaultEscapeLimit uint = 255
	DefaultWidth            = 1920
	DefaultHeight           = 1080
)

type Settings struct {
	logger bslogger.Logger

	EscapeLimit uint
	Region      string
	Resolution  Resolution
	Viewport    Viewport
}

func (s *Settings) String() string {
	output := "\nMandelbrot settings\n"
	output += fmt.Sprintf("Escape Limit: %d\n", s.EscapeLimit)
	output += fmt.Sprintf("Region: %s\n", s.Region)
	output += fmt.Sprintf("Resolution: %s\n", s.Resolution)
	output += fmt.Sprintf("Viewport: %s\n", s.Viewport)
	return output
}

// Verify fills in defaults for unset values and rejects values the renderer cannot work with. A resolution
// with exactly one zero dimension is kept as is: it renders an empty image.
func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("MandelbrotSettings", bslogger.Normal, nil)

	if s.EscapeLimit == 0 {
		s.EscapeLimit = DefaultEscapeLimit
	}
	if s.Resolution == (Resolution{}) {
		s.Resolution = Resolution{Width: DefaultWidth, Height: DefaultHeight}
	}
	if err := s.Resolution.Verify(); err != nil {
		return err
	}
	if s.Resolution.Empty() {
		s.logger.Warningf("Resolution %s has no pixels, the image will be empty", s.Resolution)
	}

	// An explicit viewport wins over a named region
	if s.Viewport == (Viewport{}) {
		if s.Region == "" {
			s.Region = DefaultRegion
		}
		viewport, err := LookupRegion(s.Region)
		if err != nil {
			return err
		}
		s.Viewport = viewport
	}
	if err := s.Viewport.Verify(); err != nil {
		return err
	}

	s.logger.Debug(s.String())
	return nil
}
