package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"ParallelMandelbrot/coordinator"
	"ParallelMandelbrot/mandelbrot"
)

type arguments struct {
	address       string
	depth         int
	escapeLimit   uint
	gops          bool
	lowerRight    string
	output        string
	profile       string
	region        string
	remote        string
	runName       string
	savePath      string
	serve         bool
	settingsFile  string
	size          string
	superSampling int
	upperLeft     string
	workerCount   int

	// flags given on the command line, they override the settings file
	set map[string]bool
}

func parseArguments(args []string) (arguments, error) {
	var a arguments
	flags := flag.NewFlagSet("mandelbrot", flag.ContinueOnError)

	// Render values
	flags.StringVar(&a.settingsFile, "settings", "", "Json file with render settings")
	flags.StringVar(&a.size, "size", "1920x1080", "Resolution of the resulting image as WIDTHxHEIGHT")
	flags.StringVar(&a.upperLeft, "upperLeft", "", "Upper left corner of the viewport as re,im")
	flags.StringVar(&a.lowerRight, "lowerRight", "", "Lower right corner of the viewport as re,im")
	flags.StringVar(&a.region, "region", mandelbrot.DefaultRegion, fmt.Sprintf("Named viewport, one of %s", strings.Join(mandelbrot.RegionNames(), ", ")))
	flags.UintVar(&a.escapeLimit, "escapeLimit", mandelbrot.DefaultEscapeLimit, "Iterations to run before a point counts as bounded")
	flags.IntVar(&a.workerCount, "workers", 0, "Number of parallel workers, 0 uses every cpu")
	flags.IntVar(&a.depth, "depth", coordinator.DefaultDepth, "Bits per pixel, 8 or 16")
	flags.IntVar(&a.superSampling, "superSampling", 1, "Render at this many times the resolution and shrink the result")
	flags.StringVar(&a.output, "output", coordinator.DefaultOutput, "Output file name, .png, .pgm or .pgm.zst")
	flags.StringVar(&a.savePath, "savePath", "", "Directory the run folder is created in, defaults to the working directory")
	flags.StringVar(&a.runName, "runName", "", "Name of the run folder, defaults to a timestamp")

	// Diagnostics
	flags.StringVar(&a.profile, "profile", "", "Profile the run: cpu, mem or trace")
	flags.BoolVar(&a.gops, "gops", false, "Start a gops agent")

	// Service values
	flags.BoolVar(&a.serve, "serve", false, "Serve renders over rpc instead of rendering locally")
	flags.StringVar(&a.address, "address", "", "Address the rpc server listens on, defaults to this machine on port 51000, port 0 picks a free port")
	flags.StringVar(&a.remote, "remote", "", "Ask the rpc server at this address to render the image")

	if err := flags.Parse(args); err != nil {
		return a, err
	}
	if a.serve && a.remote != "" {
		return a, errors.New("-serve and -remote can not be used together")
	}
	if (a.upperLeft == "") != (a.lowerRight == "") {
		return a, errors.New("-upperLeft and -lowerRight must be given together")
	}

	a.set = make(map[string]bool)
	flags.Visit(func(f *flag.Flag) {
		a.set[f.Name] = true
	})
	return a, nil
}

// apply overrides the settings loaded from the settings file with the flags given on the command line. Flags
// that were not given only fill in values the settings file left out.
func (a *arguments) apply(settings *coordinator.Settings) error {
	ms := &settings.MandelbrotSettings

	if a.set["size"] || ms.Resolution == (mandelbrot.Resolution{}) {
		resolution, err := parseSize(a.size)
		if err != nil {
			return err
		}
		ms.Resolution = resolution
	}
	if a.set["region"] {
		ms.Region = a.region
		ms.Viewport = mandelbrot.Viewport{}
	}
	if a.upperLeft != "" {
		upperLeft, err := parsePoint(a.upperLeft)
		if err != nil {
			return err
		}
		lowerRight, err := parsePoint(a.lowerRight)
		if err != nil {
			return err
		}
		ms.Viewport = mandelbrot.Viewport{UpperLeft: upperLeft, LowerRight: lowerRight}
	}
	if a.set["escapeLimit"] {
		if a.escapeLimit == 0 {
			return fmt.Errorf("%w: must be positive", mandelbrot.ErrInvalidEscapeLimit)
		}
		ms.EscapeLimit = a.escapeLimit
	}
	if a.set["workers"] {
		if a.workerCount <= 0 {
			return fmt.Errorf("%w: %d, must be positive", coordinator.ErrInvalidWorkerCount, a.workerCount)
		}
		settings.WorkerCount = a.workerCount
	}
	if a.set["depth"] {
		settings.Depth = a.depth
	}
	if a.set["superSampling"] {
		settings.SuperSampling = a.superSampling
	}
	if a.set["output"] {
		settings.Output = a.output
	}
	if a.set["savePath"] {
		settings.SavePath = a.savePath
	}
	if a.set["runName"] {
		settings.RunName = a.runName
	}
	return nil
}

// parsePoint parses "re,im" into a complex number.
func parsePoint(s string) (complex128, error) {
	re, im, found := strings.Cut(s, ",")
	if !found {
		return 0, fmt.Errorf("%w: %q is not of the form re,im", mandelbrot.ErrInvalidViewport, s)
	}
	r, err := strconv.ParseFloat(strings.TrimSpace(re), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: real part of %q: %w", mandelbrot.ErrInvalidViewport, s, err)
	}
	i, err := strconv.ParseFloat(strings.TrimSpace(im), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: imaginary part of %q: %w", mandelbrot.ErrInvalidViewport, s, err)
	}
	return complex(r, i), nil
}

// parseSize parses "WIDTHxHEIGHT" into a resolution.
func parseSize(s string) (mandelbrot.Resolution, error) {
	w, h, found := strings.Cut(strings.ToLower(s), "x")
	if !found {
		return mandelbrot.Resolution{}, fmt.Errorf("%w: %q is not of the form WIDTHxHEIGHT", mandelbrot.ErrInvalidResolution, s)
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return mandelbrot.Resolution{}, fmt.Errorf("%w: width of %q: %w", mandelbrot.ErrInvalidResolution, s, err)
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return mandelbrot.Resolution{}, fmt.Errorf("%w: height of %q: %w", mandelbrot.ErrInvalidResolution, s, err)
	}
	resolution := mandelbrot.Resolution{Width: width, Height: height}
	if err := resolution.Verify(); err != nil {
		return mandelbrot.Resolution{}, err
	}
	return resolution, nil
}
