package mandelbrot

import (
	"fmt"
	"sort"
)

// Classic regions / landmarks in the Mandelbrot set, selectable by name
var Regions = map[string]Viewport{
	// Whole set with a little margin
	"full": {UpperLeft: complex(-2.5, 1.0), LowerRight: complex(1.0, -1.0)},

	// Dense filaments and repeating "seahorse" curls
	"seahorse-valley": {UpperLeft: complex(-0.8, 0.15), LowerRight: complex(-0.7, 0.05)},

	// Large bulb with trunk-like tendrils
	"elephant-valley": {UpperLeft: complex(0.25, 0.05), LowerRight: complex(0.35, -0.05)},

	// Small copy of the set with tight spiral arms
	"spiral-minibrot": {UpperLeft: complex(-0.7435, 0.1325), LowerRight: complex(-0.7420, 0.1310)},

	// Threefold symmetric spiral structure
	"triple-spiral": {UpperLeft: complex(-0.7480, 0.0980), LowerRight: complex(-0.7450, 0.0950)},

	// Deep, highly detailed spiral filaments
	"valley-of-the-dragon": {UpperLeft: complex(-0.7400, 0.1850), LowerRight: complex(-0.7350, 0.1800)},

	// Self-similar copy inside a spiral arm
	"minibrot-in-mini-spiral": {UpperLeft: complex(-1.7390, -0.0220), LowerRight: complex(-1.7375, -0.0235)},
}

const DefaultRegion = "full"

// LookupRegion returns the viewport of a named region.
func LookupRegion(name string) (Viewport, error) {
	viewport, ok := Regions[name]
	if !ok {
		return Viewport{}, fmt.Errorf("%w: unknown region %q (known regions: %v)", ErrInvalidViewport, name, RegionNames())
	}
	return viewport, nil
}

func RegionNames() []string {
	names := make([]string, 0, len(Regions))
	for name := range Regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
