package task

import (
	"testing"

	"ParallelMandelbrot/mandelbrot"
)

var viewport = mandelbrot.Viewport{UpperLeft: complex(-2, 1), LowerRight: complex(1, -1)}

func TestRowsPerBand(t *testing.T) {
	tests := []struct {
		height, count, expected int
	}{
		{10, 1, 10},
		{10, 3, 4},
		{10, 4, 3},
		{10, 10, 1},
		{10, 16, 1},
		{1080, 8, 135},
		{0, 4, 0},
	}
	for _, tt := range tests {
		if got := RowsPerBand(tt.height, tt.count); got != tt.expected {
			t.Errorf("RowsPerBand(%d, %d): expected %d, actual %d", tt.height, tt.count, tt.expected, got)
		}
	}
}

func TestRowsPerBandPanicsOnZeroCount(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	RowsPerBand(10, 0)
}

func TestPartitionCoversEveryRowOnce(t *testing.T) {
	for _, height := range []int{1, 2, 7, 10, 33, 100} {
		for _, count := range []int{1, 2, 3, 4, 8, 64} {
			resolution := mandelbrot.Resolution{Width: 5, Height: height}

			bands := Partition(resolution, viewport, count)

			if len(bands) > count {
				t.Fatalf("%d rows, %d bands: got %d bands", height, count, len(bands))
			}
			rows := RowsPerBand(height, count)
			next := 0
			for i, band := range bands {
				if band.ID != i || band.Top != next {
					t.Fatalf("%d rows, %d bands: band %s does not start at row %d", height, count, &band, next)
				}
				if band.Height <= 0 || band.Height > rows {
					t.Fatalf("%d rows, %d bands: band %s is not between 1 and %d rows", height, count, &band, rows)
				}
				if i < len(bands)-1 && band.Height != rows {
					t.Fatalf("%d rows, %d bands: only the last band may be short, got %s", height, count, &band)
				}
				next = band.Bottom()
			}
			if next != height {
				t.Fatalf("%d rows, %d bands: bands end at row %d", height, count, next)
			}
		}
	}
}

func TestPartitionViewports(t *testing.T) {
	resolution := mandelbrot.Resolution{Width: 4, Height: 4}

	bands := Partition(resolution, viewport, 2)

	if len(bands) != 2 {
		t.Fatalf("expected 2 bands, actual %d", len(bands))
	}
	expected := []mandelbrot.Viewport{
		{UpperLeft: complex(-2, 1), LowerRight: complex(1, 0)},
		{UpperLeft: complex(-2, 0), LowerRight: complex(1, -1)},
	}
	for i, band := range bands {
		if band.Viewport != expected[i] {
			t.Errorf("band %d: expected %s, actual %s", i, expected[i], band.Viewport)
		}
	}
	if Heights(bands)[0] != 2 || Heights(bands)[1] != 2 {
		t.Errorf("expected heights [2 2], actual %v", Heights(bands))
	}
}

func TestPartitionEmpty(t *testing.T) {
	for _, resolution := range []mandelbrot.Resolution{{Width: 0, Height: 5}, {Width: 5, Height: 0}} {
		if bands := Partition(resolution, viewport, 4); len(bands) != 0 {
			t.Fatalf("%s: expected no bands, actual %d", resolution, len(bands))
		}
	}
}

func TestCoordinatePoint(t *testing.T) {
	c := Coordinate{Column: 25, Row: 75}
	resolution := mandelbrot.Resolution{Width: 100, Height: 100}
	square := mandelbrot.Viewport{UpperLeft: complex(-1, 1), LowerRight: complex(1, -1)}

	if got := c.Point(resolution, square); got != complex(-0.5, -0.5) {
		t.Fatalf("%s: expected (-0.5-0.5i), actual %v", &c, got)
	}
}
