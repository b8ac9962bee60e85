package mandelbrot

import (
	"math/cmplx"
	"testing"
)

func TestEscapeTime(t *testing.T) {
	tests := []struct {
		name     string
		point    complex128
		limit    uint
		expected IterationResult
	}{
		{"origin", 0, 255, Bounded()},
		{"origin with one iteration", 0, 1, Bounded()},
		{"period two cycle", -1, 1000, Bounded()},
		{"main cardioid", complex(-0.5, 0), 50, Bounded()},
		{"cardioid cusp", complex(0.25, 0), 50, Bounded()},
		{"far outside", complex(3, 0), 255, Divergent(0)},
		{"outside on a diagonal", complex(-2, 1), 50, Divergent(0)},
		{"one", 1, 255, Divergent(2)},
		{"one with a small limit", 1, 2, Bounded()},
		{"two stays on the circle once", 2, 255, Divergent(1)},
		{"minus two stays on the circle", -2, 255, Bounded()},
		{"two i", complex(0, 2), 255, Divergent(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeTime(tt.point, tt.limit); got != tt.expected {
				t.Fatalf("EscapeTime(%v, %d): expected %s, actual %s", tt.point, tt.limit, tt.expected, got)
			}
		})
	}
}

func TestEscapeTimeOutsideRadiusTwo(t *testing.T) {
	for i := 0; i < 64; i++ {
		// points just outside the circle of radius two, all the way around
		c := cmplx.Rect(2.0001+float64(i%4), float64(i)*0.1)
		if got := EscapeTime(c, 255); got != Divergent(0) {
			t.Fatalf("EscapeTime(%v): expected Divergent(0), actual %s", c, got)
		}
	}
}

func TestEscapeTimeCountBelowLimit(t *testing.T) {
	const limit = 30
	for re := -2.0; re <= 1.0; re += 0.05 {
		for im := -1.0; im <= 1.0; im += 0.05 {
			result := EscapeTime(complex(re, im), limit)
			if result.Escaped && result.Count >= limit {
				t.Fatalf("EscapeTime(%v): count %d is not below the limit %d", complex(re, im), result.Count, limit)
			}
		}
	}
}

func BenchmarkEscapeTime(b *testing.B) {
	points := []complex128{0, complex(-0.75, 0.1), complex(0.3, 0.5), complex(-1.25, 0.02)}
	for i := 0; i < b.N; i++ {
		for _, p := range points {
			EscapeTime(p, 255)
		}
	}
}
