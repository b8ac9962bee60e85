package mandelbrot

import "fmt"

// IterationResult is the classification of a single point: either it escaped after Count iterations or it
// stayed bounded for the whole iteration budget.
type IterationResult struct {
	Count   uint
	Escaped bool
}

func Divergent(count uint) IterationResult {
	return IterationResult{Count: count, Escaped: true}
}

func Bounded() IterationResult {
	return IterationResult{}
}

func (ir IterationResult) String() string {
	if ir.Escaped {
		return fmt.Sprintf("Divergent(%d)", ir.Count)
	}
	return "Bounded"
}

// EscapeTime iterates z = z*z + c starting from zero and reports the iteration at which |z| first exceeds 2.
// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Optimized_escape_time_algorithms
func EscapeTime(c complex128, limit uint) IterationResult {
	x0, y0 := real(c), imag(c)
	x, y, x2, y2 := 0.0, 0.0, 0.0, 0.0
	for iteration := uint(0); iteration < limit; iteration++ {
		y = 2*x*y + y0
		x = x2 - y2 + x0
		x2 = x * x
		y2 = y * y

		// Compare the squared magnitude to avoid the square root
		if x2+y2 > 4.0 {
			return Divergent(iteration)
		}
	}
	return Bounded()
}
