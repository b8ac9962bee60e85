package mandelbrot

import "math/bits"

// Pixel is the set of unsigned integer types an intensity can be stored as.
type Pixel interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// MaxValue returns the brightest value representable by P.
func MaxValue[P Pixel]() P {
	var zero P
	return ^zero
}

// FromCount converts an iteration count into P, saturating at MaxValue.
func FromCount[P Pixel](count uint64) P {
	if count > uint64(MaxValue[P]()) {
		return MaxValue[P]()
	}
	return P(count)
}

// ToIntensity maps an escape result to a pixel value. Bounded points are black, points escaping on the first
// iteration are at full brightness and the brightness falls linearly with the iteration count. The count is
// scaled by max/limit so limits above the pixel maximum never wrap around.
func ToIntensity[P Pixel](result IterationResult, limit uint) P {
	if !result.Escaped {
		return 0
	}
	maximum := uint64(MaxValue[P]())
	count := uint64(result.Count)
	if count >= uint64(limit) {
		count = uint64(limit) - 1
	}
	if uint64(limit) == maximum {
		return FromCount[P](maximum - count)
	}
	hi, lo := bits.Mul64(count, maximum)
	scaled, _ := bits.Div64(hi, lo, uint64(limit))
	return FromCount[P](maximum - scaled)
}
