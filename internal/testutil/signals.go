package testutil

import (
	"math"
	"math/cmplx"
	"math/rand"
)

// DeterministicNoise generates a real-valued sequence (zero imaginary parts)
// with a fixed seed for reproducibility. Values lie in [0, amplitude).
func DeterministicNoise(seed int64, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = complex(rng.Float64()*amplitude, 0)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []complex128 {
	out := make([]complex128, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued real sequence.
func DC(value float64, length int) []complex128 {
	out := make([]complex128, length)
	for i := range out {
		out[i] = complex(value, 0)
	}
	return out
}

// NaiveDFT evaluates the forward DFT by definition in O(N^2). It is the
// reference every fast kernel is checked against.
func NaiveDFT(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := range out {
		var sum complex128
		for j, v := range x {
			angle := -2 * math.Pi * float64(k*j%n) / float64(n)
			sum += v * cmplx.Rect(1, angle)
		}
		out[k] = sum
	}
	return out
}
