package fft

import (
	"math"
	"sync"
)

// maxCachedTwiddles is the largest length whose table is kept in
// twiddleCache. Larger tables are rebuilt per call.
const maxCachedTwiddles = 1 << 16

// twiddleCache maps a power-of-two length n to exp(-2*pi*i*k/n), k < n/2.
var twiddleCache sync.Map

func twiddles(n int) []complex128 {
	if n > maxCachedTwiddles {
		return newTwiddles(n)
	}
	if v, ok := twiddleCache.Load(n); ok {
		return v.([]complex128)
	}

	v, _ := twiddleCache.LoadOrStore(n, newTwiddles(n))
	return v.([]complex128)
}

func newTwiddles(n int) []complex128 {
	tw := make([]complex128, n/2)
	for k := range tw {
		angle := -2 * math.Pi * float64(k) / float64(n)
		tw[k] = complex(math.Cos(angle), math.Sin(angle))
	}
	return tw
}

// bitReverse permutes x into bit-reversed index order. len(x) must be a
// power of two.
func bitReverse[T any](x []T) {
	n := len(x)
	j := 0
	for i := 1; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j |= bit
		if i < j {
			x[i], x[j] = x[j], x[i]
		}
	}
}
