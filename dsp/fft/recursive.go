package fft

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-imgfft/dsp/core"
)

// Recursive transforms x in place with recursive radix-2 decimation in
// time. Each level copies the even- and odd-indexed elements into freshly
// allocated halves, transforms them, and recombines with the twiddle
// W_k = (cos(-2*pi*k/N), sin(-2*pi*k/N)).
//
// Lengths 0 and 1 are returned unchanged. Any other length must be a power
// of two.
func Recursive(x []complex128) error {
	n := len(x)
	if n <= 1 {
		return nil
	}
	if !core.IsPowerOfTwo(n) {
		return fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}

	recursive(x)
	return nil
}

func recursive(x []complex128) {
	n := len(x)
	if n <= 1 {
		return
	}

	half := n / 2
	even := make([]complex128, half)
	odd := make([]complex128, half)
	for i := range half {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}

	recursive(even)
	recursive(odd)

	for k := range half {
		angle := -2 * math.Pi * float64(k) / float64(n)
		w := complex(math.Cos(angle), math.Sin(angle))
		t := w * odd[k]
		x[k] = even[k] + t
		x[k+half] = even[k] - t
	}
}
