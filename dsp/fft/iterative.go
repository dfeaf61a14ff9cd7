package fft

import (
	"fmt"

	"github.com/cwbudde/algo-imgfft/dsp/core"
)

// InPlace transforms x in place using a bit-reversal permutation followed by
// log2(N) passes of radix-2 butterflies. Output ordering matches
// [Recursive]. No memory is allocated beyond the cached twiddle table.
//
// Lengths 0 and 1 are returned unchanged. Any other length must be a power
// of two.
func InPlace(x []complex128) error {
	n := len(x)
	if n <= 1 {
		return nil
	}
	if !core.IsPowerOfTwo(n) {
		return fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}

	bitReverse(x)
	tw := twiddles(n)

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		stride := n / size
		for base := 0; base < n; base += size {
			for k := range half {
				t := tw[k*stride] * x[base+k+half]
				e := x[base+k]
				x[base+k] = e + t
				x[base+k+half] = e - t
			}
		}
	}

	return nil
}
