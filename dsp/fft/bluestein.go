package fft

import (
	"math"

	"github.com/cwbudde/algo-imgfft/dsp/buffer"
	"github.com/cwbudde/algo-imgfft/dsp/core"
)

var bluesteinPool = buffer.NewPool[complex128]()

// bluestein evaluates the length-n DFT of x (any n >= 2) as a circular
// convolution of length m = next power of two >= 2n-1, computed with the
// radix-2 forward kernel:
//
//	X[k] = conj(w[k]) * sum_j (x[j] * conj(w[j])) * w[k-j],  w[j] = exp(i*pi*j^2/n)
//
// The result is written back into x.
func bluestein(x []complex128, forward func([]complex128) error) error {
	n := len(x)
	m := core.NextPowerOfTwo(2*n - 1)

	// chirp[j] = exp(-i*pi*j^2/n); j^2 is reduced mod 2n to keep the angle
	// small for long sequences.
	chirp := make([]complex128, n)
	for j := range chirp {
		jj := (j * j) % (2 * n)
		angle := -math.Pi * float64(jj) / float64(n)
		chirp[j] = complex(math.Cos(angle), math.Sin(angle))
	}

	scratch := bluesteinPool.Get(0)
	defer bluesteinPool.Put(scratch)

	planes := scratch.Split(2, m)
	a, b := planes[0], planes[1]

	for j, v := range x {
		a[j] = v * chirp[j]
	}

	b[0] = conj(chirp[0])
	for j := 1; j < n; j++ {
		c := conj(chirp[j])
		b[j] = c
		b[m-j] = c
	}

	if err := forward(a); err != nil {
		return err
	}
	if err := forward(b); err != nil {
		return err
	}

	// inverse of the pointwise product via conj(FFT(conj(.)))/m
	for i := range a {
		a[i] = conj(a[i] * b[i])
	}
	if err := forward(a); err != nil {
		return err
	}

	scale := 1 / float64(m)
	for k := range x {
		c := conj(a[k])
		x[k] = complex(real(c)*scale, imag(c)*scale) * chirp[k]
	}

	return nil
}

func conj(c complex128) complex128 {
	return complex(real(c), -imag(c))
}
