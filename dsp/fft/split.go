package fft

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-imgfft/dsp/buffer"
	"github.com/cwbudde/algo-imgfft/dsp/core"
)

// splitMinBlock is the butterfly span below which the scalar loop beats
// dispatching to block kernels.
const splitMinBlock = 16

var splitPool = buffer.NewPool[float64]()

// SplitInPlace transforms the complex sequence re + i*im in place. The two
// planes must have the same power-of-two length. Stages whose butterfly
// span is at least splitMinBlock compute the four twiddle products with
// vecmath.MulBlock; the add/subtract combine runs in one scalar pass.
func SplitInPlace(re, im []float64) error {
	n := len(re)
	if len(im) != n {
		return fmt.Errorf("%w: re=%d im=%d", ErrPlaneMismatch, n, len(im))
	}
	if n <= 1 {
		return nil
	}
	if !core.IsPowerOfTwo(n) {
		return fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}

	bitReverse(re)
	bitReverse(im)
	tw := twiddles(n)

	scratch := splitPool.Get(0)
	defer splitPool.Put(scratch)

	// wr, wi, wr*ore, wi*oim, wr*oim, wi*ore
	planes := scratch.Split(6, n/2)

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		stride := n / size

		if half < splitMinBlock {
			splitScalarStage(re, im, tw, size, stride)
			continue
		}

		wr, wi := planes[0][:half], planes[1][:half]
		for k := range half {
			w := tw[k*stride]
			wr[k] = real(w)
			wi[k] = imag(w)
		}

		p0, p1 := planes[2][:half], planes[3][:half]
		p2, p3 := planes[4][:half], planes[5][:half]

		for base := 0; base < n; base += size {
			ere, eim := re[base:base+half], im[base:base+half]
			ore, oim := re[base+half:base+size], im[base+half:base+size]

			vecmath.MulBlock(p0, wr, ore)
			vecmath.MulBlock(p1, wi, oim)
			vecmath.MulBlock(p2, wr, oim)
			vecmath.MulBlock(p3, wi, ore)

			for k := range half {
				tr := p0[k] - p1[k]
				ti := p2[k] + p3[k]
				er, ei := ere[k], eim[k]
				ere[k], eim[k] = er+tr, ei+ti
				ore[k], oim[k] = er-tr, ei-ti
			}
		}
	}

	return nil
}

func splitScalarStage(re, im []float64, tw []complex128, size, stride int) {
	n := len(re)
	half := size >> 1
	for base := 0; base < n; base += size {
		for k := range half {
			w := tw[k*stride]
			a, b := base+k, base+k+half
			tr := real(w)*re[b] - imag(w)*im[b]
			ti := real(w)*im[b] + imag(w)*re[b]
			re[a], re[b] = re[a]+tr, re[a]-tr
			im[a], im[b] = im[a]+ti, im[a]-ti
		}
	}
}

// splitTransform runs SplitInPlace over a complex slice using pooled planes.
func splitTransform(x []complex128) error {
	n := len(x)
	scratch := splitPool.Get(0)
	defer splitPool.Put(scratch)

	planes := scratch.Split(2, n)
	re, im := planes[0], planes[1]
	for i, v := range x {
		re[i] = real(v)
		im[i] = imag(v)
	}

	if err := SplitInPlace(re, im); err != nil {
		return err
	}

	for i := range x {
		x[i] = complex(re[i], im[i])
	}
	return nil
}
