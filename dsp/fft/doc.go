// Package fft computes the forward discrete Fourier transform of complex
// sequences.
//
// Four kernels produce the same unnormalized spectrum X[k] = sum x[n]
// exp(-2*pi*i*k*n/N) for power-of-two lengths:
//
//   - [KernelRecursive]: the reference recursive radix-2 decimation-in-time,
//     allocating even/odd halves at every level.
//   - [KernelIterative]: in-place bit-reversal permutation followed by
//     iterative butterflies on one caller-owned buffer (default).
//   - [KernelSplit]: the iterative scheme on split real/imaginary planes,
//     with twiddle products computed by algo-vecmath block multiplies.
//   - [KernelAlgoFFT]: plan-based transform from algo-fft.
//
// Lengths that are not a power of two are handled according to the
// engine's [SizePolicy]: rejected with [ErrNotPowerOfTwo], zero-padded to
// the next power of two, or transformed at their exact length with
// Bluestein's chirp-z algorithm.
//
// No normalization is applied and there is no inverse transform.
package fft
