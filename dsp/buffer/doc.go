// Package buffer provides reusable sample buffers and pools for the
// transform scratch memory of the Fourier engine. Buffers hold either real
// planes ([]float64) or complex sequences ([]complex128); kernels accept raw
// slices and use Data() to bridge.
package buffer
