// Package spectrum serializes transform output.
//
// Two artifact formats are supported:
//
//   - binary: a bare array of (real, imag) float64 pairs in native byte
//     order, 16 bytes per sample, no header;
//   - text: one "<real> <imag>" line per sample, fixed-point decimals.
//
// Writers accept any [ComplexBins] source. Path-based writers commit through
// a temporary file so a failed write never leaves a truncated artifact.
package spectrum
