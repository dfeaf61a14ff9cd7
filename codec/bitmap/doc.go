// Package bitmap reads and writes uncompressed 24-bit device-independent
// bitmaps: a 14-byte file header, a 40-byte info header and a pixel array of
// blue-green-red triples, all tightly packed with no padding between
// records and no row-stride alignment.
//
// The codec trusts the declared width and height. Bit depth, compression and
// the pixel-array offset are not validated on read; [InfoHeader.Check]
// reports whether a header describes the supported variant.
package bitmap
