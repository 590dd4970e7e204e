// Package netpbm reads and writes the Netpbm raster formats: PBM bitmaps
// (P1/P4), PGM graymaps (P2/P5), PPM pixmaps (P3/P6), and PAM (P7).
//
// Unlike the image codecs in the standard library, this package works at
// the row level. A caller reads one header, then pulls rows one at a time,
// which lets a filter process arbitrarily large images in constant memory
// and keeps a piped input stream in sync: every row is consumed exactly
// once, in order, even when its content is discarded.
//
// # Sample Convention
//
// Rows are exposed as flat slices of uint16 samples, Width×Depth samples
// per row, in the value range [0, Maxval]. Bitmap (PBM) rows follow the
// PAM convention: sample 0 is black and sample 1 is white, regardless of
// the inverted bit encoding in the file. The packed-row functions bypass
// this and operate on raw file bits, where a 1 bit is black.
//
// # Multi-Image Streams
//
// A Netpbm stream may carry several concatenated images. After all rows
// of one image have been consumed, MoreImagesFollow reports whether
// another header is waiting.
//
// # Output
//
// The Writer emits only the raw (binary) variants and PAM. Plain input is
// accepted and re-encoded raw, which matches the behavior of the Netpbm
// pam library.
package netpbm
