// Package cut extracts a rectangular region from a streamed Netpbm image,
// optionally padding beyond the original bounds with black.
//
// The package is a single forward pass over a non-seekable stream: it
// reads one header, resolves the user's edge and size requests into a
// concrete rectangle, writes one output header, and streams rows through.
// Every row of every input image is read exactly once, in order, whether
// or not its content survives the cut — skipping a read would break a
// pipe feeding the stream and desynchronize any images that follow.
//
// # Rectangle Resolution
//
// Up to six values describe the cut: left, right, top, bottom, width, and
// height. Any may be unspecified, and edges may be given relative to the
// far side of the image. Per axis, at most two of {near edge, far edge,
// size} may be specified; ResolveRect reconciles them into inclusive
// image coordinates, which may lie outside the image when padding is
// enabled.
//
// # Row Cutting
//
// The general path builds a per-image slot plan mapping input columns and
// output columns onto a small arena of shared sample cells (copy cells,
// one discard cell, one black cell), so each row costs one read, one
// gather, and one write. Bitmap (PBM) images take a fast path that moves
// bit-packed rows directly with bit-offset-aware copies.
package cut
