package netpbm

import "fmt"

// Format identifies one of the Netpbm raster encodings by its magic number.
type Format int

// The seven Netpbm formats. The "plain" variants encode samples as ASCII
// decimal numbers; the "raw" variants encode them in binary.
const (
	FormatInvalid Format = iota
	PBMPlain             // P1
	PGMPlain             // P2
	PPMPlain             // P3
	PBMRaw               // P4
	PGMRaw               // P5
	PPMRaw               // P6
	PAM                  // P7
)

// Magic returns the two-character magic number for the format, e.g. "P4".
func (f Format) Magic() string {
	if f < PBMPlain || f > PAM {
		return "P?"
	}
	return fmt.Sprintf("P%d", int(f))
}

// Plain reports whether the format encodes samples as ASCII text.
func (f Format) Plain() bool {
	return f == PBMPlain || f == PGMPlain || f == PPMPlain
}

// Bitmap reports whether the format is a 1-bit PBM variant.
func (f Format) Bitmap() bool {
	return f == PBMPlain || f == PBMRaw
}

// Raw returns the binary variant of the same format family. PAM and the
// raw formats map to themselves.
func (f Format) Raw() Format {
	switch f {
	case PBMPlain:
		return PBMRaw
	case PGMPlain:
		return PGMRaw
	case PPMPlain:
		return PPMRaw
	default:
		return f
	}
}

func (f Format) String() string {
	switch f {
	case PBMPlain, PBMRaw:
		return "PBM (" + f.Magic() + ")"
	case PGMPlain, PGMRaw:
		return "PGM (" + f.Magic() + ")"
	case PPMPlain, PPMRaw:
		return "PPM (" + f.Magic() + ")"
	case PAM:
		return "PAM (P7)"
	}
	return "invalid format"
}

// A Header describes one image of a Netpbm stream: its dimensions, the
// number of samples per pixel, the maximum sample value, and the format it
// was (or will be) encoded in. TupleType is meaningful only for PAM.
type Header struct {
	Width  int
	Height int
	Depth  int
	Maxval int

	Format    Format
	TupleType string
}

// BytesPerSample returns the encoded size of one raw sample: 1 byte for
// maxval below 256, otherwise 2 bytes big-endian.
func (h Header) BytesPerSample() int {
	if h.Maxval < 256 {
		return 1
	}
	return 2
}

// SamplesPerRow returns the number of samples in one decoded row.
func (h Header) SamplesPerRow() int {
	return h.Width * h.Depth
}

// PackedRowBytes returns the byte length of one bit-packed PBM row.
func (h Header) PackedRowBytes() int {
	return packedBytes(h.Width)
}

func packedBytes(bits int) int {
	return (bits + 7) / 8
}

// A FormatError reports that the input stream is not a well-formed Netpbm
// image.
type FormatError string

func (e FormatError) Error() string {
	return "netpbm: invalid format: " + string(e)
}
