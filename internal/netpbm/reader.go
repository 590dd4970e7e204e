package netpbm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxMaxval is the largest sample value the Netpbm formats can carry
// (two bytes per raw sample).
const maxMaxval = 65535

// headerValueLimit bounds individual header integers so that hostile
// input cannot overflow later width*depth arithmetic.
const headerValueLimit = 1 << 30

// A Reader decodes a Netpbm stream image by image, row by row. It never
// buffers more than one encoded row.
type Reader struct {
	br      *bufio.Reader
	scratch []byte
}

// NewReader returns a Reader consuming the given stream.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReaderSize(r, 1<<16)}
}

// ReadHeader reads and validates the header of the next image in the
// stream. Malformed input yields a FormatError; transport failures are
// returned wrapped.
func (r *Reader) ReadHeader() (Header, error) {
	var magic [2]byte
	if _, err := io.ReadFull(r.br, magic[:]); err != nil {
		return Header{}, fmt.Errorf("netpbm: reading magic number: %w", err)
	}
	if magic[0] != 'P' || magic[1] < '1' || magic[1] > '7' {
		return Header{}, FormatError(fmt.Sprintf("bad magic number %q", magic))
	}
	f := Format(magic[1] - '0')
	if f == PAM {
		return r.readPAMHeader()
	}

	h := Header{Format: f}
	var err error
	if h.Width, err = r.readHeaderInt(); err != nil {
		return Header{}, err
	}
	if h.Height, err = r.readHeaderInt(); err != nil {
		return Header{}, err
	}
	switch {
	case f.Bitmap():
		h.Depth, h.Maxval = 1, 1
	case f == PGMPlain || f == PGMRaw:
		h.Depth = 1
	default:
		h.Depth = 3
	}
	if !f.Bitmap() {
		if h.Maxval, err = r.readHeaderInt(); err != nil {
			return Header{}, err
		}
	}
	if err := validateHeader(h); err != nil {
		return Header{}, err
	}
	return h, nil
}

func (r *Reader) readPAMHeader() (Header, error) {
	h := Header{Format: PAM}

	if b, err := r.br.ReadByte(); err != nil || b != '\n' {
		return Header{}, FormatError("P7 magic number not followed by newline")
	}

	var haveWidth, haveHeight, haveDepth, haveMaxval bool
	for {
		raw, err := r.br.ReadString('\n')
		if err != nil {
			return Header{}, FormatError("PAM header not terminated by ENDHDR")
		}
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		key := fields[0]
		if key == "ENDHDR" {
			break
		}
		if key == "TUPLTYPE" {
			// The value may contain spaces; repeated lines accumulate.
			v := strings.TrimSpace(strings.TrimPrefix(line, "TUPLTYPE"))
			if h.TupleType == "" {
				h.TupleType = v
			} else {
				h.TupleType += " " + v
			}
			continue
		}
		if len(fields) != 2 {
			return Header{}, FormatError("malformed PAM header line " + strconv.Quote(line))
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 || n > headerValueLimit {
			return Header{}, FormatError("bad value in PAM header line " + strconv.Quote(line))
		}
		switch key {
		case "WIDTH":
			h.Width, haveWidth = n, true
		case "HEIGHT":
			h.Height, haveHeight = n, true
		case "DEPTH":
			h.Depth, haveDepth = n, true
		case "MAXVAL":
			h.Maxval, haveMaxval = n, true
		default:
			return Header{}, FormatError("unknown PAM header field " + strconv.Quote(key))
		}
	}
	if !haveWidth || !haveHeight || !haveDepth || !haveMaxval {
		return Header{}, FormatError("PAM header is missing a required field")
	}
	if err := validateHeader(h); err != nil {
		return Header{}, err
	}
	return h, nil
}

func validateHeader(h Header) error {
	if h.Width < 1 || h.Height < 1 {
		return FormatError(fmt.Sprintf("image dimensions %dx%d are not positive", h.Width, h.Height))
	}
	if h.Depth < 1 {
		return FormatError("depth is not positive")
	}
	if h.Maxval < 1 || h.Maxval > maxMaxval {
		return FormatError(fmt.Sprintf("maxval %d is outside [1, %d]", h.Maxval, maxMaxval))
	}
	return nil
}

// readHeaderInt reads one whitespace-delimited decimal value, skipping
// comments, and consumes the single whitespace byte that terminates it.
// Header fields and plain-format raster samples share this syntax.
func (r *Reader) readHeaderInt() (int, error) {
	if err := r.skipSpaceAndComments(); err != nil {
		return 0, err
	}
	n, digits := 0, 0
	for {
		b, err := r.br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("netpbm: reading header: %w", err)
		}
		if b >= '0' && b <= '9' {
			n = n*10 + int(b-'0')
			if n > headerValueLimit {
				return 0, FormatError("numeric value out of range")
			}
			digits++
			continue
		}
		if !isSpace(b) {
			return 0, FormatError(fmt.Sprintf("unexpected byte %q", b))
		}
		break
	}
	if digits == 0 {
		return 0, FormatError("missing numeric value")
	}
	return n, nil
}

func (r *Reader) skipSpaceAndComments() error {
	for {
		b, err := r.br.ReadByte()
		if err != nil {
			if err == io.EOF {
				return FormatError("unexpected end of input")
			}
			return fmt.Errorf("netpbm: reading header: %w", err)
		}
		if isSpace(b) {
			continue
		}
		if b == '#' {
			if _, err := r.br.ReadString('\n'); err != nil {
				return FormatError("unterminated comment")
			}
			continue
		}
		return r.br.UnreadByte()
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

// ReadRow reads exactly one row of the image described by h into dst,
// which must hold h.SamplesPerRow() samples. A nil dst reads and discards
// the row, which keeps a non-seekable stream in sync. Bitmap rows are
// delivered in the PAM convention (0 = black, 1 = white).
func (r *Reader) ReadRow(h Header, dst []uint16) error {
	if dst != nil && len(dst) < h.SamplesPerRow() {
		return fmt.Errorf("netpbm: row buffer holds %d samples, need %d", len(dst), h.SamplesPerRow())
	}
	switch {
	case h.Format == PBMRaw:
		return r.readRawBitmapRow(h, dst)
	case h.Format == PBMPlain:
		return r.readPlainBitmapRow(h, dst)
	case h.Format.Plain():
		return r.readPlainRow(h, dst)
	default:
		return r.readRawRow(h, dst)
	}
}

func (r *Reader) readRawRow(h Header, dst []uint16) error {
	n := h.SamplesPerRow() * h.BytesPerSample()
	if dst == nil {
		if _, err := r.br.Discard(n); err != nil {
			return rowReadErr(err)
		}
		return nil
	}
	buf := r.grow(n)
	if _, err := io.ReadFull(r.br, buf); err != nil {
		return rowReadErr(err)
	}
	if h.BytesPerSample() == 1 {
		for i := range dst[:h.SamplesPerRow()] {
			dst[i] = uint16(buf[i])
		}
	} else {
		for i := range dst[:h.SamplesPerRow()] {
			dst[i] = uint16(buf[2*i])<<8 | uint16(buf[2*i+1])
		}
	}
	return nil
}

func (r *Reader) readRawBitmapRow(h Header, dst []uint16) error {
	n := h.PackedRowBytes()
	if dst == nil {
		if _, err := r.br.Discard(n); err != nil {
			return rowReadErr(err)
		}
		return nil
	}
	buf := r.grow(n)
	if _, err := io.ReadFull(r.br, buf); err != nil {
		return rowReadErr(err)
	}
	for col := 0; col < h.Width; col++ {
		bit := buf[col/8] >> (7 - col%8) & 1
		dst[col] = uint16(1 - bit) // file bit 1 is black, sample 0 is black
	}
	return nil
}

func (r *Reader) readPlainBitmapRow(h Header, dst []uint16) error {
	for col := 0; col < h.Width; col++ {
		if err := r.skipSpaceAndComments(); err != nil {
			return err
		}
		b, err := r.br.ReadByte()
		if err != nil {
			return rowReadErr(err)
		}
		if b != '0' && b != '1' {
			return FormatError(fmt.Sprintf("unexpected byte %q in plain bitmap raster", b))
		}
		if dst != nil {
			dst[col] = uint16('1' - b) // '1' is black in PBM, sample 0 is black
		}
	}
	return nil
}

func (r *Reader) readPlainRow(h Header, dst []uint16) error {
	for i := 0; i < h.SamplesPerRow(); i++ {
		v, err := r.readHeaderInt()
		if err != nil {
			return err
		}
		if v > h.Maxval {
			return FormatError(fmt.Sprintf("sample value %d exceeds maxval %d", v, h.Maxval))
		}
		if dst != nil {
			dst[i] = uint16(v)
		}
	}
	return nil
}

// MoreImagesFollow reports whether another image header is waiting after
// the current image's raster has been fully consumed. Whitespace between
// concatenated images is tolerated.
func (r *Reader) MoreImagesFollow() (bool, error) {
	for {
		b, err := r.br.ReadByte()
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("netpbm: checking for next image: %w", err)
		}
		if !isSpace(b) {
			if err := r.br.UnreadByte(); err != nil {
				return false, err
			}
			return true, nil
		}
	}
}

func (r *Reader) fillRaw(buf []byte) error {
	if _, err := io.ReadFull(r.br, buf); err != nil {
		return rowReadErr(err)
	}
	return nil
}

func (r *Reader) grow(n int) []byte {
	if cap(r.scratch) < n {
		r.scratch = make([]byte, n)
	}
	return r.scratch[:n]
}

func rowReadErr(err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("netpbm: reading row: %w", err)
}
