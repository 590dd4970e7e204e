package netpbm

import (
	"bufio"
	"fmt"
	"io"
)

// A Writer encodes Netpbm images row by row. It emits only the raw
// format variants and PAM; callers converting a plain input normalize
// the header with Format.Raw first.
type Writer struct {
	bw      *bufio.Writer
	scratch []byte
}

// NewWriter returns a Writer emitting to the given stream. Call Flush
// when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriterSize(w, 1<<16)}
}

// WriteHeader writes the header of one output image.
func (w *Writer) WriteHeader(h Header) error {
	var err error
	switch h.Format {
	case PBMRaw:
		_, err = fmt.Fprintf(w.bw, "P4\n%d %d\n", h.Width, h.Height)
	case PGMRaw, PPMRaw:
		_, err = fmt.Fprintf(w.bw, "%s\n%d %d\n%d\n", h.Format.Magic(), h.Width, h.Height, h.Maxval)
	case PAM:
		_, err = fmt.Fprintf(w.bw, "P7\nWIDTH %d\nHEIGHT %d\nDEPTH %d\nMAXVAL %d\n",
			h.Width, h.Height, h.Depth, h.Maxval)
		if err == nil && h.TupleType != "" {
			_, err = fmt.Fprintf(w.bw, "TUPLTYPE %s\n", h.TupleType)
		}
		if err == nil {
			_, err = io.WriteString(w.bw, "ENDHDR\n")
		}
	default:
		return fmt.Errorf("netpbm: cannot write %v; normalize with Format.Raw first", h.Format)
	}
	if err != nil {
		return fmt.Errorf("netpbm: writing header: %w", err)
	}
	return nil
}

// WriteRow writes one row of samples in the encoding h describes. Bitmap
// rows follow the PAM convention (sample 0 is black) and are bit-packed
// on the way out.
func (w *Writer) WriteRow(h Header, row []uint16) error {
	buf, err := w.encodeRow(h, row)
	if err != nil {
		return err
	}
	if _, err := w.bw.Write(buf); err != nil {
		return rowWriteErr(err)
	}
	return nil
}

// WriteRowRepeated writes the same row count times. The row is encoded
// once.
func (w *Writer) WriteRowRepeated(h Header, row []uint16, count int) error {
	buf, err := w.encodeRow(h, row)
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		if _, err := w.bw.Write(buf); err != nil {
			return rowWriteErr(err)
		}
	}
	return nil
}

func (w *Writer) encodeRow(h Header, row []uint16) ([]byte, error) {
	if len(row) < h.SamplesPerRow() {
		return nil, fmt.Errorf("netpbm: row holds %d samples, need %d", len(row), h.SamplesPerRow())
	}
	if h.Format.Bitmap() {
		buf := w.grow(h.PackedRowBytes())
		for i := range buf {
			buf[i] = 0
		}
		for col := 0; col < h.Width; col++ {
			if row[col] == 0 { // sample 0 is black, file bit 1 is black
				buf[col/8] |= 0x80 >> (col % 8)
			}
		}
		return buf, nil
	}
	n := h.SamplesPerRow()
	if h.BytesPerSample() == 1 {
		buf := w.grow(n)
		for i := 0; i < n; i++ {
			buf[i] = byte(row[i])
		}
		return buf, nil
	}
	buf := w.grow(2 * n)
	for i := 0; i < n; i++ {
		buf[2*i] = byte(row[i] >> 8)
		buf[2*i+1] = byte(row[i])
	}
	return buf, nil
}

// Flush writes any buffered output to the underlying stream.
func (w *Writer) Flush() error {
	if err := w.bw.Flush(); err != nil {
		return fmt.Errorf("netpbm: flushing output: %w", err)
	}
	return nil
}

func (w *Writer) grow(n int) []byte {
	if cap(w.scratch) < n {
		w.scratch = make([]byte, n)
	}
	return w.scratch[:n]
}

func rowWriteErr(err error) error {
	return fmt.Errorf("netpbm: writing row: %w", err)
}
