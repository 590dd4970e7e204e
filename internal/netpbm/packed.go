package netpbm

import "fmt"

// The packed-row functions operate on PBM rows in their file encoding:
// one bit per pixel, packed MSB-first, where a 1 bit is black. Bit i of a
// buffer lives at byte i/8, mask 0x80>>(i%8).

// ReadPackedRow reads one bitmap row of the image described by h and
// deposits exactly h.Width bits into bitrow starting at bit bitOffset.
// No other bit of bitrow is modified, so padding prepared around the
// deposit window survives the read.
func (r *Reader) ReadPackedRow(h Header, bitrow []byte, bitOffset int) error {
	if !h.Format.Bitmap() {
		return fmt.Errorf("netpbm: packed row read on %v", h.Format)
	}
	buf := r.grow(h.PackedRowBytes())
	if h.Format == PBMRaw {
		if err := r.fillRaw(buf); err != nil {
			return err
		}
	} else {
		for i := range buf {
			buf[i] = 0
		}
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
			if b == '1' {
				buf[col/8] |= 0x80 >> (col % 8)
			}
		}
	}
	copyBits(bitrow, bitOffset, buf, 0, h.Width)
	return nil
}

// WritePackedRow writes width bits taken from bitrow starting at bit
// bitOffset as one raw PBM row. Trailing pad bits of the last byte are
// written as zero.
func (w *Writer) WritePackedRow(bitrow []byte, width, bitOffset int) error {
	out := w.grow(packedBytes(width))
	out[len(out)-1] = 0
	copyBits(out, 0, bitrow, bitOffset, width)
	if _, err := w.bw.Write(out); err != nil {
		return rowWriteErr(err)
	}
	return nil
}

// PackedBlackRow overwrites the first cols bits of bitrow with black
// (1) bits. Pad bits of the final touched byte are left zero, so the row
// is ready to be written as-is.
func PackedBlackRow(bitrow []byte, cols int) {
	n := packedBytes(cols)
	for i := 0; i < n; i++ {
		bitrow[i] = 0xff
	}
	if cols%8 > 0 {
		bitrow[n-1] <<= 8 - cols%8
	}
}

// copyBits copies n bits from src starting at bit srcOff into dst
// starting at bit dstOff. Bits of dst outside [dstOff, dstOff+n) are
// preserved.
func copyBits(dst []byte, dstOff int, src []byte, srcOff, n int) {
	if dstOff%8 == 0 && srcOff%8 == 0 {
		nb := n / 8
		copy(dst[dstOff/8:], src[srcOff/8:srcOff/8+nb])
		if rem := n % 8; rem > 0 {
			mask := byte(0xff) << (8 - rem)
			d := dstOff/8 + nb
			dst[d] = dst[d]&^mask | src[srcOff/8+nb]&mask
		}
		return
	}
	for i := 0; i < n; i++ {
		mask := byte(0x80) >> ((dstOff + i) % 8)
		if src[(srcOff+i)/8]>>(7-(srcOff+i)%8)&1 != 0 {
			dst[(dstOff+i)/8] |= mask
		} else {
			dst[(dstOff+i)/8] &^= mask
		}
	}
}
