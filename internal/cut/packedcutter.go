package cut

import (
	"math"

	"github.com/Robin329/netpbm/internal/netpbm"
)

// extractRowsPacked is the 1-bit fast path. Instead of expanding bitmap
// pixels into samples it moves whole packed rows: the input row is
// deposited into a scratch bit buffer at one offset and written back out
// at another, so the horizontal cut costs two bit-offset copies per row
// no matter how the edges fall.
func extractRowsPacked(r *netpbm.Reader, w *netpbm.Writer, inh, outh netpbm.Header, rect Rect) error {
	var (
		totalWidth              int64
		readOffset, writeOffset int
	)
	if rect.Left > 0 {
		totalWidth = int64(max(rect.Right+1, inh.Width)) + 7
		if totalWidth > math.MaxInt32-10 {
			return &OverflowError{Edge: "right"}
		}
		readOffset, writeOffset = 0, rect.Left
	} else {
		totalWidth = int64(-rect.Left) + int64(max(rect.Right+1, inh.Width))
		if totalWidth > math.MaxInt32-10 {
			return &OverflowError{Edge: "left/right"}
		}
		readOffset, writeOffset = -rect.Left, 0
	}

	bitrow := make([]byte, (int(totalWidth)+7)/8)

	// Any padding at all starts from an all-black scratch row; the reads
	// below deposit only real image bits, so the padding regions stay
	// black from row to row.
	if rect.Top < 0 || rect.Left < 0 || rect.Right >= inh.Width {
		netpbm.PackedBlackRow(bitrow, int(totalWidth))
		for row := 0; row < -rect.Top; row++ {
			if err := w.WritePackedRow(bitrow, outh.Width, 0); err != nil {
				return err
			}
		}
	}

	for row := 0; row < inh.Height; row++ {
		if row >= rect.Top && row <= rect.Bottom {
			if err := r.ReadPackedRow(inh, bitrow, readOffset); err != nil {
				return err
			}
			if err := w.WritePackedRow(bitrow, outh.Width, writeOffset); err != nil {
				return err
			}
			if rect.Right >= inh.Width {
				// Re-blacken the right padding's final byte for the next
				// row; the read only redeposits bits inside the image.
				bitrow[writeOffset/8+outh.PackedRowBytes()-1] = 0xff
			}
		} else if err := r.ReadRow(inh, nil); err != nil {
			return err
		}
	}

	if n := rect.Bottom - (inh.Height - 1); n > 0 {
		netpbm.PackedBlackRow(bitrow, outh.Width)
		for row := 0; row < n; row++ {
			if err := w.WritePackedRow(bitrow, outh.Width, 0); err != nil {
				return err
			}
		}
	}
	return nil
}
