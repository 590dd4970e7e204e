package cut

import (
	"log"

	"github.com/Robin329/netpbm/internal/netpbm"
)

// Options is the immutable cut request built once from the command line
// and passed by value into the core.
type Options struct {
	Spec    Spec
	Pad     bool
	Verbose bool
}

// CutStream cuts every image of a multi-image Netpbm stream in turn.
// Nothing carries over between images; dimensions, rectangle, and row
// plans are re-derived per image, since they may differ.
func CutStream(r *netpbm.Reader, w *netpbm.Writer, opts Options) error {
	for {
		if err := CutImage(r, w, opts); err != nil {
			return err
		}
		more, err := r.MoreImagesFollow()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// CutImage processes one image: read its header, resolve and validate
// the cut rectangle, write the output header, and stream the rows
// through the packed or general row path. Every input row is read
// exactly once even when discarded, so a piped source never blocks and
// any following image starts in the right place.
func CutImage(r *netpbm.Reader, w *netpbm.Writer, opts Options) error {
	inh, err := r.ReadHeader()
	if err != nil {
		return err
	}

	rect, err := ResolveRect(inh.Width, inh.Height, opts.Spec)
	if err != nil {
		return err
	}
	if err := CheckBounds(rect, inh.Width, inh.Height, opts.Pad); err != nil {
		return err
	}

	if opts.Verbose {
		log.Printf("image goes from row 0, column 0 through row %d, column %d",
			inh.Height-1, inh.Width-1)
		log.Printf("cutting from row %d, column %d through row %d, column %d",
			rect.Top, rect.Left, rect.Bottom, rect.Right)
	}

	outh := inh
	outh.Format = inh.Format.Raw()
	outh.Width = rect.Width()
	outh.Height = rect.Height()

	if err := w.WriteHeader(outh); err != nil {
		return err
	}

	if inh.Format.Bitmap() {
		err = extractRowsPacked(r, w, inh, outh, rect)
	} else {
		err = extractRowsGen(r, w, inh, outh, rect)
	}
	if err != nil {
		return err
	}
	return w.Flush()
}

// extractRowsGen is the general row path for any depth and maxval.
func extractRowsGen(r *netpbm.Reader, w *netpbm.Writer, inh, outh netpbm.Header, rect Rect) error {
	if rect.Top < 0 {
		if err := writeBlackRows(w, outh, -rect.Top); err != nil {
			return err
		}
	}

	rc := newRowCutter(inh.Width, inh.Depth, outh.Width, outh.Depth, rect.Left, rect.Right)
	in := make([]uint16, inh.SamplesPerRow())
	out := make([]uint16, outh.SamplesPerRow())

	for row := 0; row < inh.Height; row++ {
		if row >= rect.Top && row <= rect.Bottom {
			if err := r.ReadRow(inh, in); err != nil {
				return err
			}
			rc.gather(in)
			rc.emit(out)
			if err := w.WriteRow(outh, out); err != nil {
				return err
			}
		} else if err := r.ReadRow(inh, nil); err != nil {
			// Rows above and below the rectangle are read and dropped;
			// quitting after the last kept row would break the pipe
			// feeding us.
			return err
		}
	}

	if n := rect.Bottom - (inh.Height - 1); n > 0 {
		return writeBlackRows(w, outh, n)
	}
	return nil
}

func writeBlackRows(w *netpbm.Writer, outh netpbm.Header, n int) error {
	row := make([]uint16, outh.SamplesPerRow())
	return w.WriteRowRepeated(outh, row, n)
}
