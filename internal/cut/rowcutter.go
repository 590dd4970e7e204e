package cut

// A rowCutter realizes the horizontal cut and padding of one row with a
// single read, gather, and write. It is built once per image and reused
// for every row.
//
// inSlots has one element per input column naming the arena cell that
// column's samples land in; every column that gets cut off shares the one
// discard cell, so a full input row is always consumed. outSlots has one
// element per output column naming the cell it is emitted from; padded
// columns all share the one black cell. Columns that survive the cut use
// a copy cell referenced from both sides.
type rowCutter struct {
	inSlots  []int
	outSlots []int

	// arena holds outWidth copy cells, the discard cell, and the black
	// cell, each inDepth samples wide. The black cell stays all-zero,
	// which is black in the PAM sample convention (and something
	// arbitrary for exotic PAM tuple types, as in the original pamcut).
	arena []uint16

	inWidth, outWidth int
	inDepth, outDepth int
	discard, black    int
}

// newRowCutter builds the slot plan for cutting columns [leftcol,
// rightcol] out of rows of inWidth pixels. Output depth must not exceed
// input depth; an output pixel reuses the leading samples of its input
// cell.
func newRowCutter(inWidth, inDepth, outWidth, outDepth, leftcol, rightcol int) *rowCutter {
	rc := &rowCutter{
		inSlots:  make([]int, inWidth),
		outSlots: make([]int, outWidth),
		arena:    make([]uint16, (outWidth+2)*inDepth),
		inWidth:  inWidth,
		outWidth: outWidth,
		inDepth:  inDepth,
		outDepth: outDepth,
		discard:  outWidth,
		black:    outWidth + 1,
	}

	// Left padding.
	for col := leftcol; col < 0 && col-leftcol < outWidth; col++ {
		rc.outSlots[col-leftcol] = rc.black
	}

	// Extracted columns: input and output share the copy cell.
	for col := max(leftcol, 0); col <= min(rightcol, inWidth-1); col++ {
		rc.inSlots[col] = col - leftcol
		rc.outSlots[col-leftcol] = col - leftcol
	}

	// Right padding.
	for col := min(rightcol, inWidth-1) + 1; col <= rightcol; col++ {
		if col-leftcol >= 0 {
			rc.outSlots[col-leftcol] = rc.black
		}
	}

	// Input pixels that get cut off all land in the discard cell.
	for col := 0; col < min(leftcol, inWidth); col++ {
		rc.inSlots[col] = rc.discard
	}
	for col := max(0, rightcol+1); col < inWidth; col++ {
		rc.inSlots[col] = rc.discard
	}

	return rc
}

func (rc *rowCutter) cell(i int) []uint16 {
	return rc.arena[i*rc.inDepth : (i+1)*rc.inDepth]
}

// gather scatters one decoded input row into the arena cells named by
// inSlots.
func (rc *rowCutter) gather(in []uint16) {
	d := rc.inDepth
	for col, slot := range rc.inSlots {
		copy(rc.cell(slot), in[col*d:(col+1)*d])
	}
}

// emit assembles one output row from the cells named by outSlots.
func (rc *rowCutter) emit(out []uint16) {
	d := rc.outDepth
	for col, slot := range rc.outSlots {
		copy(out[col*d:(col+1)*d], rc.cell(slot)[:d])
	}
}
