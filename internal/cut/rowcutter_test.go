package cut

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// cutRow runs one row through a fresh cutter and returns the output row.
func cutRow(t *testing.T, rc *rowCutter, in []uint16) []uint16 {
	t.Helper()
	out := make([]uint16, rc.outWidth*rc.outDepth)
	rc.gather(in)
	rc.emit(out)
	return out
}

func TestRowCutter_Crop(t *testing.T) {
	// Keep columns 2..5 of an 8-pixel row.
	rc := newRowCutter(8, 1, 4, 1, 2, 5)
	in := []uint16{10, 11, 12, 13, 14, 15, 16, 17}
	got := cutRow(t, rc, in)
	want := []uint16{12, 13, 14, 15}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("row mismatch (-want +got):\n%s", diff)
	}
}

func TestRowCutter_LeftPadding(t *testing.T) {
	// Columns -2..2 of a 5-pixel row: two black pixels then columns 0..2.
	rc := newRowCutter(5, 1, 5, 1, -2, 2)
	in := []uint16{10, 11, 12, 13, 14}
	got := cutRow(t, rc, in)
	want := []uint16{0, 0, 10, 11, 12}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("row mismatch (-want +got):\n%s", diff)
	}
}

func TestRowCutter_RightPadding(t *testing.T) {
	// Columns 3..7 of a 5-pixel row: columns 3..4 then three black.
	rc := newRowCutter(5, 1, 5, 1, 3, 7)
	in := []uint16{10, 11, 12, 13, 14}
	got := cutRow(t, rc, in)
	want := []uint16{13, 14, 0, 0, 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("row mismatch (-want +got):\n%s", diff)
	}
}

func TestRowCutter_EntirelyOutsideImage(t *testing.T) {
	tests := []struct {
		name              string
		leftcol, rightcol int
	}{
		{"fully left of image", -4, -2},
		{"fully right of image", 7, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := newRowCutter(5, 1, 3, 1, tt.leftcol, tt.rightcol)
			in := []uint16{10, 11, 12, 13, 14}
			got := cutRow(t, rc, in)
			want := []uint16{0, 0, 0}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("row mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRowCutter_MultiChannel(t *testing.T) {
	// Keep column 1 of a 3-pixel RGB row.
	rc := newRowCutter(3, 3, 1, 3, 1, 1)
	in := []uint16{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	got := cutRow(t, rc, in)
	want := []uint16{4, 5, 6}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("row mismatch (-want +got):\n%s", diff)
	}
}

func TestRowCutter_InputSlotsCoverEveryColumn(t *testing.T) {
	// Every input pixel must have a destination cell, or a row read
	// would not consume the full row.
	for _, tt := range []struct{ l, r int }{{2, 5}, {-3, 4}, {3, 12}, {-2, 12}, {-4, -2}} {
		rc := newRowCutter(8, 1, tt.r-tt.l+1, 1, tt.l, tt.r)
		for col, slot := range rc.inSlots {
			if slot < 0 || slot > rc.discard || slot == rc.black {
				t.Errorf("rect [%d, %d]: input column %d has bad slot %d", tt.l, tt.r, col, slot)
			}
		}
		for col, slot := range rc.outSlots {
			if slot < 0 || slot == rc.discard || slot > rc.black {
				t.Errorf("rect [%d, %d]: output column %d has bad slot %d", tt.l, tt.r, col, slot)
			}
		}
	}
}
