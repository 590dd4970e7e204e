package cut

import (
	"errors"
	"testing"
)

func TestCheckBounds_RejectsOutOfBounds(t *testing.T) {
	tests := []struct {
		name     string
		rect     Rect
		wantEdge string
	}{
		{"left negative", Rect{Left: -1, Right: 5, Top: 0, Bottom: 5}, "left"},
		{"left past right side", Rect{Left: 12, Right: 15, Top: 0, Bottom: 5}, "left"},
		{"right past right side", Rect{Left: 0, Right: 10, Top: 0, Bottom: 5}, "right"},
		{"top negative", Rect{Left: 0, Right: 5, Top: -2, Bottom: 5}, "top"},
		{"bottom past bottom", Rect{Left: 0, Right: 5, Top: 0, Bottom: 10}, "bottom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckBounds(tt.rect, 10, 10, false)
			var oob *OutOfBoundsError
			if !errors.As(err, &oob) {
				t.Fatalf("got %v, want OutOfBoundsError", err)
			}
			if oob.Edge != tt.wantEdge {
				t.Errorf("offending edge: got %q, want %q", oob.Edge, tt.wantEdge)
			}

			// The same rectangle must be accepted once padding is on.
			if err := CheckBounds(tt.rect, 10, 10, true); err != nil {
				t.Errorf("with pad: unexpected error %v", err)
			}
		})
	}
}

func TestCheckBounds_InBounds(t *testing.T) {
	if err := CheckBounds(Rect{Left: 0, Right: 9, Top: 0, Bottom: 9}, 10, 10, false); err != nil {
		t.Errorf("full-image rectangle rejected: %v", err)
	}
	if err := CheckBounds(Rect{Left: 3, Right: 3, Top: 7, Bottom: 7}, 10, 10, false); err != nil {
		t.Errorf("single-pixel rectangle rejected: %v", err)
	}
}

func TestCheckBounds_InvertedFailsEvenWithPad(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		near string
	}{
		{"left right of right", Rect{Left: 6, Right: 2, Top: 0, Bottom: 5}, "left"},
		{"top below bottom", Rect{Left: 0, Right: 5, Top: 8, Bottom: 3}, "top"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, pad := range []bool{false, true} {
				err := CheckBounds(tt.rect, 10, 10, pad)
				var inv *InvertedRectangleError
				if !errors.As(err, &inv) {
					t.Fatalf("pad=%v: got %v, want InvertedRectangleError", pad, err)
				}
				if inv.NearEdge != tt.near {
					t.Errorf("near edge: got %q, want %q", inv.NearEdge, tt.near)
				}
			}
		})
	}
}
