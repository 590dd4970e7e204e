package cut

// CheckBounds rejects rectangles this program cannot cut. Without
// padding, every edge must lie inside the image. An inverted rectangle
// (near edge past far edge) is rejected whether or not padding is
// enabled; with padding, out-of-image edges are accepted and later
// materialized as black filler.
func CheckBounds(r Rect, cols, rows int, pad bool) error {
	if !pad {
		if r.Left < 0 {
			return &OutOfBoundsError{Edge: "left", Value: r.Left, Boundary: "left", Limit: 0}
		}
		if r.Left > cols-1 {
			return &OutOfBoundsError{Edge: "left", Value: r.Left, Boundary: "right", Limit: cols - 1}
		}
		if r.Right < 0 {
			return &OutOfBoundsError{Edge: "right", Value: r.Right, Boundary: "left", Limit: 0}
		}
		if r.Right > cols-1 {
			return &OutOfBoundsError{Edge: "right", Value: r.Right, Boundary: "right", Limit: cols - 1}
		}
		if r.Top < 0 {
			return &OutOfBoundsError{Edge: "top", Value: r.Top, Boundary: "top", Limit: 0}
		}
		if r.Top > rows-1 {
			return &OutOfBoundsError{Edge: "top", Value: r.Top, Boundary: "bottom", Limit: rows - 1}
		}
		if r.Bottom < 0 {
			return &OutOfBoundsError{Edge: "bottom", Value: r.Bottom, Boundary: "top", Limit: 0}
		}
		if r.Bottom > rows-1 {
			return &OutOfBoundsError{Edge: "bottom", Value: r.Bottom, Boundary: "bottom", Limit: rows - 1}
		}
	}

	if r.Left > r.Right {
		return &InvertedRectangleError{NearEdge: "left", FarEdge: "right", Near: r.Left, Far: r.Right}
	}
	if r.Top > r.Bottom {
		return &InvertedRectangleError{NearEdge: "top", FarEdge: "bottom", Near: r.Top, Far: r.Bottom}
	}
	return nil
}
