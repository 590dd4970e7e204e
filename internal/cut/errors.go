package cut

import "fmt"

// An OverspecifiedAxisError reports that all three of an axis's edge and
// size options were given at once.
type OverspecifiedAxisError struct {
	Near, Far, Size string
}

func (e *OverspecifiedAxisError) Error() string {
	return fmt.Sprintf("may not specify %s, %s, and %s; choose at most two of these",
		e.Near, e.Far, e.Size)
}

// An OutOfBoundsError reports a rectangle edge outside the image while
// padding is disabled. Edge names the offending edge, Value its resolved
// coordinate, Boundary the image boundary it crossed, and Limit that
// boundary's coordinate.
type OutOfBoundsError struct {
	Edge     string
	Value    int
	Boundary string
	Limit    int
}

func (e *OutOfBoundsError) Error() string {
	rel := "beyond"
	switch e.Boundary {
	case "top":
		rel = "above"
	case "bottom":
		rel = "below"
	}
	return fmt.Sprintf("specified %s edge (%d) is %s the %s edge of the image (%d)",
		e.Edge, e.Value, rel, e.Boundary, e.Limit)
}

// An InvertedRectangleError reports a near edge resolved past the far
// edge on the same axis. This is fatal regardless of padding.
type InvertedRectangleError struct {
	NearEdge, FarEdge string
	Near, Far         int
}

func (e *InvertedRectangleError) Error() string {
	rel := "to the right of"
	if e.NearEdge == "top" {
		rel = "below"
	}
	return fmt.Sprintf("specified %s edge (%d) is %s the %s edge (%d)",
		e.NearEdge, e.Near, rel, e.FarEdge, e.Far)
}

// An OverflowError reports that a packed-row buffer's bit width would
// overflow the byte-count arithmetic.
type OverflowError struct {
	Edge string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("specified %s edge is too far from the %s end of the image", e.Edge, e.Edge)
}
