package cut

// An EdgeSpec is one user-supplied edge or size request: unspecified, an
// absolute coordinate, or a coordinate relative to the far edge of the
// image. Specs are built once from the command line and never mutated.
type EdgeSpec struct {
	kind edgeKind
	n    int
}

type edgeKind uint8

const (
	edgeUnspec edgeKind = iota
	edgeAbsolute
	edgeFromFar
)

// Unspec returns the "not specified" EdgeSpec. It is the zero value.
func Unspec() EdgeSpec {
	return EdgeSpec{}
}

// Absolute returns an EdgeSpec naming a coordinate in image space.
func Absolute(n int) EdgeSpec {
	return EdgeSpec{kind: edgeAbsolute, n: n}
}

// FromFarEdge returns an EdgeSpec naming a coordinate relative to the far
// edge of the image; n is conventionally negative, so -1 means the last
// column or row.
func FromFarEdge(n int) EdgeSpec {
	return EdgeSpec{kind: edgeFromFar, n: n}
}

// FromInt builds an EdgeSpec the way the pamcut command line does: a
// negative number is relative to the far edge, anything else is absolute.
func FromInt(n int) EdgeSpec {
	if n < 0 {
		return FromFarEdge(n)
	}
	return Absolute(n)
}

// Specified reports whether the spec carries a value.
func (e EdgeSpec) Specified() bool {
	return e.kind != edgeUnspec
}

// resolve turns the spec into a concrete coordinate given the image
// extent along its axis. The result may be negative; that is legal and
// handled later by padding or bounds validation.
func (e EdgeSpec) resolve(extent int) int {
	if e.kind == edgeFromFar {
		return extent + e.n
	}
	return e.n
}

// A Spec is the full six-value cut request. Width and Height are never
// negative and never far-edge-relative.
type Spec struct {
	Left, Right, Top, Bottom EdgeSpec
	Width, Height            EdgeSpec
}

// A Rect is a concrete cut rectangle in image coordinates, all bounds
// inclusive. Once validated, Left <= Right and Top <= Bottom; the
// rectangle may still lie partly or wholly outside the image when
// padding is requested.
type Rect struct {
	Left, Right int
	Top, Bottom int
}

// Width returns the number of columns the rectangle spans.
func (r Rect) Width() int {
	return r.Right - r.Left + 1
}

// Height returns the number of rows the rectangle spans.
func (r Rect) Height() int {
	return r.Bottom - r.Top + 1
}

// ResolveRect reconciles the six edge/size requests against an image of
// cols x rows pixels into a concrete rectangle. The horizontal and
// vertical axes resolve independently through the same case analysis.
// The only failure is specifying all three of an axis's values.
func ResolveRect(cols, rows int, s Spec) (Rect, error) {
	var r Rect
	var err error
	r.Left, r.Right, err = resolveAxis(cols, s.Left, s.Right, s.Width, [3]string{"left", "right", "width"})
	if err != nil {
		return Rect{}, err
	}
	r.Top, r.Bottom, err = resolveAxis(rows, s.Top, s.Bottom, s.Height, [3]string{"top", "bottom", "height"})
	if err != nil {
		return Rect{}, err
	}
	return r, nil
}

// resolveAxis sorts out one axis's near edge, far edge, and size
// requests. names holds the user-facing option names for diagnostics.
func resolveAxis(extent int, near, far, size EdgeSpec, names [3]string) (lo, hi int, err error) {
	nearV := near.resolve(extent)
	farV := far.resolve(extent)

	switch {
	case !near.Specified() && !far.Specified() && !size.Specified():
		return 0, extent - 1, nil
	case !near.Specified() && !far.Specified():
		return 0, size.n - 1, nil
	case !near.Specified() && !size.Specified():
		return 0, farV, nil
	case !near.Specified():
		return farV - size.n + 1, farV, nil
	case !far.Specified() && !size.Specified():
		return nearV, extent - 1, nil
	case !far.Specified():
		return nearV, nearV + size.n - 1, nil
	case !size.Specified():
		return nearV, farV, nil
	default:
		return 0, 0, &OverspecifiedAxisError{Near: names[0], Far: names[1], Size: names[2]}
	}
}
