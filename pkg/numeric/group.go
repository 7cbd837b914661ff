package numeric

// Groups splits the eight edge coordinates of a rectangle pair by role.
type Groups struct {
	// Intersect holds the coordinates of the axis on which the ranges overlap.
	Intersect Quad
	// Parallel holds the coordinates of the axis on which the rectangles are
	// separated.
	Parallel Quad
}

// Group assigns the vertical and horizontal quads to their roles. direction
// is the axis along which the rectangles are separated.
func Group(direction Axis, vertical, horizontal Quad) Groups {
	if direction == Vertical {
		return Groups{Intersect: horizontal, Parallel: vertical}
	}
	return Groups{Intersect: vertical, Parallel: horizontal}
}

// Order returns g with both quads sorted.
func Order(g Groups) Groups {
	return Groups{Intersect: Sort4(g.Intersect), Parallel: Sort4(g.Parallel)}
}

// ParallelSpacing is the gap between the facing inner edges of a sorted
// parallel quad. It is 0 when the rectangles are flush.
func ParallelSpacing(parallel Quad) float64 {
	return parallel[2] - parallel[1]
}

// MarginSide selects one end of a sorted intersect quad.
type MarginSide int

const (
	// MarginLower is the span between the two smallest coordinates.
	MarginLower MarginSide = iota
	// MarginUpper is the span between the two largest coordinates.
	MarginUpper
)

// Margin returns the offset between the two rectangles' edges at one end of
// the overlapping range.
func Margin(intersect Quad, side MarginSide) float64 {
	if side == MarginLower {
		return intersect[1] - intersect[0]
	}
	return intersect[3] - intersect[2]
}

// MidIndex reports, for the lower and upper margin, which rectangle the
// margin is drawn inside: 0 for the rectangle at the lower parallel
// coordinate, 1 for the other.
//
// intersect is the unsorted quad (selected edges first). closer is 0 when the
// selected rectangle sits at the lower parallel coordinate and 1 otherwise.
func MidIndex(intersect Quad, closer int) [2]int {
	lower := 1
	if intersect[0] <= intersect[2] {
		lower = 0
	}
	upper := 1
	if intersect[1] >= intersect[3] {
		upper = 0
	}
	return [2]int{lower ^ closer, upper ^ closer}
}
