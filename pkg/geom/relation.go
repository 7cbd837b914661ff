package geom

import "github.com/matzehuels/handoff/pkg/numeric"

// Side names one rectangle of a classified pair.
type Side int

const (
	// SideSelected is the selected (primary) rectangle.
	SideSelected Side = iota
	// SideTarget is the rectangle measured against.
	SideTarget
)

// AxisRelation describes how the ranges of two rectangles relate along one
// axis.
type AxisRelation struct {
	// Separated is false when the ranges overlap. Touching ranges are
	// separated with a zero gap.
	Separated bool
	// Gap is the distance between the facing edges; only meaningful when
	// Separated is true.
	Gap float64
	// Closer is the rectangle nearer the lower coordinate.
	Closer Side
}

// Case is the relationship class of a rectangle pair.
type Case int

const (
	// CaseOverlap covers intersecting and containing rectangles.
	CaseOverlap Case = iota
	// CaseDiagonal means both axes are separated by a positive gap.
	CaseDiagonal
	// CaseCorner means the rectangles share exactly one point.
	CaseCorner
	// CaseFlush means one axis is flush and the other has a positive gap.
	CaseFlush
	// CasePartial means one axis overlaps and the other is separated.
	CasePartial
)

var caseNames = [...]string{
	CaseOverlap:  "overlap",
	CaseDiagonal: "diagonal",
	CaseCorner:   "corner",
	CaseFlush:    "flush",
	CasePartial:  "partial",
}

// String returns a short lowercase name for the case.
func (c Case) String() string {
	if c < 0 || int(c) >= len(caseNames) {
		return "unknown"
	}
	return caseNames[c]
}

// Relation is the per-axis classification of a rectangle pair.
type Relation struct {
	Vertical   AxisRelation
	Horizontal AxisRelation
	// Intersecting is true when the rectangles share area or index.
	Intersecting bool
}

// Axis returns the relation along a.
func (r Relation) Axis(a numeric.Axis) AxisRelation {
	if a == numeric.Vertical {
		return r.Vertical
	}
	return r.Horizontal
}

// Case reduces the relation to its [Case].
func (r Relation) Case() Case {
	if r.Intersecting {
		return CaseOverlap
	}
	v, h := r.Vertical, r.Horizontal
	switch {
	case v.Separated && h.Separated:
		switch {
		case v.Gap > 0 && h.Gap > 0:
			return CaseDiagonal
		case v.Gap == 0 && h.Gap == 0:
			return CaseCorner
		default:
			return CaseFlush
		}
	case v.Separated || h.Separated:
		return CasePartial
	default:
		// Zero-area rectangles can avoid intersecting without being
		// separated on either axis.
		return CaseOverlap
	}
}

// Classify computes the relation between selected and target.
func Classify(selected, target Rect) Relation {
	if selected.Index == target.Index || Intersects(selected, target) {
		return Relation{Intersecting: true}
	}
	return Relation{
		Vertical:   classifyAxis(selected.Top, selected.Bottom, target.Top, target.Bottom),
		Horizontal: classifyAxis(selected.Left, selected.Right, target.Left, target.Right),
	}
}

func classifyAxis(sLow, sHigh, tLow, tHigh float64) AxisRelation {
	switch {
	case sHigh <= tLow:
		return AxisRelation{Separated: true, Gap: tLow - sHigh, Closer: SideSelected}
	case tHigh <= sLow:
		return AxisRelation{Separated: true, Gap: sLow - tHigh, Closer: SideTarget}
	default:
		return AxisRelation{}
	}
}
