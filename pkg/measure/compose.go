package measure

import (
	"github.com/matzehuels/handoff/pkg/geom"
	"github.com/matzehuels/handoff/pkg/numeric"
)

// Compose annotates the spacing between selected and target on page.
//
// It returns [Empty] when selected is nil or has the same index as target.
// Otherwise the page must have positive, finite dimensions; a degenerate page
// fails with errors.ErrCodeDegenerateGeometry instead of producing NaN or
// infinite fractions. Compose does not retain its arguments and is safe for
// concurrent use.
func Compose(selected *geom.Rect, target geom.Rect, page geom.Page) (Result, error) {
	if selected == nil || selected.Index == target.Index {
		return Empty(), nil
	}
	if err := page.Validate(); err != nil {
		return Result{}, err
	}

	c := composer{page: page, res: Empty()}
	s := *selected
	rel := geom.Classify(s, target)
	v, h := geom.Edges(s, target)

	switch rel.Case() {
	case geom.CaseDiagonal:
		c.diagonal(s, target, rel)
	case geom.CaseCorner:
		c.corner(rel, v, h)
	case geom.CaseFlush:
		c.flush(rel, v, h)
	case geom.CasePartial:
		c.partial(rel, v, h)
	case geom.CaseOverlap:
		c.overlap(v, h)
	}
	return c.res, nil
}

// composer accumulates the marks of a single Compose call.
type composer struct {
	page geom.Page
	res  Result
}

// mark builds a segment running along axis from start, positioned at cross on
// the perpendicular axis. Inputs are pixels; the mark is normalized.
func (c *composer) mark(along numeric.Axis, start, cross, length float64) Mark {
	if along == numeric.Horizontal {
		return Mark{
			X:        start / c.page.Width,
			Y:        cross / c.page.Height,
			Axis:     numeric.Horizontal,
			Length:   length / c.page.Width,
			Distance: numeric.ToFixed(length),
		}
	}
	return Mark{
		X:        cross / c.page.Width,
		Y:        start / c.page.Height,
		Axis:     numeric.Vertical,
		Length:   length / c.page.Height,
		Distance: numeric.ToFixed(length),
	}
}

func (c *composer) label(along numeric.Axis, start, cross, length float64) {
	if length == 0 {
		return
	}
	c.res.DistanceLabels = append(c.res.DistanceLabels, DistanceLabel{c.mark(along, start, cross, length)})
}

func (c *composer) guide(along numeric.Axis, start, cross, length float64) {
	if length == 0 {
		return
	}
	c.res.RulerGuides = append(c.res.RulerGuides, RulerGuide{c.mark(along, start, cross, length)})
}

// diagonal handles rectangles separated on both axes.
func (c *composer) diagonal(s, t geom.Rect, rel geom.Relation) {
	gapV, gapH := rel.Vertical.Gap, rel.Horizontal.Gap
	nearV := rel.Vertical.Closer == geom.SideSelected
	nearH := rel.Horizontal.Closer == geom.SideSelected

	x := t.Right
	if nearH {
		x = s.Right
	}
	c.label(numeric.Horizontal, x, s.CenterY(), gapH)

	y := t.Bottom
	if nearV {
		y = s.Bottom
	}
	c.label(numeric.Vertical, y, s.CenterX(), gapV)

	// The two guides meet at the target's corner facing the selection.
	gx, gy := t.Right, t.Bottom
	if nearH {
		gx = s.CenterX()
	}
	if nearV {
		gy = t.Top
	}
	c.guide(numeric.Horizontal, gx, gy, s.Width/2+gapH)

	gx, gy = t.Right, t.Bottom
	if nearH {
		gx = t.Left
	}
	if nearV {
		gy = s.CenterY()
	}
	c.guide(numeric.Vertical, gy, gx, s.Height/2+gapV)
}

// corner handles rectangles touching at a single point.
func (c *composer) corner(rel geom.Relation, v, h numeric.Quad) {
	sv, sh := numeric.Sort4(v), numeric.Sort4(h)
	edges := [4]float64{sv[0], sv[3], sh[0], sh[3]}
	mids := [2]float64{sv[1], sh[1]}
	// Backslash: the rectangles run from top-left to bottom-right.
	backslash := rel.Vertical.Closer == rel.Horizontal.Closer

	for i, edge := range edges {
		far := backslash
		if i%2 == 1 {
			far = !backslash
		}
		if i < 2 {
			start, d := edges[2], mids[1]-edges[2]
			if far {
				start, d = mids[1], edges[3]-mids[1]
			}
			c.label(numeric.Horizontal, start, edge, d)
			continue
		}
		start, d := edges[0], mids[0]-edges[0]
		if far {
			start, d = mids[0], edges[1]-mids[0]
		}
		c.label(numeric.Vertical, start, edge, d)
	}
}

// flush handles rectangles sharing a boundary line on one axis and separated
// by a positive gap on the other.
func (c *composer) flush(rel geom.Relation, v, h numeric.Quad) {
	dir := numeric.Vertical
	if rel.Vertical.Gap == 0 {
		dir = numeric.Horizontal
	}
	g := numeric.Order(numeric.Group(dir, v, h))
	c.label(dir, g.Parallel[1], g.Intersect[1], rel.Axis(dir).Gap)
}

// partial handles rectangles whose ranges overlap on one axis and are
// separated (possibly flush) on the other.
func (c *composer) partial(rel geom.Relation, v, h numeric.Quad) {
	dir := numeric.Horizontal
	if rel.Vertical.Separated {
		dir = numeric.Vertical
	}
	raw := numeric.Group(dir, v, h)
	g := numeric.Order(raw)
	p, in := g.Parallel, g.Intersect

	// Centres of the lower and upper rectangle along the separated axis.
	mids := [2]float64{numeric.Mean(p[0], p[1]), numeric.Mean(p[2], p[3])}
	midIndex := numeric.MidIndex(raw.Intersect, int(rel.Axis(dir).Closer))

	c.label(dir, p[1], numeric.Mean(in[1], in[2]), numeric.ParallelSpacing(p))

	margins := [2]float64{
		numeric.Margin(in, numeric.MarginLower),
		numeric.Margin(in, numeric.MarginUpper),
	}
	for i, m := range margins {
		if m == 0 {
			continue
		}
		c.label(dir.Other(), in[i*2], mids[midIndex[i]], m)

		start, length := p[1], mids[1]-p[1]
		if midIndex[i] == 0 {
			start, length = mids[0], p[2]-mids[0]
		}
		c.guide(dir, start, in[i*3], length)
	}
}

// overlap handles intersecting and containing rectangles.
func (c *composer) overlap(v, h numeric.Quad) {
	sv, sh := numeric.Sort4(v), numeric.Sort4(h)
	mv, mh := numeric.Mids(sv), numeric.Mids(sh)
	x := numeric.Mean(mh[0], mh[1])
	y := numeric.Mean(mv[0], mv[1])

	c.label(numeric.Vertical, sv[0], x, sv[1]-sv[0])
	c.label(numeric.Vertical, sv[2], x, sv[3]-sv[2])
	c.label(numeric.Horizontal, sh[0], y, sh[1]-sh[0])
	c.label(numeric.Horizontal, sh[2], y, sh[3]-sh[2])
}
