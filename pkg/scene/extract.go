package scene

import (
	"github.com/matzehuels/handoff/pkg/errors"
	"github.com/matzehuels/handoff/pkg/geom"
)

// Extract flattens nodes into an ordered rectangle list in origin-relative
// coordinates.
//
// Invisible nodes are skipped with their subtrees and groups contribute only
// their children. Indices run from 0 to n-1 in pre-order. The returned slice
// is never nil. Each rectangle's Ref points at its node inside nodes.
//
// A visible, non-group node without a bounding box, or with non-finite
// coordinates, fails the whole extraction with ErrCodeMalformedNode.
func Extract(nodes []Node, origin Origin) ([]geom.Rect, error) {
	w := walker{origin: origin, rects: []geom.Rect{}}
	if err := w.walk(nodes); err != nil {
		return nil, err
	}
	return w.rects, nil
}

// walker carries the index accumulator for a single extraction.
type walker struct {
	origin Origin
	next   int
	rects  []geom.Rect
}

func (w *walker) walk(nodes []Node) error {
	for i := range nodes {
		n := &nodes[i]
		if !n.IsVisible() {
			continue
		}
		if n.Type != TypeGroup {
			r, err := w.rect(n)
			if err != nil {
				return err
			}
			w.rects = append(w.rects, r)
		}
		if err := w.walk(n.Children); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) rect(n *Node) (geom.Rect, error) {
	bb := n.BoundingBox
	if bb == nil {
		return geom.Rect{}, errors.New(errors.ErrCodeMalformedNode, "node %q (%s) has no bounding box", n.ID, n.Name)
	}
	for _, c := range []struct {
		name string
		v    float64
	}{{"x", bb.X}, {"y", bb.Y}, {"width", bb.Width}, {"height", bb.Height}} {
		if err := errors.ValidateCoordinate(c.name, c.v); err != nil {
			return geom.Rect{}, errors.Wrap(errors.ErrCodeMalformedNode, err, "node %q (%s)", n.ID, n.Name)
		}
	}

	r := geom.NewRect(w.next, bb.X-w.origin.X, bb.Y-w.origin.Y, bb.Width, bb.Height)
	r.Title = n.Name
	if n.Type.IsComponentLike() {
		r.Tags = []string{geom.TagComponent}
	}
	r.Ref = n
	w.next++
	return r, nil
}
