package scene

import (
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/matzehuels/handoff/pkg/errors"
	"github.com/matzehuels/handoff/pkg/geom"
)

// Index maps node ids to extracted rectangles, preserving extraction order.
// An Index is immutable once built and safe for concurrent reads.
type Index struct {
	ids   []string
	byID  map[string]int
	rects []geom.Rect
}

// NewIndex builds an index over rects. Rectangles whose Ref is not a *Node, or
// whose node has no id, are keyed as "#<index>". When ids repeat, the first
// rectangle keeps the id and later ones are only reachable by index.
func NewIndex(rects []geom.Rect) *Index {
	x := &Index{
		ids:   make([]string, 0, len(rects)),
		byID:  make(map[string]int, len(rects)),
		rects: rects,
	}
	for i, r := range rects {
		id := "#" + strconv.Itoa(r.Index)
		if n, ok := r.Ref.(*Node); ok && n.ID != "" {
			id = n.ID
		}
		if _, dup := x.byID[id]; dup {
			id = "#" + strconv.Itoa(r.Index)
		}
		x.ids = append(x.ids, id)
		x.byID[id] = i
	}
	return x
}

// Len returns the number of indexed rectangles.
func (x *Index) Len() int { return len(x.rects) }

// Rects returns the rectangles in extraction order. The slice must not be
// modified.
func (x *Index) Rects() []geom.Rect { return x.rects }

// ID returns the key of the i-th rectangle in extraction order.
func (x *Index) ID(i int) string { return x.ids[i] }

// Lookup returns the rectangle keyed by id.
func (x *Index) Lookup(id string) (geom.Rect, bool) {
	i, ok := x.byID[id]
	if !ok {
		return geom.Rect{}, false
	}
	return x.rects[i], true
}

// At returns the rectangle with the given extraction index.
func (x *Index) At(index int) (geom.Rect, bool) {
	if index >= 0 && index < len(x.rects) && x.rects[index].Index == index {
		return x.rects[index], true
	}
	for _, r := range x.rects {
		if r.Index == index {
			return r, true
		}
	}
	return geom.Rect{}, false
}

// Each calls fn for every rectangle in extraction order until fn returns false.
func (x *Index) Each(fn func(id string, r geom.Rect) bool) {
	for i, r := range x.rects {
		if !fn(x.ids[i], r) {
			return
		}
	}
}

// Resolve finds the rectangle named by selector: "#<n>" selects by index,
// anything else by node id.
func (x *Index) Resolve(selector string) (geom.Rect, error) {
	if err := errors.ValidateSelector(selector); err != nil {
		return geom.Rect{}, err
	}
	if r, ok := x.Lookup(selector); ok {
		return r, nil
	}
	if rest, ok := strings.CutPrefix(selector, "#"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil {
			return geom.Rect{}, errors.Wrap(errors.ErrCodeInvalidSelector, err, "invalid index selector %q", selector)
		}
		if r, ok := x.At(n); ok {
			return r, nil
		}
	}
	if near, ok := x.Suggest(selector); ok {
		return geom.Rect{}, errors.New(errors.ErrCodeNotFound, "no rectangle matches %q (did you mean %q?)", selector, near)
	}
	return geom.Rect{}, errors.New(errors.ErrCodeNotFound, "no rectangle matches %q", selector)
}

// Suggest returns the indexed id closest to selector by edit distance. Ids
// further than a third of the selector's length (at least 2 edits) away are
// not suggested.
func (x *Index) Suggest(selector string) (string, bool) {
	if selector == "" || strings.HasPrefix(selector, "#") {
		return "", false
	}
	limit := max(2, len(selector)/3)
	best, bestDist := "", limit+1
	for _, id := range x.ids {
		if strings.HasPrefix(id, "#") {
			continue
		}
		if d := levenshtein.ComputeDistance(selector, id); d < bestDist {
			best, bestDist = id, d
		}
	}
	return best, best != ""
}
