package geom

import (
	"github.com/matzehuels/handoff/pkg/errors"
	"github.com/matzehuels/handoff/pkg/numeric"
)

// TagComponent marks rectangles produced by reusable components and their
// instances.
const TagComponent = "component"

// Rect is an axis-aligned rectangle in document coordinates.
type Rect struct {
	Index        int      `json:"index" yaml:"index"`
	Top          float64  `json:"top" yaml:"top"`
	Left         float64  `json:"left" yaml:"left"`
	Bottom       float64  `json:"bottom" yaml:"bottom"`
	Right        float64  `json:"right" yaml:"right"`
	Width        float64  `json:"width" yaml:"width"`
	Height       float64  `json:"height" yaml:"height"`
	ActualWidth  float64  `json:"actualWidth" yaml:"actualWidth"`
	ActualHeight float64  `json:"actualHeight" yaml:"actualHeight"`
	Title        string   `json:"title" yaml:"title"`
	Tags         []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Ref points back at whatever produced the rectangle (usually a scene
	// node). It is never dereferenced by this package.
	Ref any `json:"-" yaml:"-"`
}

// NewRect builds a rectangle from its top-left corner and size, deriving
// Right, Bottom and the display-rounded sizes.
func NewRect(index int, left, top, width, height float64) Rect {
	return Rect{
		Index:        index,
		Top:          top,
		Left:         left,
		Bottom:       top + height,
		Right:        left + width,
		Width:        width,
		Height:       height,
		ActualWidth:  numeric.ToFixed(width),
		ActualHeight: numeric.ToFixed(height),
	}
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.Left + r.Width/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Top + r.Height/2 }

// HasTag reports whether the rectangle carries tag.
func (r Rect) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Edges returns the vertical (top, bottom, top, bottom) and horizontal
// (left, right, left, right) coordinate groups of a rectangle pair, selected
// edges first.
func Edges(selected, target Rect) (vertical, horizontal numeric.Quad) {
	vertical = numeric.Quad{selected.Top, selected.Bottom, target.Top, target.Bottom}
	horizontal = numeric.Quad{selected.Left, selected.Right, target.Left, target.Right}
	return vertical, horizontal
}

// Intersects reports whether a and b share interior area. Rectangles that are
// separated or only touch along an edge do not intersect.
func Intersects(a, b Rect) bool {
	return !(a.Right <= b.Left ||
		a.Left >= b.Right ||
		a.Top >= b.Bottom ||
		a.Bottom <= b.Top)
}

// Page is the frame used to normalize measurements into fractions.
type Page struct {
	Width  float64 `json:"width" toml:"width" yaml:"width"`
	Height float64 `json:"height" toml:"height" yaml:"height"`
}

// Validate returns an ErrCodeDegenerateGeometry error unless both dimensions
// are finite and strictly positive.
func (p Page) Validate() error {
	if err := errors.ValidateDimension("page width", p.Width); err != nil {
		return err
	}
	return errors.ValidateDimension("page height", p.Height)
}
