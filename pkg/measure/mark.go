package measure

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/handoff/pkg/numeric"
)

// Mark is a normalized line segment with a single magnitude axis.
type Mark struct {
	// X and Y locate the start of the segment as page fractions.
	X, Y float64
	// Axis is the direction the segment runs: numeric.Horizontal for a width
	// ("w"), numeric.Vertical for a height ("h").
	Axis numeric.Axis
	// Length is the segment length as a fraction of the page dimension along
	// Axis.
	Length float64
	// Distance is the pixel length rounded for display.
	Distance float64
}

type markJSON struct {
	X        float64  `json:"x" yaml:"x"`
	Y        float64  `json:"y" yaml:"y"`
	W        *float64 `json:"w,omitempty" yaml:"w,omitempty"`
	H        *float64 `json:"h,omitempty" yaml:"h,omitempty"`
	Distance float64  `json:"distance" yaml:"distance"`
}

func (m Mark) wire() markJSON {
	out := markJSON{X: m.X, Y: m.Y, Distance: m.Distance}
	length := m.Length
	if m.Axis == numeric.Horizontal {
		out.W = &length
	} else {
		out.H = &length
	}
	return out
}

// MarshalJSON encodes the mark with either a "w" or an "h" key.
func (m Mark) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.wire())
}

// MarshalYAML encodes the mark with the same keys as MarshalJSON.
func (m Mark) MarshalYAML() (any, error) {
	return m.wire(), nil
}

// UnmarshalJSON decodes a mark, rejecting input with both or neither of
// "w" and "h".
func (m *Mark) UnmarshalJSON(b []byte) error {
	var in markJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	switch {
	case in.W != nil && in.H != nil:
		return fmt.Errorf("mark has both w and h")
	case in.W != nil:
		*m = Mark{X: in.X, Y: in.Y, Axis: numeric.Horizontal, Length: *in.W, Distance: in.Distance}
	case in.H != nil:
		*m = Mark{X: in.X, Y: in.Y, Axis: numeric.Vertical, Length: *in.H, Distance: in.Distance}
	default:
		return fmt.Errorf("mark has neither w nor h")
	}
	return nil
}

// DistanceLabel measures a gap, margin or padding.
type DistanceLabel struct{ Mark }

// RulerGuide is an alignment or extension line. It may coincide visually with
// a DistanceLabel but never measures a gap.
type RulerGuide struct{ Mark }

// Result holds the annotations for one (selected, target, page) triple.
type Result struct {
	DistanceLabels []DistanceLabel `json:"distanceData" yaml:"distanceData"`
	RulerGuides    []RulerGuide    `json:"rulerData" yaml:"rulerData"`
}

// Empty returns a result with no annotations. Its slices are non-nil so that
// it encodes as empty JSON arrays.
func Empty() Result {
	return Result{DistanceLabels: []DistanceLabel{}, RulerGuides: []RulerGuide{}}
}

// IsEmpty reports whether the result carries no annotations.
func (r Result) IsEmpty() bool {
	return len(r.DistanceLabels) == 0 && len(r.RulerGuides) == 0
}
