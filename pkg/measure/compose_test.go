package measure

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/matzehuels/handoff/pkg/errors"
	"github.com/matzehuels/handoff/pkg/geom"
	"github.com/matzehuels/handoff/pkg/numeric"
)

var page = geom.Page{Width: 1000, Height: 1000}

// box builds a rect from its edges.
func box(index int, left, top, right, bottom float64) geom.Rect {
	return geom.NewRect(index, left, top, right-left, bottom-top)
}

func hmark(x, y, w, d float64) Mark {
	return Mark{X: x, Y: y, Axis: numeric.Horizontal, Length: w, Distance: d}
}

func vmark(x, y, h, d float64) Mark {
	return Mark{X: x, Y: y, Axis: numeric.Vertical, Length: h, Distance: d}
}

func sameMark(a, b Mark) bool {
	const eps = 1e-9
	return a.Axis == b.Axis &&
		math.Abs(a.X-b.X) < eps &&
		math.Abs(a.Y-b.Y) < eps &&
		math.Abs(a.Length-b.Length) < eps &&
		a.Distance == b.Distance
}

func checkLabels(t *testing.T, got []DistanceLabel, want []Mark) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d distance labels %+v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if !sameMark(got[i].Mark, want[i]) {
			t.Errorf("label[%d] = %+v, want %+v", i, got[i].Mark, want[i])
		}
	}
}

func checkGuides(t *testing.T, got []RulerGuide, want []Mark) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d ruler guides %+v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if !sameMark(got[i].Mark, want[i]) {
			t.Errorf("guide[%d] = %+v, want %+v", i, got[i].Mark, want[i])
		}
	}
}

func compose(t *testing.T, selected, target geom.Rect) Result {
	t.Helper()
	res, err := Compose(&selected, target, page)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	return res
}

func TestComposeNoop(t *testing.T) {
	r := box(0, 0, 0, 100, 100)

	t.Run("same rect", func(t *testing.T) {
		res := compose(t, r, r)
		if !res.IsEmpty() {
			t.Errorf("Compose(r, r) = %+v, want empty", res)
		}
		data, err := json.Marshal(res)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if string(data) != `{"distanceData":[],"rulerData":[]}` {
			t.Errorf("Marshal() = %s", data)
		}
	})

	t.Run("same index different geometry", func(t *testing.T) {
		res := compose(t, r, box(0, 300, 300, 400, 400))
		if !res.IsEmpty() {
			t.Errorf("Compose() = %+v, want empty", res)
		}
	})

	t.Run("nil selected", func(t *testing.T) {
		res, err := Compose(nil, r, page)
		if err != nil || !res.IsEmpty() {
			t.Errorf("Compose(nil) = %+v, %v, want empty result", res, err)
		}
	})

	t.Run("noop skips page validation", func(t *testing.T) {
		res, err := Compose(&r, r, geom.Page{})
		if err != nil || !res.IsEmpty() {
			t.Errorf("Compose() = %+v, %v, want empty result", res, err)
		}
	})
}

func TestComposeDegeneratePage(t *testing.T) {
	s, tg := box(0, 0, 0, 100, 100), box(1, 200, 0, 300, 100)

	for _, p := range []geom.Page{{Width: 0, Height: 100}, {Width: 100, Height: -1}, {Width: math.Inf(1), Height: 100}} {
		_, err := Compose(&s, tg, p)
		if !errors.Is(err, errors.ErrCodeDegenerateGeometry) {
			t.Errorf("Compose(page %+v) error = %v, want %v", p, err, errors.ErrCodeDegenerateGeometry)
		}
	}
}

func TestComposeHorizontalGap(t *testing.T) {
	res := compose(t, box(0, 0, 0, 100, 100), box(1, 200, 0, 300, 100))

	checkLabels(t, res.DistanceLabels, []Mark{hmark(0.1, 0.05, 0.1, 100)})
	checkGuides(t, res.RulerGuides, nil)
}

func TestComposeEdgeFlush(t *testing.T) {
	t.Run("equal height", func(t *testing.T) {
		res := compose(t, box(0, 0, 0, 100, 100), box(1, 100, 0, 200, 100))
		if !res.IsEmpty() {
			t.Errorf("Compose() = %+v, want empty", res)
		}
	})

	t.Run("offset", func(t *testing.T) {
		res := compose(t, box(0, 0, 0, 100, 100), box(1, 100, 20, 200, 100))
		for _, l := range res.DistanceLabels {
			if l.Axis == numeric.Horizontal {
				t.Errorf("unexpected horizontal label %+v for a zero gap", l.Mark)
			}
		}
		checkLabels(t, res.DistanceLabels, []Mark{vmark(0.05, 0, 0.02, 20)})
		checkGuides(t, res.RulerGuides, []Mark{hmark(0.05, 0, 0.05, 50)})
	})
}

func TestComposeContainment(t *testing.T) {
	t.Run("centered", func(t *testing.T) {
		res := compose(t, box(0, 0, 0, 100, 100), box(1, 25, 25, 75, 75))
		checkLabels(t, res.DistanceLabels, []Mark{
			vmark(0.05, 0, 0.025, 25),
			vmark(0.05, 0.075, 0.025, 25),
			hmark(0, 0.05, 0.025, 25),
			hmark(0.075, 0.05, 0.025, 25),
		})
		checkGuides(t, res.RulerGuides, nil)
	})

	t.Run("touching top", func(t *testing.T) {
		res := compose(t, box(0, 0, 0, 100, 100), box(1, 25, 0, 75, 75))
		checkLabels(t, res.DistanceLabels, []Mark{
			vmark(0.05, 0.075, 0.025, 25),
			hmark(0, 0.0375, 0.025, 25),
			hmark(0.075, 0.0375, 0.025, 25),
		})
	})

	t.Run("identical geometry", func(t *testing.T) {
		res := compose(t, box(0, 0, 0, 100, 100), box(1, 0, 0, 100, 100))
		if !res.IsEmpty() {
			t.Errorf("Compose() = %+v, want empty", res)
		}
	})

	t.Run("partial overlap", func(t *testing.T) {
		res := compose(t, box(0, 0, 0, 100, 100), box(1, 50, 60, 150, 160))
		checkLabels(t, res.DistanceLabels, []Mark{
			vmark(0.075, 0, 0.06, 60),
			vmark(0.075, 0.1, 0.06, 60),
			hmark(0, 0.08, 0.05, 50),
			hmark(0.1, 0.08, 0.05, 50),
		})
	})
}

func TestComposeDiagonal(t *testing.T) {
	t.Run("target bottom right", func(t *testing.T) {
		res := compose(t, box(0, 0, 0, 100, 100), box(1, 300, 300, 400, 400))
		checkLabels(t, res.DistanceLabels, []Mark{
			hmark(0.1, 0.05, 0.2, 200),
			vmark(0.05, 0.1, 0.2, 200),
		})
		// L-shaped path meeting at the target's top-left corner (300, 300).
		checkGuides(t, res.RulerGuides, []Mark{
			hmark(0.05, 0.3, 0.25, 250),
			vmark(0.3, 0.05, 0.25, 250),
		})
	})

	t.Run("target top left", func(t *testing.T) {
		res := compose(t, box(0, 300, 300, 400, 400), box(1, 0, 0, 100, 100))
		checkLabels(t, res.DistanceLabels, []Mark{
			hmark(0.1, 0.35, 0.2, 200),
			vmark(0.35, 0.1, 0.2, 200),
		})
		// Meeting at the target's bottom-right corner (100, 100).
		checkGuides(t, res.RulerGuides, []Mark{
			hmark(0.1, 0.1, 0.25, 250),
			vmark(0.1, 0.1, 0.25, 250),
		})
	})
}

func TestComposeCornerTouch(t *testing.T) {
	t.Run("backslash", func(t *testing.T) {
		res := compose(t, box(0, 0, 0, 100, 100), box(1, 100, 100, 200, 200))
		checkLabels(t, res.DistanceLabels, []Mark{
			hmark(0.1, 0, 0.1, 100),
			hmark(0, 0.2, 0.1, 100),
			vmark(0, 0.1, 0.1, 100),
			vmark(0.2, 0, 0.1, 100),
		})
		checkGuides(t, res.RulerGuides, nil)
	})

	t.Run("slash", func(t *testing.T) {
		res := compose(t, box(0, 100, 0, 200, 100), box(1, 0, 100, 100, 200))
		checkLabels(t, res.DistanceLabels, []Mark{
			hmark(0, 0, 0.1, 100),
			hmark(0.1, 0.2, 0.1, 100),
			vmark(0, 0, 0.1, 100),
			vmark(0.2, 0.1, 0.1, 100),
		})
	})
}

func TestComposeFlush(t *testing.T) {
	t.Run("vertical gap", func(t *testing.T) {
		res := compose(t, box(0, 0, 0, 100, 100), box(1, 100, 200, 200, 300))
		checkLabels(t, res.DistanceLabels, []Mark{vmark(0.1, 0.1, 0.1, 100)})
		checkGuides(t, res.RulerGuides, nil)
	})

	t.Run("horizontal gap", func(t *testing.T) {
		res := compose(t, box(0, 0, 0, 100, 100), box(1, 150, 100, 250, 200))
		checkLabels(t, res.DistanceLabels, []Mark{hmark(0.1, 0.1, 0.05, 50)})
	})
}

func TestComposePartialMargins(t *testing.T) {
	t.Run("target inside selected range", func(t *testing.T) {
		res := compose(t, box(0, 0, 0, 100, 100), box(1, 200, 20, 300, 80))
		checkLabels(t, res.DistanceLabels, []Mark{
			hmark(0.1, 0.05, 0.1, 100),
			vmark(0.05, 0, 0.02, 20),
			vmark(0.05, 0.08, 0.02, 20),
		})
		checkGuides(t, res.RulerGuides, []Mark{
			hmark(0.05, 0, 0.15, 150),
			hmark(0.05, 0.1, 0.15, 150),
		})
	})

	t.Run("target on the left spanning selected", func(t *testing.T) {
		res := compose(t, box(0, 200, 20, 300, 80), box(1, 0, 0, 100, 100))
		checkLabels(t, res.DistanceLabels, []Mark{
			hmark(0.1, 0.05, 0.1, 100),
			vmark(0.05, 0, 0.02, 20),
			vmark(0.05, 0.08, 0.02, 20),
		})
		checkGuides(t, res.RulerGuides, []Mark{
			hmark(0.05, 0, 0.15, 150),
			hmark(0.05, 0.1, 0.15, 150),
		})
	})

	t.Run("staggered vertical separation", func(t *testing.T) {
		res := compose(t, box(0, 0, 0, 60, 100), box(1, 40, 150, 100, 250))
		checkLabels(t, res.DistanceLabels, []Mark{
			vmark(0.05, 0.1, 0.05, 50),
			hmark(0, 0.05, 0.04, 40),
			hmark(0.06, 0.2, 0.04, 40),
		})
		checkGuides(t, res.RulerGuides, []Mark{
			vmark(0, 0.05, 0.1, 100),
			vmark(0.1, 0.1, 0.1, 100),
		})
	})
}

func TestComposeRoundsDistance(t *testing.T) {
	res := compose(t, box(0, 0, 0, 100, 100), box(1, 200.2637378, 0, 300, 100))
	if len(res.DistanceLabels) != 1 {
		t.Fatalf("got %d labels, want 1", len(res.DistanceLabels))
	}
	if got := res.DistanceLabels[0].Distance; got != 100.26 {
		t.Errorf("Distance = %v, want 100.26", got)
	}
}

func TestComposeNeverEmitsZeroLength(t *testing.T) {
	selected := box(0, 100, 100, 200, 200)
	sizes := []float64{50, 100, 150}
	index := 1
	for x := 0.0; x <= 300; x += 25 {
		for y := 0.0; y <= 300; y += 25 {
			for _, size := range sizes {
				target := box(index, x, y, x+size, y+size)
				index++
				res := compose(t, selected, target)
				for _, l := range res.DistanceLabels {
					if l.Length == 0 || l.Distance == 0 || math.IsNaN(l.Length) {
						t.Errorf("target %+v: zero-length label %+v", target, l.Mark)
					}
				}
				for _, g := range res.RulerGuides {
					if g.Length == 0 || math.IsNaN(g.Length) {
						t.Errorf("target %+v: zero-length guide %+v", target, g.Mark)
					}
				}
			}
		}
	}
}
