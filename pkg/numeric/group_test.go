package numeric

import "testing"

func TestGroup(t *testing.T) {
	v := Quad{0, 100, 20, 80}
	h := Quad{0, 100, 200, 300}

	g := Group(Horizontal, v, h)
	if g.Parallel != h || g.Intersect != v {
		t.Errorf("Group(Horizontal) = %+v, want parallel=%v intersect=%v", g, h, v)
	}

	g = Group(Vertical, v, h)
	if g.Parallel != v || g.Intersect != h {
		t.Errorf("Group(Vertical) = %+v, want parallel=%v intersect=%v", g, v, h)
	}
}

func TestOrder(t *testing.T) {
	g := Order(Groups{Intersect: Quad{0, 100, 20, 80}, Parallel: Quad{200, 300, 0, 100}})
	if g.Intersect != (Quad{0, 20, 80, 100}) {
		t.Errorf("Intersect = %v, want [0 20 80 100]", g.Intersect)
	}
	if g.Parallel != (Quad{0, 100, 200, 300}) {
		t.Errorf("Parallel = %v, want [0 100 200 300]", g.Parallel)
	}
}

func TestParallelSpacing(t *testing.T) {
	tests := []struct {
		name     string
		parallel Quad
		want     float64
	}{
		{"separated", Quad{0, 100, 200, 300}, 100},
		{"flush", Quad{0, 100, 100, 200}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParallelSpacing(tt.parallel); got != tt.want {
				t.Errorf("ParallelSpacing(%v) = %v, want %v", tt.parallel, got, tt.want)
			}
		})
	}
}

func TestMargin(t *testing.T) {
	q := Quad{0, 20, 70, 100}
	if got := Margin(q, MarginLower); got != 20 {
		t.Errorf("Margin(lower) = %v, want 20", got)
	}
	if got := Margin(q, MarginUpper); got != 30 {
		t.Errorf("Margin(upper) = %v, want 30", got)
	}
	if got := Margin(Quad{0, 0, 100, 100}, MarginLower); got != 0 {
		t.Errorf("Margin(aligned) = %v, want 0", got)
	}
}

func TestMidIndex(t *testing.T) {
	tests := []struct {
		name      string
		intersect Quad
		closer    int
		want      [2]int
	}{
		{
			name:      "selected spans both ends, selected closer",
			intersect: Quad{0, 100, 20, 80},
			closer:    0,
			want:      [2]int{0, 0},
		},
		{
			name:      "selected spans both ends, target closer",
			intersect: Quad{0, 100, 20, 80},
			closer:    1,
			want:      [2]int{1, 1},
		},
		{
			name:      "target spans both ends, selected closer",
			intersect: Quad{20, 80, 0, 100},
			closer:    0,
			want:      [2]int{1, 1},
		},
		{
			name:      "staggered",
			intersect: Quad{0, 60, 40, 100},
			closer:    0,
			want:      [2]int{0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MidIndex(tt.intersect, tt.closer); got != tt.want {
				t.Errorf("MidIndex(%v, %d) = %v, want %v", tt.intersect, tt.closer, got, tt.want)
			}
		})
	}
}
