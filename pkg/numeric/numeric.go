package numeric

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Quad is a fixed group of four coordinates: two edges of the selected
// rectangle followed by the same two edges of the target.
type Quad [4]float64

// Axis identifies one of the two measurement axes.
type Axis int

const (
	// Vertical is the top/bottom axis (y coordinates).
	Vertical Axis = iota
	// Horizontal is the left/right axis (x coordinates).
	Horizontal
)

// String returns "v" or "h".
func (a Axis) String() string {
	if a == Vertical {
		return "v"
	}
	return "h"
}

// Other returns the perpendicular axis.
func (a Axis) Other() Axis {
	if a == Vertical {
		return Horizontal
	}
	return Vertical
}

// Sort4 returns q sorted in ascending order. q itself is not modified.
func Sort4(q Quad) Quad {
	s := q
	sort.Float64s(s[:])
	return s
}

// Mids returns the two middle values of a sorted quad.
func Mids(sorted Quad) [2]float64 {
	return [2]float64{sorted[1], sorted[2]}
}

// Mean returns the arithmetic mean of vals, or 0 for no values.
func Mean(vals ...float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// ToFixed rounds v for display: integral values pass through unchanged,
// everything else is rounded to two decimal places (0.2637378 -> 0.26).
func ToFixed(v float64) float64 {
	if math.Floor(v) == v {
		return v
	}
	return math.Round(v*100) / 100
}

// Percent formats a page fraction as a percentage string (0.32 -> "32%").
func Percent(f float64) string {
	return strconv.FormatFloat(ToFixed(f*100), 'f', -1, 64) + "%"
}

// PxToNumber parses a CSS-style pixel length ("100px" or "100") into a number.
func PxToNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "px"), 64)
	if err != nil {
		return 0, fmt.Errorf("parse pixel value %q: %w", s, err)
	}
	return v, nil
}
