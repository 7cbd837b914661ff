// Package measure composes the distance labels and ruler guides that annotate
// the spacing between a selected rectangle and a target rectangle.
//
// [Compose] classifies the pair with [geom.Classify] and emits, per case:
//
//   - diagonal: one horizontal and one vertical gap label, plus two guides
//     forming an L from the selected rectangle's centre lines to the target's
//     facing corner
//   - corner touch: four labels, one per outer edge, oriented by which way the
//     diagonal runs
//   - flush: a single label for the non-zero gap
//   - partial overlap: the gap between the rectangles plus the edge offsets at
//     each end of the overlapping range, each offset with a matching guide
//   - overlap or containment: up to four padding labels between the overlap
//     band and the outer edges
//
// Zero-length measurements are never emitted. Positions and lengths are
// fractions of the page; [Mark.Distance] keeps the pixel magnitude rounded
// with [numeric.ToFixed] for display.
//
// # JSON
//
// Marks encode with exactly one magnitude key:
//
//	{"x": 0.1, "y": 0.05, "w": 0.1, "distance": 100}
//	{"x": 0.05, "y": 0.1, "h": 0.2, "distance": 200}
//
// A [Result] encodes as {"distanceData": [...], "rulerData": [...]}.
package measure
