// Package numeric provides the scalar helpers used by the spacing classifier.
//
// Every measurement between two rectangles starts from two groups of four
// coordinates: the vertical edges (top, bottom of the selected rectangle, then
// top, bottom of the target) and the horizontal edges (left, right, left,
// right). A [Quad] holds one such group in that fixed order. Sorting a Quad
// yields the outer extremes at indices 0 and 3 and the inner values at 1 and 2,
// which is all the composer needs to locate gaps, overlap bands and margins.
//
// When two rectangles are separated along one axis and overlap along the
// other, [Group] splits the coordinates into the "parallel" group (the axis
// along which the rectangles sit side by side) and the "intersect" group (the
// axis along which their ranges overlap).
//
// All functions are pure and safe for concurrent use.
package numeric
