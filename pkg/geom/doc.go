// Package geom defines the axis-aligned rectangles extracted from a design
// document and classifies how two of them relate to each other.
//
// Coordinates are document-relative with y growing downwards, so Top is
// always less than or equal to Bottom.
//
// [Intersects] treats rectangles that merely touch along an edge as not
// intersecting. This lets flush layouts be classified as separated with a
// zero gap instead of as overlapping. [Classify] reduces any placement of two
// rectangles to a small set of [Case] values consumed by the measure package:
//
//	vertical gap   horizontal gap   case
//	> 0            > 0              CaseDiagonal
//	= 0            = 0              CaseCorner
//	= 0 / > 0      > 0 / = 0        CaseFlush
//	overlap        gap (or swap)    CasePartial
//	overlap        overlap          CaseOverlap
//
// Everything in this package is a value type; functions are pure and safe for
// concurrent use.
package geom
