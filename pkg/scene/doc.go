// Package scene reads design document node trees and flattens them into the
// rectangles measured by the measure package.
//
// # JSON Format
//
// A document is a JSON object with an origin, an optional page and a list of
// root nodes:
//
//	{
//	  "name": "Landing",
//	  "origin": {"x": -120, "y": 40},
//	  "page": {"width": 1440, "height": 1024},
//	  "nodes": [
//	    {
//	      "id": "1:2",
//	      "name": "Header",
//	      "type": "FRAME",
//	      "absoluteBoundingBox": {"x": -120, "y": 40, "width": 1440, "height": 80},
//	      "children": [...]
//	    }
//	  ]
//	}
//
// Node types GROUP, COMPONENT and INSTANCE are recognized; every other type
// string is treated as an ordinary leaf or container. A node with
// "visible": false is skipped together with its whole subtree.
//
// # Extraction
//
// [Extract] walks the tree in pre-order. Groups contribute no rectangle of
// their own but their children are visited. Every other visible node yields
// exactly one [geom.Rect] translated by the document origin, indexed densely
// from 0 in encounter order. Indices restart at 0 for every call; there is no
// shared counter, so concurrent extractions are independent.
//
// [Index] maps node ids to extracted rectangles in extraction order and
// resolves the selectors accepted by the CLI and HTTP API.
package scene
