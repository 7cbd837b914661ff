// Package pkg provides the core libraries for handoff spacing annotation.
//
// # Overview
//
// Handoff takes a design document's node tree, flattens it into rectangles
// and annotates the spacing between a selected rectangle and a target with
// distance labels and ruler guides. The pkg directory is organized into three
// areas:
//
//  1. Geometry core: [numeric], [geom], [scene] and [measure]
//  2. Orchestration: [pipeline] (extract → resolve → compose)
//  3. Infrastructure: [config], [server], [observability], [errors] and
//     [buildinfo]
//
// # Architecture
//
// The typical data flow:
//
//	document JSON
//	     ↓
//	[scene] package (decode, extract rectangles, index by node id)
//	     ↓
//	[geom] package (intersection test, relation classification)
//	     ↓
//	[measure] package (distance labels + ruler guides)
//	     ↓
//	{"distanceData": [...], "rulerData": [...]}
//
// The geometry core is pure and synchronous. It keeps no package-level state
// and never logs; failures are returned as [errors.Error] values carrying a
// machine-readable code.
//
// # Quick Start
//
//	doc, err := scene.ImportJSON("landing.json")
//	if err != nil {
//	    return err
//	}
//	rects, err := doc.Rects()
//	if err != nil {
//	    return err
//	}
//	idx := scene.NewIndex(rects)
//	selected, _ := idx.Resolve("1:2")
//	target, _ := idx.Resolve("#3")
//	res, err := measure.Compose(&selected, target, *doc.Page)
//
// The [pipeline] package wraps the same steps with page fallback, logging and
// observability hooks for the CLI and the HTTP API.
//
// [numeric]: https://pkg.go.dev/github.com/matzehuels/handoff/pkg/numeric
// [geom]: https://pkg.go.dev/github.com/matzehuels/handoff/pkg/geom
// [scene]: https://pkg.go.dev/github.com/matzehuels/handoff/pkg/scene
// [measure]: https://pkg.go.dev/github.com/matzehuels/handoff/pkg/measure
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/handoff/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/handoff/pkg/config
// [server]: https://pkg.go.dev/github.com/matzehuels/handoff/pkg/server
// [observability]: https://pkg.go.dev/github.com/matzehuels/handoff/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/handoff/pkg/errors
// [errors.Error]: https://pkg.go.dev/github.com/matzehuels/handoff/pkg/errors#Error
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/handoff/pkg/buildinfo
package pkg
