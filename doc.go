// Package plan is the geometry and editing core of a 2D architectural
// drawing tool.
//
// # Overview
//
// Users place walls, circles, polygons, zones, zone dividers and arcs on an
// infinite canvas measured in meters. This package holds everything that
// does not depend on pixels:
//   - Geometry kernel: point math, line intersection, mitered wall corners,
//     wall outline construction (BuildWallPolygon)
//   - Shape models with derived measurements (length, area, perimeter, ...)
//   - NodeGraph: wall endpoint connectivity for snapping and junctions
//   - Scene: the shared owner of all shapes, the node graph and a spatial
//     index
//   - Reversible commands (AddCommand, DeleteCommand, ModifyCommand)
//
// Sub-packages build on it:
//   - history: undo/redo engine executing the commands
//   - tool: interactive drawing and selection state machines
//   - render: viewport transform and a software renderer
//
// # Quick Start
//
//	scene := plan.NewScene()
//	hist := history.New()
//	defer hist.Close()
//
//	a := plan.NewWall(plan.Pt(0, 0), plan.Pt(5, 0), 0.2)
//	b := plan.NewWall(plan.Pt(5, 0), plan.Pt(5, 5), 0.2)
//	_ = hist.Execute(plan.NewAddCommand(scene, a))
//	_ = hist.Execute(plan.NewAddCommand(scene, b))
//
//	outline := plan.BuildWallPolygon(a, scene.Walls()) // mitered at (5,0)
//	_ = hist.Undo()                                   // b is gone again
//
// # Coordinate System
//
// World coordinates are meters:
//   - X increases right, Y increases down (screen convention)
//   - Angles in radians, 0 is +X, increasing toward +Y
//
// Two points are the same location when both coordinate deltas are below
// MatchEpsilon (1 cm); ExactPointMatch is the only place that decides it.
//
// # Concurrency
//
// The core is single-threaded and event driven. A Scene, its shapes and
// the history that mutates them must be used from one goroutine.
// Independent scenes may live on different goroutines.
package plan

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
