// Package pictureopt optimizes recorded 2D drawing-command streams.
//
// # Overview
//
// A "picture" is a linear record of canvas commands — DrawCommand,
// ClipRect, Concat44, Save, SaveLayer, Restore — as produced by a
// recording canvas. pictureopt lifts that record into a tree-shaped
// algebraic intermediate representation, rewrites it under a catalog of
// axiom-preserving rules inside an equality graph, extracts the cheapest
// equivalent term, and lowers the result back to a linear program that a
// host canvas can replay more cheaply: fewer offscreen layers, fewer
// redundant clips, alpha folded into leaf draws, adjacent clip rectangles
// merged.
//
// # Quick Start
//
//	prog, meta, err := pictureopt.Optimize(context.Background(), rec)
//	if err != nil {
//	    // rec referenced an unsupported command, or the catalog has a bug
//	}
//
// # Pipeline
//
// The transformation runs in three stages, each a pure function:
//
//	command.Record -> lift.Lift -> ir.Surface -> egraph.Runner + egraph.Extractor -> ir.Surface -> lower.Lower -> program.Program
//
// # Architecture
//
// The module is organized into:
//   - Public API: Optimize, Options (this package)
//   - External boundary types: command (input), program (output), metadata
//   - Internal: ir (IR language), lift, rewrite, cost, egraph, lower
//
// # Out of Scope
//
// pictureopt never decodes a wire format, never executes a program
// against a canvas, and never rasterizes a pixel. Those concerns belong
// to the external collaborators that produce a command.Record and consume
// a program.Program.
package pictureopt
