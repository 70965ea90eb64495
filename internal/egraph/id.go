// Package egraph implements a minimal equality-saturation engine:
// union-find congruence closure over hash-consed Node values, plus a
// bounded Runner and a bottom-up greedy Extractor. It has no notion of
// Picture IR semantics; internal/rewrite and internal/lift/internal/lower
// are the layers that know what an EGraph full of ir.Op nodes means.
package egraph

// Id names an e-class. Ids are assigned densely from zero as classes
// are created and never reused; Find(id) follows union-find path
// compression to the class's current canonical representative.
type Id int

// NoID marks an unused child slot in a Node (e.g. BlankSurface has no
// children at all, ClipRect has only one). Exported so internal/rewrite
// can recognize an absent captured-state slot on Merge and
// ApplyFilterWithState without reaching into egraph internals.
const NoID Id = -1

// noId is the unexported spelling used throughout this package.
const noId = NoID
