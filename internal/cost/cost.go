// Package cost defines the extraction cost function: a total order over
// e-nodes used by internal/egraph's bottom-up greedy extractor to pick
// a cheapest representative of every e-class. The function has no
// notion of e-classes itself — it only combines a node's own weight
// with the already-extracted costs of its children — so it lives
// independent of internal/egraph and is reusable from tests without
// building a graph.
package cost

import "github.com/gogpu/pictureopt/internal/ir"

// Node weights. Relative order matters far more than absolute values:
// a Merge must always cost more than inlining its content directly
// (so the extractor only keeps a save-layer bracket when something
// legitimately requires it), and a virtual op must cost enough that
// the extractor never prefers it over any real alternative — if one
// is ever the cheapest choice available, that is exactly the
// ErrVirtualOpSurvivor case lowering must catch.
const (
	Blank      = 0
	LeafParam  = 0
	Draw       = 10
	Structural = 1
	MergeNode  = 1000
	Virtual    = 1 << 30
)

// Of returns the cost contribution of a single node of operator op,
// given the already-extracted costs of its children in child order.
func Of(op ir.Op, childCosts ...int) int {
	total := weight(op)
	for _, c := range childCosts {
		total += c
	}
	return total
}

func weight(op ir.Op) int {
	switch {
	case op == ir.OpBlankSurface || op == ir.OpBlankState:
		return Blank
	case op == ir.OpDraw:
		return Draw
	case op == ir.OpMerge:
		return MergeNode
	case op.IsVirtual():
		return Virtual
	case isLeafParam(op):
		return LeafParam
	default:
		return Structural
	}
}

func isLeafParam(op ir.Op) bool {
	switch op {
	case ir.OpM44, ir.OpClipRectParams, ir.OpMatrixOpParams,
		ir.OpMergeParams, ir.OpMergeParamsWithState, ir.OpAlphaParams:
		return true
	default:
		return false
	}
}
