package rewrite

import (
	"github.com/gogpu/pictureopt/internal/egraph"
	"github.com/gogpu/pictureopt/internal/ir"
)

// clipOfBlank: ClipRect(BlankSurface, _) => BlankSurface.
func clipOfBlank(g *egraph.EGraph) bool {
	return unionBaseWithBlankIfBlank(g, ir.OpClipRect)
}

// matrixOpOfBlank: MatrixOp(BlankSurface, _) => BlankSurface.
func matrixOpOfBlank(g *egraph.EGraph) bool {
	return unionBaseWithBlankIfBlank(g, ir.OpMatrixOp)
}

// concat44OfBlank: Concat44(BlankSurface, _) => BlankSurface.
func concat44OfBlank(g *egraph.EGraph) bool {
	return unionBaseWithBlankIfBlank(g, ir.OpConcat44)
}

// alphaOfBlank: ApplyAlpha(_, BlankSurface) => BlankSurface.
func alphaOfBlank(g *egraph.EGraph) bool {
	return unionBaseWithBlankIfBlank(g, ir.OpApplyAlpha)
}

func unionBaseWithBlankIfBlank(g *egraph.EGraph, op ir.Op) bool {
	fired := false
	for _, m := range nodesWithOp(g, op) {
		if isBlankSurface(g, m.Node.Kid0) {
			if unionIfDistinct(g, m.ClassID, m.Node.Kid0) {
				fired = true
			}
		}
	}
	return fired
}

// concatBlankLeft: Concat(BlankSurface, x) => x.
func concatBlankLeft(g *egraph.EGraph) bool {
	fired := false
	for _, m := range nodesWithOp(g, ir.OpConcat) {
		if isBlankSurface(g, m.Node.Kid0) {
			if unionIfDistinct(g, m.ClassID, m.Node.Kid1) {
				fired = true
			}
		}
	}
	return fired
}

// concatBlankRight: Concat(x, BlankSurface) => x.
func concatBlankRight(g *egraph.EGraph) bool {
	fired := false
	for _, m := range nodesWithOp(g, ir.OpConcat) {
		if isBlankSurface(g, m.Node.Kid1) {
			if unionIfDistinct(g, m.ClassID, m.Node.Kid0) {
				fired = true
			}
		}
	}
	return fired
}

// alphaIdentity: ApplyAlpha(alpha=255, x) => x.
func alphaIdentity(g *egraph.EGraph) bool {
	fired := false
	for _, m := range nodesWithOp(g, ir.OpApplyAlpha) {
		params := m.Node.Leaf.(ir.AlphaParams)
		if params.Alpha == 255 {
			if unionIfDistinct(g, m.ClassID, m.Node.Kid0) {
				fired = true
			}
		}
	}
	return fired
}

// applyStateOfBlankState: ApplyState(s, BlankState) => s.
func applyStateOfBlankState(g *egraph.EGraph) bool {
	fired := false
	for _, m := range nodesWithOp(g, ir.OpApplyState) {
		if isBlankState(g, m.Node.Kid1) {
			if unionIfDistinct(g, m.ClassID, m.Node.Kid0) {
				fired = true
			}
		}
	}
	return fired
}

// mergeTrivialMergeParams reports whether mp describes a save-layer
// that contributes nothing of its own beyond plain composition.
func mergeTrivialMergeParams(mp ir.MergeParams) bool {
	return mp.IsTrivial()
}

// mergeTrivialToLayer: Merge(dst, BlankSurface, mps) => dst, when mps's
// MergeParams is pure SrcOver with no filters/backdrop/bounds.
func mergeTrivialToLayer(g *egraph.EGraph) bool {
	fired := false
	for _, m := range nodesWithOp(g, ir.OpMerge) {
		mp := m.Node.Leaf.(ir.MergeParams)
		if isBlankSurface(g, m.Node.Kid1) && mergeTrivialMergeParams(mp) {
			if unionIfDistinct(g, m.ClassID, m.Node.Kid0) {
				fired = true
			}
		}
	}
	return fired
}

// mergeTrivialToConcat: Merge(dst, src, mps) => Concat(dst, src) iff
// mps.state = BlankState and mps's MergeParams is pure SrcOver with no
// filters, no backdrop, no bounds.
func mergeTrivialToConcat(g *egraph.EGraph) bool {
	fired := false
	for _, m := range nodesWithOp(g, ir.OpMerge) {
		mp := m.Node.Leaf.(ir.MergeParams)
		stateIsBlank := m.Node.Kid2 == egraph.NoID || isBlankState(g, m.Node.Kid2)
		if stateIsBlank && mergeTrivialMergeParams(mp) {
			concat := g.Add(egraph.Binary(ir.OpConcat, m.Node.Kid0, m.Node.Kid1, nil))
			if unionIfDistinct(g, m.ClassID, concat) {
				fired = true
			}
		}
	}
	return fired
}

// applyFilterTrivial: ApplyFilterWithState(s, mps) => s, under the same
// side condition as mergeTrivialToConcat.
func applyFilterTrivial(g *egraph.EGraph) bool {
	fired := false
	for _, m := range nodesWithOp(g, ir.OpApplyFilterWithState) {
		mp := m.Node.Leaf.(ir.MergeParams)
		stateIsBlank := m.Node.Kid1 == egraph.NoID || isBlankState(g, m.Node.Kid1)
		if stateIsBlank && mergeTrivialMergeParams(mp) {
			if unionIfDistinct(g, m.ClassID, m.Node.Kid0) {
				fired = true
			}
		}
	}
	return fired
}
