package rewrite

import (
	"github.com/gogpu/pictureopt/command"
	"github.com/gogpu/pictureopt/internal/egraph"
	"github.com/gogpu/pictureopt/internal/ir"
)

// commuteAlphaMatrixOp: ApplyAlpha(a, MatrixOp(l, p)) <=>
// MatrixOp(ApplyAlpha(a, l), p). Explored in both directions so the
// saturator can push ApplyAlpha all the way down to the leaf draws it
// must eventually fold into (alphaFoldDraw), regardless of which
// ordering the lifter happened to produce.
func commuteAlphaMatrixOp(g *egraph.EGraph) bool {
	return commuteAlphaOverUnary(g, ir.OpMatrixOp)
}

// commuteAlphaClipRect: ApplyAlpha(a, ClipRect(l, p)) <=>
// ClipRect(ApplyAlpha(a, l), p).
func commuteAlphaClipRect(g *egraph.EGraph) bool {
	return commuteAlphaOverUnary(g, ir.OpClipRect)
}

// commuteAlphaConcat44: ApplyAlpha(a, Concat44(l, p)) <=>
// Concat44(ApplyAlpha(a, l), p).
func commuteAlphaConcat44(g *egraph.EGraph) bool {
	return commuteAlphaOverUnary(g, ir.OpConcat44)
}

func commuteAlphaOverUnary(g *egraph.EGraph, inner ir.Op) bool {
	fired := false

	// Forward: ApplyAlpha(a, inner(l, p)) => inner(ApplyAlpha(a, l), p).
	for _, m := range nodesWithOp(g, ir.OpApplyAlpha) {
		ap := m.Node.Leaf.(ir.AlphaParams)
		baseClass := g.EClassOf(m.Node.Kid0)
		if baseClass == nil {
			continue
		}
		for _, baseNode := range baseClass.Nodes {
			if baseNode.Op != inner {
				continue
			}
			newAlpha := g.Add(egraph.Unary(ir.OpApplyAlpha, baseNode.Kid0, ap))
			rewritten := g.Add(egraph.Unary(inner, newAlpha, baseNode.Leaf))
			if unionIfDistinct(g, m.ClassID, rewritten) {
				fired = true
			}
		}
	}

	// Backward: inner(ApplyAlpha(a, l), p) => ApplyAlpha(a, inner(l, p)).
	for _, m := range nodesWithOp(g, inner) {
		baseClass := g.EClassOf(m.Node.Kid0)
		if baseClass == nil {
			continue
		}
		for _, baseNode := range baseClass.Nodes {
			if baseNode.Op != ir.OpApplyAlpha {
				continue
			}
			newInner := g.Add(egraph.Unary(inner, baseNode.Kid0, m.Node.Leaf))
			rewritten := g.Add(egraph.Unary(ir.OpApplyAlpha, newInner, baseNode.Leaf))
			if unionIfDistinct(g, m.ClassID, rewritten) {
				fired = true
			}
		}
	}

	return fired
}

// commuteApplyStateClipRect: ApplyState(s, ClipRect(st, p)) <=>
// ApplyState(ClipRect(s, p), st).
func commuteApplyStateClipRect(g *egraph.EGraph) bool {
	return commuteApplyStateOverUnary(g, ir.OpStateClipRect, ir.OpClipRect)
}

// commuteApplyStateConcat44: ApplyState(s, Concat44(st, p)) <=>
// ApplyState(Concat44(s, p), st).
func commuteApplyStateConcat44(g *egraph.EGraph) bool {
	return commuteApplyStateOverUnary(g, ir.OpStateConcat44, ir.OpConcat44)
}

// commuteApplyStateMatrixOp: ApplyState(s, MatrixOp(st, p)) <=>
// ApplyState(MatrixOp(s, p), st).
func commuteApplyStateMatrixOp(g *egraph.EGraph) bool {
	return commuteApplyStateOverUnary(g, ir.OpStateMatrixOp, ir.OpMatrixOp)
}

// commuteApplyStateOverUnary moves a single state-building layer out of
// the captured State and onto the surface directly, peeling the state
// term one layer at a time so the saturator can eventually reach
// ApplyState(s, BlankState), eliminated by applyStateOfBlankState.
func commuteApplyStateOverUnary(g *egraph.EGraph, stateOp, surfaceOp ir.Op) bool {
	fired := false
	for _, m := range nodesWithOp(g, ir.OpApplyState) {
		stateClass := g.EClassOf(m.Node.Kid1)
		if stateClass == nil {
			continue
		}
		for _, stateNode := range stateClass.Nodes {
			if stateNode.Op != stateOp {
				continue
			}
			newSurface := g.Add(egraph.Unary(surfaceOp, m.Node.Kid0, stateNode.Leaf))
			rewritten := g.Add(egraph.Binary(ir.OpApplyState, newSurface, stateNode.Kid0, nil))
			if unionIfDistinct(g, m.ClassID, rewritten) {
				fired = true
			}
		}
	}
	return fired
}

// commuteApplyFilterStateClipRect: ApplyFilterWithState(l, mps(mp,
// ClipRect(st, p))) => ClipRect(ApplyFilterWithState(l, mps(mp, st)), p),
// when mp is pure SrcOver with no bounds of its own.
func commuteApplyFilterStateClipRect(g *egraph.EGraph) bool {
	return commuteApplyFilterStateOverUnary(g, ir.OpStateClipRect, ir.OpClipRect)
}

// commuteApplyFilterStateConcat44: ApplyFilterWithState(l, mps(mp,
// Concat44(st, p))) => Concat44(ApplyFilterWithState(l, mps(mp, st)), p).
func commuteApplyFilterStateConcat44(g *egraph.EGraph) bool {
	return commuteApplyFilterStateOverUnary(g, ir.OpStateConcat44, ir.OpConcat44)
}

// commuteApplyFilterStateMatrixOp: ApplyFilterWithState(l, mps(mp,
// MatrixOp(st, p))) => MatrixOp(ApplyFilterWithState(l, mps(mp, st)), p).
func commuteApplyFilterStateMatrixOp(g *egraph.EGraph) bool {
	return commuteApplyFilterStateOverUnary(g, ir.OpStateMatrixOp, ir.OpMatrixOp)
}

// commuteApplyFilterStateOverUnary is commuteApplyStateOverUnary's
// counterpart for a save-layer's captured state: it only applies when
// the save-layer's own MergeParams is pure SrcOver with no bounds, so
// moving the state-building layer onto the surface side cannot change
// what the filter sees. Peels the captured state one layer at a time so
// the saturator can eventually reach ApplyFilterWithState(l, mps(mp,
// BlankState)), which applyFilterTrivial then collapses when mp is also
// trivial.
func commuteApplyFilterStateOverUnary(g *egraph.EGraph, stateOp, surfaceOp ir.Op) bool {
	fired := false
	for _, m := range nodesWithOp(g, ir.OpApplyFilterWithState) {
		mp := m.Node.Leaf.(ir.MergeParams)
		if !mp.Paint.IsPlainSrcOver() || mp.HasBounds {
			continue
		}
		stateClass := g.EClassOf(m.Node.Kid1)
		if stateClass == nil {
			continue
		}
		for _, stateNode := range stateClass.Nodes {
			if stateNode.Op != stateOp {
				continue
			}
			newSurface := g.Add(egraph.Unary(surfaceOp, m.Node.Kid0, stateNode.Leaf))
			rewritten := g.Add(egraph.Binary(ir.OpApplyFilterWithState, newSurface, stateNode.Kid0, mp))
			if unionIfDistinct(g, m.ClassID, rewritten) {
				fired = true
			}
		}
	}
	return fired
}

// separateFilterAndState: ApplyFilterWithState(l, mps(mp, st)) =>
// ApplyFilterWithState(ApplyFilterWithState(l, mps(mp, BlankState)),
// mps(identitySrcOver, st)), whenever st is not already BlankState.
// Isolates the save-layer's own paint/filter effect (left applied
// against a blank captured state) from the ambient state it was
// recorded under (right applied with an identity paint), so
// commuteApplyFilterStateOverUnary can then peel that ambient state
// off the outer wrapper one layer at a time. Guarded on mp itself not
// already being trivial so the rule does not keep re-splitting its own
// output.
func separateFilterAndState(g *egraph.EGraph) bool {
	fired := false
	for _, m := range nodesWithOp(g, ir.OpApplyFilterWithState) {
		mp := m.Node.Leaf.(ir.MergeParams)
		if mp.IsTrivial() {
			continue
		}
		if m.Node.Kid1 == egraph.NoID || isBlankState(g, m.Node.Kid1) {
			continue
		}
		blankState := g.Add(egraph.Leaf0(ir.OpBlankState))
		filterOnly := g.Add(egraph.Binary(ir.OpApplyFilterWithState, m.Node.Kid0, blankState, mp))
		identityMP := ir.MergeParams{Index: mp.Index, Paint: command.DefaultPaint()}
		rewritten := g.Add(egraph.Binary(ir.OpApplyFilterWithState, filterOnly, m.Node.Kid1, identityMP))
		if unionIfDistinct(g, m.ClassID, rewritten) {
			fired = true
		}
	}
	return fired
}
