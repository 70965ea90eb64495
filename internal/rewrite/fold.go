package rewrite

import (
	"github.com/gogpu/pictureopt/internal/egraph"
	"github.com/gogpu/pictureopt/internal/ir"
)

// alphaPackMerge: Merge(dst, src, mps(paint{alpha=a,...})) =>
// Merge(dst, ApplyAlpha(a, src), mps(paint{alpha=255,...})), when
// mps.mergeParams is pure SrcOver. Extracts the alpha byte into a fresh
// ApplyAlpha node so later rules can commute or fold it independently
// of the merge's own paint.
func alphaPackMerge(g *egraph.EGraph) bool {
	fired := false
	for _, m := range nodesWithOp(g, ir.OpMerge) {
		mp := m.Node.Leaf.(ir.MergeParams)
		alpha := mp.Paint.Color.A()
		if !mp.Paint.IsPlainSrcOver() || alpha == 255 {
			continue
		}
		newSrc := g.Add(egraph.Unary(ir.OpApplyAlpha, m.Node.Kid1, ir.AlphaParams{Alpha: alpha}))
		newMP := mp
		newMP.Paint = mp.Paint.WithAlpha(255)
		newMerge := g.Add(egraph.Ternary(ir.OpMerge, m.Node.Kid0, newSrc, m.Node.Kid2, newMP))
		if unionIfDistinct(g, m.ClassID, newMerge) {
			fired = true
		}
	}
	return fired
}

// alphaUnpackMerge is the reverse direction of alphaPackMerge: folds an
// ApplyAlpha sitting directly in a Merge's src slot back into the
// merge's own paint alpha, multiplying the two alpha bytes with the
// standard (a1*a2)/255 truncating contract.
func alphaUnpackMerge(g *egraph.EGraph) bool {
	fired := false
	for _, m := range nodesWithOp(g, ir.OpMerge) {
		mp := m.Node.Leaf.(ir.MergeParams)
		if !mp.Paint.IsPlainSrcOver() {
			continue
		}
		srcClass := g.EClassOf(m.Node.Kid1)
		if srcClass == nil {
			continue
		}
		for _, srcNode := range srcClass.Nodes {
			if srcNode.Op != ir.OpApplyAlpha {
				continue
			}
			ap := srcNode.Leaf.(ir.AlphaParams)
			newMP := mp
			newMP.Paint = mp.Paint.WithAlpha(foldAlphaByte(ap.Alpha, mp.Paint.Color.A()))
			newMerge := g.Add(egraph.Ternary(ir.OpMerge, m.Node.Kid0, srcNode.Kid0, m.Node.Kid2, newMP))
			if unionIfDistinct(g, m.ClassID, newMerge) {
				fired = true
			}
		}
	}
	return fired
}

// alphaFoldDraw: ApplyAlpha(alpha, s) where s's e-class contains a
// DrawCommand{idx, paint} is rewritten to DrawCommand{idx, paint with
// alpha <- (paint.alpha*alpha)/255}. This is the rule that eventually
// eliminates every ApplyAlpha from the graph.
func alphaFoldDraw(g *egraph.EGraph) bool {
	fired := false
	for _, m := range nodesWithOp(g, ir.OpApplyAlpha) {
		draw, ok := findDraw(g, m.Node.Kid0)
		if !ok {
			continue
		}
		ap := m.Node.Leaf.(ir.AlphaParams)
		folded := draw
		folded.Paint = draw.Paint.WithAlpha(foldAlphaByte(draw.Paint.Color.A(), ap.Alpha))
		newDraw := g.Add(egraph.LeafData(ir.OpDraw, folded))
		if unionIfDistinct(g, m.ClassID, newDraw) {
			fired = true
		}
	}
	return fired
}

// clipFold: ClipRect(ClipRect(s, inner), outer) => ClipRect(s, merged)
// iff both are Intersect and share the same antiAlias flag; merged
// bounds is the intersection of inner and outer.
func clipFold(g *egraph.EGraph) bool {
	fired := false
	for _, m := range nodesWithOp(g, ir.OpClipRect) {
		outer := m.Node.Leaf.(ir.ClipRectParams)
		innerClass := g.EClassOf(m.Node.Kid0)
		if innerClass == nil {
			continue
		}
		for _, innerNode := range innerClass.Nodes {
			if innerNode.Op != ir.OpClipRect {
				continue
			}
			inner := innerNode.Leaf.(ir.ClipRectParams)
			if !inner.Mergeable(outer) {
				continue
			}
			merged := inner.Merge(outer)
			newClip := g.Add(egraph.Unary(ir.OpClipRect, innerNode.Kid0, merged))
			if unionIfDistinct(g, m.ClassID, newClip) {
				fired = true
			}
		}
	}
	return fired
}
