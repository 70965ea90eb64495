package rewrite

import (
	"github.com/gogpu/pictureopt/command"
	"github.com/gogpu/pictureopt/internal/egraph"
	"github.com/gogpu/pictureopt/internal/ir"
)

// srcOverReassoc: SrcOver(A, SrcOver(B, C)) <=> SrcOver(SrcOver(A, B),
// C). Both directions registered so the saturator can explore whichever
// associativity lets a later rule (srcOverExtractClipRect, in
// particular) find a match.
func srcOverReassoc(g *egraph.EGraph) bool {
	fired := false

	// Left-to-right: SrcOver(A, SrcOver(B, C)) => SrcOver(SrcOver(A,B), C).
	for _, m := range nodesWithOp(g, ir.OpSrcOver) {
		rightClass := g.EClassOf(m.Node.Kid1)
		if rightClass == nil {
			continue
		}
		for _, rightNode := range rightClass.Nodes {
			if rightNode.Op != ir.OpSrcOver {
				continue
			}
			ab := g.Add(egraph.Binary(ir.OpSrcOver, m.Node.Kid0, rightNode.Kid0, nil))
			rewritten := g.Add(egraph.Binary(ir.OpSrcOver, ab, rightNode.Kid1, nil))
			if unionIfDistinct(g, m.ClassID, rewritten) {
				fired = true
			}
		}
	}

	// Right-to-left: SrcOver(SrcOver(A, B), C) => SrcOver(A, SrcOver(B, C)).
	for _, m := range nodesWithOp(g, ir.OpSrcOver) {
		leftClass := g.EClassOf(m.Node.Kid0)
		if leftClass == nil {
			continue
		}
		for _, leftNode := range leftClass.Nodes {
			if leftNode.Op != ir.OpSrcOver {
				continue
			}
			bc := g.Add(egraph.Binary(ir.OpSrcOver, leftNode.Kid1, m.Node.Kid1, nil))
			rewritten := g.Add(egraph.Binary(ir.OpSrcOver, leftNode.Kid0, bc, nil))
			if unionIfDistinct(g, m.ClassID, rewritten) {
				fired = true
			}
		}
	}

	return fired
}

// concatSrcOverEquiv: Concat(A, B) <=> SrcOver(A, B) — the two
// operators coincide under pure source-over composition, registered
// both ways so rules written against either one still fire.
func concatSrcOverEquiv(g *egraph.EGraph) bool {
	fired := false
	for _, m := range nodesWithOp(g, ir.OpConcat) {
		srcOver := g.Add(egraph.Binary(ir.OpSrcOver, m.Node.Kid0, m.Node.Kid1, nil))
		if unionIfDistinct(g, m.ClassID, srcOver) {
			fired = true
		}
	}
	for _, m := range nodesWithOp(g, ir.OpSrcOver) {
		concat := g.Add(egraph.Binary(ir.OpConcat, m.Node.Kid0, m.Node.Kid1, nil))
		if unionIfDistinct(g, m.ClassID, concat) {
			fired = true
		}
	}
	return fired
}

// srcOverExtractClipRect: SrcOver(ClipRect(A,p), ClipRect(B,p)) <=>
// ClipRect(SrcOver(A,B), p) — extracting (or reintroducing) a common
// state op shared by both sides of a composition. The Concat44/MatrixOp
// analogues are the same shape parameterized over the unary operator.
func srcOverExtractClipRect(g *egraph.EGraph) bool {
	fired := false
	for _, op := range []ir.Op{ir.OpClipRect, ir.OpConcat44, ir.OpMatrixOp} {
		if extractCommonUnary(g, op) {
			fired = true
		}
	}
	return fired
}

func extractCommonUnary(g *egraph.EGraph, op ir.Op) bool {
	fired := false

	// Forward: SrcOver(op(A,p), op(B,p)) => op(SrcOver(A,B), p).
	for _, m := range nodesWithOp(g, ir.OpSrcOver) {
		leftClass, rightClass := g.EClassOf(m.Node.Kid0), g.EClassOf(m.Node.Kid1)
		if leftClass == nil || rightClass == nil {
			continue
		}
		for _, ln := range leftClass.Nodes {
			if ln.Op != op {
				continue
			}
			for _, rn := range rightClass.Nodes {
				if rn.Op != op || !leafEqual(ln.Leaf, rn.Leaf) {
					continue
				}
				inner := g.Add(egraph.Binary(ir.OpSrcOver, ln.Kid0, rn.Kid0, nil))
				rewritten := g.Add(egraph.Unary(op, inner, ln.Leaf))
				if unionIfDistinct(g, m.ClassID, rewritten) {
					fired = true
				}
			}
		}
	}

	// Backward: op(SrcOver(A,B), p) => SrcOver(op(A,p), op(B,p)).
	for _, m := range nodesWithOp(g, op) {
		innerClass := g.EClassOf(m.Node.Kid0)
		if innerClass == nil {
			continue
		}
		for _, innerNode := range innerClass.Nodes {
			if innerNode.Op != ir.OpSrcOver {
				continue
			}
			left := g.Add(egraph.Unary(op, innerNode.Kid0, m.Node.Leaf))
			right := g.Add(egraph.Unary(op, innerNode.Kid1, m.Node.Leaf))
			rewritten := g.Add(egraph.Binary(ir.OpSrcOver, left, right, nil))
			if unionIfDistinct(g, m.ClassID, rewritten) {
				fired = true
			}
		}
	}

	return fired
}

func leafEqual(a, b any) bool {
	switch x := a.(type) {
	case ir.ClipRectParams:
		y, ok := b.(ir.ClipRectParams)
		return ok && x == y
	case ir.M44Leaf:
		y, ok := b.(ir.M44Leaf)
		return ok && x == y
	case ir.MatrixOpParams:
		y, ok := b.(ir.MatrixOpParams)
		return ok && x == y
	default:
		return false
	}
}

// mergeSrcOverSplit: Merge(dst, src, mps) <=> SrcOver(dst,
// ApplyFilterWithState(src, mps)) when mps.mergeParams.blendMode is
// SrcOver. This is the bridge that lets the SrcOver algebraic laws
// above reach inside what the lifter originally built as a Merge.
func mergeSrcOverSplit(g *egraph.EGraph) bool {
	fired := false

	for _, m := range nodesWithOp(g, ir.OpMerge) {
		mp := m.Node.Leaf.(ir.MergeParams)
		if mp.Paint.Blend != command.BlendSrcOver {
			continue
		}
		afws := g.Add(egraph.Binary(ir.OpApplyFilterWithState, m.Node.Kid1, m.Node.Kid2, mp))
		rewritten := g.Add(egraph.Binary(ir.OpSrcOver, m.Node.Kid0, afws, nil))
		if unionIfDistinct(g, m.ClassID, rewritten) {
			fired = true
		}
	}

	for _, m := range nodesWithOp(g, ir.OpSrcOver) {
		rightClass := g.EClassOf(m.Node.Kid1)
		if rightClass == nil {
			continue
		}
		for _, rn := range rightClass.Nodes {
			if rn.Op != ir.OpApplyFilterWithState {
				continue
			}
			mp := rn.Leaf.(ir.MergeParams)
			if mp.Paint.Blend != command.BlendSrcOver {
				continue
			}
			merge := g.Add(egraph.Ternary(ir.OpMerge, m.Node.Kid0, rn.Kid0, rn.Kid1, mp))
			if unionIfDistinct(g, m.ClassID, merge) {
				fired = true
			}
		}
	}

	return fired
}
