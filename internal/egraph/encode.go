package egraph

import "github.com/gogpu/pictureopt/internal/ir"

// AddSurface interns s and its whole subtree into g, returning the
// e-class id of its root. This is how internal/lift's output (and any
// other already-built ir.Surface value) enters the e-graph to be
// saturated; internal/rewrite's rules build new nodes directly via the
// Node constructors once inside the graph.
func AddSurface(g *EGraph, s ir.Surface) Id {
	switch x := s.(type) {
	case ir.BlankSurface:
		return g.Add(Leaf0(ir.OpBlankSurface))

	case ir.Draw:
		return g.Add(LeafData(ir.OpDraw, DrawLeaf{Index: x.Index, Name: x.Name, Paint: x.Paint}))

	case ir.Concat:
		return g.Add(Binary(ir.OpConcat, AddSurface(g, x.Lhs), AddSurface(g, x.Rhs), nil))

	case ir.SrcOver:
		return g.Add(Binary(ir.OpSrcOver, AddSurface(g, x.Bottom), AddSurface(g, x.Top), nil))

	case ir.ClipRect:
		return g.Add(Unary(ir.OpClipRect, AddSurface(g, x.Base), x.Params))

	case ir.MatrixOp:
		return g.Add(Unary(ir.OpMatrixOp, AddSurface(g, x.Base), x.Params))

	case ir.Concat44:
		return g.Add(Unary(ir.OpConcat44, AddSurface(g, x.Base), x.Matrix))

	case ir.ApplyAlpha:
		return g.Add(Unary(ir.OpApplyAlpha, AddSurface(g, x.Base), x.Params))

	case ir.ApplyState:
		return g.Add(Binary(ir.OpApplyState, AddSurface(g, x.Base), AddState(g, x.State), nil))

	case ir.ApplyFilterWithState:
		return g.Add(Binary(ir.OpApplyFilterWithState, AddSurface(g, x.Base), AddState(g, x.Params.State), x.Params.MP))

	case ir.Merge:
		return g.Add(Ternary(ir.OpMerge, AddSurface(g, x.Dst), AddSurface(g, x.Src), AddState(g, x.Params.State), x.Params.MP))

	default:
		panic("egraph: unexpected surface op " + x.Op().String())
	}
}

// AddState interns s and its subtree, returning its e-class id.
func AddState(g *EGraph, s ir.State) Id {
	switch x := s.(type) {
	case ir.BlankState:
		return g.Add(Leaf0(ir.OpBlankState))
	case ir.StateClipRect:
		return g.Add(Unary(ir.OpStateClipRect, AddState(g, x.Base), x.Params))
	case ir.StateConcat44:
		return g.Add(Unary(ir.OpStateConcat44, AddState(g, x.Base), x.Matrix))
	case ir.StateMatrixOp:
		return g.Add(Unary(ir.OpStateMatrixOp, AddState(g, x.Base), x.Params))
	default:
		panic("egraph: unexpected state op " + x.Op().String())
	}
}
