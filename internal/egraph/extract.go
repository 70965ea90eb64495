package egraph

import (
	"github.com/gogpu/pictureopt/internal/cost"
	"github.com/gogpu/pictureopt/internal/ir"
)

// Extractor performs bottom-up greedy extraction: the cheapest node in
// each e-class is chosen, propagating children costs upward, iterated
// to a fixed point (a class's cheapest node may depend on a child class
// whose own cheapest choice hasn't stabilized yet on the first pass).
type Extractor struct {
	g    *EGraph
	best map[Id]extractResult
}

type extractResult struct {
	cost int
	node Node
}

// NewExtractor returns an Extractor over g. Call Run before Best/
// ToSurface/ToState.
func NewExtractor(g *EGraph) *Extractor {
	return &Extractor{g: g, best: make(map[Id]extractResult)}
}

// Run computes the cheapest node of every e-class, iterating until no
// class's choice improves.
func (e *Extractor) Run() {
	changed := true
	for changed {
		changed = false
		for id, class := range e.g.Classes() {
			current, has := e.best[id]
			for _, n := range class.Nodes {
				c, ok := e.nodeCost(n)
				if !ok {
					continue
				}
				if !has || c < current.cost {
					current = extractResult{cost: c, node: n}
					has = true
					changed = true
				}
			}
			if has {
				e.best[id] = current
			}
		}
	}
}

func (e *Extractor) nodeCost(n Node) (int, bool) {
	var childCosts []int
	for _, kid := range n.Children() {
		r, ok := e.best[e.g.Find(kid)]
		if !ok {
			return 0, false
		}
		childCosts = append(childCosts, r.cost)
	}
	return cost.Of(n.Op, childCosts...), true
}

// Best returns the cheapest node chosen for id's e-class.
func (e *Extractor) Best(id Id) (Node, bool) {
	r, ok := e.best[e.g.Find(id)]
	return r.node, ok
}

// Cost returns the total extracted cost of id's e-class.
func (e *Extractor) Cost(id Id) (int, bool) {
	r, ok := e.best[e.g.Find(id)]
	return r.cost, ok
}

// ToSurface materializes the extracted tree rooted at id as an
// ir.Surface. id must be the e-class of a Surface-sort term.
func (e *Extractor) ToSurface(id Id) (ir.Surface, error) {
	n, ok := e.Best(id)
	if !ok {
		return nil, ir.NewInvariantError("extract", ir.SortSurface, ir.SortSurface)
	}
	switch n.Op {
	case ir.OpBlankSurface:
		return ir.BlankSurface{}, nil
	case ir.OpDraw:
		dl := n.Leaf.(DrawLeaf)
		return ir.Draw{Index: dl.Index, Name: dl.Name, Paint: dl.Paint}, nil
	case ir.OpConcat:
		lhs, err := e.ToSurface(n.Kid0)
		if err != nil {
			return nil, err
		}
		rhs, err := e.ToSurface(n.Kid1)
		if err != nil {
			return nil, err
		}
		return ir.Concat{Lhs: lhs, Rhs: rhs}, nil
	case ir.OpSrcOver:
		bottom, err := e.ToSurface(n.Kid0)
		if err != nil {
			return nil, err
		}
		top, err := e.ToSurface(n.Kid1)
		if err != nil {
			return nil, err
		}
		return ir.SrcOver{Bottom: bottom, Top: top}, nil
	case ir.OpClipRect:
		base, err := e.ToSurface(n.Kid0)
		if err != nil {
			return nil, err
		}
		return ir.ClipRect{Base: base, Params: n.Leaf.(ir.ClipRectParams)}, nil
	case ir.OpMatrixOp:
		base, err := e.ToSurface(n.Kid0)
		if err != nil {
			return nil, err
		}
		return ir.MatrixOp{Base: base, Params: n.Leaf.(ir.MatrixOpParams)}, nil
	case ir.OpConcat44:
		base, err := e.ToSurface(n.Kid0)
		if err != nil {
			return nil, err
		}
		return ir.Concat44{Base: base, Matrix: n.Leaf.(ir.M44Leaf)}, nil
	case ir.OpMerge:
		dst, err := e.ToSurface(n.Kid0)
		if err != nil {
			return nil, err
		}
		src, err := e.ToSurface(n.Kid1)
		if err != nil {
			return nil, err
		}
		mp := n.Leaf.(ir.MergeParams)
		var st ir.State
		if n.Kid2 != noId {
			st, err = e.ToState(n.Kid2)
			if err != nil {
				return nil, err
			}
		}
		return ir.Merge{Dst: dst, Src: src, Params: ir.MergeParamsWithState{MP: mp, State: st}}, nil
	case ir.OpApplyAlpha, ir.OpApplyState, ir.OpApplyFilterWithState:
		return nil, ir.NewInvariantError("extract: virtual op survived", ir.SortSurface, ir.SortSurface)
	default:
		return nil, ir.NewInvariantError("extract: unexpected surface op", ir.SortSurface, ir.SortSurface)
	}
}

// ToState materializes the extracted tree rooted at id as an ir.State.
func (e *Extractor) ToState(id Id) (ir.State, error) {
	n, ok := e.Best(id)
	if !ok {
		return nil, ir.NewInvariantError("extract", ir.SortState, ir.SortState)
	}
	switch n.Op {
	case ir.OpBlankState:
		return ir.BlankState{}, nil
	case ir.OpStateClipRect:
		base, err := e.ToState(n.Kid0)
		if err != nil {
			return nil, err
		}
		return ir.StateClipRect{Base: base, Params: n.Leaf.(ir.ClipRectParams)}, nil
	case ir.OpStateConcat44:
		base, err := e.ToState(n.Kid0)
		if err != nil {
			return nil, err
		}
		return ir.StateConcat44{Base: base, Matrix: n.Leaf.(ir.M44Leaf)}, nil
	case ir.OpStateMatrixOp:
		base, err := e.ToState(n.Kid0)
		if err != nil {
			return nil, err
		}
		return ir.StateMatrixOp{Base: base, Params: n.Leaf.(ir.MatrixOpParams)}, nil
	default:
		return nil, ir.NewInvariantError("extract: unexpected state op", ir.SortState, ir.SortState)
	}
}
