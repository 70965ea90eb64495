package rewrite

import (
	"github.com/gogpu/pictureopt/internal/egraph"
	"github.com/gogpu/pictureopt/internal/ir"
)

// classHasOp reports whether any e-node in id's class has operator op.
func classHasOp(g *egraph.EGraph, id egraph.Id, op ir.Op) bool {
	class := g.EClassOf(id)
	if class == nil {
		return false
	}
	for _, n := range class.Nodes {
		if n.Op == op {
			return true
		}
	}
	return false
}

func isBlankSurface(g *egraph.EGraph, id egraph.Id) bool {
	return classHasOp(g, id, ir.OpBlankSurface)
}

func isBlankState(g *egraph.EGraph, id egraph.Id) bool {
	return classHasOp(g, id, ir.OpBlankState)
}

// findDraw returns the DrawLeaf and its node for the first Draw e-node
// in id's class, if any.
func findDraw(g *egraph.EGraph, id egraph.Id) (egraph.DrawLeaf, bool) {
	class := g.EClassOf(id)
	if class == nil {
		return egraph.DrawLeaf{}, false
	}
	for _, n := range class.Nodes {
		if n.Op == ir.OpDraw {
			return n.Leaf.(egraph.DrawLeaf), true
		}
	}
	return egraph.DrawLeaf{}, false
}

// nodesWithOp returns every (classID, node) pair across the whole graph
// whose node has operator op. Rule matchers start here rather than
// walking the IR tree, since the e-graph has no single root during
// saturation.
func nodesWithOp(g *egraph.EGraph, op ir.Op) []struct {
	ClassID egraph.Id
	Node    egraph.Node
} {
	var out []struct {
		ClassID egraph.Id
		Node    egraph.Node
	}
	for id, class := range g.Classes() {
		for _, n := range class.Nodes {
			if n.Op == op {
				out = append(out, struct {
					ClassID egraph.Id
					Node    egraph.Node
				}{ClassID: id, Node: n})
			}
		}
	}
	return out
}

func foldAlphaByte(a, b uint8) uint8 {
	return uint8((uint16(a) * uint16(b)) / 255)
}

// unionIfDistinct unions a and b and reports whether they were not
// already in the same class — the signal a Rule.Apply must use for its
// fired return so the runner can recognize a genuine fixed point
// instead of looping forever re-discovering the same equivalence.
func unionIfDistinct(g *egraph.EGraph, a, b egraph.Id) bool {
	if g.Find(a) == g.Find(b) {
		return false
	}
	g.Union(a, b)
	return true
}
